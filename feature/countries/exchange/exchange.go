package exchange

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"

	"country-atlas/feature/countries/models"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	defaultURL  = "https://open.er-api.com/v6/latest/{base}"
	defaultBase = "USD"
)

// Lookup results reported to the Observer.
const (
	ResultHit     = "hit"
	ResultMiss    = "miss"
	ResultTimeout = "timeout"
	ResultError   = "error"
)

// Observer receives the result of every lookup. *metrics.Pipeline implements it.
type Observer interface {
	ObserveLookup(result string)
}

type latestResponse struct {
	Result string             `json:"result"`
	Base   string             `json:"base_code"`
	Rates  map[string]float64 `json:"rates"`
}

// Resolver turns a currency code into a rate against the base currency.
// It never fails: any problem yields nil.
type Resolver struct {
	cfg      Config
	client   *http.Client
	logger   *zap.Logger
	observer Observer
	group    singleflight.Group
}

// NewResolver creates a resolver. A nil client uses http.DefaultClient.
func NewResolver(cfg Config, client *http.Client, logger *zap.Logger, observer Observer) *Resolver {
	if strings.TrimSpace(cfg.URL) == "" {
		cfg.URL = defaultURL
	}
	if strings.TrimSpace(cfg.BaseCurrency) == "" {
		cfg.BaseCurrency = defaultBase
	}
	if client == nil {
		client = http.DefaultClient
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Resolver{cfg: cfg, client: client, logger: logger, observer: observer}
}

// Resolve returns the rate for code, or nil when it cannot be determined.
// Concurrent lookups against the same base share one request.
func (r *Resolver) Resolve(ctx context.Context, code string) *float64 {
	code = models.NormalizeCurrency(code)
	if code == "" {
		return nil
	}

	v, err, _ := r.group.Do(r.cfg.BaseCurrency, func() (any, error) {
		return r.fetch(ctx)
	})
	if err != nil {
		result := ResultError
		if isTimeout(err) {
			result = ResultTimeout
		}
		r.observe(result)
		r.logger.Warn("Exchange rate lookup failed",
			zap.String("currency", code),
			zap.String("result", result),
			zap.Error(err))
		return nil
	}

	rate, ok := v.(map[string]float64)[code]
	if !ok || rate <= 0 {
		r.observe(ResultMiss)
		r.logger.Debug("Exchange rate not available", zap.String("currency", code))
		return nil
	}

	r.observe(ResultHit)
	return &rate
}

func (r *Resolver) fetch(ctx context.Context) (map[string]float64, error) {
	ctx, cancel := context.WithTimeout(ctx, r.cfg.Timeout())
	defer cancel()

	url := strings.ReplaceAll(r.cfg.URL, "{base}", r.cfg.BaseCurrency)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("exchange source returned status %d", resp.StatusCode)
	}

	var payload latestResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode exchange payload: %w", err)
	}
	if payload.Result != "success" {
		return nil, fmt.Errorf("exchange source reported result %q", payload.Result)
	}
	return payload.Rates, nil
}

func (r *Resolver) observe(result string) {
	if r.observer != nil {
		r.observer.ObserveLookup(result)
	}
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
