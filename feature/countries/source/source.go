package source

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"

	"country-atlas/core/apperror"
)

const defaultURL = "https://restcountries.com/v2/all?fields=name,capital,region,population,flag,currencies"

// maxBodyBytes caps the dataset size read into memory.
const maxBodyBytes = 32 << 20

// Currency is one entry of a country's currencies list.
type Currency struct {
	Code   string `json:"code"`
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}

// Country is a record as delivered by the source.
type Country struct {
	Name       string     `json:"name"`
	Capital    string     `json:"capital"`
	Region     string     `json:"region"`
	Population int64      `json:"population"`
	Flag       string     `json:"flag"`
	Currencies []Currency `json:"currencies"`
}

// PrimaryCurrency returns the first non-empty currency code, or "".
func (c Country) PrimaryCurrency() string {
	for _, cur := range c.Currencies {
		if code := strings.TrimSpace(cur.Code); code != "" {
			return code
		}
	}
	return ""
}

// Client fetches the full country dataset.
type Client struct {
	cfg    Config
	client *http.Client
}

// NewClient creates a source client. A nil client uses http.DefaultClient.
func NewClient(cfg Config, client *http.Client) *Client {
	if strings.TrimSpace(cfg.URL) == "" {
		cfg.URL = defaultURL
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &Client{cfg: cfg, client: client}
}

// FetchAll downloads every country in a single call. Errors are classified:
// a timeout is apperror.ErrSourceUnavailable, anything else is an
// *apperror.SourceError. There are no retries.
func (c *Client) FetchAll(ctx context.Context) ([]Country, error) {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout())
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.URL, nil)
	if err != nil {
		return nil, &apperror.SourceError{Message: "invalid source request", Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, classify(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &apperror.SourceError{
			Status:  resp.StatusCode,
			Message: fmt.Sprintf("unexpected status %s", resp.Status),
		}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, classify(err)
	}

	body = bytes.TrimSpace(body)
	if len(body) == 0 || body[0] != '[' {
		return nil, &apperror.SourceError{
			Status:  resp.StatusCode,
			Message: "payload is not a JSON array",
		}
	}

	var countries []Country
	if err := json.Unmarshal(body, &countries); err != nil {
		return nil, &apperror.SourceError{
			Status:  resp.StatusCode,
			Message: "malformed payload",
			Err:     err,
		}
	}

	return countries, nil
}

func classify(err error) error {
	if isTimeout(err) {
		return apperror.Unavailable(err)
	}
	return &apperror.SourceError{Message: "transport failure", Err: err}
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
