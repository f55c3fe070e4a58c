package countries

import (
	"context"
	"errors"
	"fmt"
	"time"

	"country-atlas/core/apperror"
	"country-atlas/core/lock"
	"country-atlas/core/metrics"
	"country-atlas/core/reconcile"
	"country-atlas/feature/countries/models"
	"country-atlas/feature/countries/source"

	"go.uber.org/zap"
)

// RunLockKey names the lock held for the duration of an ingestion run.
const RunLockKey = "country-atlas:ingestion"

var (
	errMissingName        = errors.New("country name is empty")
	errNegativePopulation = errors.New("population is negative")
)

// Fetcher downloads the full source dataset.
type Fetcher interface {
	FetchAll(ctx context.Context) ([]source.Country, error)
}

// RateResolver resolves a currency code to a rate, nil when unknown.
type RateResolver interface {
	Resolve(ctx context.Context, code string) *float64
}

// Estimator derives an estimated GDP, nil when the rate is unknown.
type Estimator interface {
	Estimate(rate *float64, population int64) *float64
}

// Publisher renders and stores the summary report.
type Publisher interface {
	Publish(ctx context.Context) error
}

// Recorder receives pipeline metrics. *metrics.Pipeline implements it.
type Recorder interface {
	ObserveItem(outcome string)
	ObserveRun(result string, elapsed time.Duration)
}

// Dependencies are the collaborators of a Service.
type Dependencies struct {
	Repo      Repository
	Source    Fetcher
	Rates     RateResolver
	Estimator Estimator
	Publisher Publisher
	Locker    lock.Locker
	Recorder  Recorder
	Logger    *zap.Logger
	Options   reconcile.Options
	LockTTL   time.Duration
	Now       func() time.Time
}

// Service runs ingestion and serves the country read operations.
type Service struct {
	repo      Repository
	source    Fetcher
	rates     RateResolver
	estimator Estimator
	publisher Publisher
	locker    lock.Locker
	recorder  Recorder
	logger    *zap.Logger
	opts      reconcile.Options
	lockTTL   time.Duration
	now       func() time.Time
}

// NewService creates a country service.
func NewService(deps Dependencies) *Service {
	s := &Service{
		repo:      deps.Repo,
		source:    deps.Source,
		rates:     deps.Rates,
		estimator: deps.Estimator,
		publisher: deps.Publisher,
		locker:    deps.Locker,
		recorder:  deps.Recorder,
		logger:    deps.Logger,
		opts:      deps.Options,
		lockTTL:   deps.LockTTL,
		now:       deps.Now,
	}
	if s.locker == nil {
		s.locker = lock.NewLocal()
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	if s.lockTTL <= 0 {
		s.lockTTL = 5 * time.Minute
	}
	if s.now == nil {
		s.now = func() time.Time { return time.Now().UTC() }
	}
	return s
}

// RunIngestion fetches the dataset and reconciles it against the store.
// A failed fetch aborts before any write. Item failures are counted, never
// returned. The report is published once, after every batch settled.
func (s *Service) RunIngestion(ctx context.Context) (reconcile.Summary, error) {
	started := time.Now()

	token, ok, err := s.locker.TryLock(ctx, RunLockKey, s.lockTTL)
	if err != nil {
		return reconcile.Summary{}, apperror.Internal(fmt.Errorf("failed to acquire run lock: %w", err))
	}
	if !ok {
		s.observeRun(metrics.RunResultContention, started)
		return reconcile.Summary{}, apperror.ErrRunInProgress
	}
	defer func() {
		if err := s.locker.Release(context.WithoutCancel(ctx), RunLockKey, token); err != nil {
			s.logger.Warn("Failed to release run lock", zap.Error(err))
		}
	}()

	s.logger.Info("Starting ingestion run")

	incoming, err := s.source.FetchAll(ctx)
	if err != nil {
		s.logger.Error("Ingestion fetch failed", zap.Error(err))
		s.observeRun(metrics.RunResultFailed, started)
		return reconcile.Summary{}, err
	}

	opts := s.opts
	opts.OnBatch = func(index int, outcomes []reconcile.Outcome) {
		s.logger.Debug("Batch settled", zap.Int("batch", index), zap.Int("items", len(outcomes)))
	}
	outcomes := reconcile.Run(ctx, incoming, opts, s.reconcileCountry)
	summary := reconcile.Fold(outcomes)

	for _, o := range outcomes {
		if s.recorder != nil {
			s.recorder.ObserveItem(string(o.Kind))
		}
	}
	for _, o := range reconcile.Failures(outcomes) {
		s.logger.Warn("Country reconciliation failed", zap.String("country", o.Key), zap.String("reason", o.Reason))
	}

	if err := s.repo.SetLastRefreshedAt(ctx, s.now()); err != nil {
		s.observeRun(metrics.RunResultFailed, started)
		return summary, apperror.Internal(err)
	}

	if s.publisher != nil {
		if err := s.publisher.Publish(ctx); err != nil {
			s.logger.Error("Report publish failed", zap.Error(err))
			s.observeRun(metrics.RunResultFailed, started)
			return summary, apperror.Internal(fmt.Errorf("failed to publish report: %w", err))
		}
	}

	s.observeRun(metrics.RunResultSuccess, started)
	s.logger.Info("Ingestion run completed",
		zap.Int("created", summary.Created),
		zap.Int("updated", summary.Updated),
		zap.Int("failed", summary.Failed),
		zap.Int("total", summary.Total),
		zap.Duration("elapsed", time.Since(started)))

	return summary, nil
}

func (s *Service) reconcileCountry(ctx context.Context, in source.Country) reconcile.Outcome {
	name := models.NormalizeName(in.Name)
	if name == "" {
		return reconcile.Failed(in.Name, errMissingName)
	}
	if in.Population < 0 {
		return reconcile.Failed(name, errNegativePopulation)
	}

	existing, err := s.repo.FindByName(ctx, name)
	switch {
	case err == nil:
		return s.updateCountry(ctx, existing, in)
	case errors.Is(err, apperror.ErrNotFound):
		return s.createCountry(ctx, name, in)
	default:
		return reconcile.Failed(name, err)
	}
}

// updateCountry reuses the stored exchange rate; the resolver is not consulted.
func (s *Service) updateCountry(ctx context.Context, existing *models.Country, in source.Country) reconcile.Outcome {
	update := SourceUpdate{
		Capital:         in.Capital,
		Region:          in.Region,
		Population:      in.Population,
		EstimatedGDP:    s.estimator.Estimate(existing.ExchangeRate, in.Population),
		LastRefreshedAt: s.now(),
	}
	if err := s.repo.UpdateFromSource(ctx, existing.ID, update); err != nil {
		return reconcile.Failed(existing.Name, err)
	}
	return reconcile.Updated(existing.Name)
}

func (s *Service) createCountry(ctx context.Context, name string, in source.Country) reconcile.Outcome {
	var (
		currency *string
		rate     *float64
	)
	if code := models.NormalizeCurrency(in.PrimaryCurrency()); models.ValidCurrency(code) {
		currency = &code
		rate = s.rates.Resolve(ctx, code)
	}

	country := &models.Country{
		Name:            name,
		Capital:         in.Capital,
		Region:          in.Region,
		Population:      in.Population,
		CurrencyCode:    currency,
		ExchangeRate:    rate,
		EstimatedGDP:    s.estimator.Estimate(rate, in.Population),
		FlagURL:         in.Flag,
		LastRefreshedAt: s.now(),
	}
	if err := s.repo.Create(ctx, country); err != nil {
		// A concurrent item with the same name may have won the insert.
		if existing, findErr := s.repo.FindByName(ctx, name); findErr == nil {
			return s.updateCountry(ctx, existing, in)
		}
		return reconcile.Failed(name, err)
	}
	return reconcile.Created(name)
}

// GetCountry returns the record named name.
func (s *Service) GetCountry(ctx context.Context, name string) (*models.Country, error) {
	country, err := s.repo.FindByName(ctx, name)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return country, nil
}

// ListCountries returns the records matching filter, or apperror.ErrNotFound when none do.
func (s *Service) ListCountries(ctx context.Context, filter models.Filter) ([]models.Country, error) {
	countries, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if len(countries) == 0 {
		return nil, apperror.NotFoundf("no countries match the filter")
	}
	return countries, nil
}

// DeleteCountry removes the record named name.
func (s *Service) DeleteCountry(ctx context.Context, name string) error {
	if err := s.repo.DeleteByName(ctx, name); err != nil {
		return apperror.Internal(err)
	}
	s.logger.Info("Country deleted", zap.String("country", models.NormalizeName(name)))
	return nil
}

// GetStatus returns the stored record count and the last completed run time.
func (s *Service) GetStatus(ctx context.Context) (*models.Status, error) {
	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	last, err := s.repo.LastRefreshedAt(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return &models.Status{TotalCountries: total, LastRefreshedAt: last}, nil
}

func (s *Service) observeRun(result string, started time.Time) {
	if s.recorder != nil {
		s.recorder.ObserveRun(result, time.Since(started))
	}
}
