package report

import (
	"context"
	"fmt"
	"sync"

	"country-atlas/core/apperror"
	"country-atlas/feature/report/cache"
	"country-atlas/feature/report/render"

	"go.uber.org/zap"
)

// Recorder receives render metrics. *metrics.Pipeline implements it.
type Recorder interface {
	ObserveRender(err error)
}

// Service renders, stores and serves the summary report.
type Service struct {
	renderer *render.Renderer
	cache    cache.Cache
	recorder Recorder
	logger   *zap.Logger

	// mu makes Publish single-writer.
	mu sync.Mutex
}

// NewService creates a report service.
func NewService(renderer *render.Renderer, store cache.Cache, recorder Recorder, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{renderer: renderer, cache: store, recorder: recorder, logger: logger}
}

// Publish renders the report from current state and overwrites the cached copy.
func (s *Service) Publish(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.renderer.Render(ctx)
	s.observe(err)
	if err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}
	if err := s.cache.Store(ctx, data); err != nil {
		return fmt.Errorf("failed to store report: %w", err)
	}

	s.logger.Info("Report published", zap.Int("bytes", len(data)))
	return nil
}

// GetReport returns the cached PNG, or apperror.ErrNotFound if none was ever published.
func (s *Service) GetReport(ctx context.Context) ([]byte, error) {
	data, err := s.cache.Load(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return data, nil
}

// Summary returns the data the next report would be rendered from.
func (s *Service) Summary(ctx context.Context) (*render.Snapshot, error) {
	snapshot, err := s.renderer.Snapshot(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return snapshot, nil
}

func (s *Service) observe(err error) {
	if s.recorder != nil {
		s.recorder.ObserveRender(err)
	}
}
