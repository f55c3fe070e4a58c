package integrity

import (
	"context"

	"country-atlas/core/storage"
	"country-atlas/feature/integrity/checks"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service handles integrity checks.
type Service struct {
	client    storage.Client
	bucket    string
	region    string
	reportKey string
	db        *gorm.DB
	logger    *zap.Logger
}

// NewService creates a new integrity service. client may be nil when the
// report cache does not live in object storage.
func NewService(client storage.Client, bucket, region, reportKey string, db *gorm.DB, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		client:    client,
		bucket:    bucket,
		region:    region,
		reportKey: reportKey,
		db:        db,
		logger:    logger,
	}
}

// HasStorage reports whether a storage client is configured.
func (s *Service) HasStorage() bool {
	return s.client != nil
}

// CheckStorage inspects the report bucket.
func (s *Service) CheckStorage(ctx context.Context) (*checks.StorageReport, error) {
	return checks.CheckStorage(ctx, s.client, s.bucket, s.reportKey)
}

// FixStorage creates the report bucket when missing.
func (s *Service) FixStorage(ctx context.Context) (bool, error) {
	return checks.FixStorage(ctx, s.client, s.bucket, s.region, s.logger)
}

// CheckSchema compares the database schema with the country models.
func (s *Service) CheckSchema(ctx context.Context) (*checks.SchemaReport, error) {
	return checks.CheckSchema(ctx, s.db)
}

// Report is the combined result of every check.
type Report struct {
	Healthy bool                  `json:"healthy"`
	Storage *checks.StorageReport `json:"storage,omitempty"`
	Schema  *checks.SchemaReport  `json:"schema,omitempty"`
	Errors  map[string]string     `json:"errors,omitempty"`
}

// Run executes all checks. Check failures are collected in the report rather than returned.
func (s *Service) Run(ctx context.Context) *Report {
	report := &Report{Healthy: true, Errors: map[string]string{}}

	if s.HasStorage() {
		st, err := s.CheckStorage(ctx)
		if err != nil {
			report.Errors["storage"] = err.Error()
			report.Healthy = false
		} else {
			report.Storage = st
			if !st.BucketExists {
				report.Healthy = false
			}
		}
	}

	schema, err := s.CheckSchema(ctx)
	if err != nil {
		report.Errors["schema"] = err.Error()
		report.Healthy = false
	} else {
		report.Schema = schema
		if !schema.Matched {
			report.Healthy = false
		}
	}

	if len(report.Errors) == 0 {
		report.Errors = nil
	}
	return report
}
