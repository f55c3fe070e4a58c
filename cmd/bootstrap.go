package cmd

import (
	"context"
	"fmt"
	"net/http"

	"country-atlas/core/config"
	"country-atlas/core/database"
	"country-atlas/core/lock"
	"country-atlas/core/logger"
	"country-atlas/core/metrics"
	"country-atlas/core/storage"
	"country-atlas/feature/countries"
	"country-atlas/feature/countries/exchange"
	"country-atlas/feature/countries/gdp"
	"country-atlas/feature/countries/source"
	"country-atlas/feature/integrity"
	"country-atlas/feature/report"
	"country-atlas/feature/report/cache"
	"country-atlas/feature/report/render"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// runtime holds the wired services shared by every command.
type runtime struct {
	cfg       *config.Config
	logger    *zap.Logger
	db        *gorm.DB
	store     storage.Client
	metrics   *metrics.Pipeline
	reports   *report.Service
	countries *countries.Service
	integrity *integrity.Service
}

// bootstrap loads configuration and wires every service. migrate controls
// whether the schema is brought up to date on connect.
func bootstrap(ctx context.Context, migrate bool) (*runtime, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	zap.ReplaceGlobals(logg)

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return nil, err
	}
	logg.Info("Connected to database", zap.String("driver", cfg.Database.Driver))

	repo := countries.NewRepository(db)
	if migrate {
		if err := repo.Migrate(ctx); err != nil {
			return nil, fmt.Errorf("failed to migrate database: %w", err)
		}
	}

	rt := &runtime{cfg: cfg, logger: logg, db: db}
	if cfg.Metrics.Enabled {
		rt.metrics = metrics.NewPipeline(cfg.Metrics)
	}

	reportCache, err := rt.reportCache(ctx)
	if err != nil {
		return nil, err
	}

	raster, err := render.NewRasterizer()
	if err != nil {
		return nil, fmt.Errorf("failed to load report fonts: %w", err)
	}
	rt.reports = report.NewService(render.NewRenderer(repo, raster, nil), reportCache, rt.metrics, logg)

	rates := exchange.NewResolver(cfg.Exchange, &http.Client{Timeout: cfg.Exchange.Timeout()}, logg, rt.metrics)
	rt.countries = countries.NewService(countries.Dependencies{
		Repo:      repo,
		Source:    source.NewClient(cfg.Source, &http.Client{Timeout: cfg.Source.Timeout()}),
		Rates:     rates,
		Estimator: gdp.NewEstimator(),
		Publisher: rt.reports,
		Locker:    lock.New(cfg.Lock),
		Recorder:  rt.metrics,
		Logger:    logg,
		Options:   cfg.Pipeline.Options(),
		LockTTL:   cfg.Lock.TTL(),
	})

	rt.integrity = integrity.NewService(rt.store, cfg.Storage.Bucket, cfg.Storage.Region, cfg.Report.ObjectKey, db, logg)
	return rt, nil
}

func (rt *runtime) reportCache(ctx context.Context) (cache.Cache, error) {
	switch rt.cfg.Report.Backend {
	case cache.BackendFile:
		rt.logger.Info("Caching report on disk", zap.String("path", rt.cfg.Report.FilePath))
		return cache.NewFileCache(rt.cfg.Report.FilePath), nil
	case cache.BackendStorage, "":
		store, err := storage.NewClient(rt.cfg.Storage)
		if err != nil {
			return nil, fmt.Errorf("failed to create storage client: %w", err)
		}
		if created, err := storage.EnsureBucket(ctx, store, rt.cfg.Storage.Bucket, rt.cfg.Storage.Region); err != nil {
			rt.logger.Warn("Could not ensure report bucket", zap.String("bucket", rt.cfg.Storage.Bucket), zap.Error(err))
		} else if created {
			rt.logger.Info("Created report bucket", zap.String("bucket", rt.cfg.Storage.Bucket))
		}
		rt.store = store
		return cache.NewStorageCache(store, rt.cfg.Storage.Bucket, rt.cfg.Report.ObjectKey), nil
	default:
		return nil, fmt.Errorf("unsupported report backend: %s", rt.cfg.Report.Backend)
	}
}

func (rt *runtime) close() {
	if sqlDB, err := rt.db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	_ = rt.logger.Sync()
}
