package countries

import (
	"context"
	"errors"
	"fmt"
	"time"

	"country-atlas/core/apperror"
	"country-atlas/feature/countries/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SourceUpdate holds the fields an ingestion run overwrites on an existing record.
type SourceUpdate struct {
	Capital         string
	Region          string
	Population      int64
	EstimatedGDP    *float64
	LastRefreshedAt time.Time
}

// Repository persists country records. Names passed in are normalized first.
type Repository interface {
	FindByName(ctx context.Context, name string) (*models.Country, error)
	Create(ctx context.Context, country *models.Country) error
	UpdateFromSource(ctx context.Context, id uint, update SourceUpdate) error
	DeleteByName(ctx context.Context, name string) error
	Count(ctx context.Context) (int64, error)
	List(ctx context.Context, filter models.Filter) ([]models.Country, error)
	TopByGDP(ctx context.Context, limit int) ([]models.Country, error)
	SetLastRefreshedAt(ctx context.Context, at time.Time) error
	LastRefreshedAt(ctx context.Context) (*time.Time, error)
}

// GormRepository is the gorm backed Repository.
type GormRepository struct {
	db *gorm.DB
}

// NewRepository creates a repository over db.
func NewRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

// Migrate creates or updates the tables owned by this feature.
func (r *GormRepository) Migrate(ctx context.Context) error {
	return r.db.WithContext(ctx).AutoMigrate(models.All()...)
}

// FindByName returns the record named name or apperror.ErrNotFound.
func (r *GormRepository) FindByName(ctx context.Context, name string) (*models.Country, error) {
	var country models.Country
	err := r.db.WithContext(ctx).
		Where("name = ?", models.NormalizeName(name)).
		Take(&country).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NotFoundf("country %q", name)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find country: %w", err)
	}
	return &country, nil
}

// Create inserts a new record.
func (r *GormRepository) Create(ctx context.Context, country *models.Country) error {
	country.Name = models.NormalizeName(country.Name)
	if err := r.db.WithContext(ctx).Create(country).Error; err != nil {
		return fmt.Errorf("failed to create country: %w", err)
	}
	return nil
}

// UpdateFromSource overwrites the source-derived fields of record id.
// A nil EstimatedGDP is written as NULL.
func (r *GormRepository) UpdateFromSource(ctx context.Context, id uint, update SourceUpdate) error {
	res := r.db.WithContext(ctx).
		Model(&models.Country{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"capital":           update.Capital,
			"region":            update.Region,
			"population":        update.Population,
			"estimated_gdp":     update.EstimatedGDP,
			"last_refreshed_at": update.LastRefreshedAt,
		})
	if res.Error != nil {
		return fmt.Errorf("failed to update country: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperror.NotFoundf("country id %d", id)
	}
	return nil
}

// DeleteByName removes the record named name or returns apperror.ErrNotFound.
func (r *GormRepository) DeleteByName(ctx context.Context, name string) error {
	res := r.db.WithContext(ctx).
		Where("name = ?", models.NormalizeName(name)).
		Delete(&models.Country{})
	if res.Error != nil {
		return fmt.Errorf("failed to delete country: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperror.NotFoundf("country %q", name)
	}
	return nil
}

// Count returns the number of stored records.
func (r *GormRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Country{}).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count countries: %w", err)
	}
	return total, nil
}

// List returns the records matching filter. Region compares case-insensitively,
// currency against the upper-cased code.
func (r *GormRepository) List(ctx context.Context, filter models.Filter) ([]models.Country, error) {
	query := r.db.WithContext(ctx).Model(&models.Country{})

	if filter.Region != "" {
		query = query.Where("LOWER(region) = ?", models.NormalizeName(filter.Region))
	}
	if filter.Currency != "" {
		query = query.Where("currency_code = ?", models.NormalizeCurrency(filter.Currency))
	}

	switch filter.Sort {
	case "":
		query = query.Order("id ASC")
	case models.SortGDPAsc:
		query = query.Order("estimated_gdp ASC").Order("id ASC")
	case models.SortGDPDesc:
		query = query.Order("estimated_gdp DESC").Order("id ASC")
	default:
		return nil, fmt.Errorf("%w: unsupported sort %q", apperror.ErrInvalidRequest, filter.Sort)
	}

	var countries []models.Country
	if err := query.Find(&countries).Error; err != nil {
		return nil, fmt.Errorf("failed to list countries: %w", err)
	}
	return countries, nil
}

// TopByGDP returns up to limit records with a known GDP, highest first.
func (r *GormRepository) TopByGDP(ctx context.Context, limit int) ([]models.Country, error) {
	var countries []models.Country
	err := r.db.WithContext(ctx).
		Where("estimated_gdp IS NOT NULL").
		Order("estimated_gdp DESC").
		Limit(limit).
		Find(&countries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to rank countries: %w", err)
	}
	return countries, nil
}

// SetLastRefreshedAt records the completion time of an ingestion run.
func (r *GormRepository) SetLastRefreshedAt(ctx context.Context, at time.Time) error {
	status := models.RefreshStatus{ID: models.RefreshStatusID, LastRefreshedAt: at}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&status).Error
	if err != nil {
		return fmt.Errorf("failed to store refresh status: %w", err)
	}
	return nil
}

// LastRefreshedAt returns the last completed run time, or nil before the first run.
func (r *GormRepository) LastRefreshedAt(ctx context.Context) (*time.Time, error) {
	var status models.RefreshStatus
	err := r.db.WithContext(ctx).Take(&status, models.RefreshStatusID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read refresh status: %w", err)
	}
	at := status.LastRefreshedAt
	return &at, nil
}
