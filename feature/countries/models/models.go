package models

import (
	"strings"
	"time"
)

// Country is a persisted country record keyed by its normalized name.
// Nil pointers are unknown values and map to SQL NULL.
type Country struct {
	ID              uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name            string    `gorm:"column:name;type:varchar(255);uniqueIndex;not null" json:"name"`
	Capital         string    `gorm:"column:capital;type:varchar(255)" json:"capital"`
	Region          string    `gorm:"column:region;type:varchar(255);index" json:"region"`
	Population      int64     `gorm:"column:population;type:bigint;not null" json:"population"`
	CurrencyCode    *string   `gorm:"column:currency_code;type:varchar(3)" json:"currency_code"`
	ExchangeRate    *float64  `gorm:"column:exchange_rate;type:double" json:"exchange_rate"`
	EstimatedGDP    *float64  `gorm:"column:estimated_gdp;type:double" json:"estimated_gdp"`
	FlagURL         string    `gorm:"column:flag_url;type:varchar(512)" json:"flag_url"`
	LastRefreshedAt time.Time `gorm:"column:last_refreshed_at;type:datetime" json:"last_refreshed_at"`
	CreatedAt       time.Time `gorm:"column:created_at;type:datetime" json:"-"`
	UpdatedAt       time.Time `gorm:"column:updated_at;type:datetime" json:"-"`
}

// TableName overrides the table name.
func (Country) TableName() string {
	return "countries"
}

// RefreshStatus is the single-row record of the last completed ingestion run.
type RefreshStatus struct {
	ID              uint      `gorm:"column:id;primaryKey"`
	LastRefreshedAt time.Time `gorm:"column:last_refreshed_at;type:datetime"`
}

// TableName overrides the table name.
func (RefreshStatus) TableName() string {
	return "refresh_status"
}

// RefreshStatusID is the primary key of the only refresh_status row.
const RefreshStatusID = 1

// Status is the health summary served by GET /status.
type Status struct {
	TotalCountries  int64      `json:"total_countries"`
	LastRefreshedAt *time.Time `json:"last_refreshed_at"`
}

// Filter narrows ListCountries. Empty fields do not filter.
type Filter struct {
	Region   string
	Currency string
	Sort     string
}

const (
	SortGDPAsc  = "gdp_asc"
	SortGDPDesc = "gdp_desc"
)

// NormalizeName returns the lookup key for a country name.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// NormalizeCurrency returns the stored form of a currency code.
func NormalizeCurrency(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// All returns the models managed by migrations.
func All() []any {
	return []any{&Country{}, &RefreshStatus{}}
}

// ValidCurrency reports whether code is a three letter ISO 4217 style code.
func ValidCurrency(code string) bool {
	if len(code) != 3 {
		return false
	}
	for _, r := range code {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}
