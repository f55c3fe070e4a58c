package exchange

import "time"

// Config holds the exchange rate source configuration.
type Config struct {
	// URL is the endpoint template. {base} is replaced by BaseCurrency.
	URL string `mapstructure:"url" default:"https://open.er-api.com/v6/latest/{base}"`

	// BaseCurrency is the currency every rate is quoted against.
	BaseCurrency string `mapstructure:"base_currency" default:"USD"`

	// TimeoutSeconds bounds each lookup.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"5"`
}

// Timeout returns the per-call timeout.
func (c Config) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 5 * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}
