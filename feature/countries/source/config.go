package source

import "time"

// Config holds the country source configuration.
type Config struct {
	// URL returns the full country dataset as a JSON array.
	URL string `mapstructure:"url" default:"https://restcountries.com/v2/all?fields=name,capital,region,population,flag,currencies"`

	// TimeoutSeconds bounds the whole fetch, body included.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"10"`
}

// Timeout returns the fetch timeout.
func (c Config) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 10 * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}
