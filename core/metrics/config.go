package metrics

// Config holds the Prometheus exposition configuration.
type Config struct {
	// Enabled exposes GET /metrics when true.
	Enabled bool `mapstructure:"enabled" default:"true"`

	// Namespace prefixes every metric name.
	Namespace string `mapstructure:"namespace" default:"country_atlas"`
}
