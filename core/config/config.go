package config

import (
	"reflect"
	"strings"

	"country-atlas/core/database"
	"country-atlas/core/lock"
	"country-atlas/core/logger"
	"country-atlas/core/metrics"
	"country-atlas/core/reconcile"
	"country-atlas/core/server"
	"country-atlas/core/storage"
	"country-atlas/feature/countries/exchange"
	"country-atlas/feature/countries/source"
	"country-atlas/feature/report"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// It is divided into partial configurations owned by the packages they configure.
type Config struct {
	// Server holds configuration for the HTTP server.
	Server server.Config `mapstructure:"server"`
	// Storage holds configuration for the object storage (e.g., S3, Minio).
	Storage storage.Config `mapstructure:"storage"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Database holds configuration for the database connection.
	Database database.Config `mapstructure:"database"`
	// Source holds configuration for the country dataset source.
	Source source.Config `mapstructure:"source"`
	// Exchange holds configuration for the exchange rate source.
	Exchange exchange.Config `mapstructure:"exchange"`
	// Pipeline holds the ingestion batching settings.
	Pipeline reconcile.Config `mapstructure:"pipeline"`
	// Report holds configuration for the report cache.
	Report report.Config `mapstructure:"report"`
	// Lock holds configuration for the run lock.
	Lock lock.Config `mapstructure:"lock"`
	// Metrics holds configuration for Prometheus exposition.
	Metrics metrics.Config `mapstructure:"metrics"`
}

// LoadConfig loads configuration from environment variables and .env file.
func LoadConfig(path string) (*Config, error) {
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// A missing .env is fine; production injects the environment directly.
	_ = godotenv.Overload(envPath)

	v := viper.New()

	bindValues(v, Config{}, "")

	// SERVER_PORT -> server.port
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// bindValues walks the struct and registers every mapstructure key with its
// 'default' tag value, so AutomaticEnv can resolve it.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")
		if tag == "" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		v.SetDefault(key, field.Tag.Get("default"))
	}
}
