package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "mysql", cfg.Database.Driver)
	assert.Equal(t, 10, cfg.Source.TimeoutSeconds)
	assert.Equal(t, 5, cfg.Exchange.TimeoutSeconds)
	assert.Equal(t, "USD", cfg.Exchange.BaseCurrency)
	assert.Equal(t, 10, cfg.Pipeline.BatchSize)
	assert.Equal(t, "storage", cfg.Report.Backend)
	assert.Equal(t, "reports/summary.png", cfg.Report.ObjectKey)
	assert.Equal(t, "", cfg.Lock.RedisAddr)
	assert.True(t, cfg.Metrics.Enabled)
}

func TestLoadConfig_Environment(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("PIPELINE_BATCH_SIZE", "25")
	t.Setenv("REPORT_BACKEND", "file")
	t.Setenv("METRICS_ENABLED", "false")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 25, cfg.Pipeline.BatchSize)
	assert.Equal(t, "file", cfg.Report.Backend)
	assert.False(t, cfg.Metrics.Enabled)
}

func TestLoadConfig_DotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("DATABASE_DRIVER=sqlite\nLOCK_TTL_SECONDS=60\n"), 0o600))
	t.Cleanup(func() {
		os.Unsetenv("DATABASE_DRIVER")
		os.Unsetenv("LOCK_TTL_SECONDS")
	})

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, 60, cfg.Lock.TTLSeconds)
}
