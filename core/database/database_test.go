package database

import (
	"testing"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnect(t *testing.T) {
	t.Run("Invalid Connection", func(t *testing.T) {
		cfg := Config{
			Driver:         DriverMySQL,
			Host:           "localhost",
			Port:           9999, // Unused port
			User:           "root",
			Password:       "wrongpassword",
			Name:           "countries",
			TimeoutSeconds: 1,
		}

		db, err := Connect(cfg)
		assert.Error(t, err)
		assert.Nil(t, db)
	})

	t.Run("Unsupported Driver", func(t *testing.T) {
		db, err := Connect(Config{Driver: "oracle"})
		assert.Error(t, err)
		assert.Nil(t, db)
		assert.Contains(t, err.Error(), "unsupported database driver")
	})

	t.Run("SQLite Memory", func(t *testing.T) {
		db, err := Connect(Config{Driver: DriverSQLite, Name: ":memory:"})
		assert.NoError(t, err)
		assert.NotNil(t, db)
	})
}

func TestMySQLDSN(t *testing.T) {
	dsn := mysqlDSN(Config{
		Host:     "db.internal",
		Port:     3307,
		User:     "atlas",
		Password: "secret",
		Name:     "countries",
	}, 5)

	parsed, err := mysql.ParseDSN(dsn)
	require.NoError(t, err)
	assert.True(t, parsed.ClientFoundRows, "updates must report matched rows")
	assert.True(t, parsed.ParseTime)
	assert.Equal(t, "db.internal:3307", parsed.Addr)
	assert.Equal(t, "atlas", parsed.User)
	assert.Equal(t, "secret", parsed.Passwd)
	assert.Equal(t, "countries", parsed.DBName)
	assert.Equal(t, 5*time.Second, parsed.Timeout)
	assert.Equal(t, time.UTC, parsed.Loc)
}
