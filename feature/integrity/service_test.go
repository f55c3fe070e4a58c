package integrity

import (
	"context"
	"errors"
	"testing"

	"country-atlas/core/database"
	"country-atlas/core/storage/mocks"
	"country-atlas/feature/countries/models"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const (
	testBucket = "atlas"
	testKey    = "reports/summary.png"
)

func migratedDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(models.All()...))
	return db
}

func TestRun(t *testing.T) {
	t.Run("Healthy", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, testBucket).Return(true, nil)
		client.On("ListObjects", mock.Anything, testBucket, mock.Anything).
			Return(mocks.Objects(minio.ObjectInfo{Key: testKey}))

		svc := NewService(client, testBucket, "", testKey, migratedDB(t), nil)
		report := svc.Run(context.Background())

		assert.True(t, report.Healthy)
		assert.Nil(t, report.Errors)
		assert.True(t, report.Storage.ReportPresent)
		assert.True(t, report.Schema.Matched)
	})

	t.Run("Without Storage", func(t *testing.T) {
		svc := NewService(nil, "", "", "", migratedDB(t), nil)
		report := svc.Run(context.Background())

		assert.True(t, report.Healthy)
		assert.Nil(t, report.Storage)
	})

	t.Run("Unmigrated Database", func(t *testing.T) {
		db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
		require.NoError(t, err)

		svc := NewService(nil, "", "", "", db, nil)
		report := svc.Run(context.Background())

		assert.False(t, report.Healthy)
		assert.Contains(t, report.Schema.Tables["countries"].MissingColumns, "name")
	})

	t.Run("Storage Error", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, testBucket).Return(false, errors.New("offline"))

		svc := NewService(client, testBucket, "", testKey, migratedDB(t), nil)
		report := svc.Run(context.Background())

		assert.False(t, report.Healthy)
		assert.Contains(t, report.Errors["storage"], "offline")
	})
}
