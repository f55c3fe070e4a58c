package checks

import (
	"context"
	"errors"
	"testing"

	"country-atlas/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const reportKey = "reports/summary.png"

func TestCheckStorage(t *testing.T) {
	t.Run("Bucket Missing", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "atlas").Return(false, nil)

		report, err := CheckStorage(context.Background(), client, "atlas", reportKey)
		require.NoError(t, err)
		assert.False(t, report.BucketExists)
		assert.Equal(t, "missing_bucket", report.Status)
		client.AssertNotCalled(t, "ListObjects", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Report Missing", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "atlas").Return(true, nil)
		client.On("ListObjects", mock.Anything, "atlas", mock.Anything).Return(mocks.Objects())

		report, err := CheckStorage(context.Background(), client, "atlas", reportKey)
		require.NoError(t, err)
		assert.True(t, report.BucketExists)
		assert.False(t, report.ReportPresent)
		assert.Equal(t, "missing_report", report.Status)
	})

	t.Run("Report Present", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "atlas").Return(true, nil)
		client.On("ListObjects", mock.Anything, "atlas",
			mock.MatchedBy(func(o minio.ListObjectsOptions) bool { return o.Prefix == reportKey })).
			Return(mocks.Objects(minio.ObjectInfo{Key: reportKey}))

		report, err := CheckStorage(context.Background(), client, "atlas", reportKey)
		require.NoError(t, err)
		assert.True(t, report.ReportPresent)
		assert.Equal(t, "ok", report.Status)
	})

	t.Run("List Error", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "atlas").Return(true, nil)
		client.On("ListObjects", mock.Anything, "atlas", mock.Anything).
			Return(mocks.Objects(minio.ObjectInfo{Err: errors.New("denied")}))

		_, err := CheckStorage(context.Background(), client, "atlas", reportKey)
		assert.ErrorContains(t, err, "denied")
	})

	t.Run("Bucket Error", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "atlas").Return(false, errors.New("offline"))

		_, err := CheckStorage(context.Background(), client, "atlas", reportKey)
		assert.Error(t, err)
	})
}

func TestFixStorage(t *testing.T) {
	client := new(mocks.Client)
	client.On("BucketExists", mock.Anything, "atlas").Return(false, nil)
	client.On("MakeBucket", mock.Anything, "atlas", minio.MakeBucketOptions{Region: "eu-west-1"}).Return(nil)

	created, err := FixStorage(context.Background(), client, "atlas", "eu-west-1", zap.NewNop())
	require.NoError(t, err)
	assert.True(t, created)
	client.AssertExpectations(t)
}
