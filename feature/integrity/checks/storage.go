package checks

import (
	"context"
	"fmt"

	"country-atlas/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// StorageReport describes the state of the report bucket.
type StorageReport struct {
	Bucket        string `json:"bucket"`
	BucketExists  bool   `json:"bucket_exists"`
	ReportKey     string `json:"report_key"`
	ReportPresent bool   `json:"report_present"`
	Status        string `json:"status"` // "ok", "missing_bucket", "missing_report"
}

// CheckStorage verifies that bucket exists and whether a report was published to it.
// A missing report is not an error: it only means no refresh ran yet.
func CheckStorage(ctx context.Context, client storage.Client, bucket, reportKey string) (*StorageReport, error) {
	report := &StorageReport{Bucket: bucket, ReportKey: reportKey, Status: "ok"}

	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	report.BucketExists = exists
	if !exists {
		report.Status = "missing_bucket"
		return report, nil
	}

	opts := minio.ListObjectsOptions{Prefix: reportKey, MaxKeys: 1}
	for obj := range client.ListObjects(ctx, bucket, opts) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list report object: %w", obj.Err)
		}
		if obj.Key == reportKey {
			report.ReportPresent = true
		}
	}
	if !report.ReportPresent {
		report.Status = "missing_report"
	}

	return report, nil
}

// FixStorage creates the bucket when it is missing.
func FixStorage(ctx context.Context, client storage.Client, bucket, region string, logger *zap.Logger) (bool, error) {
	created, err := storage.EnsureBucket(ctx, client, bucket, region)
	if err != nil {
		logger.Error("Failed to create bucket", zap.String("bucket", bucket), zap.Error(err))
		return false, err
	}
	if created {
		logger.Info("Created missing bucket", zap.String("bucket", bucket))
	}
	return created, nil
}
