package cache

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"country-atlas/core/apperror"
	"country-atlas/core/storage"

	"github.com/minio/minio-go/v7"
)

const (
	BackendStorage = "storage"
	BackendFile    = "file"

	contentType = "image/png"
)

// Cache keeps the single most recent report.
type Cache interface {
	// Store overwrites the cached report.
	Store(ctx context.Context, data []byte) error
	// Load returns the cached report or apperror.ErrNotFound.
	Load(ctx context.Context) ([]byte, error)
}

// StorageCache keeps the report as one object in the bucket.
type StorageCache struct {
	client storage.Client
	bucket string
	key    string
}

// NewStorageCache creates a cache storing under bucket/key.
func NewStorageCache(client storage.Client, bucket, key string) *StorageCache {
	return &StorageCache{client: client, bucket: bucket, key: key}
}

// Store implements Cache.
func (c *StorageCache) Store(ctx context.Context, data []byte) error {
	_, err := c.client.PutObject(ctx, c.bucket, c.key, bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return fmt.Errorf("failed to upload report %s: %w", c.key, err)
	}
	return nil
}

// Load implements Cache.
func (c *StorageCache) Load(ctx context.Context) ([]byte, error) {
	obj, err := c.client.GetObject(ctx, c.bucket, c.key, minio.GetObjectOptions{})
	if err != nil {
		return nil, c.loadError(err)
	}
	defer obj.Close()

	// minio reports a missing key on the first read.
	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, c.loadError(err)
	}
	if len(data) == 0 {
		return nil, apperror.NotFoundf("report %s is empty", c.key)
	}
	return data, nil
}

func (c *StorageCache) loadError(err error) error {
	if storage.IsNotFound(err) {
		return apperror.NotFoundf("report %s", c.key)
	}
	return fmt.Errorf("failed to download report %s: %w", c.key, err)
}

// FileCache keeps the report in a local file.
type FileCache struct {
	path string
}

// NewFileCache creates a cache writing to path.
func NewFileCache(path string) *FileCache {
	return &FileCache{path: path}
}

// Store implements Cache. Readers see either the old or the new file, never a partial one.
func (c *FileCache) Store(_ context.Context, data []byte) error {
	dir := filepath.Dir(c.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create report directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".report-*.png")
	if err != nil {
		return fmt.Errorf("failed to create temp report: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write temp report: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp report: %w", err)
	}
	if err := os.Rename(tmp.Name(), c.path); err != nil {
		return fmt.Errorf("failed to replace report: %w", err)
	}
	return nil
}

// Load implements Cache.
func (c *FileCache) Load(_ context.Context) ([]byte, error) {
	data, err := os.ReadFile(c.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, apperror.NotFoundf("report %s", c.path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read report: %w", err)
	}
	return data, nil
}
