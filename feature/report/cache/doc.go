// Package cache stores the latest rendered report under one fixed location.
//
// StorageCache writes a single object to the configured bucket; FileCache
// writes a local file through a temp file and rename. Both overwrite on every
// Store and return apperror.ErrNotFound from Load until something was stored.
package cache
