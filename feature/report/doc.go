// Package report publishes and serves the country summary image.
//
// Service.Publish is called once at the end of each ingestion run: it renders
// the current store state through render.Renderer and overwrites the cached
// PNG. Publishes are serialized so only one writer touches the cache.
//
//	GET /countries/image    cached PNG, 404 before the first run
//	GET /countries/summary  the same data as JSON
package report
