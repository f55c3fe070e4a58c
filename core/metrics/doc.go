// Package metrics exposes Prometheus counters for the ingestion pipeline.
//
// Collectors live on a registry owned by the Pipeline so tests and multiple
// instances never collide on the global registerer. Every method tolerates a
// nil receiver, letting callers skip metrics entirely.
package metrics
