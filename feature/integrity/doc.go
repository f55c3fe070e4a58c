// Package integrity validates the infrastructure the atlas depends on.
//
// # Checks Provided
//
//   - Storage: the report bucket exists and whether a summary image has been published to it.
//   - Schema: the connected database has every column declared by the country models, with compatible types.
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs all checks. Responds 503 when any check fails.
//   - GET /integrity/storage : Runs the storage check (supports ?fix=true).
//   - GET /integrity/schema : Runs the schema check.
package integrity
