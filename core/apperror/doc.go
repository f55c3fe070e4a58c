// Package apperror defines the error taxonomy shared by the ingestion pipeline
// and the read operations.
//
// Kinds are sentinel errors matched with errors.Is:
//   - ErrSourceUnavailable: the country source timed out.
//   - ErrSourceError: the country source answered with an error or a malformed payload.
//   - ErrNotFound: a country or the rendered report does not exist.
//   - ErrInternal: persistence or rendering failed unexpectedly.
//
// HTTPStatus translates a kind into the status code used by the Fiber handlers.
package apperror
