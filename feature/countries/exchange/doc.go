// Package exchange resolves currency codes to exchange rates.
//
// Rates are quoted against a fixed base currency and fetched from an
// open.er-api.com compatible endpoint. Resolution is best effort: timeouts,
// transport errors, bad payloads and unknown codes all return nil and are
// logged, so a missing rate never aborts ingestion.
//
// Identical lookups in flight at the same time are collapsed through a
// singleflight.Group. Nothing is cached between calls.
package exchange
