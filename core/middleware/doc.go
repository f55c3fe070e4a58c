// Package middleware groups the HTTP middleware of the Fiber application.
//
//   - rayid tags each request with an id, stored in locals and echoed in the
//     X-Ray-ID response header.
//   - auth enforces a static API key when one is configured.
package middleware
