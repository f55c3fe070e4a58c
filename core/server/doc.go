// Package server holds the HTTP server configuration.
//
// The main application entry point (cmd/start.go) handles the Fiber startup; this package
// only defines the settings it reads: the listen port, the optional API key and the
// graceful shutdown bound.
//
// # Usage
//
// This package is embedded by core/config and consumed by the start command.
package server
