// Package server holds the HTTP server configuration.
//
// The `serve` command reads the listen port and the API key from here; an empty API
// key leaves the API unauthenticated, which is only meant for local use.
package server
