// Package server runs the HTTP server of the diary backend.
//
// It owns startup, signal handling and graceful shutdown bounded by the
// configured shutdown timeout.
package server
