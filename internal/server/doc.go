// Package server runs the diary HTTP API.
//
// It owns the listener lifecycle: startup, signal handling and graceful
// shutdown that lets in-flight requests finish before the process exits.
package server
