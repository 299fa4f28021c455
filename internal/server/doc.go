// Package server runs the tracker API over HTTP.
//
// It owns the listener lifecycle: startup, the configured read and write
// timeouts, and a bounded graceful shutdown once the run context is
// cancelled (typically by SIGINT or SIGTERM in cmd/server).
package server
