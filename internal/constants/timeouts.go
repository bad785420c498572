// Package constants defines timeout values used throughout the application.
package constants

import "time"

// Timeout constants for various operations
const (
	// Client timeout for a single TMDB request
	DefaultRequestTimeout = 30 * time.Second

	// Bolt file lock wait on open
	DatabaseOpenTimeout = 1 * time.Second

	// Grace period for in-flight requests on shutdown
	ShutdownTimeout = 10 * time.Second
)
