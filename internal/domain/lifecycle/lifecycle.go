// Package lifecycle holds shared timeouts for component start/stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds graceful startup and shutdown of infrastructure
// components (database pings, HTTP server drain).
const DefaultTimeout = 10 * time.Second
