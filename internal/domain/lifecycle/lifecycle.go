// Package lifecycle holds shared timeouts for process start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds store pings on startup and graceful shutdown on stop.
const DefaultTimeout = 10 * time.Second
