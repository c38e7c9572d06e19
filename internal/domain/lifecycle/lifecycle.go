// Package lifecycle holds shared constants for application start and stop.
package lifecycle

import "time"

// DefaultTimeout bounds startup probes and graceful shutdown of long-lived
// components such as the HTTP server and database pools.
const DefaultTimeout = 10 * time.Second
