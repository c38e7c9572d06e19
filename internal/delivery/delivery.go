// Package delivery defines the contract every inbound transport implements.
package delivery

import "context"

// Delivery is a long-running inbound server, started by the composition root.
type Delivery interface {
	// Serve blocks, accepting and handling requests until shutdown.
	Serve(ctx context.Context) error
}
