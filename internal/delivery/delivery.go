// Package delivery holds the transports that expose trustscore to the outside world.
package delivery

import "context"

// Delivery is a long-running transport started by the fx application.
type Delivery interface {
	// Serve blocks until the transport stops or fails to start.
	Serve(ctx context.Context) error
}
