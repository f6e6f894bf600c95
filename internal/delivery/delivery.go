// Package delivery defines the contract shared by every transport surface.
package delivery

import "context"

// Delivery is a long-running server owned by the fx application.
// Serve blocks until the server stops or fails.
type Delivery interface {
	Serve(ctx context.Context) error
}
