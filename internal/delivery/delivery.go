// Package delivery defines the contract every transport server implements.
package delivery

import "context"

// Delivery is a long-running request server wired into the fx lifecycle.
type Delivery interface {
	// Serve blocks, accepting requests until shutdown.
	Serve(ctx context.Context) error
}
