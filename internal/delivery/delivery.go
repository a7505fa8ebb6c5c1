// Package delivery defines the contract every transport implementation
// satisfies so the application can start them uniformly.
package delivery

import "context"

// Delivery is a running transport (HTTP server, worker, ...).
type Delivery interface {
	// Serve blocks until the transport stops or fails.
	Serve(ctx context.Context) error
}
