// Package delivery defines the contract every transport entrypoint fulfills.
package delivery

import "context"

// Delivery is a long-running transport (HTTP server) managed by the
// application lifecycle. Serve blocks until the transport stops.
type Delivery interface {
	Serve(ctx context.Context) error
}
