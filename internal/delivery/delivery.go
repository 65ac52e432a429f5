// Package delivery defines the transports the application can be served over.
package delivery

import "context"

// Delivery is a long-running transport started by the entrypoint.
type Delivery interface {
	Serve(ctx context.Context) error
}
