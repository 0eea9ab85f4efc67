// Package delivery holds the transports that expose the application to clients.
package delivery

import "context"

// Delivery is a long-running transport started by the application entry point.
type Delivery interface {
	Serve(ctx context.Context) error
}
