// Package delivery defines the long-running entry points started by the cmd binaries.
package delivery

import "context"

// Delivery is anything fx starts after the graph is built: HTTP servers and the queue daemon.
type Delivery interface {
	Serve(ctx context.Context) error
}
