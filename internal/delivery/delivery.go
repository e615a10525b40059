package delivery

import "context"

// Delivery is a transport the service exposes; Serve blocks until it stops.
type Delivery interface {
	Serve(ctx context.Context) error
}
