package geo

import (
	"context"

	"weather-now/internal/domain/entity"
)

// GeolocationGateway acquires the current position of the client
type GeolocationGateway interface {
	// CurrentPosition returns a position fix honouring the timeout and maximum age in opts.
	// Failures are reported as *entity.PositionError.
	CurrentPosition(ctx context.Context, opts entity.PositionOptions) (entity.Position, error)

	// Provider returns the name of the underlying position source
	Provider() string
}

// PositionProvider is a raw source of position fixes
type PositionProvider interface {
	Locate(ctx context.Context, highAccuracy bool) (entity.Position, error)
}

// PositionCache keeps the last acquired position
type PositionCache interface {
	Load(ctx context.Context) (entity.Position, bool, error)
	Store(ctx context.Context, position entity.Position) error
}
