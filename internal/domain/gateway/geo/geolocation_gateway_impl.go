package geo

import (
	"context"
	"errors"
	"time"

	"weather-now/internal/domain/entity"
	"weather-now/pkg/log"
	"weather-now/pkg/msg"
)

type locateResult struct {
	position entity.Position
	err      error
}

type geolocationGatewayImpl struct {
	name     string
	provider PositionProvider
	cache    PositionCache
	now      func() time.Time
}

// NewGeolocationGateway wraps a provider with timeout handling and an optional cache used for maximum age lookups
func NewGeolocationGateway(name string, provider PositionProvider, cache PositionCache) GeolocationGateway {
	return &geolocationGatewayImpl{
		name:     name,
		provider: provider,
		cache:    cache,
		now:      time.Now,
	}
}

func (g *geolocationGatewayImpl) Provider() string {
	return g.name
}

// CurrentPosition returns a cached fix younger than opts.MaximumAge or asks the provider for a new one within opts.Timeout
func (g *geolocationGatewayImpl) CurrentPosition(ctx context.Context, opts entity.PositionOptions) (entity.Position, error) {
	if position, ok := g.cachedPosition(ctx, opts.MaximumAge); ok {
		return position, nil
	}

	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	results := make(chan locateResult, 1)
	go func() {
		position, err := g.provider.Locate(ctx, opts.HighAccuracy)
		results <- locateResult{position: position, err: err}
	}()

	var result locateResult
	select {
	case result = <-results:
	case <-ctx.Done():
		result = locateResult{err: ctx.Err()}
	}

	if result.err != nil {
		return entity.Position{}, toPositionError(result.err)
	}

	if result.position.Timestamp.IsZero() {
		result.position.Timestamp = g.now()
	}
	if g.cache != nil {
		if err := g.cache.Store(ctx, result.position); err != nil {
			log.Warn(msg.GetMessage("geolocation.cache.store-failed", err))
		}
	}
	return result.position, nil
}

func (g *geolocationGatewayImpl) cachedPosition(ctx context.Context, maximumAge time.Duration) (entity.Position, bool) {
	if g.cache == nil || maximumAge <= 0 {
		return entity.Position{}, false
	}

	position, found, err := g.cache.Load(ctx)
	if err != nil {
		log.Warn(msg.GetMessage("geolocation.cache.read-failed", err))
		return entity.Position{}, false
	}
	if !found {
		return entity.Position{}, false
	}

	age := g.now().Sub(position.Timestamp)
	if age > maximumAge {
		return entity.Position{}, false
	}

	log.Debug(msg.GetMessage("geolocation.cache.hit",
		position.Coordinates.Latitude, position.Coordinates.Longitude, age.Round(time.Second)))
	return position, true
}

// toPositionError maps provider failures to W3C style position errors
func toPositionError(err error) *entity.PositionError {
	var positionErr *entity.PositionError
	if errors.As(err, &positionErr) {
		return positionErr
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return entity.NewPositionError(entity.PositionTimeout, err.Error())
	}
	if errors.Is(err, context.Canceled) {
		return entity.NewPositionError(entity.PositionUnknownError, err.Error())
	}
	return entity.NewPositionError(entity.PositionUnavailable, err.Error())
}
