package geo

import (
	"context"
	"strings"
	"time"

	"weather-now/internal/domain/entity"
)

const (
	PermissionGranted = "granted"
	PermissionDenied  = "denied"
)

// StaticConfig describes a fixed position, typically for a server with a known location
type StaticConfig struct {
	Permission string
	Latitude   float64
	Longitude  float64
	Accuracy   float64
}

type staticProvider struct {
	config StaticConfig
	now    func() time.Time
}

// NewStaticProvider returns a provider that always reports the configured coordinates,
// or a permission denied error when the permission is "denied"
func NewStaticProvider(config StaticConfig) PositionProvider {
	return &staticProvider{config: config, now: time.Now}
}

func (p *staticProvider) Locate(ctx context.Context, _ bool) (entity.Position, error) {
	if err := ctx.Err(); err != nil {
		return entity.Position{}, err
	}
	if strings.EqualFold(strings.TrimSpace(p.config.Permission), PermissionDenied) {
		return entity.Position{}, entity.NewPositionError(entity.PositionPermissionDenied, "permission denied by configuration")
	}

	return entity.Position{
		Coordinates: entity.Coordinates{Latitude: p.config.Latitude, Longitude: p.config.Longitude},
		Accuracy:    p.config.Accuracy,
		Timestamp:   p.now(),
	}, nil
}
