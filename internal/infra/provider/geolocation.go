package provider

import (
	"fmt"
	"strings"

	"weather-now/internal/domain/gateway/geo"
	"weather-now/pkg/redis"
	"weather-now/pkg/resource"
)

const (
	ProviderIP     = "ip"
	ProviderStatic = "static"
	ProviderNone   = "none"
)

// NewGeolocationGateway builds the gateway selected by app.geolocation.provider.
// It returns nil for "none"; positions are cached in Redis when redisClient is set, in memory otherwise.
func NewGeolocationGateway(redisClient *redis.Client) (geo.GeolocationGateway, error) {
	name := strings.ToLower(strings.TrimSpace(resource.GetString("app.geolocation.provider")))

	var positionProvider geo.PositionProvider
	switch name {
	case ProviderNone, "":
		return nil, nil
	case ProviderIP:
		positionProvider = geo.NewIPProvider(resource.GetString("app.geolocation.ip.base-url"), HTTPClientOptions("ip-api"))
	case ProviderStatic:
		positionProvider = geo.NewStaticProvider(geo.StaticConfig{
			Permission: resource.GetString("app.geolocation.static.permission"),
			Latitude:   resource.GetFloat64("app.geolocation.static.latitude"),
			Longitude:  resource.GetFloat64("app.geolocation.static.longitude"),
			Accuracy:   resource.GetFloat64("app.geolocation.static.accuracy"),
		})
	default:
		return nil, fmt.Errorf("unknown geolocation provider %q", name)
	}

	var cache geo.PositionCache
	if redisClient != nil {
		cache = geo.NewRedisPositionCache(redisClient, resource.GetDuration("app.geolocation.cache-ttl"))
	} else {
		cache = geo.NewMemoryPositionCache()
	}

	return geo.NewGeolocationGateway(name, positionProvider, cache), nil
}
