package health

import (
	"context"

	"weather-now/internal/domain/gateway/geo"
	"weather-now/internal/domain/model"
	"weather-now/pkg/msg"
	"weather-now/pkg/redis"
)

// CacheHealthChecker is satisfied by *redis.HealthChecker
type CacheHealthChecker interface {
	HealthCheck(ctx context.Context) redis.RedisHealthCheck
}

type healthUseCase struct {
	applicationName string
	cacheChecker    CacheHealthChecker
	geolocator      geo.GeolocationGateway
}

// NewHealthUseCase builds the health check. cacheChecker and geolocator may be nil when those components are disabled.
func NewHealthUseCase(applicationName string, cacheChecker CacheHealthChecker, geolocator geo.GeolocationGateway) UseCase {
	return &healthUseCase{
		applicationName: applicationName,
		cacheChecker:    cacheChecker,
		geolocator:      geolocator,
	}
}

func (useCase *healthUseCase) CheckHealth(ctx context.Context) model.HealthResponse {
	cacheHealth := useCase.cacheHealth(ctx)
	geolocationHealth := useCase.geolocationHealth()

	overallStatus := model.StatusUp
	if cacheHealth.Status == model.StatusDown {
		overallStatus = model.StatusDown
	}

	return model.HealthResponse{
		Status:      overallStatus,
		Application: useCase.applicationName,
		Cache:       cacheHealth,
		Geolocation: geolocationHealth,
	}
}

func (useCase *healthUseCase) cacheHealth(ctx context.Context) model.ComponentHealthStatus {
	if useCase.cacheChecker == nil {
		return model.ComponentHealthStatus{
			Status:  model.StatusUnknown,
			Details: map[string]string{"reason": msg.GetMessage("health.redis-disabled")},
		}
	}

	result := useCase.cacheChecker.HealthCheck(ctx)
	return model.ComponentHealthStatus{
		Status:  model.HealthStatus(result.Status),
		Details: result.Details,
	}
}

func (useCase *healthUseCase) geolocationHealth() model.ComponentHealthStatus {
	if useCase.geolocator == nil {
		return model.ComponentHealthStatus{
			Status:  model.StatusUnknown,
			Details: map[string]string{"reason": msg.GetMessage("geolocation.error.unsupported")},
		}
	}

	return model.ComponentHealthStatus{
		Status:  model.StatusUp,
		Details: map[string]string{"provider": useCase.geolocator.Provider()},
	}
}
