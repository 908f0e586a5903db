package api

import (
	"context"

	"weather-now/internal/domain/entity"
)

// WeatherGateway defines the interface for the weather provider calls
type WeatherGateway interface {
	// FetchCurrent gets the current weather for a city or a coordinate pair
	FetchCurrent(ctx context.Context, locator entity.Locator) (*entity.CurrentWeather, error)

	// FetchForecast gets up to five daily summaries built from the 3-hour forecast
	FetchForecast(ctx context.Context, locator entity.Locator) ([]entity.ForecastDay, error)

	// IconURL maps a provider icon code to the URL of its image
	IconURL(code string) string
}
