package provider

import (
	"fmt"
	"strings"
	"time"

	"weather-now/internal/domain/gateway/api"
	"weather-now/pkg/resource"
)

// NewWeatherGateway builds the OpenWeatherMap gateway from app.weather.*
func NewWeatherGateway() (api.WeatherGateway, error) {
	location, err := Location(resource.GetString("app.weather.timezone"))
	if err != nil {
		return nil, err
	}

	return api.NewWeatherGateway(api.WeatherGatewayConfig{
		BaseURL:     resource.GetString("app.weather.base-url"),
		APIKey:      resource.GetString("app.weather.api-key"),
		Units:       resource.GetString("app.weather.units"),
		IconBaseURL: resource.GetString("app.weather.icon-base-url"),
		Location:    location,
	}, HTTPClientOptions("openweathermap")), nil
}

// Location resolves the time zone forecast days are grouped in. Empty and "Local" mean the host zone.
func Location(name string) (*time.Location, error) {
	name = strings.TrimSpace(name)
	if name == "" || strings.EqualFold(name, "local") {
		return time.Local, nil
	}

	location, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("invalid weather timezone %q: %w", name, err)
	}
	return location, nil
}
