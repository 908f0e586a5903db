package entity

import (
	"fmt"
	"strconv"
)

// Coordinates is a latitude/longitude pair in decimal degrees
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Locator identifies the place a weather query is made for: either a city name or coordinates.
type Locator struct {
	City        string       `json:"city,omitempty"`
	Coordinates *Coordinates `json:"coordinates,omitempty"`
}

func CityLocator(city string) Locator {
	return Locator{City: city}
}

func CoordinatesLocator(latitude, longitude float64) Locator {
	return Locator{Coordinates: &Coordinates{Latitude: latitude, Longitude: longitude}}
}

// IsCoordinates reports whether the locator carries a coordinate pair
func (l Locator) IsCoordinates() bool {
	return l.Coordinates != nil
}

// QueryParams returns the provider query parameters that select the location
func (l Locator) QueryParams() map[string]string {
	if l.IsCoordinates() {
		return map[string]string{
			"lat": strconv.FormatFloat(l.Coordinates.Latitude, 'f', -1, 64),
			"lon": strconv.FormatFloat(l.Coordinates.Longitude, 'f', -1, 64),
		}
	}
	return map[string]string{"q": l.City}
}

func (l Locator) String() string {
	if l.IsCoordinates() {
		return fmt.Sprintf("%g,%g", l.Coordinates.Latitude, l.Coordinates.Longitude)
	}
	return l.City
}
