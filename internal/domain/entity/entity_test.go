package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocator(t *testing.T) {
	city := CityLocator("São Paulo")
	assert.False(t, city.IsCoordinates())
	assert.Equal(t, map[string]string{"q": "São Paulo"}, city.QueryParams())
	assert.Equal(t, "São Paulo", city.String())

	coordinates := CoordinatesLocator(-23.5505, -46.6333)
	assert.True(t, coordinates.IsCoordinates())
	assert.Equal(t, map[string]string{"lat": "-23.5505", "lon": "-46.6333"}, coordinates.QueryParams())
	assert.Equal(t, "-23.5505,-46.6333", coordinates.String())
}

func TestViewState_Clone(t *testing.T) {
	sunrise := int64(100)
	message := "boom"
	state := ViewState{
		Weather:  &CurrentWeather{Name: "Oslo", Sunrise: &sunrise},
		Forecast: []ForecastDay{{Date: "Mon Jan 15 2024"}},
		Loading:  true,
		Error:    &message,
	}

	clone := state.Clone()
	clone.Weather.Name = "Bergen"
	*clone.Weather.Sunrise = 200
	clone.Forecast[0].Date = "changed"
	*clone.Error = "changed"

	assert.Equal(t, "Oslo", state.Weather.Name)
	assert.Equal(t, int64(100), *state.Weather.Sunrise)
	assert.Equal(t, "Mon Jan 15 2024", state.Forecast[0].Date)
	assert.Equal(t, "boom", *state.Error)
	assert.True(t, clone.Loading)
}

func TestNewViewState(t *testing.T) {
	state := NewViewState()

	assert.Nil(t, state.Weather)
	assert.NotNil(t, state.Forecast)
	assert.Empty(t, state.Forecast)
	assert.False(t, state.Loading)
	assert.Nil(t, state.Error)
}

func TestPositionError(t *testing.T) {
	assert.EqualError(t, NewPositionError(PositionTimeout, "too slow"), "geolocation error (code 3): too slow")
	assert.EqualError(t, NewPositionError(PositionPermissionDenied, ""), "geolocation error (code 1)")
}
