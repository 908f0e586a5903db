package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weather-now/internal/domain/entity"
	pkghttp "weather-now/pkg/http"
)

const londonCurrentJSON = `{
	"name": "London",
	"sys": {"country": "GB", "sunrise": 1705305600, "sunset": 1705335600},
	"main": {"temp": 7.56, "feels_like": 4.49, "temp_min": 6.1, "temp_max": 8.9, "pressure": 1012, "humidity": 81},
	"weather": [{"id": 803, "main": "Clouds", "description": "broken clouds", "icon": "04d"}],
	"wind": {"speed": 4.63, "deg": 240},
	"visibility": 10000,
	"dt": 1705320000
}`

const londonForecastJSON = `{
	"city": {"name": "London", "country": "GB", "timezone": 0},
	"list": [
		{"dt": 1705276800, "main": {"temp": 4.1, "temp_min": 3.4, "temp_max": 5.6, "humidity": 90}, "weather": [{"description": "light rain", "icon": "10n"}], "wind": {"speed": 3.1}},
		{"dt": 1705287600, "main": {"temp": 3.2, "temp_min": 2.5, "temp_max": 4.4, "humidity": 70}, "weather": [{"description": "clear sky", "icon": "01n"}], "wind": {"speed": 2.2}},
		{"dt": 1705298400, "main": {"temp": 6.0, "temp_min": 1.2, "temp_max": 7.5, "humidity": 60}, "weather": [{"description": "few clouds", "icon": "02d"}], "wind": {"speed": 5.0}},
		{"dt": 1705363200, "main": {"temp": -1.0, "temp_min": -2.5, "temp_max": -0.6, "humidity": 95}, "weather": [{"description": "snow", "icon": "13n"}], "wind": {"speed": 1.5}},
		{"dt": 1705374000, "main": {"temp": -2.0, "temp_min": -3.7, "temp_max": 0.4, "humidity": 92}, "weather": [{"description": "fog", "icon": "50n"}], "wind": {"speed": 0.5}}
	]
}`

func newTestGateway(t *testing.T, handler http.HandlerFunc) WeatherGateway {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewWeatherGateway(WeatherGatewayConfig{
		BaseURL:  server.URL + "/data/2.5",
		APIKey:   "test-key",
		Location: time.UTC,
	}, pkghttp.ClientOptions{ReadTimeout: 5 * time.Second})
}

func londonHandler(t *testing.T) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.URL.Query().Get("appid"))
		assert.Equal(t, "metric", r.URL.Query().Get("units"))
		assert.Equal(t, "London", r.URL.Query().Get("q"))

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		switch r.URL.Path {
		case "/data/2.5/weather":
			_, _ = w.Write([]byte(londonCurrentJSON))
		case "/data/2.5/forecast":
			_, _ = w.Write([]byte(londonForecastJSON))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}
}

func TestWeatherGateway_FetchCurrent(t *testing.T) {
	gateway := newTestGateway(t, londonHandler(t))

	current, err := gateway.FetchCurrent(context.Background(), entity.CityLocator("London"))

	require.NoError(t, err)
	sunrise, sunset := int64(1705305600), int64(1705335600)
	assert.Equal(t, &entity.CurrentWeather{
		Name:        "London",
		Country:     "GB",
		Temp:        8,
		FeelsLike:   4,
		Description: "broken clouds",
		Icon:        "04d",
		Humidity:    81,
		WindSpeed:   4.63,
		Pressure:    1012,
		Visibility:  10,
		Sunrise:     &sunrise,
		Sunset:      &sunset,
	}, current)
}

func TestWeatherGateway_FetchForecast(t *testing.T) {
	gateway := newTestGateway(t, londonHandler(t))

	forecast, err := gateway.FetchForecast(context.Background(), entity.CityLocator("London"))

	require.NoError(t, err)
	assert.Equal(t, []entity.ForecastDay{
		{
			Date:        "Mon Jan 15 2024",
			Temp:        entity.TempRange{Min: 1, Max: 8},
			Description: "light rain",
			Icon:        "10n",
			Humidity:    90,
			WindSpeed:   3.1,
		},
		{
			Date:        "Tue Jan 16 2024",
			Temp:        entity.TempRange{Min: -4, Max: 0},
			Description: "snow",
			Icon:        "13n",
			Humidity:    95,
			WindSpeed:   1.5,
		},
	}, forecast)
}

func TestWeatherGateway_CoordinatesQuery(t *testing.T) {
	gateway := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.URL.Query().Get("q"))
		assert.Equal(t, "51.5072", r.URL.Query().Get("lat"))
		assert.Equal(t, "-0.1276", r.URL.Query().Get("lon"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(londonCurrentJSON))
	})

	current, err := gateway.FetchCurrent(context.Background(), entity.CoordinatesLocator(51.5072, -0.1276))

	require.NoError(t, err)
	assert.Equal(t, "London", current.Name)
}

func TestWeatherGateway_Errors(t *testing.T) {
	testCases := []struct {
		name           string
		locator        entity.Locator
		forecast       bool
		status         int
		contentType    string
		body           string
		expectedStatus int
		expectedError  string
	}{
		{
			name:           "Provider message is used",
			locator:        entity.CityLocator("Nonexistent City"),
			status:         http.StatusNotFound,
			contentType:    "application/json",
			body:           `{"cod":"404","message":"city not found"}`,
			expectedStatus: http.StatusNotFound,
			expectedError:  `Failed to fetch weather data for "Nonexistent City": city not found`,
		},
		{
			name:           "City name with braces is reported verbatim",
			locator:        entity.CityLocator("Town {1}"),
			status:         http.StatusNotFound,
			contentType:    "application/json",
			body:           `{"cod":"404","message":"city not found"}`,
			expectedStatus: http.StatusNotFound,
			expectedError:  `Failed to fetch weather data for "Town {1}": city not found`,
		},
		{
			name:           "Status line when the body is not JSON",
			locator:        entity.CoordinatesLocator(10, 20),
			forecast:       true,
			status:         http.StatusInternalServerError,
			contentType:    "text/plain",
			body:           "oops",
			expectedStatus: http.StatusInternalServerError,
			expectedError:  "Failed to fetch forecast data for your location: HTTP 500: Internal Server Error",
		},
		{
			name:           "Status line when the message is empty",
			locator:        entity.CityLocator("London"),
			forecast:       true,
			status:         http.StatusUnauthorized,
			contentType:    "application/json",
			body:           `{"cod":401}`,
			expectedStatus: http.StatusUnauthorized,
			expectedError:  `Failed to fetch forecast data for "London": HTTP 401: Unauthorized`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			gateway := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", tc.contentType)
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			})

			var err error
			if tc.forecast {
				var forecast []entity.ForecastDay
				forecast, err = gateway.FetchForecast(context.Background(), tc.locator)
				assert.Nil(t, forecast)
			} else {
				var current *entity.CurrentWeather
				current, err = gateway.FetchCurrent(context.Background(), tc.locator)
				assert.Nil(t, current)
			}

			require.Error(t, err)
			assert.EqualError(t, err, tc.expectedError)

			var fetchErr *FetchError
			require.True(t, errors.As(err, &fetchErr))
			assert.Equal(t, tc.expectedStatus, fetchErr.StatusCode)

			var statusErr *pkghttp.StatusError
			assert.True(t, errors.As(err, &statusErr))
		})
	}
}

func TestWeatherGateway_TransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	baseURL := server.URL
	server.Close()

	gateway := NewWeatherGateway(WeatherGatewayConfig{BaseURL: baseURL, APIKey: "SECRET123"}, pkghttp.ClientOptions{})

	_, err := gateway.FetchCurrent(context.Background(), entity.CityLocator("London"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), `Failed to fetch weather data for "London": `)
	assert.NotContains(t, err.Error(), "SECRET123")
	assert.NotNil(t, errors.Unwrap(err))
}

func TestWeatherGateway_IconURL(t *testing.T) {
	gateway := NewWeatherGateway(WeatherGatewayConfig{BaseURL: "http://localhost"}, pkghttp.ClientOptions{})
	assert.Equal(t, "https://openweathermap.org/img/wn/04d@2x.png", gateway.IconURL("04d"))

	custom := NewWeatherGateway(WeatherGatewayConfig{BaseURL: "http://localhost", IconBaseURL: "http://cdn.local/icons/"}, pkghttp.ClientOptions{})
	assert.Equal(t, "http://cdn.local/icons/10n@2x.png", custom.IconURL("10n"))
}
