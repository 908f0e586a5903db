package api

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"weather-now/internal/domain/entity"
	"weather-now/internal/domain/model/external"
	"weather-now/pkg/http"
	"weather-now/pkg/metrics"
	"weather-now/pkg/msg"
)

const (
	currentPath  = "/weather"
	forecastPath = "/forecast"
)

// WeatherGatewayConfig holds the provider settings injected into the gateway
type WeatherGatewayConfig struct {
	BaseURL     string
	APIKey      string
	Units       string
	IconBaseURL string
	// Location is the time zone forecast entries are grouped into calendar days in
	Location *time.Location
}

// FetchError is returned by the gateway when a provider call fails.
// Error returns the user facing message; the underlying cause is available through errors.Unwrap.
type FetchError struct {
	Message    string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	return e.Message
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// weatherGatewayImpl implements the WeatherGateway interface
type weatherGatewayImpl struct {
	httpClient  *http.Client
	iconBaseURL string
	location    *time.Location
}

// NewWeatherGateway creates a new instance of WeatherGateway with HTTP client
func NewWeatherGateway(config WeatherGatewayConfig, clientOptions http.ClientOptions) WeatherGateway {
	if config.Units == "" {
		config.Units = "metric"
	}
	if config.IconBaseURL == "" {
		config.IconBaseURL = "https://openweathermap.org/img/wn"
	}
	if config.Location == nil {
		config.Location = time.Local
	}

	clientOptions.DefaultQueryParams = map[string]string{
		"appid": config.APIKey,
		"units": config.Units,
	}

	return &weatherGatewayImpl{
		httpClient:  http.NewHttpClient(config.BaseURL, clientOptions),
		iconBaseURL: strings.TrimRight(config.IconBaseURL, "/"),
		location:    config.Location,
	}
}

// FetchCurrent gets the current weather for a city or a coordinate pair
func (w *weatherGatewayImpl) FetchCurrent(ctx context.Context, locator entity.Locator) (*entity.CurrentWeather, error) {
	response := &external.WeatherResponse{}
	if err := w.get(ctx, currentPath, locator, response, "weather.error.fetch-current"); err != nil {
		return nil, err
	}

	current := ToCurrentWeather(*response)
	return &current, nil
}

// FetchForecast gets up to five daily summaries built from the 3-hour forecast
func (w *weatherGatewayImpl) FetchForecast(ctx context.Context, locator entity.Locator) ([]entity.ForecastDay, error) {
	response := &external.ForecastResponse{}
	if err := w.get(ctx, forecastPath, locator, response, "weather.error.fetch-forecast"); err != nil {
		return nil, err
	}

	return ToForecastDays(*response, w.location), nil
}

// IconURL maps a provider icon code to the URL of its image
func (w *weatherGatewayImpl) IconURL(code string) string {
	return fmt.Sprintf("%s/%s@2x.png", w.iconBaseURL, code)
}

// get performs the provider call and turns every failure into a FetchError carrying the message key's text
func (w *weatherGatewayImpl) get(ctx context.Context, path string, locator entity.Locator, successResp any, messageKey string) error {
	_, errResp, status, err := w.httpClient.Request().
		WithContext(ctx).
		WithMethod(http.GET).
		WithPath(path).
		WithQueryParams(locator.QueryParams()).
		WithHeaders(map[string]string{"Accept": "application/json"}).
		WithSuccessResp(successResp).
		WithErrorResp(&external.APIErrorResponse{}).
		Execute()

	if err == nil {
		metrics.ObserveUpstream(path, metrics.OutcomeSuccess)
		return nil
	}
	metrics.ObserveUpstream(path, metrics.OutcomeFailure)

	return &FetchError{
		Message:    msg.GetMessage(messageKey, describeLocator(locator), failureReason(errResp, err)),
		StatusCode: status,
		Err:        err,
	}
}

// failureReason prefers the provider's message, then the status line, then the transport error
func failureReason(errResp any, err error) string {
	if apiErr, ok := errResp.(*external.APIErrorResponse); ok && apiErr.Message != "" {
		return apiErr.Message
	}

	var statusErr *http.StatusError
	if errors.As(err, &statusErr) {
		return msg.GetMessage("weather.error.http-status", statusErr.StatusCode, statusErr.Status)
	}

	return err.Error()
}

func describeLocator(locator entity.Locator) string {
	if locator.IsCoordinates() {
		return msg.GetMessage("weather.location.current")
	}
	return msg.GetMessage("weather.location.city", locator.City)
}
