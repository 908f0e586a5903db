package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weather-now/internal/domain/entity"
	"weather-now/internal/domain/model"
)

type fakeWeatherUseCase struct {
	state        entity.ViewState
	cities       []string
	locations    int
	clearedError bool
}

func (f *fakeWeatherUseCase) LoadByCity(_ context.Context, city string) entity.ViewState {
	f.cities = append(f.cities, city)
	f.state.Weather = &entity.CurrentWeather{Name: city, Icon: "04d"}
	f.state.Forecast = []entity.ForecastDay{{Date: "Mon Jan 15 2024", Icon: "10n"}}
	return f.state
}

func (f *fakeWeatherUseCase) LoadByLocation(context.Context) entity.ViewState {
	f.locations++
	message := "Location access denied. Please enable location permissions."
	f.state = entity.NewViewState()
	f.state.Error = &message
	return f.state
}

func (f *fakeWeatherUseCase) Refresh(context.Context) (entity.ViewState, bool) {
	return f.state, false
}

func (f *fakeWeatherUseCase) ClearError() {
	f.clearedError = true
	f.state.Error = nil
}

func (f *fakeWeatherUseCase) State() entity.ViewState {
	return f.state
}

func (f *fakeWeatherUseCase) Subscribe() (<-chan entity.ViewState, func()) {
	ch := make(chan entity.ViewState)
	return ch, func() { close(ch) }
}

func setupWeatherController(useCase *fakeWeatherUseCase) *echo.Echo {
	e := echo.New()
	api := e.Group("/weather-now")
	NewWeatherController(api, useCase, func(code string) string {
		return "https://icons.test/" + code + "@2x.png"
	}).InitWeatherRoutes()
	return e
}

func serve(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestWeatherController_GetState(t *testing.T) {
	e := setupWeatherController(&fakeWeatherUseCase{state: entity.NewViewState()})

	rec := serve(e, http.MethodGet, "/weather-now/weather", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"weather":null,"forecast":[],"loading":false,"error":null}`, rec.Body.String())
}

func TestWeatherController_LoadByCity(t *testing.T) {
	useCase := &fakeWeatherUseCase{state: entity.NewViewState()}
	e := setupWeatherController(useCase)

	rec := serve(e, http.MethodPost, "/weather-now/weather/city", `{"city":"London"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"London"}, useCase.cities)

	var response model.ViewStateDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	require.NotNil(t, response.Weather)
	assert.Equal(t, "London", response.Weather.Name)
	assert.Equal(t, "https://icons.test/04d@2x.png", response.Weather.IconURL)
	require.Len(t, response.Forecast, 1)
	assert.Equal(t, "https://icons.test/10n@2x.png", response.Forecast[0].IconURL)
}

func TestWeatherController_LoadByCityInvalidBody(t *testing.T) {
	useCase := &fakeWeatherUseCase{state: entity.NewViewState()}
	e := setupWeatherController(useCase)

	rec := serve(e, http.MethodPost, "/weather-now/weather/city", `{"city":`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Invalid request body"}`, rec.Body.String())
	assert.Empty(t, useCase.cities)
}

func TestWeatherController_LoadByLocation(t *testing.T) {
	useCase := &fakeWeatherUseCase{state: entity.NewViewState()}
	e := setupWeatherController(useCase)

	rec := serve(e, http.MethodPost, "/weather-now/weather/location", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, useCase.locations)
	assert.JSONEq(t, `{"weather":null,"forecast":[],"loading":false,"error":"Location access denied. Please enable location permissions."}`, rec.Body.String())
}

func TestWeatherController_ClearError(t *testing.T) {
	message := "boom"
	useCase := &fakeWeatherUseCase{state: entity.ViewState{Forecast: []entity.ForecastDay{}, Error: &message}}
	e := setupWeatherController(useCase)

	rec := serve(e, http.MethodDelete, "/weather-now/weather/error", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, useCase.clearedError)
	assert.JSONEq(t, `{"weather":null,"forecast":[],"loading":false,"error":null}`, rec.Body.String())
}

func TestWeatherController_RedirectIcon(t *testing.T) {
	e := setupWeatherController(&fakeWeatherUseCase{})

	rec := serve(e, http.MethodGet, "/weather-now/weather/icon/01n", "")

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "https://icons.test/01n@2x.png", rec.Header().Get(echo.HeaderLocation))
}
