package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"weather-now/internal/domain/model"
	"weather-now/internal/domain/usecase/weather"
)

type WeatherController struct {
	api     *echo.Group
	useCase weather.UseCase
	iconURL func(code string) string
}

func NewWeatherController(api *echo.Group, useCase weather.UseCase, iconURL func(code string) string) *WeatherController {
	return &WeatherController{api: api, useCase: useCase, iconURL: iconURL}
}

// InitWeatherRoutes initializes weather routes
func (controller *WeatherController) InitWeatherRoutes() {
	controller.api.GET("/weather", controller.GetState)
	controller.api.POST("/weather/city", controller.LoadByCity)
	controller.api.POST("/weather/location", controller.LoadByLocation)
	controller.api.DELETE("/weather/error", controller.ClearError)
	controller.api.GET("/weather/icon/:code", controller.RedirectIcon)
}

// GetState godoc
// @Summary Get the weather view state
// @Description Returns the current weather, the forecast, the loading flag and the error message
// @Tags weather
// @Produce json
// @Success 200 {object} model.ViewStateDTO "Current view state"
// @Router /weather [get]
func (controller *WeatherController) GetState(c echo.Context) error {
	return c.JSON(http.StatusOK, model.NewViewStateDTO(controller.useCase.State(), controller.iconURL))
}

// LoadByCity godoc
// @Summary Load weather for a city
// @Description Fetches current weather and forecast for the city. Failures are reported in the error field of the state.
// @Tags weather
// @Accept json
// @Produce json
// @Param request body model.LoadByCityDTO true "City to load"
// @Success 200 {object} model.ViewStateDTO "Settled view state"
// @Failure 400 {object} map[string]string "Invalid request body"
// @Router /weather/city [post]
func (controller *WeatherController) LoadByCity(c echo.Context) error {
	var dto model.LoadByCityDTO
	if err := c.Bind(&dto); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	state := controller.useCase.LoadByCity(c.Request().Context(), dto.City)
	return c.JSON(http.StatusOK, model.NewViewStateDTO(state, controller.iconURL))
}

// LoadByLocation godoc
// @Summary Load weather for the current position
// @Description Resolves the position with the configured geolocation provider and loads its weather
// @Tags weather
// @Produce json
// @Success 200 {object} model.ViewStateDTO "Settled view state"
// @Router /weather/location [post]
func (controller *WeatherController) LoadByLocation(c echo.Context) error {
	state := controller.useCase.LoadByLocation(c.Request().Context())
	return c.JSON(http.StatusOK, model.NewViewStateDTO(state, controller.iconURL))
}

// ClearError godoc
// @Summary Clear the error message
// @Tags weather
// @Produce json
// @Success 200 {object} model.ViewStateDTO "View state without error"
// @Router /weather/error [delete]
func (controller *WeatherController) ClearError(c echo.Context) error {
	controller.useCase.ClearError()
	return c.JSON(http.StatusOK, model.NewViewStateDTO(controller.useCase.State(), controller.iconURL))
}

// RedirectIcon godoc
// @Summary Redirect to a weather icon
// @Tags weather
// @Param code path string true "Icon code" example(04d)
// @Success 302 "Redirect to the icon image"
// @Router /weather/icon/{code} [get]
func (controller *WeatherController) RedirectIcon(c echo.Context) error {
	return c.Redirect(http.StatusFound, controller.iconURL(c.Param("code")))
}
