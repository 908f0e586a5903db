package model

import "weather-now/internal/domain/entity"

type LoadByCityDTO struct {
	City string `json:"city" example:"London"`
}

// CurrentWeatherDTO is the current weather as served to presentation clients, with the icon resolved to a URL
type CurrentWeatherDTO struct {
	entity.CurrentWeather
	IconURL string `json:"iconUrl"`
}

type ForecastDayDTO struct {
	entity.ForecastDay
	IconURL string `json:"iconUrl"`
}

// ViewStateDTO is the JSON shape of entity.ViewState
type ViewStateDTO struct {
	Weather  *CurrentWeatherDTO `json:"weather"`
	Forecast []ForecastDayDTO   `json:"forecast"`
	Loading  bool               `json:"loading"`
	Error    *string            `json:"error"`
}

// NewViewStateDTO maps a view state, resolving icon codes with iconURL
func NewViewStateDTO(state entity.ViewState, iconURL func(string) string) ViewStateDTO {
	dto := ViewStateDTO{
		Forecast: make([]ForecastDayDTO, 0, len(state.Forecast)),
		Loading:  state.Loading,
		Error:    state.Error,
	}

	if state.Weather != nil {
		dto.Weather = &CurrentWeatherDTO{
			CurrentWeather: *state.Weather,
			IconURL:        iconURL(state.Weather.Icon),
		}
	}

	for _, day := range state.Forecast {
		dto.Forecast = append(dto.Forecast, ForecastDayDTO{
			ForecastDay: day,
			IconURL:     iconURL(day.Icon),
		})
	}

	return dto
}
