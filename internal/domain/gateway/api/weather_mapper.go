package api

import (
	"math"
	"time"

	"weather-now/internal/domain/entity"
	"weather-now/internal/domain/model/external"
)

const (
	maxForecastDays = 5
	dayLayout       = "Mon Jan 02 2006"
)

// ToCurrentWeather maps the provider's current weather payload to the view model
func ToCurrentWeather(data external.WeatherResponse) entity.CurrentWeather {
	condition := firstCondition(data.Weather)

	return entity.CurrentWeather{
		Name:        data.Name,
		Country:     data.Sys.Country,
		Temp:        round(data.Main.Temp),
		FeelsLike:   round(data.Main.FeelsLike),
		Description: condition.Description,
		Icon:        condition.Icon,
		Humidity:    data.Main.Humidity,
		WindSpeed:   data.Wind.Speed,
		Pressure:    data.Main.Pressure,
		Visibility:  data.Visibility / 1000,
		Sunrise:     data.Sys.Sunrise,
		Sunset:      data.Sys.Sunset,
	}
}

// ToForecastDays groups forecast entries by calendar day in loc, in the order days are first seen,
// and keeps the first five days. Each day keeps the first entry's description, icon, humidity and wind
// while min/max fold over the rounded extremes of all its entries.
func ToForecastDays(data external.ForecastResponse, loc *time.Location) []entity.ForecastDay {
	if loc == nil {
		loc = time.Local
	}

	days := make([]entity.ForecastDay, 0, maxForecastDays)
	index := make(map[string]int)

	for _, item := range data.List {
		date := time.Unix(item.Dt, 0).In(loc).Format(dayLayout)
		minTemp := round(item.Main.TempMin)
		maxTemp := round(item.Main.TempMax)

		i, seen := index[date]
		if !seen {
			condition := firstCondition(item.Weather)
			index[date] = len(days)
			days = append(days, entity.ForecastDay{
				Date:        date,
				Temp:        entity.TempRange{Min: minTemp, Max: maxTemp},
				Description: condition.Description,
				Icon:        condition.Icon,
				Humidity:    item.Main.Humidity,
				WindSpeed:   item.Wind.Speed,
			})
			continue
		}

		days[i].Temp.Min = min(days[i].Temp.Min, minTemp)
		days[i].Temp.Max = max(days[i].Temp.Max, maxTemp)
	}

	if len(days) > maxForecastDays {
		days = days[:maxForecastDays]
	}
	return days
}

// round rounds half up towards positive infinity, so -2.5 becomes -2 and 2.5 becomes 3
func round(value float64) int {
	floor := math.Floor(value)
	if value-floor >= 0.5 {
		floor++
	}
	return int(floor)
}

func firstCondition(conditions []external.WeatherCondition) external.WeatherCondition {
	if len(conditions) == 0 {
		return external.WeatherCondition{}
	}
	return conditions[0]
}
