package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"weather-now/internal/domain/entity"
)

var title = cases.Title(language.English)

func displayCurrentWeather(w io.Writer, current *entity.CurrentWeather, loc *time.Location) {
	header := fmt.Sprintf("Weather Summary for %s, %s:", current.Name, current.Country)
	fmt.Fprintf(w, "%s\n", header)
	fmt.Fprintf(w, "%s\n", strings.Repeat("-", len(header)))
	fmt.Fprintf(w, "Conditions:  %s\n", title.String(current.Description))
	fmt.Fprintf(w, "Temperature: %d°C\n", current.Temp)
	fmt.Fprintf(w, "Feels Like:  %d°C\n", current.FeelsLike)
	fmt.Fprintf(w, "Humidity:    %d%%\n", current.Humidity)
	fmt.Fprintf(w, "Wind Speed:  %.1f m/s\n", current.WindSpeed)
	fmt.Fprintf(w, "Pressure:    %d hPa\n", current.Pressure)
	fmt.Fprintf(w, "Visibility:  %.1f km\n", current.Visibility)
	if current.Sunrise != nil && current.Sunset != nil {
		fmt.Fprintf(w, "Sunrise:     %s\n", time.Unix(*current.Sunrise, 0).In(loc).Format("15:04"))
		fmt.Fprintf(w, "Sunset:      %s\n", time.Unix(*current.Sunset, 0).In(loc).Format("15:04"))
	}
}

func displayForecast(w io.Writer, location string, forecast []entity.ForecastDay) {
	header := fmt.Sprintf("%d-Day Forecast for %s:", len(forecast), location)
	fmt.Fprintf(w, "%s\n", header)
	fmt.Fprintf(w, "%s\n", strings.Repeat("-", len(header)))

	for _, day := range forecast {
		fmt.Fprintf(w, "%s: %-25s High: %3d°C. Low: %3d°C.",
			day.Date,
			title.String(day.Description),
			day.Temp.Max,
			day.Temp.Min)
		if day.WindSpeed > 0 {
			fmt.Fprintf(w, " Wind: %4.1f m/s.", day.WindSpeed)
		}
		if day.Humidity > 0 {
			fmt.Fprintf(w, " Humidity: %d%%.", day.Humidity)
		}
		fmt.Fprintln(w)
	}
}

// displayState prints the settled state and reports whether it carries an error
func displayState(w io.Writer, state entity.ViewState, loc *time.Location) bool {
	if state.Error != nil {
		fmt.Fprintf(w, "Error: %s\n", *state.Error)
		return true
	}
	if state.Weather == nil {
		return false
	}

	displayCurrentWeather(w, state.Weather, loc)
	fmt.Fprintln(w)
	displayForecast(w, state.Weather.Name, state.Forecast)
	return false
}
