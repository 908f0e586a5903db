package entity

// ViewState is everything a presentation layer needs to render the weather screen
type ViewState struct {
	Weather  *CurrentWeather `json:"weather"`
	Forecast []ForecastDay   `json:"forecast"`
	Loading  bool            `json:"loading"`
	Error    *string         `json:"error"`
}

// NewViewState returns the initial, empty state
func NewViewState() ViewState {
	return ViewState{Forecast: []ForecastDay{}}
}

// Clone returns a deep copy so callers can't mutate the coordinator's state
func (s ViewState) Clone() ViewState {
	clone := ViewState{
		Loading:  s.Loading,
		Forecast: make([]ForecastDay, len(s.Forecast)),
	}
	copy(clone.Forecast, s.Forecast)

	if s.Weather != nil {
		weather := *s.Weather
		if s.Weather.Sunrise != nil {
			sunrise := *s.Weather.Sunrise
			weather.Sunrise = &sunrise
		}
		if s.Weather.Sunset != nil {
			sunset := *s.Weather.Sunset
			weather.Sunset = &sunset
		}
		clone.Weather = &weather
	}
	if s.Error != nil {
		message := *s.Error
		clone.Error = &message
	}
	return clone
}
