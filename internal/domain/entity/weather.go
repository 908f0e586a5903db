package entity

// CurrentWeather is the view model of the current conditions at a location
type CurrentWeather struct {
	Name        string  `json:"name"`
	Country     string  `json:"country"`
	Temp        int     `json:"temp"`
	FeelsLike   int     `json:"feelsLike"`
	Description string  `json:"description"`
	Icon        string  `json:"icon"`
	Humidity    int     `json:"humidity"`
	WindSpeed   float64 `json:"windSpeed"`
	Pressure    int     `json:"pressure"`
	Visibility  float64 `json:"visibility"`
	Sunrise     *int64  `json:"sunrise,omitempty"`
	Sunset      *int64  `json:"sunset,omitempty"`
}

// TempRange holds the rounded daily extremes in degrees Celsius
type TempRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// ForecastDay summarises the forecast entries of one calendar day.
// Description, Icon, Humidity and WindSpeed come from the first entry seen for the day.
type ForecastDay struct {
	Date        string    `json:"date"`
	Temp        TempRange `json:"temp"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	Humidity    int       `json:"humidity"`
	WindSpeed   float64   `json:"windSpeed"`
}
