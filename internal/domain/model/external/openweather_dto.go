package external

// WeatherResponse represents the response of the OpenWeatherMap current weather endpoint
type WeatherResponse struct {
	Name       string             `json:"name"`
	Sys        SysDTO             `json:"sys"`
	Main       MainDTO            `json:"main"`
	Weather    []WeatherCondition `json:"weather"`
	Wind       WindDTO            `json:"wind"`
	Visibility float64            `json:"visibility"`
	Dt         int64              `json:"dt"`
}

// SysDTO carries country and sun times (epoch seconds)
type SysDTO struct {
	Country string `json:"country"`
	Sunrise *int64 `json:"sunrise"`
	Sunset  *int64 `json:"sunset"`
}

// MainDTO holds the temperature block shared by current weather and forecast entries
type MainDTO struct {
	Temp      float64 `json:"temp"`
	FeelsLike float64 `json:"feels_like"`
	TempMin   float64 `json:"temp_min"`
	TempMax   float64 `json:"temp_max"`
	Pressure  int     `json:"pressure"`
	Humidity  int     `json:"humidity"`
}

// WeatherCondition is one entry of the "weather" array
type WeatherCondition struct {
	ID          int    `json:"id"`
	Main        string `json:"main"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type WindDTO struct {
	Speed float64 `json:"speed"`
	Deg   int     `json:"deg"`
}

// ForecastResponse represents the response of the OpenWeatherMap 5 day / 3 hour forecast endpoint
type ForecastResponse struct {
	List []ForecastEntry `json:"list"`
	City ForecastCityDTO `json:"city"`
}

// ForecastEntry is a single 3-hour forecast slot
type ForecastEntry struct {
	Dt      int64              `json:"dt"`
	Main    MainDTO            `json:"main"`
	Weather []WeatherCondition `json:"weather"`
	Wind    WindDTO            `json:"wind"`
}

type ForecastCityDTO struct {
	Name     string `json:"name"`
	Country  string `json:"country"`
	Timezone int    `json:"timezone"`
}

// APIErrorResponse is the error body OpenWeatherMap sends with non-2xx statuses
type APIErrorResponse struct {
	Cod     any    `json:"cod"`
	Message string `json:"message"`
}
