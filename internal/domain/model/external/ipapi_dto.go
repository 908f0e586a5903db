package external

// IPLocationResponse represents the response of the ip-api.com JSON endpoint
type IPLocationResponse struct {
	Status  string  `json:"status"`
	Message string  `json:"message"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	City    string  `json:"city"`
	Country string  `json:"countryCode"`
}
