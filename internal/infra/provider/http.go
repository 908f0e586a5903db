package provider

import (
	"weather-now/pkg/http"
	"weather-now/pkg/resource"
)

// HTTPClientOptions builds client options from app.http.*, logging through zap under loggerName
func HTTPClientOptions(loggerName string) http.ClientOptions {
	return http.ClientOptions{
		ConnectionTimeout:   resource.GetDuration("app.http.connection-timeout"),
		ReadTimeout:         resource.GetDuration("app.http.read-timeout"),
		MaxIdleConns:        resource.GetInt("app.http.max-idle-conns"),
		MaxIdleConnsPerHost: resource.GetInt("app.http.max-idle-conns-per-host"),
		Logger:              http.NewZapLogger(loggerName),
	}
}
