package http

import (
	"weather-now/pkg/log"

	"go.uber.org/zap"
)

// ZapLogger is an HTTPLogger that writes to the application zap logger
type ZapLogger struct {
	name string
}

func NewZapLogger(name string) *ZapLogger {
	return &ZapLogger{name: name}
}

func (l *ZapLogger) LogRequest(method, url string, headers map[string]string, body string) {
	log.Debug("HTTP request",
		zap.String("client", l.name),
		zap.String("method", method),
		zap.String("url", url))
}

func (l *ZapLogger) LogResponseSuccess(method, url string, headers map[string]string, body string, httpStatus int, responseBody string, latency int64) {
	log.Debug("HTTP response",
		zap.String("client", l.name),
		zap.String("method", method),
		zap.String("url", url),
		zap.Int("status", httpStatus),
		zap.Int64("latency_ms", latency))
}

func (l *ZapLogger) LogResponseError(method, url string, headers map[string]string, body string, httpStatus int, responseBody string, latency int64, err error) {
	log.Warn("HTTP request failed",
		zap.String("client", l.name),
		zap.String("method", method),
		zap.String("url", url),
		zap.Int("status", httpStatus),
		zap.Int64("latency_ms", latency),
		zap.String("response_body", responseBody),
		zap.Error(err))
}
