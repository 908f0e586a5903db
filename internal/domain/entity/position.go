package entity

import (
	"fmt"
	"time"
)

// PositionOptions mirrors the options a geolocation request accepts
type PositionOptions struct {
	HighAccuracy bool
	Timeout      time.Duration
	MaximumAge   time.Duration
}

// Position is a device position fix
type Position struct {
	Coordinates Coordinates `json:"coordinates"`
	Accuracy    float64     `json:"accuracy"`
	Timestamp   time.Time   `json:"timestamp"`
}

// PositionErrorCode follows the W3C geolocation error codes
type PositionErrorCode int

const (
	PositionUnknownError     PositionErrorCode = 0
	PositionPermissionDenied PositionErrorCode = 1
	PositionUnavailable      PositionErrorCode = 2
	PositionTimeout          PositionErrorCode = 3
)

// PositionError is returned when a position cannot be acquired
type PositionError struct {
	Code    PositionErrorCode
	Message string
}

func (e *PositionError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("geolocation error (code %d)", e.Code)
	}
	return fmt.Sprintf("geolocation error (code %d): %s", e.Code, e.Message)
}

func NewPositionError(code PositionErrorCode, message string) *PositionError {
	return &PositionError{Code: code, Message: message}
}
