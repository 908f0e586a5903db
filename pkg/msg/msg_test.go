package msg

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetMessage(t *testing.T) {
	testCases := []struct {
		name     string
		key      string
		args     []interface{}
		expected string
	}{
		{name: "Without arguments", key: "weather.error.empty-city", expected: "Please enter a city name"},
		{name: "String arguments", key: "weather.error.fetch-current", args: []interface{}{`"London"`, "city not found"}, expected: `Failed to fetch weather data for "London": city not found`},
		{name: "Integer argument", key: "weather.error.http-status", args: []interface{}{500, "Internal Server Error"}, expected: "HTTP 500: Internal Server Error"},
		{name: "Error argument", key: "geolocation.cache.store-failed", args: []interface{}{errors.New("redis down")}, expected: "Failed to store position in cache: redis down"},
		{name: "Stringer argument", key: "geolocation.cache.hit", args: []interface{}{51.5, -0.12, 90 * time.Second}, expected: "Using cached position (51.5, -0.12) acquired 1m30s ago"},
		{name: "Struct argument", key: "weather.load.start", args: []interface{}{struct{ City string }{City: "Oslo"}}, expected: `Loading weather for {"City":"Oslo"}`},
		{name: "Nil argument", key: "weather.load.start", args: []interface{}{nil}, expected: "Loading weather for "},
		{name: "Placeholder inside an argument is kept", key: "weather.error.fetch-current", args: []interface{}{`"Town {1}"`, "city not found"}, expected: `Failed to fetch weather data for "Town {1}": city not found`},
		{name: "Unknown key", key: "weather.missing", expected: "Message not found: weather.missing"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, GetMessage(tc.key, tc.args...))
		})
	}
}

func TestInit_MergesMessages(t *testing.T) {
	path := filepath.Join(t.TempDir(), "messages.yml")
	require.NoError(t, os.WriteFile(path, []byte(`
weather:
  error:
    generic: "Something went wrong"
`), 0o600))
	t.Cleanup(func() {
		mu.Lock()
		messages["weather.error.generic"] = "An error occurred"
		mu.Unlock()
	})

	Init(path)

	assert.Equal(t, "Something went wrong", GetMessage("weather.error.generic"))
	assert.Equal(t, "Please enter a city name", GetMessage("weather.error.empty-city"))
}
