package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestSetupRequestLogger_AssignsRequestID(t *testing.T) {
	e := echo.New()
	SetupRequestLogger(e)
	e.GET("/weather", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/weather", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, rec.Header().Get(echo.HeaderXRequestID), 36)
}

func TestSetupRequestLogger_KeepsIncomingRequestID(t *testing.T) {
	e := echo.New()
	SetupRequestLogger(e)
	e.GET("/weather", func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/weather", nil)
	req.Header.Set(echo.HeaderXRequestID, "abc-123")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, "abc-123", rec.Header().Get(echo.HeaderXRequestID))
}

func TestIsQuietPath(t *testing.T) {
	e := echo.New()
	testCases := map[string]bool{
		"/weather-now/health":             true,
		"/metrics":                        true,
		"/weather-now/swagger/index.html": true,
		"/weather-now/weather":            false,
	}

	for path, expected := range testCases {
		c := e.NewContext(httptest.NewRequest(http.MethodGet, path, nil), httptest.NewRecorder())
		assert.Equal(t, expected, isQuietPath(c), path)
	}
}
