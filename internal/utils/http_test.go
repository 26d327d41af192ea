package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorResponse_Envelope(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/driver/abc/locations", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	before := time.Now().UnixMilli()
	require.NoError(t, BadRequestResponse(c, "driverId must be a positive integer"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body ErrorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, http.StatusBadRequest, body.Status)
	assert.Equal(t, "Bad Request", body.Error)
	assert.Equal(t, "driverId must be a positive integer", body.Message)
	assert.Equal(t, "/api/driver/abc/locations", body.Path)
	assert.GreaterOrEqual(t, body.Timestamp, before)
}

func TestErrorResponse_StatusText(t *testing.T) {
	e := echo.New()

	tests := []struct {
		send     func(echo.Context, string) error
		status   int
		wantText string
	}{
		{BadRequestResponse, http.StatusBadRequest, "Bad Request"},
		{BadGatewayResponse, http.StatusBadGateway, "Bad Gateway"},
		{InternalServerErrorResponse, http.StatusInternalServerError, "Internal Server Error"},
	}

	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		require.NoError(t, tt.send(c, "boom"))
		assert.Equal(t, tt.status, rec.Code)

		var body ErrorBody
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, tt.wantText, body.Error)
	}
}
