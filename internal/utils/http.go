package utils

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// ErrorBody is the compact JSON envelope for user-surfaced failures.
type ErrorBody struct {
	Status    int    `json:"status"`
	Error     string `json:"error"`
	Message   string `json:"message"`
	Path      string `json:"path"`
	Timestamp int64  `json:"timestamp"`
}

// ErrorResponse sends an error envelope with the given status.
func ErrorResponse(c echo.Context, status int, message string) error {
	return c.JSON(status, ErrorBody{
		Status:    status,
		Error:     http.StatusText(status),
		Message:   message,
		Path:      c.Request().URL.Path,
		Timestamp: time.Now().UnixMilli(),
	})
}

// BadRequestResponse sends a 400 Bad Request envelope.
func BadRequestResponse(c echo.Context, message string) error {
	return ErrorResponse(c, http.StatusBadRequest, message)
}

// BadGatewayResponse sends a 502 Bad Gateway envelope.
func BadGatewayResponse(c echo.Context, message string) error {
	return ErrorResponse(c, http.StatusBadGateway, message)
}

// InternalServerErrorResponse sends a 500 Internal Server Error envelope.
func InternalServerErrorResponse(c echo.Context, message string) error {
	return ErrorResponse(c, http.StatusInternalServerError, message)
}
