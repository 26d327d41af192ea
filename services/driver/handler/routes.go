package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/skumar/cabtrack/internal/pkg/health"
	driverhttp "github.com/skumar/cabtrack/services/driver/handler/http"
)

// Handler wires the driver service routes.
type Handler struct {
	locationHandler *driverhttp.LocationHandler
}

// NewHandler creates the driver service handler.
func NewHandler(locationHandler *driverhttp.LocationHandler) *Handler {
	return &Handler{locationHandler: locationHandler}
}

// RegisterRoutes registers all driver service routes.
func (h *Handler) RegisterRoutes(e *echo.Echo, serviceName string) {
	e.GET("/health", health.NewPingHandler(serviceName))

	api := e.Group("/api")
	api.POST("/location/update", h.locationHandler.UpdateLocation)
}
