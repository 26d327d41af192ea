package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/skumar/cabtrack/internal/pkg/health"
	trackinghttp "github.com/skumar/cabtrack/services/tracking/handler/http"
)

// Handler wires the tracking service routes.
type Handler struct {
	queryHandler *trackinghttp.QueryHandler
	wsHandler    *WebSocketHandler
	natsHandler  *NATSHandler
}

// NewHandler creates the tracking service handler.
func NewHandler(queryHandler *trackinghttp.QueryHandler, wsHandler *WebSocketHandler, natsHandler *NATSHandler) *Handler {
	return &Handler{
		queryHandler: queryHandler,
		wsHandler:    wsHandler,
		natsHandler:  natsHandler,
	}
}

// RegisterRoutes registers all tracking service routes.
func (h *Handler) RegisterRoutes(e *echo.Echo, serviceName string) {
	e.GET("/health", health.NewPingHandler(serviceName))
	e.GET("/ws/locations", h.wsHandler.HandleLocationUpdates)

	api := e.Group("/api")
	api.GET("/driver/:driverId/locations", h.queryHandler.GetDriverLocations)
	api.GET("/drivers/locations", h.queryHandler.GetLatestLocations)
	api.GET("/drivers/locations/filter", h.queryHandler.GetLatestLocationsFiltered)
}

// InitConsumers starts the NATS consumers for the tracking service.
func (h *Handler) InitConsumers() error {
	return h.natsHandler.InitConsumers()
}

// Stop stops the running consumers.
func (h *Handler) Stop() {
	h.natsHandler.Stop()
}
