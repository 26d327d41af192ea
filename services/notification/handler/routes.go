package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/skumar/cabtrack/internal/pkg/health"
)

// Handler wires the notification service routes and consumers.
type Handler struct {
	natsHandler *NATSHandler
}

// NewHandler creates the notification service handler.
func NewHandler(natsHandler *NATSHandler) *Handler {
	return &Handler{natsHandler: natsHandler}
}

// RegisterRoutes registers the notification service routes. The worker only
// exposes health.
func (h *Handler) RegisterRoutes(e *echo.Echo, serviceName string) {
	e.GET("/health", health.NewPingHandler(serviceName))
}

// InitConsumers starts the NATS consumers for the notification service.
func (h *Handler) InitConsumers() error {
	return h.natsHandler.InitConsumers()
}

// Stop stops the running consumers.
func (h *Handler) Stop() {
	h.natsHandler.Stop()
}
