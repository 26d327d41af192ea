package handler

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/skumar/cabtrack/internal/pkg/constants"
	"github.com/skumar/cabtrack/internal/pkg/logger"
	wshub "github.com/skumar/cabtrack/internal/pkg/websocket"
)

const writeWait = 10 * time.Second

// WebSocketHandler streams live location updates to connected clients.
type WebSocketHandler struct {
	hub      *wshub.Hub
	upgrader websocket.Upgrader
}

// NewWebSocketHandler creates a new websocket handler over the broadcast hub.
func NewWebSocketHandler(hub *wshub.Hub) *WebSocketHandler {
	return &WebSocketHandler{
		hub: hub,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// HandleLocationUpdates handles GET /ws/locations. Each connection gets its
// own subscription on the live location channel; the client receives every
// update broadcast after it connects, subject to the hub's drop policy.
func (h *WebSocketHandler) HandleLocationUpdates(c echo.Context) error {
	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}

	sub := h.hub.Subscribe(constants.ChannelLocationUpdates)
	defer sub.Close()
	defer conn.Close()

	logger.Info("WebSocket subscriber connected",
		logger.String("channel", sub.Topic()),
		logger.String("remote", conn.RemoteAddr().String()))

	// The reader only detects disconnects; inbound frames are discarded.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case data, ok := <-sub.C():
			if !ok {
				return nil
			}
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
				logger.Info("WebSocket subscriber write failed, closing",
					logger.String("remote", conn.RemoteAddr().String()),
					logger.Err(err))
				return nil
			}
		case <-done:
			logger.Info("WebSocket subscriber disconnected",
				logger.String("remote", conn.RemoteAddr().String()))
			return nil
		}
	}
}
