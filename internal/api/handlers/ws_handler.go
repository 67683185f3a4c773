package handlers

import (
	"log/slog"

	gorillaws "github.com/gorilla/websocket"
	ws "github.com/kejingzs/kejing-backend/internal/websocket"
	"github.com/labstack/echo/v4"
)

// WSHandler upgrades admin connections to the dashboard event feed
type WSHandler struct {
	hub      *ws.Hub
	upgrader gorillaws.Upgrader
	logger   *slog.Logger
}

// NewWSHandler creates a new WSHandler
func NewWSHandler(hub *ws.Hub, upgrader gorillaws.Upgrader, logger *slog.Logger) *WSHandler {
	return &WSHandler{hub: hub, upgrader: upgrader, logger: logger}
}

// Serve handles GET /api/admin/ws. Auth middleware has already run; a
// successful upgrade registers the client for all dashboard events.
func (h *WSHandler) Serve(c echo.Context) error {
	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		// Upgrade already wrote the HTTP error response
		return nil
	}

	client := ws.NewClient(h.hub, conn, h.logger)
	h.hub.Register(client)

	go client.WritePump()
	go client.ReadPump()

	return nil
}
