package handler

import (
	"net/http"

	gorilla "github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"fieldtofork/internal/infrastructure/websocket"
	"fieldtofork/internal/usecase"
	"fieldtofork/pkg/errors"
	"fieldtofork/pkg/logger"
	"fieldtofork/pkg/response"
)

var upgrader = gorilla.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type WebSocketHandler struct {
	manager      *websocket.Manager
	authProvider usecase.AuthProvider
}

func NewWebSocketHandler(manager *websocket.Manager, authProvider usecase.AuthProvider) *WebSocketHandler {
	return &WebSocketHandler{
		manager:      manager,
		authProvider: authProvider,
	}
}

// Connect upgrades the request and keeps the socket registered until the
// client goes away. Browsers cannot set headers on websocket dials, so the
// ID token arrives as a query parameter.
func (h *WebSocketHandler) Connect(c echo.Context) error {
	token := c.QueryParam("token")
	if token == "" {
		return response.Error(c, errors.Unauthorized("Missing token", nil))
	}

	uid, err := h.authProvider.VerifyToken(c.Request().Context(), token)
	if err != nil {
		return response.Error(c, errors.Unauthorized("Invalid token", err))
	}

	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		logger.Error("websocket upgrade for %s: %v", uid, err)
		return err
	}

	client := &websocket.Client{
		UserID: uid,
		Conn:   conn,
		Send:   make(chan []byte, 256),
	}

	h.manager.Register <- client

	go client.WritePump()
	go client.ReadPump(h.manager)

	return nil
}
