package handler

import (
	"github.com/gofiber/contrib/websocket"

	"direct-chat-api/config/logger"
	"direct-chat-api/realtime"
)

// WebSocketHandler is the transport edge of the realtime channel: it wraps
// the upgraded connection and hands it to the Router, which owns
// authentication and the rest of the lifecycle.
type WebSocketHandler struct {
	Router *realtime.Router
	Log    *logger.AppLogger
}

func NewWebSocketHandler(router *realtime.Router, log *logger.AppLogger) *WebSocketHandler {
	return &WebSocketHandler{Router: router, Log: log}
}

func (handler *WebSocketHandler) HandleWebSocket(c *websocket.Conn) {
	token := c.Query("token")

	handler.Log.WS.Trace.Trace().Msg("websocket connection established, authenticating")
	handler.Router.HandleConnection(token, realtime.WrapConn(c))
}
