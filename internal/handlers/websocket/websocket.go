// internal/handlers/websocket/websocket.go
package websocket

import (
	"net/http"
	"strings"

	"fleetrent-service/internal/pkg/response"
	authUsecase "fleetrent-service/internal/service/auth"
	ws "fleetrent-service/internal/websocket"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// TODO: restrict origins once the dashboard has a fixed host
		return true
	},
}

type WebSocketHandler struct {
	hub         *ws.Hub
	authService *authUsecase.AuthService
	logger      *zap.Logger
}

func NewWebSocketHandler(hub *ws.Hub, authService *authUsecase.AuthService, logger *zap.Logger) *WebSocketHandler {
	return &WebSocketHandler{
		hub:         hub,
		authService: authService,
		logger:      logger,
	}
}

// HandleConnection authenticates, upgrades, and hands the client to the hub.
// Clients receive vehicles.changed and rentals.changed events whenever the
// fleet or the ledger mutates.
func (h *WebSocketHandler) HandleConnection(c *gin.Context) {
	token := extractToken(c)
	if token == "" {
		response.Error(c, http.StatusUnauthorized, "missing authentication token", nil)
		return
	}

	claims, err := h.authService.ValidateToken(c.Request.Context(), token)
	if err != nil {
		h.logger.Warn("websocket authentication failed",
			zap.String("ip", c.ClientIP()),
			zap.Error(err),
		)
		response.Error(c, http.StatusUnauthorized, "authentication failed", err)
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Error("websocket upgrade failed",
			zap.String("ip", c.ClientIP()),
			zap.Error(err),
		)
		return
	}

	client := ws.NewClient(h.hub, conn, claims.Username, claims.Role)
	h.hub.RegisterClient(client)

	go client.WritePump()
	go client.ReadPump()
}

// Stats reports live connection counts (admin only).
func (h *WebSocketHandler) Stats(c *gin.Context) {
	response.Success(c, http.StatusOK, "websocket stats", gin.H{
		"connections": h.hub.ClientCount(),
	})
}

// extractToken reads the token from a query param (the usual way for
// browser WebSocket clients) or the Authorization header.
func extractToken(c *gin.Context) string {
	if token := c.Query("token"); token != "" {
		return token
	}

	authHeader := c.GetHeader("Authorization")
	parts := strings.Split(authHeader, " ")
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return parts[1]
	}
	return ""
}
