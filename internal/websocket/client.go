package websocket

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4 * 1024
)

type Client struct {
	hub      *Hub
	conn     *websocket.Conn
	send     chan []byte
	id       string
	username string
	role     string

	closeOnce sync.Once
}

func NewClient(hub *Hub, conn *websocket.Conn, username, role string) *Client {
	return &Client{
		hub:      hub,
		conn:     conn,
		send:     make(chan []byte, 64),
		id:       ulid.Make().String(),
		username: username,
		role:     role,
	}
}

// SendEvent queues an event for delivery. Slow clients that cannot drain
// their queue are skipped rather than blocking the hub.
func (c *Client) SendEvent(event *Event) {
	payload, err := json.Marshal(event)
	if err != nil {
		c.hub.logger.Error("failed to marshal event", zap.Error(err))
		return
	}

	select {
	case c.send <- payload:
	default:
		c.hub.logger.Warn("client send queue full, dropping event",
			zap.String("client_id", c.id),
		)
	}
}

// Close releases the client's send queue. Called by the hub during
// unregistration.
func (c *Client) Close() {
	c.closeOnce.Do(func() {
		close(c.send)
	})
}

// ReadPump consumes messages from the connection until it drops. Incoming
// traffic is only used for keepalive; clients do not send commands.
func (c *Client) ReadPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.hub.logger.Debug("websocket read error",
					zap.String("client_id", c.id),
					zap.Error(err),
				)
			}
			return
		}
	}
}

// WritePump flushes queued events to the connection and keeps it alive with
// pings.
func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case payload, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}

		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
