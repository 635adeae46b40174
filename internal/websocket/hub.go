// Package websocket pushes change events to connected dashboards. The hub
// subscribes to the engine's change notifiers; on every mutation connected
// clients receive an event telling them which store to re-query. This is
// the service's rendition of the engine's observer hook for presentation
// refresh.
package websocket

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

type Hub struct {
	clients map[*Client]bool
	mu      sync.RWMutex

	register   chan *Client
	unregister chan *Client
	broadcast  chan *Event

	logger *zap.Logger
}

func NewHub(logger *zap.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan *Event, 256),
		logger:     logger,
	}
}

// NotifyVehiclesChanged queues a fleet-refresh event for all clients.
// Suitable for use as an engine change listener.
func (h *Hub) NotifyVehiclesChanged() {
	h.enqueue(NewEvent(EventTypeVehiclesChanged, nil))
}

// NotifyRentalsChanged queues a rental-refresh event for all clients.
func (h *Hub) NotifyRentalsChanged() {
	h.enqueue(NewEvent(EventTypeRentalsChanged, nil))
}

func (h *Hub) enqueue(event *Event) {
	select {
	case h.broadcast <- event:
	default:
		// A full queue means clients are far behind; dropping a refresh
		// hint is harmless because the next mutation queues another.
		h.logger.Warn("broadcast queue full, dropping event",
			zap.String("type", string(event.Type)),
		)
	}
}

// RegisterClient hands a freshly upgraded connection to the hub loop.
func (h *Hub) RegisterClient(client *Client) {
	h.register <- client
}

func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			h.shutdown()
			return

		case client := <-h.register:
			h.registerClient(client)

		case client := <-h.unregister:
			h.unregisterClient(client)

		case event := <-h.broadcast:
			h.broadcastEvent(event)
		}
	}
}

func (h *Hub) registerClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.clients[client] = true

	h.logger.Info("websocket client connected",
		zap.String("client_id", client.id),
		zap.String("username", client.username),
		zap.Int("total", len(h.clients)),
	)

	client.SendEvent(NewEvent(EventTypeConnected, map[string]interface{}{
		"client_id": client.id,
		"username":  client.username,
		"role":      client.role,
	}))
}

func (h *Hub) unregisterClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[client]; ok {
		delete(h.clients, client)
		client.Close()

		h.logger.Info("websocket client disconnected",
			zap.String("client_id", client.id),
			zap.Int("total", len(h.clients)),
		)
	}
}

func (h *Hub) broadcastEvent(event *Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for client := range h.clients {
		client.SendEvent(event)
	}
}

// ClientCount reports the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *Hub) shutdown() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for client := range h.clients {
		client.Close()
	}
	h.clients = make(map[*Client]bool)
}
