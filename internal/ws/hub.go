package ws

import (
	"encoding/json"
	"sync"

	"go.uber.org/zap"

	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/logger"
	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/types/business"
)

// Client is one agent dashboard connection.
type Client struct {
	AgentID string
	Send    chan []byte

	hub    *Hub
	mu     sync.Mutex
	closed bool
}

// Close unregisters the client and closes its send channel. Safe to call
// more than once; the write pump and the upgrade handler both defer it.
func (c *Client) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	close(c.Send)
	if c.hub != nil {
		c.hub.unregister(c)
	}
}

// trySend queues data for the write pump. A closed client or a full buffer
// drops the event; the producer never blocks. Sharing c.mu with Close keeps
// sends off a closed channel.
func (c *Client) trySend(data []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	select {
	case c.Send <- data:
	default:
	}
}

// Hub fans inbox events out to every connected back-office dashboard. It is
// the process-wide EventBroadcaster; services publish through it without
// knowing who is listening.
type Hub struct {
	mu      sync.RWMutex
	clients map[*Client]struct{}
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{
		clients: make(map[*Client]struct{}),
	}
}

// Register adds a connection to the fan-out set.
func (h *Hub) Register(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	c.hub = h
	h.clients[c] = struct{}{}
}

func (h *Hub) unregister(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.clients, c)
}

// Broadcast sends the event to every connected dashboard. A client whose
// send buffer is full is skipped; the producer never blocks on a slow
// consumer.
func (h *Hub) Broadcast(event business.InboxEvent) {
	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Error("Failed to encode inbox event",
			zap.String("type", event.Type),
			zap.Error(err))
		return
	}

	h.mu.RLock()
	clients := make([]*Client, 0, len(h.clients))
	for c := range h.clients {
		clients = append(clients, c)
	}
	h.mu.RUnlock()

	for _, c := range clients {
		c.trySend(data)
	}
}

// ClientCount reports the number of connected dashboards.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
