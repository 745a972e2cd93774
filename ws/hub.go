package ws

import (
	"encoding/json"
	"log/slog"
	"sync"
	"sync/atomic"
)

// Hub tracks every connection per user. Run must be started once in its
// own goroutine; it serializes registrations and removals.
type Hub struct {
	// userID → set of connections (one per tab/device)
	clients map[string]map[*Client]bool
	mu      sync.RWMutex

	register   chan *Client
	unregister chan *Client

	seq atomic.Int64

	// onSessionClosed fires when the last connection carrying a given
	// (user, session) pair goes away.
	onSessionClosed func(userID, sessionID string)

	logger *slog.Logger
}

func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		clients:    make(map[string]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		logger:     logger.With("component", "ws"),
	}
}

// OnSessionClosed sets the session close callback. Call before Run.
func (h *Hub) OnSessionClosed(fn func(userID, sessionID string)) {
	h.onSessionClosed = fn
}

// Run is the hub's event loop: `go hub.Run()`.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.addClient(client)

		case client := <-h.unregister:
			h.removeClient(client)
		}
	}
}

func (h *Hub) addClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[client.userID]; !ok {
		h.clients[client.userID] = make(map[*Client]bool)
	}
	h.clients[client.userID][client] = true

	h.logger.Info("client connected",
		"user_id", client.userID, "session_id", client.sessionID,
		"connections", len(h.clients[client.userID]))
}

func (h *Hub) removeClient(client *Client) {
	h.mu.Lock()

	clients, ok := h.clients[client.userID]
	if !ok || !clients[client] {
		h.mu.Unlock()
		return
	}

	delete(clients, client)
	close(client.send)

	sessionGone := true
	for other := range clients {
		if other.sessionID == client.sessionID {
			sessionGone = false
			break
		}
	}
	if len(clients) == 0 {
		delete(h.clients, client.userID)
	}
	remaining := len(clients)
	h.mu.Unlock()

	h.logger.Info("client disconnected",
		"user_id", client.userID, "session_id", client.sessionID, "remaining", remaining)

	// Outside the lock and the loop: the callback may publish events.
	if sessionGone && h.onSessionClosed != nil {
		go h.onSessionClosed(client.userID, client.sessionID)
	}
}

// Publish sends event to every connection of every listed user. Users that
// are offline are skipped. Satisfies services.EventDispatcher.
func (h *Hub) Publish(userIDs []string, event Event) {
	event.Seq = h.seq.Add(1)

	data, err := json.Marshal(event)
	if err != nil {
		h.logger.Error("failed to marshal event", "op", event.Op, "error", err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, userID := range userIDs {
		for client := range h.clients[userID] {
			h.enqueue(client, data)
		}
	}
}

// enqueue must be called with h.mu held. A full buffer means the client is
// stuck; it is dropped.
func (h *Hub) enqueue(client *Client, data []byte) {
	select {
	case client.send <- data:
	default:
		h.logger.Warn("send buffer full, dropping connection", "user_id", client.userID)
		go func(c *Client) { h.unregister <- c }(client)
	}
}

// onlineUserIDs returns the ids of users with at least one connection.
func (h *Hub) onlineUserIDs() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()

	ids := make([]string, 0, len(h.clients))
	for userID := range h.clients {
		ids = append(ids, userID)
	}
	return ids
}

// Shutdown closes every connection's send channel.
func (h *Hub) Shutdown() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, clients := range h.clients {
		for client := range clients {
			close(client.send)
		}
	}
	h.clients = make(map[string]map[*Client]bool)
	h.logger.Info("hub shut down, all connections closed")
}
