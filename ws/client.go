package ws

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait = 10 * time.Second

	// pongWait allows three missed 30s heartbeats.
	pongWait = 90 * time.Second

	maxMessageSize = 4096

	// sendBufferSize bounds queued frames per connection; a client that
	// falls this far behind is dropped.
	sendBufferSize = 256
)

// Client is one WebSocket connection. ReadPump and WritePump run in their
// own goroutines since gorilla/websocket allows one concurrent reader and
// one concurrent writer.
type Client struct {
	hub       *Hub
	conn      *websocket.Conn
	userID    string
	sessionID string

	send chan []byte
	mu   sync.Mutex // guards conn writes
}

// ReadPump reads frames until the connection fails, then unregisters the
// client.
func (c *Client) ReadPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)

	if err := c.conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		c.hub.logger.Warn("failed to set read deadline", "user_id", c.userID, "error", err)
		return
	}

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.hub.logger.Warn("unexpected close", "user_id", c.userID, "error", err)
			}
			return
		}

		var event Event
		if err := json.Unmarshal(raw, &event); err != nil {
			c.hub.logger.Warn("invalid message", "user_id", c.userID, "error", err)
			continue
		}

		c.handleEvent(event)
	}
}

func (c *Client) handleEvent(event Event) {
	switch event.Op {
	case OpHeartbeat:
		if err := c.conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
			c.hub.logger.Warn("failed to set read deadline", "user_id", c.userID, "error", err)
			return
		}
		c.sendEvent(Event{Op: OpHeartbeatAck})
	}
}

func (c *Client) sendEvent(event Event) {
	data, err := json.Marshal(event)
	if err != nil {
		c.hub.logger.Error("failed to marshal event", "user_id", c.userID, "error", err)
		return
	}

	select {
	case c.send <- data:
	default:
		c.hub.logger.Warn("send buffer full, dropping connection", "user_id", c.userID)
		go func() { c.hub.unregister <- c }()
	}
}

// WritePump writes queued frames until the hub closes the send channel.
func (c *Client) WritePump() {
	defer c.conn.Close()

	for {
		message, ok := <-c.send
		if !ok {
			_ = c.writeMessage(websocket.CloseMessage, nil)
			return
		}

		if err := c.writeMessage(websocket.TextMessage, message); err != nil {
			return
		}
	}
}

func (c *Client) writeMessage(messageType int, data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	return c.conn.WriteMessage(messageType, data)
}
