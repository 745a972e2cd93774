// Package janus is a minimal client for the Janus WebRTC gateway's
// WebSocket API.
//
// All requests are multiplexed over one connection and correlated by
// transaction id. The connection is dialed lazily and redialed on the next
// request after it drops; sessions created on a dropped connection are gone
// on the gateway side as well, so callers simply see "session not found"
// for them later.
//
// Request/response shapes:
//
//	→ {"janus":"create","transaction":"t1"}
//	← {"janus":"success","transaction":"t1","data":{"id":123}}
//	→ {"janus":"message","transaction":"t2","session_id":123,"handle_id":456,"body":{...}}
//	← {"janus":"ack","transaction":"t2"}                       (async plugin request)
//	← {"janus":"event","transaction":"t2","plugindata":{...}}
package janus

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// Plugin package names.
const (
	PluginAudioBridge = "janus.plugin.audiobridge"
	PluginVideoRoom   = "janus.plugin.videoroom"
)

// Error codes that mean the addressed resource no longer exists.
const (
	CodeSessionNotFound       = 458
	CodeHandleNotFound        = 459
	CodeVideoRoomNoSuchRoom   = 426
	CodeAudioBridgeNoSuchRoom = 485
)

const subprotocol = "janus-protocol"

// ErrUnavailable is returned when the gateway cannot be reached, the
// connection drops mid-request, or a reply does not arrive in time.
var ErrUnavailable = errors.New("janus: gateway unavailable")

// Error is an error reply from the gateway core or from a plugin.
type Error struct {
	Code   int    `json:"code"`
	Reason string `json:"reason"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("janus: error %d: %s", e.Code, e.Reason)
}

// IsGone reports whether err says the session, handle or room is already
// absent on the gateway.
func IsGone(err error) bool {
	var je *Error
	if !errors.As(err, &je) {
		return false
	}
	switch je.Code {
	case CodeSessionNotFound, CodeHandleNotFound, CodeVideoRoomNoSuchRoom, CodeAudioBridgeNoSuchRoom:
		return true
	}
	return false
}

// IsRoomGone reports whether err says an audio or video room does not exist.
func IsRoomGone(err error) bool {
	var je *Error
	return errors.As(err, &je) &&
		(je.Code == CodeVideoRoomNoSuchRoom || je.Code == CodeAudioBridgeNoSuchRoom)
}

type request struct {
	Janus       string `json:"janus"`
	Transaction string `json:"transaction"`
	SessionID   int64  `json:"session_id,omitempty"`
	HandleID    int64  `json:"handle_id,omitempty"`
	Plugin      string `json:"plugin,omitempty"`
	Body        any    `json:"body,omitempty"`
	APISecret   string `json:"apisecret,omitempty"`
}

type response struct {
	Janus       string `json:"janus"`
	Transaction string `json:"transaction"`
	SessionID   int64  `json:"session_id"`
	Data        *struct {
		ID int64 `json:"id"`
	} `json:"data"`
	Error      *Error `json:"error"`
	PluginData *struct {
		Plugin string          `json:"plugin"`
		Data   json.RawMessage `json:"data"`
	} `json:"plugindata"`
}

// Options tunes the client. Zero values fall back to defaults.
type Options struct {
	// RequestTimeout bounds the wait for a final reply. Default 10s.
	RequestTimeout time.Duration
	// KeepaliveInterval is how often live sessions are refreshed. Default 25s.
	KeepaliveInterval time.Duration
	// APISecret is sent with every request when the gateway requires one.
	APISecret string
}

// Client talks to one gateway. Safe for concurrent use.
type Client struct {
	url     string
	dialer  *websocket.Dialer
	opts    Options
	logger  *slog.Logger
	writeMu sync.Mutex

	mu       sync.Mutex
	conn     *websocket.Conn
	pending  map[string]chan *response
	sessions map[int64]struct{}
	closed   bool

	stop     chan struct{}
	stopOnce sync.Once
}

// New creates a client for the gateway at url (ws:// or wss://).
// No connection is made until the first request.
func New(url string, opts Options, logger *slog.Logger) *Client {
	if opts.RequestTimeout <= 0 {
		opts.RequestTimeout = 10 * time.Second
	}
	if opts.KeepaliveInterval <= 0 {
		opts.KeepaliveInterval = 25 * time.Second
	}

	c := &Client{
		url: url,
		dialer: &websocket.Dialer{
			HandshakeTimeout: opts.RequestTimeout,
			Subprotocols:     []string{subprotocol},
		},
		opts:     opts,
		logger:   logger,
		pending:  make(map[string]chan *response),
		sessions: make(map[int64]struct{}),
		stop:     make(chan struct{}),
	}

	go c.keepaliveLoop()

	return c
}

// ─── Session & handle lifecycle ───

// CreateSession opens a new gateway session and returns its id.
func (c *Client) CreateSession(ctx context.Context) (int64, error) {
	resp, err := c.do(ctx, &request{Janus: "create"}, false)
	if err != nil {
		return 0, err
	}
	if resp.Data == nil {
		return 0, fmt.Errorf("janus: create: reply without session id")
	}

	c.mu.Lock()
	c.sessions[resp.Data.ID] = struct{}{}
	c.mu.Unlock()

	return resp.Data.ID, nil
}

// DestroySession destroys a session together with all of its handles.
func (c *Client) DestroySession(ctx context.Context, sessionID int64) error {
	c.mu.Lock()
	delete(c.sessions, sessionID)
	c.mu.Unlock()

	_, err := c.do(ctx, &request{Janus: "destroy", SessionID: sessionID}, false)
	return err
}

// Attach attaches a plugin handle to a session and returns the handle id.
func (c *Client) Attach(ctx context.Context, sessionID int64, plugin string) (int64, error) {
	resp, err := c.do(ctx, &request{Janus: "attach", SessionID: sessionID, Plugin: plugin}, false)
	if err != nil {
		return 0, err
	}
	if resp.Data == nil {
		return 0, fmt.Errorf("janus: attach: reply without handle id")
	}
	return resp.Data.ID, nil
}

// Detach detaches a plugin handle.
func (c *Client) Detach(ctx context.Context, sessionID, handleID int64) error {
	_, err := c.do(ctx, &request{Janus: "detach", SessionID: sessionID, HandleID: handleID}, false)
	return err
}

// Message sends a plugin request and returns the plugin's reply data.
// Synchronous plugin requests are answered with "success", asynchronous ones
// with "ack" followed by an "event"; both end up here as the plugin data.
// A plugin-level error (error_code in the data) is returned as *Error.
func (c *Client) Message(ctx context.Context, sessionID, handleID int64, body any) (json.RawMessage, error) {
	resp, err := c.do(ctx, &request{Janus: "message", SessionID: sessionID, HandleID: handleID, Body: body}, true)
	if err != nil {
		return nil, err
	}
	if resp.PluginData == nil {
		return nil, fmt.Errorf("janus: message: reply without plugin data")
	}

	var perr struct {
		ErrorCode int    `json:"error_code"`
		Error     string `json:"error"`
	}
	if err := json.Unmarshal(resp.PluginData.Data, &perr); err != nil {
		return nil, fmt.Errorf("janus: message: decode plugin data: %w", err)
	}
	if perr.ErrorCode != 0 {
		return nil, &Error{Code: perr.ErrorCode, Reason: perr.Error}
	}

	return resp.PluginData.Data, nil
}

// Close stops keepalives and closes the connection. Pending requests fail
// with ErrUnavailable.
func (c *Client) Close() error {
	c.stopOnce.Do(func() { close(c.stop) })

	c.mu.Lock()
	c.closed = true
	conn := c.conn
	c.mu.Unlock()

	if conn == nil {
		return nil
	}
	c.drop(conn)
	return nil
}

// ─── Transport ───

// do sends req and waits for its final reply. When async is set an "ack" is
// only an intermediate reply and the wait continues for the "event".
func (c *Client) do(ctx context.Context, req *request, async bool) (*response, error) {
	conn, err := c.connect(ctx)
	if err != nil {
		return nil, err
	}

	req.Transaction = uuid.NewString()
	req.APISecret = c.opts.APISecret

	ch := make(chan *response, 2)
	c.mu.Lock()
	c.pending[req.Transaction] = ch
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		delete(c.pending, req.Transaction)
		c.mu.Unlock()
	}()

	if err := c.write(conn, req); err != nil {
		c.drop(conn)
		return nil, fmt.Errorf("%w: %s: %v", ErrUnavailable, req.Janus, err)
	}

	timer := time.NewTimer(c.opts.RequestTimeout)
	defer timer.Stop()

	for {
		select {
		case resp, ok := <-ch:
			if !ok {
				return nil, fmt.Errorf("%w: %s: connection lost", ErrUnavailable, req.Janus)
			}
			switch resp.Janus {
			case "ack":
				if async {
					continue
				}
				return resp, nil
			case "error":
				if resp.Error == nil {
					return nil, &Error{Reason: "unspecified error"}
				}
				return nil, resp.Error
			default:
				return resp, nil
			}
		case <-timer.C:
			return nil, fmt.Errorf("%w: %s: timed out after %s", ErrUnavailable, req.Janus, c.opts.RequestTimeout)
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
}

func (c *Client) write(conn *websocket.Conn, req *request) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	if err := conn.SetWriteDeadline(time.Now().Add(c.opts.RequestTimeout)); err != nil {
		return err
	}
	return conn.WriteJSON(req)
}

func (c *Client) connect(ctx context.Context) (*websocket.Conn, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil, fmt.Errorf("%w: client closed", ErrUnavailable)
	}
	if c.conn != nil {
		return c.conn, nil
	}

	conn, _, err := c.dialer.DialContext(ctx, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: dial %s: %v", ErrUnavailable, c.url, err)
	}

	c.conn = conn
	go c.readLoop(conn)

	c.logger.Info("connected to media gateway", "url", c.url)
	return conn, nil
}

func (c *Client) readLoop(conn *websocket.Conn) {
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			c.logger.Warn("media gateway connection lost", "error", err)
			c.drop(conn)
			return
		}

		var resp response
		if err := json.Unmarshal(data, &resp); err != nil {
			c.logger.Warn("invalid message from media gateway", "error", err)
			continue
		}

		if resp.Transaction == "" {
			c.handleUnsolicited(&resp)
			continue
		}

		// Delivered under the lock so drop cannot close ch concurrently.
		c.mu.Lock()
		if ch, ok := c.pending[resp.Transaction]; ok {
			select {
			case ch <- &resp:
			default:
				c.logger.Warn("dropping surplus reply", "transaction", resp.Transaction, "janus", resp.Janus)
			}
		}
		c.mu.Unlock()
	}
}

// handleUnsolicited handles gateway-initiated events (webrtcup, hangup,
// media, timeout). Only session timeouts affect client state.
func (c *Client) handleUnsolicited(resp *response) {
	if resp.Janus == "timeout" {
		c.mu.Lock()
		delete(c.sessions, resp.SessionID)
		c.mu.Unlock()
		c.logger.Info("media gateway session timed out", "session_id", resp.SessionID)
		return
	}
	c.logger.Debug("media gateway event", "janus", resp.Janus, "session_id", resp.SessionID)
}

// drop forgets conn if it is still the current connection and fails every
// pending request. Sessions do not survive the connection.
func (c *Client) drop(conn *websocket.Conn) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn != conn {
		return
	}
	c.conn = nil
	_ = conn.Close()

	for txn, ch := range c.pending {
		close(ch)
		delete(c.pending, txn)
	}
	c.sessions = make(map[int64]struct{})
}

// ─── Keepalive ───

func (c *Client) keepaliveLoop() {
	ticker := time.NewTicker(c.opts.KeepaliveInterval)
	defer ticker.Stop()

	for {
		select {
		case <-c.stop:
			return
		case <-ticker.C:
			c.sendKeepalives()
		}
	}
}

func (c *Client) sendKeepalives() {
	c.mu.Lock()
	if c.conn == nil {
		c.mu.Unlock()
		return
	}
	ids := make([]int64, 0, len(c.sessions))
	for id := range c.sessions {
		ids = append(ids, id)
	}
	c.mu.Unlock()

	for _, id := range ids {
		_, err := c.do(context.Background(), &request{Janus: "keepalive", SessionID: id}, false)
		if err == nil {
			continue
		}
		if IsGone(err) {
			c.mu.Lock()
			delete(c.sessions, id)
			c.mu.Unlock()
			continue
		}
		c.logger.Warn("keepalive failed", "session_id", id, "error", err)
	}
}

// SessionCount returns the number of sessions kept alive by the client.
func (c *Client) SessionCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.sessions)
}
