package janus

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"

	"github.com/akinalp/huddle/pkg/logger"
)

// fakeGateway answers requests the way the gateway does. reply builds the
// frames sent back for one request.
type fakeGateway struct {
	mu       sync.Mutex
	requests []map[string]any
	reply    func(req map[string]any) []map[string]any
}

func (g *fakeGateway) handler(t *testing.T) http.HandlerFunc {
	upgrader := websocket.Upgrader{Subprotocols: []string{subprotocol}}
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Errorf("upgrade: %v", err)
			return
		}
		defer conn.Close()

		for {
			var req map[string]any
			if err := conn.ReadJSON(&req); err != nil {
				return
			}
			g.mu.Lock()
			g.requests = append(g.requests, req)
			g.mu.Unlock()

			for _, frame := range g.reply(req) {
				frame["transaction"] = req["transaction"]
				if err := conn.WriteJSON(frame); err != nil {
					return
				}
			}
		}
	}
}

func (g *fakeGateway) seen(kind string) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	n := 0
	for _, r := range g.requests {
		if r["janus"] == kind {
			n++
		}
	}
	return n
}

func newTestClient(t *testing.T, g *fakeGateway, opts Options) *Client {
	t.Helper()
	srv := httptest.NewServer(g.handler(t))
	t.Cleanup(srv.Close)

	c := New("ws"+strings.TrimPrefix(srv.URL, "http"), opts, logger.Discard())
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func defaultReply(req map[string]any) []map[string]any {
	switch req["janus"] {
	case "create":
		return []map[string]any{{"janus": "success", "data": map[string]any{"id": 1001}}}
	case "attach":
		return []map[string]any{{"janus": "success", "data": map[string]any{"id": 2002}}}
	case "detach", "destroy":
		return []map[string]any{{"janus": "success"}}
	case "keepalive":
		return []map[string]any{{"janus": "ack"}}
	case "message":
		body := req["body"].(map[string]any)
		if body["request"] == "join" {
			return []map[string]any{
				{"janus": "ack"},
				{"janus": "event", "plugindata": map[string]any{
					"plugin": PluginAudioBridge,
					"data":   map[string]any{"audiobridge": "joined", "room": body["room"]},
				}},
			}
		}
		return []map[string]any{{"janus": "success", "plugindata": map[string]any{
			"plugin": PluginAudioBridge,
			"data":   map[string]any{"audiobridge": "created", "room": 77},
		}}}
	}
	return []map[string]any{{"janus": "error", "error": map[string]any{"code": 490, "reason": "unknown"}}}
}

func TestClient_Lifecycle(t *testing.T) {
	t.Run("should create session, attach and detach", func(t *testing.T) {
		req := require.New(t)
		g := &fakeGateway{reply: defaultReply}
		c := newTestClient(t, g, Options{APISecret: "s3cret"})
		ctx := context.Background()

		session, err := c.CreateSession(ctx)
		req.NoError(err)
		req.Equal(int64(1001), session)
		req.Equal(1, c.SessionCount())

		handle, err := c.Attach(ctx, session, PluginAudioBridge)
		req.NoError(err)
		req.Equal(int64(2002), handle)

		req.NoError(c.Detach(ctx, session, handle))
		req.NoError(c.DestroySession(ctx, session))
		req.Equal(0, c.SessionCount())

		g.mu.Lock()
		first := g.requests[0]
		g.mu.Unlock()
		req.Equal("s3cret", first["apisecret"])
	})

	t.Run("should return plugin data of a synchronous request", func(t *testing.T) {
		req := require.New(t)
		c := newTestClient(t, &fakeGateway{reply: defaultReply}, Options{})

		data, err := c.Message(context.Background(), 1, 2, map[string]any{"request": "create"})
		req.NoError(err)

		var out struct {
			Room int64 `json:"room"`
		}
		req.NoError(json.Unmarshal(data, &out))
		req.Equal(int64(77), out.Room)
	})

	t.Run("should wait past ack for the event of an asynchronous request", func(t *testing.T) {
		req := require.New(t)
		c := newTestClient(t, &fakeGateway{reply: defaultReply}, Options{})

		data, err := c.Message(context.Background(), 1, 2, map[string]any{"request": "join", "room": 5})
		req.NoError(err)
		req.Contains(string(data), `"joined"`)
	})
}

func TestClient_Errors(t *testing.T) {
	t.Run("should surface core errors as gone when the session is missing", func(t *testing.T) {
		req := require.New(t)
		g := &fakeGateway{reply: func(map[string]any) []map[string]any {
			return []map[string]any{{"janus": "error", "error": map[string]any{"code": CodeSessionNotFound, "reason": "No such session"}}}
		}}
		c := newTestClient(t, g, Options{})

		err := c.DestroySession(context.Background(), 42)
		req.Error(err)
		req.True(IsGone(err))
	})

	t.Run("should surface plugin error codes", func(t *testing.T) {
		req := require.New(t)
		g := &fakeGateway{reply: func(map[string]any) []map[string]any {
			return []map[string]any{{"janus": "success", "plugindata": map[string]any{
				"plugin": PluginAudioBridge,
				"data":   map[string]any{"audiobridge": "event", "error_code": CodeAudioBridgeNoSuchRoom, "error": "No such room"},
			}}}
		}}
		c := newTestClient(t, g, Options{})

		_, err := c.Message(context.Background(), 1, 2, map[string]any{"request": "destroy", "room": 9})
		var je *Error
		req.True(errors.As(err, &je))
		req.Equal(CodeAudioBridgeNoSuchRoom, je.Code)
		req.True(IsGone(err))
	})

	t.Run("should not treat other errors as gone", func(t *testing.T) {
		require.False(t, IsGone(&Error{Code: 403, Reason: "unauthorized"}))
		require.False(t, IsGone(errors.New("boom")))
	})

	t.Run("should tell missing rooms apart from missing sessions", func(t *testing.T) {
		req := require.New(t)
		req.True(IsRoomGone(fmt.Errorf("join: %w", &Error{Code: CodeVideoRoomNoSuchRoom})))
		req.True(IsRoomGone(&Error{Code: CodeAudioBridgeNoSuchRoom}))
		req.False(IsRoomGone(&Error{Code: CodeSessionNotFound}))
		req.False(IsRoomGone(errors.New("boom")))
	})

	t.Run("should report an unreachable gateway as unavailable", func(t *testing.T) {
		req := require.New(t)
		srv := httptest.NewServer(http.NotFoundHandler())
		url := "ws" + strings.TrimPrefix(srv.URL, "http")
		srv.Close()

		c := New(url, Options{RequestTimeout: time.Second}, logger.Discard())
		defer c.Close()

		_, err := c.CreateSession(context.Background())
		req.ErrorIs(err, ErrUnavailable)
	})

	t.Run("should time out when no reply arrives", func(t *testing.T) {
		req := require.New(t)
		g := &fakeGateway{reply: func(map[string]any) []map[string]any { return nil }}
		c := newTestClient(t, g, Options{RequestTimeout: 50 * time.Millisecond})

		_, err := c.CreateSession(context.Background())
		req.ErrorIs(err, ErrUnavailable)
	})
}

func TestClient_Keepalive(t *testing.T) {
	t.Run("should keep created sessions alive", func(t *testing.T) {
		req := require.New(t)
		g := &fakeGateway{reply: defaultReply}
		c := newTestClient(t, g, Options{KeepaliveInterval: 20 * time.Millisecond})

		_, err := c.CreateSession(context.Background())
		req.NoError(err)

		req.Eventually(func() bool { return g.seen("keepalive") > 0 }, 2*time.Second, 10*time.Millisecond)
	})
}
