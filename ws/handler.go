package ws

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/akinalp/huddle/models"
)

// TokenValidator is the slice of the auth middleware the handler needs.
// Declared here so ws does not import middleware.
type TokenValidator interface {
	ValidateAccessToken(tokenString string) (*models.TokenClaims, error)
}

const maxSessionIDLength = 128

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Origin checks are done by the CORS layer in front of the API.
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type Handler struct {
	hub            *Hub
	tokenValidator TokenValidator
}

func NewHandler(hub *Hub, tokenValidator TokenValidator) *Handler {
	return &Handler{
		hub:            hub,
		tokenValidator: tokenValidator,
	}
}

// HandleConnection upgrades the request and registers the client.
// Browsers cannot set headers on WebSocket requests, so the token travels
// in the query:
//
//	ws://server/ws?token=JWT&session_id=SESSION
//
// session_id is optional; a new one is generated and returned in the
// ready event when it is missing.
func (h *Handler) HandleConnection(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		http.Error(w, "missing token", http.StatusUnauthorized)
		return
	}

	claims, err := h.tokenValidator.ValidateAccessToken(token)
	if err != nil {
		http.Error(w, "invalid token", http.StatusUnauthorized)
		return
	}

	sessionID := strings.TrimSpace(r.URL.Query().Get("session_id"))
	if len(sessionID) > maxSessionIDLength {
		http.Error(w, "session_id too long", http.StatusBadRequest)
		return
	}
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.hub.logger.Warn("upgrade failed", "user_id", claims.UserID, "error", err)
		return
	}

	client := &Client{
		hub:       h.hub,
		conn:      conn,
		userID:    claims.UserID,
		sessionID: sessionID,
		send:      make(chan []byte, sendBufferSize),
	}

	h.hub.register <- client

	client.sendEvent(Event{
		Op:   OpReady,
		Data: ReadyData{UserID: claims.UserID, SessionID: sessionID},
	})

	go client.WritePump()
	client.ReadPump()
}
