package main

import (
	"context"

	"github.com/akinalp/huddle/services"
	"github.com/akinalp/huddle/ws"
)

// registerHubCallbacks ties client session lifetime to meeting
// participation: when the last connection of a session closes, the session
// leaves every meeting it is in. The hub calls this off its event loop.
func registerHubCallbacks(hub *ws.Hub, participants services.ParticipantService) {
	hub.OnSessionClosed(func(userID, sessionID string) {
		participants.DisconnectSession(context.Background(), userID, sessionID)
	})
}
