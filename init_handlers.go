package main

import (
	"log/slog"

	"github.com/akinalp/huddle/handlers"
	"github.com/akinalp/huddle/ws"
)

type Handlers struct {
	Meeting *handlers.MeetingHandler
	Room    *handlers.RoomHandler
	WS      *ws.Handler
}

func initHandlers(svcs *Services, closers *Closers, hub *ws.Hub, logger *slog.Logger) *Handlers {
	return &Handlers{
		Meeting: handlers.NewMeetingHandler(svcs.Meeting, svcs.Participant, svcs.MediaToken, closers.JoinLimiter, logger),
		Room:    handlers.NewRoomHandler(svcs.Room, svcs.Meeting),
		WS:      ws.NewHandler(hub, svcs.Auth),
	}
}
