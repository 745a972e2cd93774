package main

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/akinalp/huddle/middleware"
)

// requestTimeout bounds a request's own work. Orchestration already started
// runs to completion regardless.
const requestTimeout = 60 * time.Second

func initRoutes(h *Handlers, svcs *Services, internalToken string) http.Handler {
	authMw := middleware.NewAuthMiddleware(svcs.Auth)
	roomMw := middleware.NewRoomMembershipMiddleware(svcs.Room)
	internalMw := middleware.NewInternalAuth(internalToken)

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	r.Get("/api/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok","service":"huddle"}`))
	})

	// The websocket authenticates with a query token and must not time out.
	r.Get("/ws", h.WS.HandleConnection)

	r.Group(func(r chi.Router) {
		r.Use(authMw.Require)
		r.Use(chimw.Timeout(requestTimeout))

		r.Route("/api/meetings", func(r chi.Router) {
			r.Get("/", h.Meeting.List)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.Meeting.Get)
				r.Delete("/", h.Meeting.Delete)
				r.Post("/join", h.Meeting.Join)
				r.Post("/leave", h.Meeting.Leave)
				r.Post("/activate", h.Meeting.Activate)
				r.Post("/deactivate", h.Meeting.Deactivate)
				r.Post("/streams/{capability}/enable", h.Meeting.EnableStream)
				r.Post("/streams/{capability}/disable", h.Meeting.DisableStream)
			})
		})

		r.Route("/api/rooms/{roomId}", func(r chi.Router) {
			r.Use(roomMw.Require)

			r.Get("/meeting", h.Meeting.GetRoomMeeting)
			r.Post("/meeting", h.Meeting.CreatePersistent)
			r.Post("/meeting/join", h.Meeting.JoinRoom)
		})
	})

	r.Route("/internal/rooms/{roomId}", func(r chi.Router) {
		r.Use(internalMw.Require)

		r.Put("/", h.Room.Sync)
		r.Delete("/", h.Room.Delete)
	})

	return r
}
