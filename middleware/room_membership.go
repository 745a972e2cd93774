package middleware

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/akinalp/huddle/handlers"
	"github.com/akinalp/huddle/pkg"
	"github.com/akinalp/huddle/services"
)

// RoomMembershipMiddleware rejects requests on /api/rooms/{roomId}/... from
// users outside the chat room. Runs after AuthMiddleware, and before the
// join limiter so strangers cannot use up a member's quota.
type RoomMembershipMiddleware struct {
	rooms services.RoomService
}

func NewRoomMembershipMiddleware(rooms services.RoomService) *RoomMembershipMiddleware {
	return &RoomMembershipMiddleware{rooms: rooms}
}

func (m *RoomMembershipMiddleware) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := handlers.UserIDFrom(r.Context())
		if !ok {
			pkg.ErrorWithMessage(w, http.StatusUnauthorized, "user not found in context")
			return
		}

		roomID := chi.URLParam(r, "roomId")
		if roomID == "" {
			pkg.ErrorWithMessage(w, http.StatusBadRequest, "roomId is required")
			return
		}

		membership, err := m.rooms.CheckMembership(r.Context(), roomID, userID)
		if err != nil {
			pkg.Error(w, err)
			return
		}
		if !membership.IsMember {
			pkg.ErrorWithMessage(w, http.StatusForbidden, "you are not a member of this room")
			return
		}

		next.ServeHTTP(w, r)
	})
}
