package handlers

import (
	"errors"
	"net/http"

	"github.com/akinalp/huddle/models"
	"github.com/akinalp/huddle/pkg"
	"github.com/akinalp/huddle/services"
)

// RoomHandler receives chat room snapshots from the room management
// service. Its routes sit behind middleware.InternalAuth.
type RoomHandler struct {
	rooms    services.RoomService
	meetings services.MeetingService
}

func NewRoomHandler(rooms services.RoomService, meetings services.MeetingService) *RoomHandler {
	return &RoomHandler{rooms: rooms, meetings: meetings}
}

// Sync godoc
// PUT /internal/rooms/{roomId}
//
//	Request: { "name": "Standup", "members": [{ "user_id": "...", "is_owner": true, "email": "..." }] }
func (h *RoomHandler) Sync(w http.ResponseWriter, r *http.Request) {
	var req models.SyncRoomRequest
	if !decode(w, r, &req) {
		return
	}

	room, err := h.rooms.Sync(r.Context(), pathParam(r, "roomId"), &req)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, room)
}

// Delete godoc
// DELETE /internal/rooms/{roomId}
// The room's meeting is destroyed first so its members still get meeting_end.
func (h *RoomHandler) Delete(w http.ResponseWriter, r *http.Request) {
	roomID := pathParam(r, "roomId")

	if err := h.meetings.DestroyByRoomID(r.Context(), roomID); err != nil {
		pkg.Error(w, err)
		return
	}
	if err := h.rooms.Delete(r.Context(), roomID); err != nil && !errors.Is(err, pkg.ErrNotFound) {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, map[string]string{"message": "room deleted"})
}
