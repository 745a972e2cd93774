package handlers

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/akinalp/huddle/models"
	"github.com/akinalp/huddle/pkg"
	"github.com/akinalp/huddle/pkg/ratelimit"
	"github.com/akinalp/huddle/services"
)

// MeetingHandler serves the meeting and participant endpoints.
type MeetingHandler struct {
	meetings     services.MeetingService
	participants services.ParticipantService
	tokens       services.MediaTokenService
	joinLimiter  *ratelimit.Limiter // nil: joins are not limited
	logger       *slog.Logger
}

func NewMeetingHandler(
	meetings services.MeetingService,
	participants services.ParticipantService,
	tokens services.MediaTokenService,
	joinLimiter *ratelimit.Limiter,
	logger *slog.Logger,
) *MeetingHandler {
	return &MeetingHandler{
		meetings:     meetings,
		participants: participants,
		tokens:       tokens,
		joinLimiter:  joinLimiter,
		logger:       logger.With("component", "http"),
	}
}

// ─── Meetings ───

// Get godoc
// GET /api/meetings/{id}
func (h *MeetingHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	m, err := h.meetings.Get(r.Context(), pathParam(r, "id"), userID)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, m)
}

// List godoc
// GET /api/meetings
func (h *MeetingHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	list, err := h.meetings.List(r.Context(), userID)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, list)
}

// Delete godoc
// DELETE /api/meetings/{id}
// Room owner only; every participant is disconnected.
func (h *MeetingHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	if err := h.meetings.Delete(r.Context(), pathParam(r, "id"), userID); err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, map[string]string{"message": "meeting deleted"})
}

// Activate godoc
// POST /api/meetings/{id}/activate
func (h *MeetingHandler) Activate(w http.ResponseWriter, r *http.Request) {
	h.switchPersistent(w, r, h.meetings.Activate)
}

// Deactivate godoc
// POST /api/meetings/{id}/deactivate
func (h *MeetingHandler) Deactivate(w http.ResponseWriter, r *http.Request) {
	h.switchPersistent(w, r, h.meetings.Deactivate)
}

func (h *MeetingHandler) switchPersistent(
	w http.ResponseWriter,
	r *http.Request,
	fn func(ctx context.Context, meetingID, requesterID string) (*models.Meeting, error),
) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	m, err := fn(r.Context(), pathParam(r, "id"), userID)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, m)
}

// ─── Participation ───

// Join godoc
// POST /api/meetings/{id}/join
//
//	Request:  { "session_id": "...", "audio": true, "video": false, "screen": false }
//	Response: { "meeting": {...}, "participant": {...}, "media_token": "eyJ..." }
func (h *MeetingHandler) Join(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok || !h.allowJoin(w, userID) {
		return
	}

	var req models.JoinMeetingRequest
	if !decode(w, r, &req) {
		return
	}

	meetingID := pathParam(r, "id")
	p, err := h.participants.Join(r.Context(), meetingID, userID, req.SessionID, req.Flags())
	if err != nil {
		pkg.Error(w, err)
		return
	}

	m, err := h.meetings.Get(r.Context(), meetingID, userID)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	h.writeJoined(w, m, p)
}

// JoinRoom godoc
// POST /api/rooms/{roomId}/meeting/join
// Joins the room's meeting, starting one if the room has none.
func (h *MeetingHandler) JoinRoom(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok || !h.allowJoin(w, userID) {
		return
	}

	var req models.JoinMeetingRequest
	if !decode(w, r, &req) {
		return
	}

	m, p, err := h.participants.JoinRoom(r.Context(), pathParam(r, "roomId"), userID, req.SessionID, req.Flags())
	if err != nil {
		pkg.Error(w, err)
		return
	}

	// Re-read so the response lists everyone, the caller included.
	if fresh, err := h.meetings.Get(r.Context(), m.ID, userID); err == nil {
		m = fresh
	}

	h.writeJoined(w, m, p)
}

// Leave godoc
// POST /api/meetings/{id}/leave
func (h *MeetingHandler) Leave(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req models.LeaveMeetingRequest
	if !decode(w, r, &req) {
		return
	}

	if err := h.participants.Leave(r.Context(), pathParam(r, "id"), userID, req.SessionID); err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, map[string]string{"message": "left meeting"})
}

// EnableStream godoc
// POST /api/meetings/{id}/streams/{capability}/enable
func (h *MeetingHandler) EnableStream(w http.ResponseWriter, r *http.Request) {
	h.setStream(w, r, true)
}

// DisableStream godoc
// POST /api/meetings/{id}/streams/{capability}/disable
// The room owner may disable another participant's stream.
func (h *MeetingHandler) DisableStream(w http.ResponseWriter, r *http.Request) {
	h.setStream(w, r, false)
}

func (h *MeetingHandler) setStream(w http.ResponseWriter, r *http.Request, on bool) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	c, err := models.ParseCapability(pathParam(r, "capability"))
	if err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	var req models.StreamRequest
	if !decode(w, r, &req) {
		return
	}

	meetingID := pathParam(r, "id")
	toggle := h.toggleFor(c, on)
	if err := toggle(r.Context(), meetingID, req.SessionID, userID); err != nil {
		pkg.Error(w, err)
		return
	}

	resp := models.StreamResponse{Capability: c, On: on}
	if on && h.tokens.Enabled() {
		resp.MediaToken = h.reissueToken(r.Context(), meetingID, req.SessionID, userID)
	}

	pkg.JSON(w, http.StatusOK, resp)
}

// reissueToken issues a token carrying the session's current publish rights.
// Failures are logged; the stream is already on.
func (h *MeetingHandler) reissueToken(ctx context.Context, meetingID, sessionID, userID string) string {
	m, err := h.meetings.Get(ctx, meetingID, userID)
	if err != nil {
		h.logger.Warn("failed to reload meeting for media token", "meeting_id", meetingID, "error", err)
		return ""
	}

	for i := range m.Participants {
		p := &m.Participants[i]
		if p.SessionID != sessionID {
			continue
		}
		token, err := h.tokens.Issue(m, p)
		if err != nil {
			h.logger.Warn("failed to issue media token", "meeting_id", meetingID, "user_id", userID, "error", err)
		}
		return token
	}
	return ""
}

func (h *MeetingHandler) toggleFor(c models.Capability, on bool) func(ctx context.Context, meetingID, sessionID, requesterID string) error {
	switch {
	case c == models.CapabilityAudio && on:
		return h.participants.EnableAudio
	case c == models.CapabilityAudio:
		return h.participants.DisableAudio
	case c == models.CapabilityVideo && on:
		return h.participants.EnableVideo
	case c == models.CapabilityVideo:
		return h.participants.DisableVideo
	case on:
		return h.participants.EnableScreen
	default:
		return h.participants.DisableScreen
	}
}

// ─── Room-scoped ───

// GetRoomMeeting godoc
// GET /api/rooms/{roomId}/meeting
func (h *MeetingHandler) GetRoomMeeting(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	m, err := h.meetings.GetByRoomID(r.Context(), pathParam(r, "roomId"), userID)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, m)
}

// CreatePersistent godoc
// POST /api/rooms/{roomId}/meeting
// Creates a meeting that stays when everyone has left. Room owner only.
func (h *MeetingHandler) CreatePersistent(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	m, err := h.meetings.CreatePersistent(r.Context(), pathParam(r, "roomId"), userID)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusCreated, m)
}

// ─── Helpers ───

// allowJoin applies the per-user join limit. It writes 429 with
// Retry-After and returns false when the limit is hit.
func (h *MeetingHandler) allowJoin(w http.ResponseWriter, userID string) bool {
	if h.joinLimiter == nil || h.joinLimiter.Allow(userID) {
		return true
	}
	w.Header().Set("Retry-After", strconv.Itoa(h.joinLimiter.RetryAfterSeconds(userID)))
	pkg.Error(w, fmt.Errorf("%w: too many join attempts", pkg.ErrTooManyRequests))
	return false
}

// writeJoined answers a successful join. A failed media token does not undo
// the join; the client can still signal through the gateway directly.
func (h *MeetingHandler) writeJoined(w http.ResponseWriter, m *models.Meeting, p *models.Participant) {
	token, err := h.tokens.Issue(m, p)
	if err != nil {
		h.logger.Warn("failed to issue media token", "meeting_id", m.ID, "user_id", p.UserID, "error", err)
	}

	pkg.JSON(w, http.StatusOK, models.JoinMeetingResponse{
		Meeting:     m,
		Participant: p,
		MediaToken:  token,
		MediaURL:    h.tokens.URL(),
	})
}
