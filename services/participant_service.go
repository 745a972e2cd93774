//go:generate go run go.uber.org/mock/mockgen -source=participant_service.go -destination=../mocks/mock_participant_service.go -package=mocks

package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/akinalp/huddle/models"
	"github.com/akinalp/huddle/pkg"
	"github.com/akinalp/huddle/pkg/keylock"
	"github.com/akinalp/huddle/repository"
	"github.com/akinalp/huddle/ws"
)

// ─── ISP Interfaces ───

// MeetingGetter reads meetings. repository.MeetingRepository satisfies it.
type MeetingGetter interface {
	GetByID(ctx context.Context, id string) (*models.Meeting, error)
}

// MeetingProvider is the part of MeetingService the participant side needs:
// on-demand meetings for room joins and teardown by the last leaver.
type MeetingProvider interface {
	DestroyLocked(ctx context.Context, meeting *models.Meeting) error
	GetOrCreateTransient(ctx context.Context, roomID string) (*models.Meeting, bool, error)
}

// ─── ParticipantService Interface ───

// ParticipantService handles joining, leaving and stream toggles.
type ParticipantService interface {
	// Join adds the (user, session) pair to a meeting, provisioning the
	// meeting's media resources if it has none yet.
	Join(ctx context.Context, meetingID, userID, sessionID string, flags models.StreamFlags) (*models.Participant, error)

	// JoinRoom joins the meeting of a chat room, creating a transient one
	// when the room has none.
	JoinRoom(ctx context.Context, roomID, userID, sessionID string, flags models.StreamFlags) (*models.Meeting, *models.Participant, error)

	// Leave removes the pair. The last leaver of a transient meeting
	// destroys it.
	Leave(ctx context.Context, meetingID, userID, sessionID string) error

	// SetStream switches one capability of a session on or off. Users may
	// switch their own sessions; the room owner may switch anyone's.
	SetStream(ctx context.Context, meetingID, sessionID string, c models.Capability, on bool, requesterID string) error

	EnableAudio(ctx context.Context, meetingID, sessionID, requesterID string) error
	DisableAudio(ctx context.Context, meetingID, sessionID, requesterID string) error
	EnableVideo(ctx context.Context, meetingID, sessionID, requesterID string) error
	DisableVideo(ctx context.Context, meetingID, sessionID, requesterID string) error
	EnableScreen(ctx context.Context, meetingID, sessionID, requesterID string) error
	DisableScreen(ctx context.Context, meetingID, sessionID, requesterID string) error

	// DisconnectSession leaves every meeting the client session is in. Called
	// when the session's last websocket connection closes.
	DisconnectSession(ctx context.Context, userID, sessionID string)
}

// ─── Implementation ───

type participantService struct {
	meetings     MeetingGetter
	participants repository.ParticipantRepository
	provider     MeetingProvider
	rooms        RoomService
	lifecycle    *mediaLifecycle
	events       EventDispatcher
	locks        *keylock.Locker
	logger       *slog.Logger
}

// joinRoomAttempts bounds the retries of JoinRoom when the room's meeting
// is torn down between lookup and join.
const joinRoomAttempts = 3

func NewParticipantService(
	meetings MeetingGetter,
	participants repository.ParticipantRepository,
	provider MeetingProvider,
	rooms RoomService,
	media MediaServerService,
	events EventDispatcher,
	locks *keylock.Locker,
	logger *slog.Logger,
) ParticipantService {
	logger = logger.With("component", "participant")
	return &participantService{
		meetings:     meetings,
		participants: participants,
		provider:     provider,
		rooms:        rooms,
		lifecycle:    newMediaLifecycle(media, logger),
		events:       events,
		locks:        locks,
		logger:       logger,
	}
}

// ─── Join ───

func (s *participantService) Join(ctx context.Context, meetingID, userID, sessionID string, flags models.StreamFlags) (*models.Participant, error) {
	_, p, err := s.join(context.WithoutCancel(ctx), meetingID, userID, sessionID, flags)
	return p, err
}

func (s *participantService) JoinRoom(ctx context.Context, roomID, userID, sessionID string, flags models.StreamFlags) (*models.Meeting, *models.Participant, error) {
	ctx = context.WithoutCancel(ctx)

	if err := validateSessionID(sessionID); err != nil {
		return nil, nil, err
	}
	if _, err := requireMember(ctx, s.rooms, roomID, userID); err != nil {
		return nil, nil, err
	}

	for range joinRoomAttempts {
		meeting, created, err := s.provider.GetOrCreateTransient(ctx, roomID)
		if err != nil {
			return nil, nil, err
		}

		m, p, err := s.join(ctx, meeting.ID, userID, sessionID, flags)
		if err == nil {
			return m, p, nil
		}
		if errors.Is(err, pkg.ErrNotFound) {
			continue
		}
		if created {
			s.discardIfEmpty(ctx, meeting.ID)
		}
		return nil, nil, err
	}
	return nil, nil, fmt.Errorf("%w: meeting ended while joining", pkg.ErrConflict)
}

func (s *participantService) join(ctx context.Context, meetingID, userID, sessionID string, flags models.StreamFlags) (*models.Meeting, *models.Participant, error) {
	if err := validateSessionID(sessionID); err != nil {
		return nil, nil, err
	}

	m, err := s.meetings.GetByID(ctx, meetingID)
	if err != nil {
		return nil, nil, err
	}
	if _, err := requireMember(ctx, s.rooms, m.RoomID, userID); err != nil {
		return nil, nil, err
	}

	unlock := s.locks.Lock(meetingID)
	defer unlock()

	// Re-read inside the section: the meeting may have been destroyed or
	// provisioned while waiting.
	if m, err = s.meetings.GetByID(ctx, meetingID); err != nil {
		return nil, nil, err
	}

	if _, err := s.participants.FindBySession(ctx, meetingID, sessionID); err == nil {
		return nil, nil, fmt.Errorf("%w: session already in meeting", pkg.ErrConflict)
	} else if !errors.Is(err, pkg.ErrNotFound) {
		return nil, nil, err
	}

	var provisioned *models.MeetingMediaResources
	rooms := m.Media
	if rooms == nil {
		if rooms, err = s.lifecycle.provisionMeeting(ctx, meetingID); err != nil {
			return nil, nil, err
		}
		provisioned = rooms
	}

	session, err := s.lifecycle.openParticipant(ctx, rooms, userID, flags)
	var stale *models.MeetingMediaResources
	if errors.Is(err, ErrMediaRoomGone) && provisioned == nil {
		// The gateway lost the meeting's rooms, typically on restart.
		// Build a fresh bundle; the old one is released once replaced.
		s.logger.Warn("meeting media lost on the gateway, provisioning again", "meeting_id", meetingID, "error", err)
		stale = rooms
		if rooms, err = s.lifecycle.provisionMeeting(ctx, meetingID); err != nil {
			return nil, nil, err
		}
		provisioned = rooms
		session, err = s.lifecycle.openParticipant(ctx, rooms, userID, flags)
	}
	if err != nil {
		s.lifecycle.releaseMeeting(ctx, provisioned)
		return nil, nil, err
	}

	p := &models.Participant{
		MeetingID: meetingID,
		UserID:    userID,
		SessionID: sessionID,
		AudioOn:   flags.Audio,
		VideoOn:   flags.Video,
		ScreenOn:  flags.Screen,
		Media:     session,
		JoinedAt:  time.Now().UTC(),
	}
	if err := s.participants.Insert(ctx, p, provisioned); err != nil {
		s.lifecycle.releaseParticipant(ctx, session)
		s.lifecycle.releaseMeeting(ctx, provisioned)
		return nil, nil, err
	}

	s.lifecycle.releaseMeeting(ctx, stale)

	m.Media = rooms
	m.Participants = append(m.Participants, *p)

	s.logger.Info("participant joined",
		"meeting_id", meetingID, "user_id", userID, "session_id", sessionID,
		"audio", flags.Audio, "video", flags.Video, "screen", flags.Screen)
	s.publish(ctx, m, ws.OpMeetingParticipantJoin, p)

	return m, p, nil
}

// discardIfEmpty destroys an on-demand meeting nobody managed to join.
func (s *participantService) discardIfEmpty(ctx context.Context, meetingID string) {
	unlock := s.locks.Lock(meetingID)
	defer unlock()

	m, err := s.meetings.GetByID(ctx, meetingID)
	if err != nil || m.Kind != models.MeetingTransient {
		return
	}
	count, err := s.participants.Count(ctx, meetingID)
	if err != nil || count > 0 {
		return
	}
	if err := s.provider.DestroyLocked(ctx, m); err != nil {
		s.logger.Warn("failed to discard empty meeting", "meeting_id", meetingID, "error", err)
	}
}

// ─── Leave ───

func (s *participantService) Leave(ctx context.Context, meetingID, userID, sessionID string) error {
	ctx = context.WithoutCancel(ctx)

	if err := validateSessionID(sessionID); err != nil {
		return err
	}

	unlock := s.locks.Lock(meetingID)
	defer unlock()

	p, err := s.participants.FindBySession(ctx, meetingID, sessionID)
	if err != nil {
		return err
	}
	if p.UserID != userID {
		return fmt.Errorf("%w: participant", pkg.ErrNotFound)
	}
	m, err := s.meetings.GetByID(ctx, meetingID)
	if err != nil {
		return err
	}

	s.lifecycle.releaseParticipant(ctx, p.Media)
	if err := s.participants.Delete(ctx, meetingID, sessionID); err != nil {
		return err
	}

	s.logger.Info("participant left", "meeting_id", meetingID, "user_id", userID, "session_id", sessionID)
	p.Media = nil
	s.publish(ctx, m, ws.OpMeetingParticipantLeave, p)

	count, err := s.participants.Count(ctx, meetingID)
	if err != nil {
		return err
	}
	if count == 0 && m.Kind == models.MeetingTransient {
		return s.provider.DestroyLocked(ctx, m)
	}
	return nil
}

func (s *participantService) DisconnectSession(ctx context.Context, userID, sessionID string) {
	ctx = context.WithoutCancel(ctx)

	joined, err := s.participants.ListBySession(ctx, userID, sessionID)
	if err != nil {
		s.logger.Error("failed to list session participations", "user_id", userID, "session_id", sessionID, "error", err)
		return
	}

	meetingIDs := lo.Map(joined, func(p models.Participant, _ int) string { return p.MeetingID })
	for _, meetingID := range meetingIDs {
		if err := s.Leave(ctx, meetingID, userID, sessionID); err != nil && !errors.Is(err, pkg.ErrNotFound) {
			s.logger.Warn("failed to leave meeting on disconnect", "meeting_id", meetingID, "user_id", userID, "error", err)
		}
	}
}

// ─── Streams ───

func (s *participantService) SetStream(ctx context.Context, meetingID, sessionID string, c models.Capability, on bool, requesterID string) error {
	ctx = context.WithoutCancel(ctx)

	unlock := s.locks.Lock(meetingID)
	defer unlock()

	p, err := s.participants.FindBySession(ctx, meetingID, sessionID)
	if err != nil {
		return err
	}
	m, err := s.meetings.GetByID(ctx, meetingID)
	if err != nil {
		return err
	}
	if p.UserID != requesterID {
		if err := requireOwner(ctx, s.rooms, m.RoomID, requesterID); err != nil {
			return err
		}
	}

	if p.StreamOn(c) == on {
		return nil
	}
	if p.Media == nil {
		return fmt.Errorf("%w: participant has no media session", pkg.ErrInternal)
	}

	if on {
		if err := s.lifecycle.enable(ctx, m.Media, p.Media, c, p.UserID); err != nil {
			return err
		}
	} else {
		s.lifecycle.disable(ctx, p.Media, c)
	}

	p.SetStreamOn(c, on)
	if err := s.participants.UpdateStreams(ctx, p); err != nil {
		if on {
			s.lifecycle.disable(ctx, p.Media, c)
		}
		return err
	}

	s.logger.Info("stream toggled", "meeting_id", meetingID, "session_id", sessionID, "capability", c, "on", on, "by", requesterID)
	s.publish(ctx, m, ws.OpMeetingParticipantUpdate, p)
	return nil
}

func (s *participantService) EnableAudio(ctx context.Context, meetingID, sessionID, requesterID string) error {
	return s.SetStream(ctx, meetingID, sessionID, models.CapabilityAudio, true, requesterID)
}

func (s *participantService) DisableAudio(ctx context.Context, meetingID, sessionID, requesterID string) error {
	return s.SetStream(ctx, meetingID, sessionID, models.CapabilityAudio, false, requesterID)
}

func (s *participantService) EnableVideo(ctx context.Context, meetingID, sessionID, requesterID string) error {
	return s.SetStream(ctx, meetingID, sessionID, models.CapabilityVideo, true, requesterID)
}

func (s *participantService) DisableVideo(ctx context.Context, meetingID, sessionID, requesterID string) error {
	return s.SetStream(ctx, meetingID, sessionID, models.CapabilityVideo, false, requesterID)
}

func (s *participantService) EnableScreen(ctx context.Context, meetingID, sessionID, requesterID string) error {
	return s.SetStream(ctx, meetingID, sessionID, models.CapabilityScreen, true, requesterID)
}

func (s *participantService) DisableScreen(ctx context.Context, meetingID, sessionID, requesterID string) error {
	return s.SetStream(ctx, meetingID, sessionID, models.CapabilityScreen, false, requesterID)
}

// ─── Helpers ───

func validateSessionID(sessionID string) error {
	if strings.TrimSpace(sessionID) == "" {
		return fmt.Errorf("%w: session id is required", pkg.ErrBadRequest)
	}
	return nil
}

// publish sends a participant event to every member of the meeting's room.
func (s *participantService) publish(ctx context.Context, m *models.Meeting, op string, p *models.Participant) {
	members, err := s.rooms.MembersOf(ctx, m.RoomID)
	if err != nil {
		s.logger.Warn("failed to resolve event recipients", "room_id", m.RoomID, "op", op, "error", err)
		return
	}
	if len(members) == 0 {
		return
	}
	s.events.Publish(members, ws.Event{
		Op:   op,
		Data: ws.ParticipantEventData{MeetingID: m.ID, RoomID: m.RoomID, Participant: p},
	})
}
