//go:generate go run go.uber.org/mock/mockgen -source=meeting_service.go -destination=../mocks/mock_meeting_service.go -package=mocks

package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/akinalp/huddle/models"
	"github.com/akinalp/huddle/pkg"
	"github.com/akinalp/huddle/pkg/email"
	"github.com/akinalp/huddle/pkg/keylock"
	"github.com/akinalp/huddle/repository"
	"github.com/akinalp/huddle/ws"
)

// ─── ISP Interfaces ───

// ParticipantRemover is what the teardown needs from the participant store.
type ParticipantRemover interface {
	ListByMeeting(ctx context.Context, meetingID string) ([]models.Participant, error)
	Count(ctx context.Context, meetingID string) (int, error)
	Delete(ctx context.Context, meetingID, sessionID string) error
}

// MeetingTeardown destroys a meeting whose keylock section the caller
// already holds.
type MeetingTeardown interface {
	DestroyLocked(ctx context.Context, meeting *models.Meeting) error
}

// ─── MeetingService Interface ───

// MeetingService manages meeting lifecycles.
type MeetingService interface {
	MeetingTeardown

	// Get returns a meeting with its participants. The requester must be a
	// member of the meeting's chat room.
	Get(ctx context.Context, meetingID, requesterID string) (*models.Meeting, error)

	GetByRoomID(ctx context.Context, roomID, requesterID string) (*models.Meeting, error)

	// List returns the meetings of every chat room the user is a member of.
	List(ctx context.Context, userID string) ([]models.Meeting, error)

	// GetOrCreateTransient returns the room's meeting, creating a transient
	// one when the room has none. created reports whether this call made it.
	GetOrCreateTransient(ctx context.Context, roomID string) (meeting *models.Meeting, created bool, err error)

	// CreatePersistent creates a meeting that outlives its participants.
	// Only the room owner may do this.
	CreatePersistent(ctx context.Context, roomID, requesterID string) (*models.Meeting, error)

	// Activate provisions the media resources of a persistent meeting ahead
	// of the first join.
	Activate(ctx context.Context, meetingID, requesterID string) (*models.Meeting, error)

	// Deactivate releases the media resources of an empty persistent meeting.
	Deactivate(ctx context.Context, meetingID, requesterID string) (*models.Meeting, error)

	// Destroy tears the meeting down: participants, media resources, the
	// meeting row and the room's reference to it.
	Destroy(ctx context.Context, meetingID string) error

	// DestroyByRoomID destroys the room's meeting if it has one.
	DestroyByRoomID(ctx context.Context, roomID string) error

	// Delete is Destroy on behalf of a user; only the room owner may do it.
	Delete(ctx context.Context, meetingID, requesterID string) error
}

// ─── Implementation ───

type meetingService struct {
	meetings     repository.MeetingRepository
	participants ParticipantRemover
	rooms        RoomService
	lifecycle    *mediaLifecycle
	events       EventDispatcher
	locks        *keylock.Locker
	mailer       email.Sender // nil: no meeting-ended mails
	logger       *slog.Logger
}

// mailTimeout bounds the asynchronous meeting-ended mail.
const mailTimeout = 15 * time.Second

// NewMeetingService wires the meeting orchestrator. locks must be the same
// Locker the ParticipantService uses.
func NewMeetingService(
	meetings repository.MeetingRepository,
	participants ParticipantRemover,
	rooms RoomService,
	media MediaServerService,
	events EventDispatcher,
	locks *keylock.Locker,
	mailer email.Sender,
	logger *slog.Logger,
) MeetingService {
	logger = logger.With("component", "meeting")
	return &meetingService{
		meetings:     meetings,
		participants: participants,
		rooms:        rooms,
		lifecycle:    newMediaLifecycle(media, logger),
		events:       events,
		locks:        locks,
		mailer:       mailer,
		logger:       logger,
	}
}

// ─── Reads ───

func (s *meetingService) Get(ctx context.Context, meetingID, requesterID string) (*models.Meeting, error) {
	m, err := s.meetings.GetByID(ctx, meetingID)
	if err != nil {
		return nil, err
	}
	if _, err := requireMember(ctx, s.rooms, m.RoomID, requesterID); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *meetingService) GetByRoomID(ctx context.Context, roomID, requesterID string) (*models.Meeting, error) {
	if _, err := requireMember(ctx, s.rooms, roomID, requesterID); err != nil {
		return nil, err
	}
	return s.meetings.GetByRoomID(ctx, roomID)
}

func (s *meetingService) List(ctx context.Context, userID string) ([]models.Meeting, error) {
	roomIDs, err := s.rooms.RoomsOf(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(roomIDs) == 0 {
		return []models.Meeting{}, nil
	}
	return s.meetings.ListByRoomIDs(ctx, roomIDs)
}

// ─── Creation ───

func (s *meetingService) GetOrCreateTransient(ctx context.Context, roomID string) (*models.Meeting, bool, error) {
	m, err := s.meetings.GetByRoomID(ctx, roomID)
	if err == nil {
		return m, false, nil
	}
	if !errors.Is(err, pkg.ErrNotFound) {
		return nil, false, err
	}

	m, err = s.create(ctx, roomID, models.MeetingTransient)
	if errors.Is(err, pkg.ErrConflict) {
		// Another request created it first.
		m, err = s.meetings.GetByRoomID(ctx, roomID)
		return m, false, err
	}
	if err != nil {
		return nil, false, err
	}
	return m, true, nil
}

func (s *meetingService) CreatePersistent(ctx context.Context, roomID, requesterID string) (*models.Meeting, error) {
	if err := requireOwner(ctx, s.rooms, roomID, requesterID); err != nil {
		return nil, err
	}
	return s.create(ctx, roomID, models.MeetingPersistent)
}

func (s *meetingService) create(ctx context.Context, roomID string, kind models.MeetingKind) (*models.Meeting, error) {
	m := &models.Meeting{
		ID:           uuid.NewString(),
		RoomID:       roomID,
		Kind:         kind,
		Participants: []models.Participant{},
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.meetings.Create(ctx, m); err != nil {
		return nil, err
	}
	if err := s.rooms.SetMeetingRef(ctx, roomID, m.ID); err != nil {
		s.logger.Warn("failed to set room meeting reference", "room_id", roomID, "meeting_id", m.ID, "error", err)
	}

	s.logger.Info("meeting created", "meeting_id", m.ID, "room_id", roomID, "kind", kind)
	return m, nil
}

// ─── Persistent meetings ───

func (s *meetingService) Activate(ctx context.Context, meetingID, requesterID string) (*models.Meeting, error) {
	ctx = context.WithoutCancel(ctx)

	m, err := s.ownedPersistent(ctx, meetingID, requesterID)
	if err != nil {
		return nil, err
	}

	unlock := s.locks.Lock(m.ID)
	defer unlock()

	if m, err = s.meetings.GetByID(ctx, meetingID); err != nil {
		return nil, err
	}
	if m.Media != nil {
		return m, nil
	}

	media, err := s.lifecycle.provisionMeeting(ctx, m.ID)
	if err != nil {
		return nil, err
	}
	if err := s.meetings.SetMedia(ctx, m.ID, media); err != nil {
		s.lifecycle.releaseMeeting(ctx, media)
		return nil, err
	}

	m.Media = media
	return m, nil
}

func (s *meetingService) Deactivate(ctx context.Context, meetingID, requesterID string) (*models.Meeting, error) {
	ctx = context.WithoutCancel(ctx)

	m, err := s.ownedPersistent(ctx, meetingID, requesterID)
	if err != nil {
		return nil, err
	}

	unlock := s.locks.Lock(m.ID)
	defer unlock()

	if m, err = s.meetings.GetByID(ctx, meetingID); err != nil {
		return nil, err
	}
	if m.Media == nil {
		return m, nil
	}

	count, err := s.participants.Count(ctx, m.ID)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, fmt.Errorf("%w: meeting has participants", pkg.ErrConflict)
	}

	if err := s.meetings.SetMedia(ctx, m.ID, nil); err != nil {
		return nil, err
	}
	s.lifecycle.releaseMeeting(ctx, m.Media)

	m.Media = nil
	return m, nil
}

func (s *meetingService) ownedPersistent(ctx context.Context, meetingID, requesterID string) (*models.Meeting, error) {
	m, err := s.meetings.GetByID(ctx, meetingID)
	if err != nil {
		return nil, err
	}
	if err := requireOwner(ctx, s.rooms, m.RoomID, requesterID); err != nil {
		return nil, err
	}
	if m.Kind != models.MeetingPersistent {
		return nil, fmt.Errorf("%w: meeting is not persistent", pkg.ErrBadRequest)
	}
	return m, nil
}

// ─── Teardown ───

func (s *meetingService) Destroy(ctx context.Context, meetingID string) error {
	ctx = context.WithoutCancel(ctx)

	unlock := s.locks.Lock(meetingID)
	defer unlock()

	m, err := s.meetings.GetByID(ctx, meetingID)
	if err != nil {
		return err
	}
	return s.DestroyLocked(ctx, m)
}

func (s *meetingService) DestroyByRoomID(ctx context.Context, roomID string) error {
	m, err := s.meetings.GetByRoomID(ctx, roomID)
	if errors.Is(err, pkg.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	err = s.Destroy(ctx, m.ID)
	if errors.Is(err, pkg.ErrNotFound) {
		// Destroyed by its last leaver in the meantime.
		return nil
	}
	return err
}

func (s *meetingService) Delete(ctx context.Context, meetingID, requesterID string) error {
	m, err := s.meetings.GetByID(ctx, meetingID)
	if err != nil {
		return err
	}
	if err := requireOwner(ctx, s.rooms, m.RoomID, requesterID); err != nil {
		return err
	}
	return s.Destroy(ctx, meetingID)
}

// DestroyLocked releases every participant's media session and deletes its
// row, releases the meeting's shared resources, deletes the meeting and
// clears the room reference. Remote failures are logged and never stop the
// local deletion.
func (s *meetingService) DestroyLocked(ctx context.Context, m *models.Meeting) error {
	participants, err := s.participants.ListByMeeting(ctx, m.ID)
	if err != nil {
		return err
	}
	for i := range participants {
		p := &participants[i]
		s.lifecycle.releaseParticipant(ctx, p.Media)
		if err := s.participants.Delete(ctx, m.ID, p.SessionID); err != nil && !errors.Is(err, pkg.ErrNotFound) {
			return err
		}
	}

	s.lifecycle.releaseMeeting(ctx, m.Media)

	if err := s.meetings.Delete(ctx, m.ID); err != nil && !errors.Is(err, pkg.ErrNotFound) {
		return err
	}
	if err := s.rooms.ClearMeetingRef(ctx, m.RoomID); err != nil {
		s.logger.Warn("failed to clear room meeting reference", "room_id", m.RoomID, "error", err)
	}

	s.logger.Info("meeting destroyed", "meeting_id", m.ID, "room_id", m.RoomID, "participants", len(participants))

	members, err := s.rooms.MembersOf(ctx, m.RoomID)
	if err != nil {
		s.logger.Warn("failed to resolve meeting_end recipients", "room_id", m.RoomID, "error", err)
	}
	if len(members) > 0 {
		s.events.Publish(members, ws.Event{
			Op:   ws.OpMeetingEnd,
			Data: ws.MeetingEndData{MeetingID: m.ID, RoomID: m.RoomID},
		})
	}

	s.notifyEnded(ctx, m.RoomID)
	return nil
}

// notifyEnded mails the room owners in the background.
func (s *meetingService) notifyEnded(ctx context.Context, roomID string) {
	if s.mailer == nil {
		return
	}

	to, err := s.rooms.OwnerEmails(ctx, roomID)
	if err != nil || len(to) == 0 {
		return
	}
	name := roomID
	if room, err := s.rooms.Get(ctx, roomID); err == nil && room.Name != "" {
		name = room.Name
	}
	endedAt := time.Now()

	go func() {
		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), mailTimeout)
		defer cancel()

		if err := s.mailer.SendMeetingEnded(ctx, to, name, endedAt); err != nil {
			s.logger.Warn("failed to send meeting ended mail", "room_id", roomID, "error", err)
		}
	}()
}
