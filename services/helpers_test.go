package services_test

import (
	"context"
	"io/fs"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/akinalp/huddle/database"
	"github.com/akinalp/huddle/models"
	"github.com/akinalp/huddle/pkg/cache"
	"github.com/akinalp/huddle/pkg/keylock"
	"github.com/akinalp/huddle/pkg/logger"
	"github.com/akinalp/huddle/repository"
	"github.com/akinalp/huddle/services"
	"github.com/akinalp/huddle/ws"
)

const testRoom = "room-1"

type sentEvent struct {
	to    []string
	event ws.Event
}

type recordingDispatcher struct {
	mu     sync.Mutex
	events []sentEvent
}

func (d *recordingDispatcher) Publish(userIDs []string, event ws.Event) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.events = append(d.events, sentEvent{to: userIDs, event: event})
}

func (d *recordingDispatcher) Ops() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	ops := make([]string, 0, len(d.events))
	for _, e := range d.events {
		ops = append(ops, e.event.Op)
	}
	return ops
}

func (d *recordingDispatcher) Last() sentEvent {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.events[len(d.events)-1]
}

type sentMail struct {
	to       []string
	roomName string
}

type fakeMailer struct {
	sent chan sentMail
}

func (m *fakeMailer) SendMeetingEnded(ctx context.Context, to []string, roomName string, endedAt time.Time) error {
	m.sent <- sentMail{to: to, roomName: roomName}
	return nil
}

type testEnv struct {
	media        *fakeMedia
	events       *recordingDispatcher
	mailer       *fakeMailer
	meetingRepo  repository.MeetingRepository
	partRepo     repository.ParticipantRepository
	rooms        services.RoomService
	meetings     services.MeetingService
	participants services.ParticipantService
}

// newTestEnv wires both orchestrators against a real SQLite store and the
// in-memory media backend. testRoom is owned by alice; bob and carol are
// members; mallory is not.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	return newTestEnvWith(t, newFakeMedia(), &recordingDispatcher{})
}

// newTestEnvWith is newTestEnv with a caller-supplied media backend and
// dispatcher. The typed media and events fields stay nil unless the
// arguments are the recording fakes.
func newTestEnvWith(t *testing.T, media services.MediaServerService, events services.EventDispatcher) *testEnv {
	t.Helper()
	req := require.New(t)

	migrations, err := fs.Sub(database.EmbeddedMigrations, "migrations")
	req.NoError(err)
	db, err := database.New(filepath.Join(t.TempDir(), "test.db"), migrations, logger.Discard())
	req.NoError(err)
	t.Cleanup(func() { _ = db.Close() })

	memberships := cache.New[string, models.Membership](time.Minute, time.Minute)
	t.Cleanup(memberships.Close)

	env := &testEnv{
		mailer:      &fakeMailer{sent: make(chan sentMail, 8)},
		meetingRepo: repository.NewSQLiteMeetingRepo(db.Conn),
		partRepo:    repository.NewSQLiteParticipantRepo(db.Conn),
	}
	env.media, _ = media.(*fakeMedia)
	env.events, _ = events.(*recordingDispatcher)
	env.rooms = services.NewRoomService(repository.NewSQLiteRoomRepo(db.Conn), memberships)

	locks := keylock.New()
	env.meetings = services.NewMeetingService(
		env.meetingRepo, env.partRepo, env.rooms, media, events, locks, env.mailer, logger.Discard(),
	)
	env.participants = services.NewParticipantService(
		env.meetingRepo, env.partRepo, env.meetings, env.rooms, media, events, locks, logger.Discard(),
	)

	_, err = env.rooms.Sync(context.Background(), testRoom, &models.SyncRoomRequest{
		Name: "Standup",
		Members: []models.RoomMember{
			{UserID: "alice", IsOwner: true, Email: "alice@example.com"},
			{UserID: "bob"},
			{UserID: "carol"},
		},
	})
	req.NoError(err)

	return env
}

// transient creates the on-demand meeting of testRoom.
func (e *testEnv) transient(t *testing.T) *models.Meeting {
	t.Helper()
	m, created, err := e.meetings.GetOrCreateTransient(context.Background(), testRoom)
	require.NoError(t, err)
	require.True(t, created)
	return m
}

func (e *testEnv) participant(t *testing.T, meetingID, sessionID string) *models.Participant {
	t.Helper()
	p, err := e.partRepo.FindBySession(context.Background(), meetingID, sessionID)
	require.NoError(t, err)
	return p
}

var (
	noStreams  = models.StreamFlags{}
	audioOnly  = models.StreamFlags{Audio: true}
	allStreams = models.StreamFlags{Audio: true, Video: true, Screen: true}
)
