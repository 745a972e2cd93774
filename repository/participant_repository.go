package repository

import (
	"context"

	"github.com/akinalp/huddle/models"
)

// ParticipantRepository stores meeting participants and their media sessions.
type ParticipantRepository interface {
	// Insert stores a new participant. When provisioned is not nil the
	// meeting's shared media resources are stored in the same transaction,
	// so a join either persists completely or not at all.
	// A session already in the meeting fails with pkg.ErrConflict.
	Insert(ctx context.Context, p *models.Participant, provisioned *models.MeetingMediaResources) error

	FindBySession(ctx context.Context, meetingID, sessionID string) (*models.Participant, error)

	ListByMeeting(ctx context.Context, meetingID string) ([]models.Participant, error)

	// ListBySession returns every participation of one client session across
	// meetings.
	ListBySession(ctx context.Context, userID, sessionID string) ([]models.Participant, error)

	Count(ctx context.Context, meetingID string) (int, error)

	// UpdateStreams stores the stream flags and handle slots of p.
	UpdateStreams(ctx context.Context, p *models.Participant) error

	Delete(ctx context.Context, meetingID, sessionID string) error
}
