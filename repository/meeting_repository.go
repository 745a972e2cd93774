// Package repository is the persistence layer. Each aggregate has an
// interface here and a SQLite implementation in sqlite_*.go.
package repository

import (
	"context"

	"github.com/akinalp/huddle/models"
)

// MeetingRepository stores meetings and their shared media resources.
type MeetingRepository interface {
	// Create inserts a meeting. A second meeting for the same chat room
	// fails with pkg.ErrConflict.
	Create(ctx context.Context, meeting *models.Meeting) error

	// GetByID returns the meeting with its participants.
	GetByID(ctx context.Context, id string) (*models.Meeting, error)

	// GetByRoomID returns the meeting of a chat room with its participants.
	GetByRoomID(ctx context.Context, roomID string) (*models.Meeting, error)

	// ListByRoomIDs returns the meetings of the given chat rooms, oldest first.
	ListByRoomIDs(ctx context.Context, roomIDs []string) ([]models.Meeting, error)

	// SetMedia stores the shared media resources; nil clears them.
	SetMedia(ctx context.Context, id string, media *models.MeetingMediaResources) error

	// Delete removes the meeting and, through the foreign key, any
	// participant rows left.
	Delete(ctx context.Context, id string) error
}
