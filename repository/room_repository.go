package repository

import (
	"context"

	"github.com/akinalp/huddle/models"
)

// RoomRepository stores the membership snapshot of chat rooms and the
// room → meeting reference.
type RoomRepository interface {
	// Upsert creates or replaces a room with its full member list.
	Upsert(ctx context.Context, room *models.ChatRoom) error

	GetByID(ctx context.Context, id string) (*models.ChatRoom, error)

	// GetMembership returns the zero Membership for a user outside the room
	// and pkg.ErrNotFound for an unknown room.
	GetMembership(ctx context.Context, roomID, userID string) (models.Membership, error)

	ListMemberIDs(ctx context.Context, roomID string) ([]string, error)

	ListOwnerEmails(ctx context.Context, roomID string) ([]string, error)

	ListRoomIDsByUser(ctx context.Context, userID string) ([]string, error)

	// SetMeetingID sets the meeting reference of a room; nil clears it.
	// Unknown rooms are ignored.
	SetMeetingID(ctx context.Context, roomID string, meetingID *string) error

	Delete(ctx context.Context, id string) error
}
