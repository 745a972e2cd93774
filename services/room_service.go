//go:generate go run go.uber.org/mock/mockgen -source=room_service.go -destination=../mocks/mock_room_service.go -package=mocks

package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/akinalp/huddle/models"
	"github.com/akinalp/huddle/pkg"
	"github.com/akinalp/huddle/pkg/cache"
	"github.com/akinalp/huddle/repository"
)

// RoomService is the local view of the chat room collaborator: membership
// snapshots pushed by the room service, and each room's meeting reference.
type RoomService interface {
	// CheckMembership answers for any room; an unknown room has no members.
	CheckMembership(ctx context.Context, roomID, userID string) (models.Membership, error)

	MembersOf(ctx context.Context, roomID string) ([]string, error)
	RoomsOf(ctx context.Context, userID string) ([]string, error)
	OwnerEmails(ctx context.Context, roomID string) ([]string, error)

	Get(ctx context.Context, roomID string) (*models.ChatRoom, error)

	SetMeetingRef(ctx context.Context, roomID, meetingID string) error
	ClearMeetingRef(ctx context.Context, roomID string) error

	// Sync replaces the name and member list of a room, creating it if needed.
	Sync(ctx context.Context, roomID string, req *models.SyncRoomRequest) (*models.ChatRoom, error)

	Delete(ctx context.Context, roomID string) error
}

type roomService struct {
	repo        repository.RoomRepository
	memberships *cache.TTLCache[string, models.Membership]
}

// NewRoomService wires the membership cache in front of repo. The cache is
// invalidated per room on Sync and Delete.
func NewRoomService(repo repository.RoomRepository, memberships *cache.TTLCache[string, models.Membership]) RoomService {
	return &roomService{repo: repo, memberships: memberships}
}

func membershipKey(roomID, userID string) string {
	return roomID + "\x00" + userID
}

func (s *roomService) CheckMembership(ctx context.Context, roomID, userID string) (models.Membership, error) {
	key := membershipKey(roomID, userID)
	if m, ok := s.memberships.Get(key); ok {
		return m, nil
	}

	// A Sync landing during the read must not be undone by caching its
	// result.
	gen := s.memberships.Generation()
	m, err := s.repo.GetMembership(ctx, roomID, userID)
	if err != nil && !errors.Is(err, pkg.ErrNotFound) {
		return models.Membership{}, err
	}

	s.memberships.SetIfGeneration(key, m, gen)
	return m, nil
}

func (s *roomService) MembersOf(ctx context.Context, roomID string) ([]string, error) {
	return s.repo.ListMemberIDs(ctx, roomID)
}

func (s *roomService) RoomsOf(ctx context.Context, userID string) ([]string, error) {
	return s.repo.ListRoomIDsByUser(ctx, userID)
}

func (s *roomService) OwnerEmails(ctx context.Context, roomID string) ([]string, error) {
	return s.repo.ListOwnerEmails(ctx, roomID)
}

func (s *roomService) Get(ctx context.Context, roomID string) (*models.ChatRoom, error) {
	return s.repo.GetByID(ctx, roomID)
}

func (s *roomService) SetMeetingRef(ctx context.Context, roomID, meetingID string) error {
	return s.repo.SetMeetingID(ctx, roomID, &meetingID)
}

func (s *roomService) ClearMeetingRef(ctx context.Context, roomID string) error {
	return s.repo.SetMeetingID(ctx, roomID, nil)
}

func (s *roomService) Sync(ctx context.Context, roomID string, req *models.SyncRoomRequest) (*models.ChatRoom, error) {
	if strings.TrimSpace(roomID) == "" {
		return nil, fmt.Errorf("%w: room id is required", pkg.ErrBadRequest)
	}

	room := &models.ChatRoom{ID: roomID, Name: req.Name, Members: req.Members}
	if err := s.repo.Upsert(ctx, room); err != nil {
		return nil, err
	}
	s.invalidate(roomID)

	return s.repo.GetByID(ctx, roomID)
}

func (s *roomService) Delete(ctx context.Context, roomID string) error {
	if err := s.repo.Delete(ctx, roomID); err != nil {
		return err
	}
	s.invalidate(roomID)
	return nil
}

func (s *roomService) invalidate(roomID string) {
	prefix := roomID + "\x00"
	s.memberships.DeleteFunc(func(key string) bool {
		return strings.HasPrefix(key, prefix)
	})
}

// requireMember returns the requester's membership or pkg.ErrForbidden when
// the requester is not in the room.
func requireMember(ctx context.Context, rooms RoomService, roomID, userID string) (models.Membership, error) {
	m, err := rooms.CheckMembership(ctx, roomID, userID)
	if err != nil {
		return m, err
	}
	if !m.IsMember {
		return m, fmt.Errorf("%w: not a member of the chat room", pkg.ErrForbidden)
	}
	return m, nil
}

func requireOwner(ctx context.Context, rooms RoomService, roomID, userID string) error {
	m, err := requireMember(ctx, rooms, roomID, userID)
	if err != nil {
		return err
	}
	if !m.IsOwner {
		return fmt.Errorf("%w: only the room owner can do this", pkg.ErrForbidden)
	}
	return nil
}
