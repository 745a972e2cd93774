package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/akinalp/huddle/models"
	"github.com/akinalp/huddle/pkg"
)

func TestSQLiteRoomRepo(t *testing.T) {
	ctx := context.Background()

	room := &models.ChatRoom{
		ID:   "r1",
		Name: "standup",
		Members: []models.RoomMember{
			{UserID: "owner", IsOwner: true, Email: "owner@example.com"},
			{UserID: "alice"},
		},
	}

	t.Run("should answer membership questions", func(t *testing.T) {
		req := require.New(t)
		repo := NewSQLiteRoomRepo(newTestDB(t))
		req.NoError(repo.Upsert(ctx, room))

		m, err := repo.GetMembership(ctx, "r1", "owner")
		req.NoError(err)
		req.Equal(models.Membership{IsMember: true, IsOwner: true}, m)

		m, err = repo.GetMembership(ctx, "r1", "alice")
		req.NoError(err)
		req.Equal(models.Membership{IsMember: true}, m)

		m, err = repo.GetMembership(ctx, "r1", "mallory")
		req.NoError(err)
		req.Equal(models.Membership{}, m)

		_, err = repo.GetMembership(ctx, "nope", "alice")
		req.ErrorIs(err, pkg.ErrNotFound)
	})

	t.Run("should replace members on upsert", func(t *testing.T) {
		req := require.New(t)
		repo := NewSQLiteRoomRepo(newTestDB(t))
		req.NoError(repo.Upsert(ctx, room))

		req.NoError(repo.Upsert(ctx, &models.ChatRoom{ID: "r1", Name: "renamed", Members: []models.RoomMember{{UserID: "bob", IsOwner: true}}}))

		ids, err := repo.ListMemberIDs(ctx, "r1")
		req.NoError(err)
		req.Equal([]string{"bob"}, ids)

		got, err := repo.GetByID(ctx, "r1")
		req.NoError(err)
		req.Equal("renamed", got.Name)
	})

	t.Run("should list owner emails and rooms of a user", func(t *testing.T) {
		req := require.New(t)
		repo := NewSQLiteRoomRepo(newTestDB(t))
		req.NoError(repo.Upsert(ctx, room))
		req.NoError(repo.Upsert(ctx, &models.ChatRoom{ID: "r2", Members: []models.RoomMember{{UserID: "alice", IsOwner: true}}}))

		emails, err := repo.ListOwnerEmails(ctx, "r1")
		req.NoError(err)
		req.Equal([]string{"owner@example.com"}, emails)

		rooms, err := repo.ListRoomIDsByUser(ctx, "alice")
		req.NoError(err)
		req.Equal([]string{"r1", "r2"}, rooms)
	})

	t.Run("should set and clear the meeting reference", func(t *testing.T) {
		req := require.New(t)
		repo := NewSQLiteRoomRepo(newTestDB(t))
		req.NoError(repo.Upsert(ctx, room))

		id := "m1"
		req.NoError(repo.SetMeetingID(ctx, "r1", &id))
		got, err := repo.GetByID(ctx, "r1")
		req.NoError(err)
		req.Equal("m1", *got.MeetingID)

		req.NoError(repo.SetMeetingID(ctx, "r1", nil))
		got, err = repo.GetByID(ctx, "r1")
		req.NoError(err)
		req.Nil(got.MeetingID)
	})

	t.Run("should reject duplicate members and delete rooms", func(t *testing.T) {
		req := require.New(t)
		repo := NewSQLiteRoomRepo(newTestDB(t))

		err := repo.Upsert(ctx, &models.ChatRoom{ID: "r9", Members: []models.RoomMember{{UserID: "a"}, {UserID: "a"}}})
		req.ErrorIs(err, pkg.ErrBadRequest)

		req.NoError(repo.Upsert(ctx, room))
		req.NoError(repo.Delete(ctx, "r1"))
		req.ErrorIs(repo.Delete(ctx, "r1"), pkg.ErrNotFound)

		ids, err := repo.ListRoomIDsByUser(ctx, "alice")
		req.NoError(err)
		req.Empty(ids)
	})
}
