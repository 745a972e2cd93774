package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/akinalp/huddle/database"
	"github.com/akinalp/huddle/models"
	"github.com/akinalp/huddle/pkg"
)

type sqliteRoomRepo struct {
	db *sql.DB
}

func NewSQLiteRoomRepo(db *sql.DB) RoomRepository {
	return &sqliteRoomRepo{db: db}
}

// Upsert replaces the room's name and member list in one transaction. The
// meeting reference is left untouched.
func (r *sqliteRoomRepo) Upsert(ctx context.Context, room *models.ChatRoom) error {
	return database.WithTx(ctx, r.db, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO chat_rooms (id, name) VALUES (?, ?)
			ON CONFLICT(id) DO UPDATE SET name = excluded.name`,
			room.ID, room.Name,
		)
		if err != nil {
			return fmt.Errorf("failed to upsert room: %w", err)
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM chat_room_members WHERE room_id = ?`, room.ID); err != nil {
			return fmt.Errorf("failed to clear room members: %w", err)
		}

		for _, m := range room.Members {
			var email sql.NullString
			if m.Email != "" {
				email = sql.NullString{String: m.Email, Valid: true}
			}
			_, err := tx.ExecContext(ctx, `
				INSERT INTO chat_room_members (room_id, user_id, is_owner, email)
				VALUES (?, ?, ?, ?)`,
				room.ID, m.UserID, m.IsOwner, email,
			)
			if err != nil {
				if isUniqueViolation(err) {
					return fmt.Errorf("%w: duplicate member %s", pkg.ErrBadRequest, m.UserID)
				}
				return fmt.Errorf("failed to insert room member: %w", err)
			}
		}
		return nil
	})
}

func (r *sqliteRoomRepo) GetByID(ctx context.Context, id string) (*models.ChatRoom, error) {
	var room models.ChatRoom
	var meetingID sql.NullString

	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, meeting_id FROM chat_rooms WHERE id = ?`, id,
	).Scan(&room.ID, &room.Name, &meetingID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: room", pkg.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get room: %w", err)
	}
	if meetingID.Valid {
		room.MeetingID = &meetingID.String
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT user_id, is_owner, COALESCE(email, '')
		FROM chat_room_members WHERE room_id = ?
		ORDER BY user_id`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to list room members: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var m models.RoomMember
		if err := rows.Scan(&m.UserID, &m.IsOwner, &m.Email); err != nil {
			return nil, fmt.Errorf("failed to scan room member: %w", err)
		}
		room.Members = append(room.Members, m)
	}
	return &room, rows.Err()
}

func (r *sqliteRoomRepo) GetMembership(ctx context.Context, roomID, userID string) (models.Membership, error) {
	var isOwner sql.NullBool
	err := r.db.QueryRowContext(ctx, `
		SELECT m.is_owner
		FROM chat_rooms c
		LEFT JOIN chat_room_members m ON m.room_id = c.id AND m.user_id = ?
		WHERE c.id = ?`,
		userID, roomID,
	).Scan(&isOwner)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Membership{}, fmt.Errorf("%w: room", pkg.ErrNotFound)
	}
	if err != nil {
		return models.Membership{}, fmt.Errorf("failed to check membership: %w", err)
	}

	return models.Membership{IsMember: isOwner.Valid, IsOwner: isOwner.Valid && isOwner.Bool}, nil
}

func (r *sqliteRoomRepo) ListMemberIDs(ctx context.Context, roomID string) ([]string, error) {
	return r.queryStrings(ctx,
		`SELECT user_id FROM chat_room_members WHERE room_id = ? ORDER BY user_id`, roomID)
}

func (r *sqliteRoomRepo) ListOwnerEmails(ctx context.Context, roomID string) ([]string, error) {
	return r.queryStrings(ctx, `
		SELECT email FROM chat_room_members
		WHERE room_id = ? AND is_owner = 1 AND email IS NOT NULL AND email != ''
		ORDER BY user_id`, roomID)
}

func (r *sqliteRoomRepo) ListRoomIDsByUser(ctx context.Context, userID string) ([]string, error) {
	return r.queryStrings(ctx,
		`SELECT room_id FROM chat_room_members WHERE user_id = ? ORDER BY room_id`, userID)
}

func (r *sqliteRoomRepo) SetMeetingID(ctx context.Context, roomID string, meetingID *string) error {
	var ref sql.NullString
	if meetingID != nil {
		ref = sql.NullString{String: *meetingID, Valid: true}
	}

	if _, err := r.db.ExecContext(ctx,
		`UPDATE chat_rooms SET meeting_id = ? WHERE id = ?`, ref, roomID,
	); err != nil {
		return fmt.Errorf("failed to set room meeting: %w", err)
	}
	return nil
}

func (r *sqliteRoomRepo) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM chat_rooms WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete room: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: room", pkg.ErrNotFound)
	}
	return nil
}

func (r *sqliteRoomRepo) queryStrings(ctx context.Context, query string, args ...any) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query room: %w", err)
	}
	defer rows.Close()

	out := []string{}
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
