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

type sqliteMeetingRepo struct {
	db database.TxQuerier
}

func NewSQLiteMeetingRepo(db database.TxQuerier) MeetingRepository {
	return &sqliteMeetingRepo{db: db}
}

const meetingColumns = `id, room_id, kind, connection_id, audio_room_handle, audio_room_id,
	video_room_handle, video_room_id, created_at`

func (r *sqliteMeetingRepo) Create(ctx context.Context, m *models.Meeting) error {
	query := `
		INSERT INTO meetings (id, room_id, kind, connection_id, audio_room_handle, audio_room_id,
		                      video_room_handle, video_room_id, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

	c, ah, ar, vh, vr := mediaArgs(m.Media)
	_, err := r.db.ExecContext(ctx, query, m.ID, m.RoomID, string(m.Kind), c, ah, ar, vh, vr, m.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: room %s already has a meeting", pkg.ErrConflict, m.RoomID)
		}
		return fmt.Errorf("failed to create meeting: %w", err)
	}
	return nil
}

func (r *sqliteMeetingRepo) GetByID(ctx context.Context, id string) (*models.Meeting, error) {
	query := `SELECT ` + meetingColumns + ` FROM meetings WHERE id = ?`
	return r.getOne(ctx, query, id)
}

func (r *sqliteMeetingRepo) GetByRoomID(ctx context.Context, roomID string) (*models.Meeting, error) {
	query := `SELECT ` + meetingColumns + ` FROM meetings WHERE room_id = ?`
	return r.getOne(ctx, query, roomID)
}

func (r *sqliteMeetingRepo) getOne(ctx context.Context, query string, arg string) (*models.Meeting, error) {
	m, err := scanMeeting(r.db.QueryRowContext(ctx, query, arg))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: meeting", pkg.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get meeting: %w", err)
	}

	participants, err := listParticipants(ctx, r.db, m.ID)
	if err != nil {
		return nil, err
	}
	m.Participants = participants

	return m, nil
}

func (r *sqliteMeetingRepo) ListByRoomIDs(ctx context.Context, roomIDs []string) ([]models.Meeting, error) {
	if len(roomIDs) == 0 {
		return []models.Meeting{}, nil
	}

	args := make([]any, len(roomIDs))
	for i, id := range roomIDs {
		args[i] = id
	}

	query := `SELECT ` + meetingColumns + ` FROM meetings
		WHERE room_id IN (` + placeholders(len(roomIDs)) + `)
		ORDER BY created_at, id`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list meetings: %w", err)
	}
	defer rows.Close()

	meetings := []models.Meeting{}
	for rows.Next() {
		m, err := scanMeeting(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan meeting: %w", err)
		}
		meetings = append(meetings, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	rows.Close()

	for i := range meetings {
		participants, err := listParticipants(ctx, r.db, meetings[i].ID)
		if err != nil {
			return nil, err
		}
		meetings[i].Participants = participants
	}

	return meetings, nil
}

func (r *sqliteMeetingRepo) SetMedia(ctx context.Context, id string, media *models.MeetingMediaResources) error {
	return setMeetingMedia(ctx, r.db, id, media)
}

func (r *sqliteMeetingRepo) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM meetings WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete meeting: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: meeting", pkg.ErrNotFound)
	}
	return nil
}

// setMeetingMedia is shared with the participant repository, which stores
// freshly provisioned media inside its join transaction.
func setMeetingMedia(ctx context.Context, q database.TxQuerier, id string, media *models.MeetingMediaResources) error {
	query := `
		UPDATE meetings
		SET connection_id = ?, audio_room_handle = ?, audio_room_id = ?,
		    video_room_handle = ?, video_room_id = ?
		WHERE id = ?`

	c, ah, ar, vh, vr := mediaArgs(media)
	result, err := q.ExecContext(ctx, query, c, ah, ar, vh, vr, id)
	if err != nil {
		return fmt.Errorf("failed to update meeting media: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: meeting", pkg.ErrNotFound)
	}
	return nil
}

func mediaArgs(media *models.MeetingMediaResources) (c, ah, ar, vh, vr sql.NullInt64) {
	if media == nil {
		return
	}
	valid := func(v int64) sql.NullInt64 { return sql.NullInt64{Int64: v, Valid: true} }
	return valid(media.ConnectionID), valid(media.AudioRoomHandle), valid(media.AudioRoomID),
		valid(media.VideoRoomHandle), valid(media.VideoRoomID)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMeeting(row rowScanner) (*models.Meeting, error) {
	var m models.Meeting
	var kind string
	var conn, audioHandle, audioRoom, videoHandle, videoRoom sql.NullInt64

	if err := row.Scan(&m.ID, &m.RoomID, &kind, &conn, &audioHandle, &audioRoom,
		&videoHandle, &videoRoom, &m.CreatedAt); err != nil {
		return nil, err
	}
	m.Kind = models.MeetingKind(kind)

	if conn.Valid {
		m.Media = &models.MeetingMediaResources{
			ConnectionID:    conn.Int64,
			AudioRoomHandle: audioHandle.Int64,
			AudioRoomID:     audioRoom.Int64,
			VideoRoomHandle: videoHandle.Int64,
			VideoRoomID:     videoRoom.Int64,
		}
	}
	m.Participants = []models.Participant{}

	return &m, nil
}
