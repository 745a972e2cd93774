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

// sqliteParticipantRepo needs the *sql.DB itself for the join transaction.
type sqliteParticipantRepo struct {
	db *sql.DB
}

func NewSQLiteParticipantRepo(db *sql.DB) ParticipantRepository {
	return &sqliteParticipantRepo{db: db}
}

const participantColumns = `meeting_id, user_id, session_id, audio_on, video_on, screen_on,
	connection_id, audio_handle, video_out_handle, video_in_handle, screen_handle, joined_at`

func (r *sqliteParticipantRepo) Insert(ctx context.Context, p *models.Participant, provisioned *models.MeetingMediaResources) error {
	return database.WithTx(ctx, r.db, func(tx *sql.Tx) error {
		if provisioned != nil {
			if err := setMeetingMedia(ctx, tx, p.MeetingID, provisioned); err != nil {
				return err
			}
		}

		query := `
			INSERT INTO meeting_participants (` + participantColumns + `)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

		var conn sql.NullInt64
		var audio, videoOut, videoIn, screen *int64
		if p.Media != nil {
			conn = sql.NullInt64{Int64: p.Media.ConnectionID, Valid: true}
			audio, videoOut, videoIn, screen = p.Media.AudioHandle, p.Media.VideoOutHandle, p.Media.VideoInHandle, p.Media.ScreenHandle
		}

		_, err := tx.ExecContext(ctx, query,
			p.MeetingID, p.UserID, p.SessionID, p.AudioOn, p.VideoOn, p.ScreenOn,
			conn, nullableHandle(audio), nullableHandle(videoOut), nullableHandle(videoIn), nullableHandle(screen),
			p.JoinedAt,
		)
		if err != nil {
			if isUniqueViolation(err) {
				return fmt.Errorf("%w: session %s already joined", pkg.ErrConflict, p.SessionID)
			}
			return fmt.Errorf("failed to insert participant: %w", err)
		}
		return nil
	})
}

func (r *sqliteParticipantRepo) FindBySession(ctx context.Context, meetingID, sessionID string) (*models.Participant, error) {
	query := `SELECT ` + participantColumns + ` FROM meeting_participants
		WHERE meeting_id = ? AND session_id = ?`

	p, err := scanParticipant(r.db.QueryRowContext(ctx, query, meetingID, sessionID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: participant", pkg.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get participant: %w", err)
	}
	return p, nil
}

func (r *sqliteParticipantRepo) ListByMeeting(ctx context.Context, meetingID string) ([]models.Participant, error) {
	return listParticipants(ctx, r.db, meetingID)
}

func (r *sqliteParticipantRepo) ListBySession(ctx context.Context, userID, sessionID string) ([]models.Participant, error) {
	query := `SELECT ` + participantColumns + ` FROM meeting_participants
		WHERE user_id = ? AND session_id = ?
		ORDER BY joined_at`

	return queryParticipants(ctx, r.db, query, userID, sessionID)
}

func (r *sqliteParticipantRepo) Count(ctx context.Context, meetingID string) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM meeting_participants WHERE meeting_id = ?`, meetingID,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count participants: %w", err)
	}
	return n, nil
}

func (r *sqliteParticipantRepo) UpdateStreams(ctx context.Context, p *models.Participant) error {
	query := `
		UPDATE meeting_participants
		SET audio_on = ?, video_on = ?, screen_on = ?,
		    audio_handle = ?, video_out_handle = ?, video_in_handle = ?, screen_handle = ?
		WHERE meeting_id = ? AND session_id = ?`

	var audio, videoOut, videoIn, screen *int64
	if p.Media != nil {
		audio, videoOut, videoIn, screen = p.Media.AudioHandle, p.Media.VideoOutHandle, p.Media.VideoInHandle, p.Media.ScreenHandle
	}

	result, err := r.db.ExecContext(ctx, query,
		p.AudioOn, p.VideoOn, p.ScreenOn,
		nullableHandle(audio), nullableHandle(videoOut), nullableHandle(videoIn), nullableHandle(screen),
		p.MeetingID, p.SessionID,
	)
	if err != nil {
		return fmt.Errorf("failed to update participant streams: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: participant", pkg.ErrNotFound)
	}
	return nil
}

func (r *sqliteParticipantRepo) Delete(ctx context.Context, meetingID, sessionID string) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM meeting_participants WHERE meeting_id = ? AND session_id = ?`, meetingID, sessionID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete participant: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: participant", pkg.ErrNotFound)
	}
	return nil
}

func listParticipants(ctx context.Context, q database.TxQuerier, meetingID string) ([]models.Participant, error) {
	query := `SELECT ` + participantColumns + ` FROM meeting_participants
		WHERE meeting_id = ?
		ORDER BY joined_at, session_id`

	return queryParticipants(ctx, q, query, meetingID)
}

func queryParticipants(ctx context.Context, q database.TxQuerier, query string, args ...any) ([]models.Participant, error) {
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list participants: %w", err)
	}
	defer rows.Close()

	participants := []models.Participant{}
	for rows.Next() {
		p, err := scanParticipant(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan participant: %w", err)
		}
		participants = append(participants, *p)
	}
	return participants, rows.Err()
}

func scanParticipant(row rowScanner) (*models.Participant, error) {
	var p models.Participant
	var conn, audio, videoOut, videoIn, screen sql.NullInt64

	if err := row.Scan(&p.MeetingID, &p.UserID, &p.SessionID, &p.AudioOn, &p.VideoOn, &p.ScreenOn,
		&conn, &audio, &videoOut, &videoIn, &screen, &p.JoinedAt); err != nil {
		return nil, err
	}

	if conn.Valid {
		p.Media = &models.ParticipantMediaSession{
			ConnectionID:   conn.Int64,
			AudioHandle:    handlePtr(audio),
			VideoOutHandle: handlePtr(videoOut),
			VideoInHandle:  handlePtr(videoIn),
			ScreenHandle:   handlePtr(screen),
		}
	}
	return &p, nil
}
