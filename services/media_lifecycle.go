package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/akinalp/huddle/models"
	"github.com/akinalp/huddle/pkg"
)

// mediaLifecycle builds and tears down the remote resource bundles of
// meetings and participants on top of MediaServerService. Both
// orchestrators share it.
//
// Allocation rolls back whatever it created before returning an error.
// Release is best-effort: failures are logged and the remaining resources
// are still released.
type mediaLifecycle struct {
	media  MediaServerService
	logger *slog.Logger
}

func newMediaLifecycle(media MediaServerService, logger *slog.Logger) *mediaLifecycle {
	return &mediaLifecycle{media: media, logger: logger}
}

// ─── Meeting resources ───

// provisionMeeting opens the meeting's connection, attaches one audio and
// one video handle and creates the two rooms through them.
func (l *mediaLifecycle) provisionMeeting(ctx context.Context, meetingID string) (*models.MeetingMediaResources, error) {
	var undo []func()
	fail := func(err error) (*models.MeetingMediaResources, error) {
		for i := len(undo) - 1; i >= 0; i-- {
			undo[i]()
		}
		return nil, err
	}

	res := &models.MeetingMediaResources{}
	description := "meeting " + meetingID

	conn, err := l.media.OpenConnection(ctx)
	if err != nil {
		return fail(err)
	}
	res.ConnectionID = conn
	undo = append(undo, func() { l.closeConnection(ctx, conn) })

	if res.AudioRoomHandle, err = l.media.AttachHandle(ctx, conn, PluginAudio); err != nil {
		return fail(err)
	}
	audioHandle := res.AudioRoomHandle
	undo = append(undo, func() { l.detach(ctx, conn, audioHandle) })

	if res.VideoRoomHandle, err = l.media.AttachHandle(ctx, conn, PluginVideo); err != nil {
		return fail(err)
	}
	videoHandle := res.VideoRoomHandle
	undo = append(undo, func() { l.detach(ctx, conn, videoHandle) })

	if res.AudioRoomID, err = l.media.CreateAudioRoom(ctx, conn, audioHandle, description); err != nil {
		return fail(err)
	}
	audioRoom := res.AudioRoomID
	undo = append(undo, func() {
		if err := l.media.DestroyAudioRoom(ctx, conn, audioHandle, audioRoom); err != nil {
			l.logger.Warn("rollback: failed to destroy audio room", "room", audioRoom, "error", err)
		}
	})

	if res.VideoRoomID, err = l.media.CreateVideoRoom(ctx, conn, videoHandle, description); err != nil {
		return fail(err)
	}

	l.logger.Info("meeting media provisioned",
		"meeting_id", meetingID, "connection", conn,
		"audio_room", res.AudioRoomID, "video_room", res.VideoRoomID)
	return res, nil
}

// releaseMeeting destroys the rooms first, then the handles that created
// them, then the connection.
func (l *mediaLifecycle) releaseMeeting(ctx context.Context, res *models.MeetingMediaResources) {
	if res == nil {
		return
	}
	if err := l.media.DestroyVideoRoom(ctx, res.ConnectionID, res.VideoRoomHandle, res.VideoRoomID); err != nil {
		l.logger.Warn("failed to destroy video room", "room", res.VideoRoomID, "error", err)
	}
	if err := l.media.DestroyAudioRoom(ctx, res.ConnectionID, res.AudioRoomHandle, res.AudioRoomID); err != nil {
		l.logger.Warn("failed to destroy audio room", "room", res.AudioRoomID, "error", err)
	}
	l.detach(ctx, res.ConnectionID, res.VideoRoomHandle)
	l.detach(ctx, res.ConnectionID, res.AudioRoomHandle)
	l.closeConnection(ctx, res.ConnectionID)
}

// ─── Participant sessions ───

// openParticipant opens a participant's own connection and allocates a
// handle for every requested capability.
func (l *mediaLifecycle) openParticipant(ctx context.Context, rooms *models.MeetingMediaResources, display string, flags models.StreamFlags) (*models.ParticipantMediaSession, error) {
	conn, err := l.media.OpenConnection(ctx)
	if err != nil {
		return nil, err
	}
	session := &models.ParticipantMediaSession{ConnectionID: conn}

	wanted := []struct {
		on bool
		c  models.Capability
	}{
		{flags.Audio, models.CapabilityAudio},
		{flags.Video, models.CapabilityVideo},
		{flags.Screen, models.CapabilityScreen},
	}
	for _, w := range wanted {
		if !w.on {
			continue
		}
		if err := l.enable(ctx, rooms, session, w.c, display); err != nil {
			l.releaseParticipant(ctx, session)
			return nil, err
		}
	}
	return session, nil
}

// releaseParticipant releases every allocated handle, then the connection.
func (l *mediaLifecycle) releaseParticipant(ctx context.Context, session *models.ParticipantMediaSession) {
	if session == nil {
		return
	}
	for _, c := range []models.Capability{models.CapabilityAudio, models.CapabilityVideo, models.CapabilityScreen} {
		l.disable(ctx, session, c)
	}
	l.closeConnection(ctx, session.ConnectionID)
}

// enable allocates the handles of capability c that are missing in
// session. On error session is left as it was.
func (l *mediaLifecycle) enable(ctx context.Context, rooms *models.MeetingMediaResources, session *models.ParticipantMediaSession, c models.Capability, display string) error {
	if rooms == nil {
		return fmt.Errorf("%w: meeting has no media resources", pkg.ErrInternal)
	}
	conn := session.ConnectionID

	switch c {
	case models.CapabilityAudio:
		if session.AudioHandle != nil {
			return nil
		}
		h, err := l.attachAndJoin(ctx, conn, PluginAudio, func(h int64) error {
			return l.media.JoinAudioRoom(ctx, conn, h, rooms.AudioRoomID, display)
		})
		if err != nil {
			return err
		}
		session.AudioHandle = &h

	case models.CapabilityVideo:
		var opened *int64
		if session.VideoOutHandle == nil {
			h, err := l.joinVideo(ctx, conn, rooms.VideoRoomID, RolePublisher, display)
			if err != nil {
				return err
			}
			opened = &h
		}
		if session.VideoInHandle == nil {
			h, err := l.joinVideo(ctx, conn, rooms.VideoRoomID, RoleSubscriber, display)
			if err != nil {
				if opened != nil {
					l.releaseHandle(ctx, conn, *opened)
				}
				return err
			}
			session.VideoInHandle = &h
		}
		if opened != nil {
			session.VideoOutHandle = opened
		}

	case models.CapabilityScreen:
		if session.ScreenHandle != nil {
			return nil
		}
		h, err := l.joinVideo(ctx, conn, rooms.VideoRoomID, RolePublisher, display+" (screen)")
		if err != nil {
			return err
		}
		session.ScreenHandle = &h

	default:
		return fmt.Errorf("%w: unknown capability %q", pkg.ErrBadRequest, c)
	}
	return nil
}

// disable releases the handles of capability c and clears their slots.
func (l *mediaLifecycle) disable(ctx context.Context, session *models.ParticipantMediaSession, c models.Capability) {
	var slots []**int64
	switch c {
	case models.CapabilityAudio:
		slots = []**int64{&session.AudioHandle}
	case models.CapabilityVideo:
		slots = []**int64{&session.VideoOutHandle, &session.VideoInHandle}
	case models.CapabilityScreen:
		slots = []**int64{&session.ScreenHandle}
	}

	for _, slot := range slots {
		if *slot == nil {
			continue
		}
		l.releaseHandle(ctx, session.ConnectionID, **slot)
		*slot = nil
	}
}

// ─── Helpers ───

func (l *mediaLifecycle) joinVideo(ctx context.Context, conn, room int64, role VideoRole, display string) (int64, error) {
	return l.attachAndJoin(ctx, conn, PluginVideo, func(h int64) error {
		return l.media.JoinVideoRoom(ctx, conn, h, room, role, display)
	})
}

func (l *mediaLifecycle) attachAndJoin(ctx context.Context, conn int64, plugin MediaPlugin, join func(handle int64) error) (int64, error) {
	h, err := l.media.AttachHandle(ctx, conn, plugin)
	if err != nil {
		return 0, err
	}
	if err := join(h); err != nil {
		l.detach(ctx, conn, h)
		return 0, err
	}
	return h, nil
}

func (l *mediaLifecycle) releaseHandle(ctx context.Context, conn, handle int64) {
	if err := l.media.LeaveRoom(ctx, conn, handle); err != nil {
		l.logger.Warn("failed to leave room", "connection", conn, "handle", handle, "error", err)
	}
	l.detach(ctx, conn, handle)
}

func (l *mediaLifecycle) detach(ctx context.Context, conn, handle int64) {
	if err := l.media.DetachHandle(ctx, conn, handle); err != nil {
		l.logger.Warn("failed to detach handle", "connection", conn, "handle", handle, "error", err)
	}
}

func (l *mediaLifecycle) closeConnection(ctx context.Context, conn int64) {
	if err := l.media.CloseConnection(ctx, conn); err != nil {
		l.logger.Warn("failed to close connection", "connection", conn, "error", err)
	}
}
