//go:generate go run go.uber.org/mock/mockgen -source=media_server_service.go -destination=../mocks/mock_media_server_service.go -package=mocks

package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/akinalp/huddle/pkg"
	"github.com/akinalp/huddle/pkg/janus"
)

// ─── ISP Interfaces ───

// JanusGateway is the part of the gateway client the adapter needs.
// *janus.Client satisfies it.
type JanusGateway interface {
	CreateSession(ctx context.Context) (int64, error)
	DestroySession(ctx context.Context, sessionID int64) error
	Attach(ctx context.Context, sessionID int64, plugin string) (int64, error)
	Detach(ctx context.Context, sessionID, handleID int64) error
	Message(ctx context.Context, sessionID, handleID int64, body any) (json.RawMessage, error)
}

// MediaPlugin selects the kind of handle to attach.
type MediaPlugin string

const (
	PluginAudio MediaPlugin = janus.PluginAudioBridge
	PluginVideo MediaPlugin = janus.PluginVideoRoom
)

// VideoRole is the role a handle takes in a video room.
type VideoRole string

const (
	RolePublisher  VideoRole = "publisher"
	RoleSubscriber VideoRole = "subscriber"
)

// ErrMediaRoomGone is wrapped, next to pkg.ErrDependencyUnavailable, by the
// join operations when the target room no longer exists on the gateway. A
// gateway restart loses every room it held.
var ErrMediaRoomGone = errors.New("media room gone")

// ─── MediaServerService Interface ───

// MediaServerService exposes one synchronous operation per remote resource
// kind. Connection ids are gateway session ids.
//
// Destroy, detach, close and leave treat an already absent resource as
// success. Any failure to reach the gateway is pkg.ErrDependencyUnavailable.
type MediaServerService interface {
	OpenConnection(ctx context.Context) (int64, error)
	CloseConnection(ctx context.Context, connID int64) error

	AttachHandle(ctx context.Context, connID int64, plugin MediaPlugin) (int64, error)
	DetachHandle(ctx context.Context, connID, handleID int64) error

	// CreateAudioRoom creates an audio mixing room through an audio handle
	// and returns the room id chosen by the gateway.
	CreateAudioRoom(ctx context.Context, connID, handleID int64, description string) (int64, error)
	DestroyAudioRoom(ctx context.Context, connID, handleID, roomID int64) error

	CreateVideoRoom(ctx context.Context, connID, handleID int64, description string) (int64, error)
	DestroyVideoRoom(ctx context.Context, connID, handleID, roomID int64) error

	JoinAudioRoom(ctx context.Context, connID, handleID, roomID int64, display string) error
	JoinVideoRoom(ctx context.Context, connID, handleID, roomID int64, role VideoRole, display string) error

	// LeaveRoom makes a handle leave whatever room it joined.
	LeaveRoom(ctx context.Context, connID, handleID int64) error
}

// maxVideoPublishers caps the publishers of one video room. Every
// participant can publish a camera and a screen.
const maxVideoPublishers = 64

type mediaServerService struct {
	gateway JanusGateway
	logger  *slog.Logger
}

func NewMediaServerService(gateway JanusGateway, logger *slog.Logger) MediaServerService {
	return &mediaServerService{
		gateway: gateway,
		logger:  logger.With("component", "media"),
	}
}

// ─── Connections & handles ───

func (s *mediaServerService) OpenConnection(ctx context.Context) (int64, error) {
	id, err := s.gateway.CreateSession(ctx)
	if err != nil {
		return 0, wrapMediaErr("open connection", err)
	}
	return id, nil
}

func (s *mediaServerService) CloseConnection(ctx context.Context, connID int64) error {
	return s.absorbGone("close connection", s.gateway.DestroySession(ctx, connID))
}

func (s *mediaServerService) AttachHandle(ctx context.Context, connID int64, plugin MediaPlugin) (int64, error) {
	id, err := s.gateway.Attach(ctx, connID, string(plugin))
	if err != nil {
		return 0, wrapMediaErr("attach handle", err)
	}
	return id, nil
}

func (s *mediaServerService) DetachHandle(ctx context.Context, connID, handleID int64) error {
	return s.absorbGone("detach handle", s.gateway.Detach(ctx, connID, handleID))
}

// ─── Rooms ───

func (s *mediaServerService) CreateAudioRoom(ctx context.Context, connID, handleID int64, description string) (int64, error) {
	return s.createRoom(ctx, "create audio room", connID, handleID, map[string]any{
		"request":     "create",
		"description": description,
		"is_private":  true,
	})
}

func (s *mediaServerService) DestroyAudioRoom(ctx context.Context, connID, handleID, roomID int64) error {
	_, err := s.gateway.Message(ctx, connID, handleID, map[string]any{
		"request": "destroy",
		"room":    roomID,
	})
	return s.absorbGone("destroy audio room", err)
}

func (s *mediaServerService) CreateVideoRoom(ctx context.Context, connID, handleID int64, description string) (int64, error) {
	return s.createRoom(ctx, "create video room", connID, handleID, map[string]any{
		"request":     "create",
		"description": description,
		"is_private":  true,
		"publishers":  maxVideoPublishers,
	})
}

func (s *mediaServerService) DestroyVideoRoom(ctx context.Context, connID, handleID, roomID int64) error {
	_, err := s.gateway.Message(ctx, connID, handleID, map[string]any{
		"request": "destroy",
		"room":    roomID,
	})
	return s.absorbGone("destroy video room", err)
}

func (s *mediaServerService) JoinAudioRoom(ctx context.Context, connID, handleID, roomID int64, display string) error {
	_, err := s.gateway.Message(ctx, connID, handleID, map[string]any{
		"request": "join",
		"room":    roomID,
		"display": display,
	})
	if err != nil {
		return wrapJoinErr("join audio room", err)
	}
	return nil
}

func (s *mediaServerService) JoinVideoRoom(ctx context.Context, connID, handleID, roomID int64, role VideoRole, display string) error {
	body := map[string]any{
		"request": "join",
		"room":    roomID,
		"ptype":   string(role),
	}
	switch role {
	case RolePublisher:
		body["display"] = display
	case RoleSubscriber:
		// Feeds are added by the client once publishers appear.
		body["streams"] = []any{}
	default:
		return fmt.Errorf("%w: unknown video role %q", pkg.ErrBadRequest, role)
	}

	if _, err := s.gateway.Message(ctx, connID, handleID, body); err != nil {
		return wrapJoinErr("join video room", err)
	}
	return nil
}

func (s *mediaServerService) LeaveRoom(ctx context.Context, connID, handleID int64) error {
	_, err := s.gateway.Message(ctx, connID, handleID, map[string]any{"request": "leave"})
	return s.absorbGone("leave room", err)
}

// ─── Helpers ───

func (s *mediaServerService) createRoom(ctx context.Context, op string, connID, handleID int64, body map[string]any) (int64, error) {
	data, err := s.gateway.Message(ctx, connID, handleID, body)
	if err != nil {
		return 0, wrapMediaErr(op, err)
	}

	var reply struct {
		Room int64 `json:"room"`
	}
	if err := json.Unmarshal(data, &reply); err != nil || reply.Room == 0 {
		return 0, fmt.Errorf("%w: %s: reply without room id", pkg.ErrDependencyUnavailable, op)
	}
	return reply.Room, nil
}

// absorbGone turns "already absent" replies of destructive operations into
// success.
func (s *mediaServerService) absorbGone(op string, err error) error {
	if err == nil {
		return nil
	}
	if janus.IsGone(err) {
		s.logger.Debug("resource already gone", "op", op, "error", err)
		return nil
	}
	return wrapMediaErr(op, err)
}

// wrapMediaErr classifies every gateway failure as a dependency failure. The
// gateway error stays in the chain for logs; pkg.Error never writes it out.
func wrapMediaErr(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", pkg.ErrDependencyUnavailable, op, err)
}

func wrapJoinErr(op string, err error) error {
	if janus.IsRoomGone(err) {
		return fmt.Errorf("%w: %s: %w: %w", pkg.ErrDependencyUnavailable, op, ErrMediaRoomGone, err)
	}
	return wrapMediaErr(op, err)
}
