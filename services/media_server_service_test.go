package services_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/akinalp/huddle/mocks"
	"github.com/akinalp/huddle/pkg"
	"github.com/akinalp/huddle/pkg/janus"
	"github.com/akinalp/huddle/pkg/logger"
	"github.com/akinalp/huddle/services"
)

func TestMediaServerService_Rooms(t *testing.T) {
	ctx := context.Background()

	t.Run("should create an audio room and return the gateway room id", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		gateway := mocks.NewMockJanusGateway(ctrl)
		svc := services.NewMediaServerService(gateway, logger.Discard())

		gateway.EXPECT().
			Message(gomock.Any(), int64(1), int64(2), gomock.Any()).
			DoAndReturn(func(_ context.Context, _, _ int64, body any) (json.RawMessage, error) {
				b := body.(map[string]any)
				req.Equal("create", b["request"])
				req.Equal(true, b["is_private"])
				return json.RawMessage(`{"audiobridge":"created","room":1234}`), nil
			}).
			Times(1)

		room, err := svc.CreateAudioRoom(ctx, 1, 2, "meeting m-1")

		req.NoError(err)
		req.Equal(int64(1234), room)
	})

	t.Run("should cap publishers when creating a video room", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		gateway := mocks.NewMockJanusGateway(ctrl)
		svc := services.NewMediaServerService(gateway, logger.Discard())

		gateway.EXPECT().
			Message(gomock.Any(), int64(1), int64(3), gomock.Any()).
			DoAndReturn(func(_ context.Context, _, _ int64, body any) (json.RawMessage, error) {
				req.Contains(body.(map[string]any), "publishers")
				return json.RawMessage(`{"videoroom":"created","room":99}`), nil
			}).
			Times(1)

		room, err := svc.CreateVideoRoom(ctx, 1, 3, "meeting m-1")

		req.NoError(err)
		req.Equal(int64(99), room)
	})

	t.Run("should fail when the create reply carries no room id", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		gateway := mocks.NewMockJanusGateway(ctrl)
		svc := services.NewMediaServerService(gateway, logger.Discard())

		gateway.EXPECT().
			Message(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(json.RawMessage(`{"videoroom":"created"}`), nil).
			Times(1)

		_, err := svc.CreateVideoRoom(ctx, 1, 3, "meeting m-1")

		req.ErrorIs(err, pkg.ErrDependencyUnavailable)
	})

	t.Run("should map a plugin refusal to dependency unavailable", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		gateway := mocks.NewMockJanusGateway(ctrl)
		svc := services.NewMediaServerService(gateway, logger.Discard())

		gateway.EXPECT().
			Message(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, &janus.Error{Code: 436, Reason: "Room already exists"}).
			Times(1)

		_, err := svc.CreateVideoRoom(ctx, 1, 3, "meeting m-1")

		req.ErrorIs(err, pkg.ErrDependencyUnavailable)
		var je *janus.Error
		req.True(errors.As(err, &je))
		req.Equal(436, je.Code)
	})

	t.Run("should treat destroying an absent room as success", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		gateway := mocks.NewMockJanusGateway(ctrl)
		svc := services.NewMediaServerService(gateway, logger.Discard())

		gateway.EXPECT().
			Message(gomock.Any(), int64(1), int64(2), map[string]any{"request": "destroy", "room": int64(7)}).
			Return(nil, &janus.Error{Code: janus.CodeAudioBridgeNoSuchRoom, Reason: "No such room"}).
			Times(1)
		gateway.EXPECT().
			Message(gomock.Any(), int64(1), int64(3), map[string]any{"request": "destroy", "room": int64(8)}).
			Return(nil, &janus.Error{Code: janus.CodeVideoRoomNoSuchRoom, Reason: "No such room"}).
			Times(1)

		req.NoError(svc.DestroyAudioRoom(ctx, 1, 2, 7))
		req.NoError(svc.DestroyVideoRoom(ctx, 1, 3, 8))
	})
}

func TestMediaServerService_Connections(t *testing.T) {
	ctx := context.Background()

	t.Run("should map an unreachable gateway to dependency unavailable", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		gateway := mocks.NewMockJanusGateway(ctrl)
		svc := services.NewMediaServerService(gateway, logger.Discard())

		gateway.EXPECT().CreateSession(gomock.Any()).Return(int64(0), janus.ErrUnavailable).Times(1)

		_, err := svc.OpenConnection(ctx)

		req.ErrorIs(err, pkg.ErrDependencyUnavailable)
		req.ErrorIs(err, janus.ErrUnavailable)
	})

	t.Run("should attach the plugin package of the requested kind", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		gateway := mocks.NewMockJanusGateway(ctrl)
		svc := services.NewMediaServerService(gateway, logger.Discard())

		gateway.EXPECT().Attach(gomock.Any(), int64(5), janus.PluginAudioBridge).Return(int64(10), nil).Times(1)
		gateway.EXPECT().Attach(gomock.Any(), int64(5), janus.PluginVideoRoom).Return(int64(11), nil).Times(1)

		audio, err := svc.AttachHandle(ctx, 5, services.PluginAudio)
		req.NoError(err)
		video, err := svc.AttachHandle(ctx, 5, services.PluginVideo)
		req.NoError(err)

		req.Equal(int64(10), audio)
		req.Equal(int64(11), video)
	})

	t.Run("should absorb gone sessions and handles", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		gateway := mocks.NewMockJanusGateway(ctrl)
		svc := services.NewMediaServerService(gateway, logger.Discard())

		gateway.EXPECT().Detach(gomock.Any(), int64(5), int64(10)).
			Return(&janus.Error{Code: janus.CodeHandleNotFound}).Times(1)
		gateway.EXPECT().DestroySession(gomock.Any(), int64(5)).
			Return(&janus.Error{Code: janus.CodeSessionNotFound}).Times(1)

		req.NoError(svc.DetachHandle(ctx, 5, 10))
		req.NoError(svc.CloseConnection(ctx, 5))
	})

	t.Run("should report other teardown failures", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		gateway := mocks.NewMockJanusGateway(ctrl)
		svc := services.NewMediaServerService(gateway, logger.Discard())

		gateway.EXPECT().DestroySession(gomock.Any(), int64(5)).Return(janus.ErrUnavailable).Times(1)

		err := svc.CloseConnection(ctx, 5)

		req.ErrorIs(err, pkg.ErrDependencyUnavailable)
	})
}

func TestMediaServerService_Join(t *testing.T) {
	ctx := context.Background()

	t.Run("should join a video room as publisher with a display name", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		gateway := mocks.NewMockJanusGateway(ctrl)
		svc := services.NewMediaServerService(gateway, logger.Discard())

		gateway.EXPECT().
			Message(gomock.Any(), int64(1), int64(4), map[string]any{
				"request": "join",
				"room":    int64(99),
				"ptype":   "publisher",
				"display": "alice",
			}).
			Return(json.RawMessage(`{"videoroom":"joined"}`), nil).
			Times(1)

		req.NoError(svc.JoinVideoRoom(ctx, 1, 4, 99, services.RolePublisher, "alice"))
	})

	t.Run("should join a video room as subscriber without feeds", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		gateway := mocks.NewMockJanusGateway(ctrl)
		svc := services.NewMediaServerService(gateway, logger.Discard())

		gateway.EXPECT().
			Message(gomock.Any(), int64(1), int64(5), gomock.Any()).
			DoAndReturn(func(_ context.Context, _, _ int64, body any) (json.RawMessage, error) {
				b := body.(map[string]any)
				req.Equal("subscriber", b["ptype"])
				req.Empty(b["streams"])
				req.NotContains(b, "display")
				return json.RawMessage(`{"videoroom":"attached"}`), nil
			}).
			Times(1)

		req.NoError(svc.JoinVideoRoom(ctx, 1, 5, 99, services.RoleSubscriber, "alice"))
	})

	t.Run("should flag a join into a room the gateway no longer has", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		gateway := mocks.NewMockJanusGateway(ctrl)
		svc := services.NewMediaServerService(gateway, logger.Discard())

		gateway.EXPECT().
			Message(gomock.Any(), int64(1), int64(4), gomock.Any()).
			Return(nil, &janus.Error{Code: janus.CodeAudioBridgeNoSuchRoom, Reason: "No such room"}).
			Times(1)
		gateway.EXPECT().
			Message(gomock.Any(), int64(1), int64(5), gomock.Any()).
			Return(nil, &janus.Error{Code: janus.CodeSessionNotFound, Reason: "No such session"}).
			Times(1)

		err := svc.JoinAudioRoom(ctx, 1, 4, 77, "alice")
		req.ErrorIs(err, pkg.ErrDependencyUnavailable)
		req.ErrorIs(err, services.ErrMediaRoomGone)

		err = svc.JoinVideoRoom(ctx, 1, 5, 99, services.RolePublisher, "alice")
		req.ErrorIs(err, pkg.ErrDependencyUnavailable)
		req.NotErrorIs(err, services.ErrMediaRoomGone)
	})

	t.Run("should reject an unknown role without calling the gateway", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		gateway := mocks.NewMockJanusGateway(ctrl)
		svc := services.NewMediaServerService(gateway, logger.Discard())

		gateway.EXPECT().Message(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		err := svc.JoinVideoRoom(ctx, 1, 5, 99, services.VideoRole("viewer"), "alice")

		req.ErrorIs(err, pkg.ErrBadRequest)
	})

	t.Run("should treat leaving with a gone handle as success", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		gateway := mocks.NewMockJanusGateway(ctrl)
		svc := services.NewMediaServerService(gateway, logger.Discard())

		gateway.EXPECT().
			Message(gomock.Any(), int64(1), int64(5), map[string]any{"request": "leave"}).
			Return(nil, &janus.Error{Code: janus.CodeHandleNotFound}).
			Times(1)

		req.NoError(svc.LeaveRoom(ctx, 1, 5))
	})
}
