package handlers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/akinalp/huddle/config"
	"github.com/akinalp/huddle/handlers"
	"github.com/akinalp/huddle/mocks"
	"github.com/akinalp/huddle/models"
	"github.com/akinalp/huddle/pkg"
	"github.com/akinalp/huddle/pkg/logger"
	"github.com/akinalp/huddle/pkg/ratelimit"
	"github.com/akinalp/huddle/services"
)

type apiResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

type meetingFixture struct {
	meetings     *mocks.MockMeetingService
	participants *mocks.MockParticipantService
	rooms        *mocks.MockRoomService
	router       http.Handler
}

// newMeetingFixture mounts the handlers on a chi router. The X-User header
// stands in for the auth middleware.
func newMeetingFixture(t *testing.T, limiter *ratelimit.Limiter) *meetingFixture {
	t.Helper()
	return newMeetingFixtureWithTokens(t, limiter, services.NewMediaTokenService(config.MediaTokenConfig{}))
}

func newMeetingFixtureWithTokens(t *testing.T, limiter *ratelimit.Limiter, tokens services.MediaTokenService) *meetingFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &meetingFixture{
		meetings:     mocks.NewMockMeetingService(ctrl),
		participants: mocks.NewMockParticipantService(ctrl),
		rooms:        mocks.NewMockRoomService(ctrl),
	}

	mh := handlers.NewMeetingHandler(f.meetings, f.participants, tokens, limiter, logger.Discard())
	rh := handlers.NewRoomHandler(f.rooms, f.meetings)

	r := chi.NewRouter()
	r.Group(func(r chi.Router) {
		r.Use(func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
				if user := req.Header.Get("X-User"); user != "" {
					req = req.WithContext(handlers.WithUserID(req.Context(), user))
				}
				next.ServeHTTP(w, req)
			})
		})
		r.Get("/api/meetings", mh.List)
		r.Get("/api/meetings/{id}", mh.Get)
		r.Delete("/api/meetings/{id}", mh.Delete)
		r.Post("/api/meetings/{id}/join", mh.Join)
		r.Post("/api/meetings/{id}/leave", mh.Leave)
		r.Post("/api/meetings/{id}/streams/{capability}/enable", mh.EnableStream)
		r.Post("/api/meetings/{id}/streams/{capability}/disable", mh.DisableStream)
		r.Post("/api/rooms/{roomId}/meeting/join", mh.JoinRoom)
	})
	r.Put("/internal/rooms/{roomId}", rh.Sync)
	r.Delete("/internal/rooms/{roomId}", rh.Delete)
	f.router = r

	return f
}

func (f *meetingFixture) do(t *testing.T, method, path, user, body string) (*httptest.ResponseRecorder, apiResponse) {
	t.Helper()
	r := httptest.NewRequest(method, path, strings.NewReader(body))
	if user != "" {
		r.Header.Set("X-User", user)
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, r)

	var resp apiResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w, resp
}

func TestMeetingHandler_Join(t *testing.T) {
	meeting := &models.Meeting{ID: "m1", RoomID: "r1", Kind: models.MeetingTransient}
	participant := &models.Participant{MeetingID: "m1", UserID: "bob", SessionID: "s1", AudioOn: true}

	t.Run("should join with the requested streams", func(t *testing.T) {
		req := require.New(t)
		f := newMeetingFixture(t, nil)

		f.participants.EXPECT().
			Join(gomock.Any(), "m1", "bob", "s1", models.StreamFlags{Audio: true}).
			Return(participant, nil).
			Times(1)
		f.meetings.EXPECT().Get(gomock.Any(), "m1", "bob").Return(meeting, nil).Times(1)

		w, resp := f.do(t, http.MethodPost, "/api/meetings/m1/join", "bob", `{"session_id":"s1","audio":true}`)

		req.Equal(http.StatusOK, w.Code)
		var joined struct {
			Meeting     models.Meeting     `json:"meeting"`
			Participant models.Participant `json:"participant"`
			MediaToken  string             `json:"media_token"`
		}
		req.NoError(json.Unmarshal(resp.Data, &joined))
		req.Equal("m1", joined.Meeting.ID)
		req.Equal("s1", joined.Participant.SessionID)
		req.Empty(joined.MediaToken)
	})

	t.Run("should return the media token and where to use it", func(t *testing.T) {
		req := require.New(t)
		f := newMeetingFixtureWithTokens(t, nil, services.NewMediaTokenService(config.MediaTokenConfig{
			URL:       "wss://media.example.com",
			APIKey:    "key-1",
			APISecret: "media-secret-that-is-long-enough-for-hs256",
		}))
		live := &models.Meeting{
			ID:     "m1",
			RoomID: "r1",
			Media:  &models.MeetingMediaResources{ConnectionID: 1, VideoRoomID: 7},
		}

		f.participants.EXPECT().
			Join(gomock.Any(), "m1", "bob", "s1", models.StreamFlags{Audio: true}).
			Return(participant, nil).
			Times(1)
		f.meetings.EXPECT().Get(gomock.Any(), "m1", "bob").Return(live, nil).Times(1)

		w, resp := f.do(t, http.MethodPost, "/api/meetings/m1/join", "bob", `{"session_id":"s1","audio":true}`)

		req.Equal(http.StatusOK, w.Code)
		var joined models.JoinMeetingResponse
		req.NoError(json.Unmarshal(resp.Data, &joined))
		req.NotEmpty(joined.MediaToken)
		req.Equal("wss://media.example.com", joined.MediaURL)
	})

	t.Run("should reject a body without a session id", func(t *testing.T) {
		req := require.New(t)
		f := newMeetingFixture(t, nil)

		w, _ := f.do(t, http.MethodPost, "/api/meetings/m1/join", "bob", `{"session_id":"  ","audio":true}`)

		req.Equal(http.StatusBadRequest, w.Code)
	})

	t.Run("should require an authenticated user", func(t *testing.T) {
		req := require.New(t)
		f := newMeetingFixture(t, nil)

		w, _ := f.do(t, http.MethodPost, "/api/meetings/m1/join", "", `{"session_id":"s1"}`)

		req.Equal(http.StatusUnauthorized, w.Code)
	})

	t.Run("should map service errors to status codes", func(t *testing.T) {
		req := require.New(t)
		cases := []struct {
			err    error
			status int
		}{
			{fmt.Errorf("%w: not a member of the chat room", pkg.ErrForbidden), http.StatusForbidden},
			{fmt.Errorf("%w: already joined", pkg.ErrConflict), http.StatusConflict},
			{fmt.Errorf("%w: meeting", pkg.ErrNotFound), http.StatusNotFound},
			{fmt.Errorf("%w: create_video_room: janus error 455", pkg.ErrDependencyUnavailable), http.StatusServiceUnavailable},
		}
		for _, tc := range cases {
			f := newMeetingFixture(t, nil)
			f.participants.EXPECT().
				Join(gomock.Any(), "m1", "bob", "s1", gomock.Any()).
				Return(nil, tc.err).
				Times(1)

			w, resp := f.do(t, http.MethodPost, "/api/meetings/m1/join", "bob", `{"session_id":"s1"}`)

			req.Equal(tc.status, w.Code, tc.err.Error())
			req.NotContains(resp.Error, "janus")
		}
	})

	t.Run("should limit join attempts per user", func(t *testing.T) {
		req := require.New(t)
		limiter := ratelimit.New(1, time.Minute)
		t.Cleanup(limiter.Close)
		f := newMeetingFixture(t, limiter)

		f.participants.EXPECT().
			Join(gomock.Any(), "m1", "bob", "s1", gomock.Any()).
			Return(participant, nil).
			Times(1)
		f.meetings.EXPECT().Get(gomock.Any(), "m1", "bob").Return(meeting, nil).Times(1)

		w, _ := f.do(t, http.MethodPost, "/api/meetings/m1/join", "bob", `{"session_id":"s1"}`)
		req.Equal(http.StatusOK, w.Code)

		w, _ = f.do(t, http.MethodPost, "/api/meetings/m1/join", "bob", `{"session_id":"s1"}`)
		req.Equal(http.StatusTooManyRequests, w.Code)
		req.NotEmpty(w.Header().Get("Retry-After"))
	})

	t.Run("should join a room's meeting and answer with the fresh meeting", func(t *testing.T) {
		req := require.New(t)
		f := newMeetingFixture(t, nil)
		fresh := &models.Meeting{ID: "m1", RoomID: "r1", Participants: []models.Participant{*participant}}

		f.participants.EXPECT().
			JoinRoom(gomock.Any(), "r1", "bob", "s1", models.StreamFlags{Video: true}).
			Return(meeting, participant, nil).
			Times(1)
		f.meetings.EXPECT().Get(gomock.Any(), "m1", "bob").Return(fresh, nil).Times(1)

		w, resp := f.do(t, http.MethodPost, "/api/rooms/r1/meeting/join", "bob", `{"session_id":"s1","video":true}`)

		req.Equal(http.StatusOK, w.Code)
		var joined models.JoinMeetingResponse
		req.NoError(json.Unmarshal(resp.Data, &joined))
		req.Len(joined.Meeting.Participants, 1)
	})
}

func TestMeetingHandler_Streams(t *testing.T) {
	t.Run("should route each capability to its toggle", func(t *testing.T) {
		req := require.New(t)
		f := newMeetingFixture(t, nil)

		f.participants.EXPECT().EnableAudio(gomock.Any(), "m1", "s1", "bob").Return(nil).Times(1)
		f.participants.EXPECT().DisableVideo(gomock.Any(), "m1", "s1", "bob").Return(nil).Times(1)
		f.participants.EXPECT().EnableScreen(gomock.Any(), "m1", "s1", "bob").Return(nil).Times(1)

		for _, path := range []string{
			"/api/meetings/m1/streams/audio/enable",
			"/api/meetings/m1/streams/video/disable",
			"/api/meetings/m1/streams/screen/enable",
		} {
			w, _ := f.do(t, http.MethodPost, path, "bob", `{"session_id":"s1"}`)
			req.Equal(http.StatusOK, w.Code, path)
		}
	})

	t.Run("should let the owner disable someone else's stream", func(t *testing.T) {
		req := require.New(t)
		f := newMeetingFixture(t, nil)

		f.participants.EXPECT().DisableAudio(gomock.Any(), "m1", "s2", "alice").Return(nil).Times(1)

		w, _ := f.do(t, http.MethodPost, "/api/meetings/m1/streams/audio/disable", "alice", `{"session_id":"s2"}`)

		req.Equal(http.StatusOK, w.Code)
	})

	t.Run("should reject an unknown capability", func(t *testing.T) {
		req := require.New(t)
		f := newMeetingFixture(t, nil)

		w, _ := f.do(t, http.MethodPost, "/api/meetings/m1/streams/chat/enable", "bob", `{"session_id":"s1"}`)

		req.Equal(http.StatusBadRequest, w.Code)
	})

	t.Run("should hand out a publishing token when a stream is enabled", func(t *testing.T) {
		req := require.New(t)
		f := newMeetingFixtureWithTokens(t, nil, services.NewMediaTokenService(config.MediaTokenConfig{
			URL:       "wss://media.example.com",
			APIKey:    "key-1",
			APISecret: "media-secret-that-is-long-enough-for-hs256",
		}))

		live := &models.Meeting{
			ID:     "m1",
			RoomID: "r1",
			Media:  &models.MeetingMediaResources{ConnectionID: 1, VideoRoomID: 4242},
			Participants: []models.Participant{
				{MeetingID: "m1", UserID: "carol", SessionID: "s9"},
				{MeetingID: "m1", UserID: "bob", SessionID: "s1", VideoOn: true},
			},
		}
		f.participants.EXPECT().EnableVideo(gomock.Any(), "m1", "s1", "bob").Return(nil).Times(1)
		f.meetings.EXPECT().Get(gomock.Any(), "m1", "bob").Return(live, nil).Times(1)

		w, resp := f.do(t, http.MethodPost, "/api/meetings/m1/streams/video/enable", "bob", `{"session_id":"s1"}`)
		req.Equal(http.StatusOK, w.Code)

		var toggled models.StreamResponse
		req.NoError(json.Unmarshal(resp.Data, &toggled))
		req.True(toggled.On)
		req.NotEmpty(toggled.MediaToken)

		claims := jwt.MapClaims{}
		_, _, err := jwt.NewParser().ParseUnverified(toggled.MediaToken, claims)
		req.NoError(err)
		req.Equal("bob:s1", claims["sub"])
		video, ok := claims["video"].(map[string]any)
		req.True(ok)
		req.Equal("4242", video["room"])
		req.Equal(true, video["canPublish"])
	})

	t.Run("should not reload the meeting when a stream is disabled", func(t *testing.T) {
		req := require.New(t)
		f := newMeetingFixtureWithTokens(t, nil, services.NewMediaTokenService(config.MediaTokenConfig{
			APIKey:    "key-1",
			APISecret: "media-secret-that-is-long-enough-for-hs256",
		}))

		f.participants.EXPECT().DisableVideo(gomock.Any(), "m1", "s1", "bob").Return(nil).Times(1)

		w, resp := f.do(t, http.MethodPost, "/api/meetings/m1/streams/video/disable", "bob", `{"session_id":"s1"}`)
		req.Equal(http.StatusOK, w.Code)

		var toggled models.StreamResponse
		req.NoError(json.Unmarshal(resp.Data, &toggled))
		req.False(toggled.On)
		req.Empty(toggled.MediaToken)
	})
}

func TestMeetingHandler_Reads(t *testing.T) {
	t.Run("should list the caller's meetings", func(t *testing.T) {
		req := require.New(t)
		f := newMeetingFixture(t, nil)

		f.meetings.EXPECT().List(gomock.Any(), "bob").
			Return([]models.Meeting{{ID: "m1", RoomID: "r1"}}, nil).
			Times(1)

		w, resp := f.do(t, http.MethodGet, "/api/meetings", "bob", "")

		req.Equal(http.StatusOK, w.Code)
		var list []map[string]any
		req.NoError(json.Unmarshal(resp.Data, &list))
		req.Len(list, 1)
		req.Equal(false, list[0]["live"])
		req.NotContains(list[0], "Media")
	})

	t.Run("should leave and delete on behalf of the caller", func(t *testing.T) {
		req := require.New(t)
		f := newMeetingFixture(t, nil)

		f.participants.EXPECT().Leave(gomock.Any(), "m1", "bob", "s1").Return(nil).Times(1)
		f.meetings.EXPECT().Delete(gomock.Any(), "m1", "bob").
			Return(fmt.Errorf("%w: only the room owner can do this", pkg.ErrForbidden)).
			Times(1)

		w, _ := f.do(t, http.MethodPost, "/api/meetings/m1/leave", "bob", `{"session_id":"s1"}`)
		req.Equal(http.StatusOK, w.Code)

		w, _ = f.do(t, http.MethodDelete, "/api/meetings/m1", "bob", "")
		req.Equal(http.StatusForbidden, w.Code)
	})
}

func TestRoomHandler(t *testing.T) {
	t.Run("should end the meeting before forgetting the room", func(t *testing.T) {
		req := require.New(t)
		f := newMeetingFixture(t, nil)

		gomock.InOrder(
			f.meetings.EXPECT().DestroyByRoomID(gomock.Any(), "r1").Return(nil).Times(1),
			f.rooms.EXPECT().Delete(gomock.Any(), "r1").Return(nil).Times(1),
		)

		w, _ := f.do(t, http.MethodDelete, "/internal/rooms/r1", "", "")

		req.Equal(http.StatusOK, w.Code)
	})

	t.Run("should sync the membership snapshot", func(t *testing.T) {
		req := require.New(t)
		f := newMeetingFixture(t, nil)

		f.rooms.EXPECT().
			Sync(gomock.Any(), "r1", &models.SyncRoomRequest{
				Name:    "Standup",
				Members: []models.RoomMember{{UserID: "alice", IsOwner: true}},
			}).
			Return(&models.ChatRoom{ID: "r1", Name: "Standup"}, nil).
			Times(1)

		w, _ := f.do(t, http.MethodPut, "/internal/rooms/r1", "",
			`{"name":" Standup ","members":[{"user_id":"alice","is_owner":true}]}`)

		req.Equal(http.StatusOK, w.Code)
	})

	t.Run("should reject an invalid member email", func(t *testing.T) {
		req := require.New(t)
		f := newMeetingFixture(t, nil)

		w, _ := f.do(t, http.MethodPut, "/internal/rooms/r1", "",
			`{"name":"Standup","members":[{"user_id":"alice","email":"not-an-email"}]}`)

		req.Equal(http.StatusBadRequest, w.Code)
	})
}
