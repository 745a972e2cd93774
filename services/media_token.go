package services

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/livekit/protocol/auth"

	"github.com/akinalp/huddle/config"
	"github.com/akinalp/huddle/models"
)

// MediaTokenService issues the client token a participant presents to the
// media edge. The token is scoped to the meeting's video room and one client
// session, and only grants publishing while one of the participant's
// streams is on.
type MediaTokenService interface {
	// Issue returns "" when tokens are not configured.
	Issue(meeting *models.Meeting, p *models.Participant) (string, error)
	Enabled() bool
	// URL is where clients present the token. Empty when not configured.
	URL() string
}

var errNoVideoRoom = errors.New("meeting has no video room")

type mediaTokenService struct {
	cfg config.MediaTokenConfig
}

func NewMediaTokenService(cfg config.MediaTokenConfig) MediaTokenService {
	return &mediaTokenService{cfg: cfg}
}

func (s *mediaTokenService) Enabled() bool { return s.cfg.Enabled() }

func (s *mediaTokenService) URL() string {
	if !s.cfg.Enabled() {
		return ""
	}
	return s.cfg.URL
}

func (s *mediaTokenService) Issue(meeting *models.Meeting, p *models.Participant) (string, error) {
	if !s.cfg.Enabled() {
		return "", nil
	}
	if meeting.Media == nil {
		return "", fmt.Errorf("failed to generate media token for meeting %s: %w", meeting.ID, errNoVideoRoom)
	}

	canPublish := p.AudioOn || p.VideoOn || p.ScreenOn
	canSubscribe := true
	canPublishData := false

	grant := &auth.VideoGrant{
		RoomJoin:       true,
		Room:           strconv.FormatInt(meeting.Media.VideoRoomID, 10),
		CanPublish:     &canPublish,
		CanSubscribe:   &canSubscribe,
		CanPublishData: &canPublishData,
	}

	ttl := s.cfg.TTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}

	at := auth.NewAccessToken(s.cfg.APIKey, s.cfg.APISecret)
	at.AddGrant(grant).
		SetIdentity(p.UserID + ":" + p.SessionID).
		SetName(p.UserID).
		SetValidFor(ttl)

	token, err := at.ToJWT()
	if err != nil {
		return "", fmt.Errorf("failed to generate media token: %w", err)
	}
	return token, nil
}
