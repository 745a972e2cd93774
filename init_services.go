package main

import (
	"log/slog"

	"github.com/akinalp/huddle/config"
	"github.com/akinalp/huddle/models"
	"github.com/akinalp/huddle/pkg/cache"
	"github.com/akinalp/huddle/pkg/email"
	"github.com/akinalp/huddle/pkg/janus"
	"github.com/akinalp/huddle/pkg/keylock"
	"github.com/akinalp/huddle/pkg/ratelimit"
	"github.com/akinalp/huddle/services"
	"github.com/akinalp/huddle/ws"
)

// Services holds every service instance.
type Services struct {
	Auth        services.AuthService
	Room        services.RoomService
	Media       services.MediaServerService
	Meeting     services.MeetingService
	Participant services.ParticipantService
	MediaToken  services.MediaTokenService
}

// Closers are the long-lived resources main shuts down on exit.
type Closers struct {
	Janus       *janus.Client
	Memberships *cache.TTLCache[string, models.Membership]
	JoinLimiter *ratelimit.Limiter
}

func (c *Closers) Close() {
	if err := c.Janus.Close(); err != nil {
		slog.Warn("failed to close janus client", "error", err)
	}
	c.Memberships.Close()
	c.JoinLimiter.Close()
}

// initServices wires the orchestrators. MeetingService and
// ParticipantService share one keylock.Locker so a meeting's mutations are
// serialized across both.
func initServices(repos *Repositories, hub *ws.Hub, cfg *config.Config, logger *slog.Logger) (*Services, *Closers) {
	gateway := janus.New(cfg.Janus.URL, janus.Options{
		RequestTimeout:    cfg.Janus.RequestTimeout,
		KeepaliveInterval: cfg.Janus.KeepaliveInterval,
		APISecret:         cfg.Janus.APISecret,
	}, logger)

	memberships := cache.New[string, models.Membership](cfg.Cache.MembershipTTL, cfg.Cache.MembershipTTL)

	var mailer email.Sender
	if cfg.Email.Enabled() {
		mailer = email.NewResendSender(cfg.Email.ResendAPIKey, cfg.Email.From, cfg.Email.AppURL)
	} else {
		logger.Info("email not configured, meeting ended mails are off")
	}

	locks := keylock.New()
	media := services.NewMediaServerService(gateway, logger)
	rooms := services.NewRoomService(repos.Room, memberships)

	meetings := services.NewMeetingService(
		repos.Meeting, repos.Participant, rooms, media, hub, locks, mailer, logger,
	)
	participants := services.NewParticipantService(
		repos.Meeting, repos.Participant, meetings, rooms, media, hub, locks, logger,
	)

	svcs := &Services{
		Auth:        services.NewAuthService(cfg.JWT.Secret),
		Room:        rooms,
		Media:       media,
		Meeting:     meetings,
		Participant: participants,
		MediaToken:  services.NewMediaTokenService(cfg.MediaToken),
	}
	closers := &Closers{
		Janus:       gateway,
		Memberships: memberships,
		JoinLimiter: ratelimit.New(cfg.RateLimit.Joins, cfg.RateLimit.Window),
	}
	return svcs, closers
}
