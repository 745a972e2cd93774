// Package config loads the service configuration from the environment.
// A .env file in the working directory is loaded first when present.
package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config carries every setting. Each section maps to one env prefix, e.g.
// Janus.URL is read from JANUS_URL.
type Config struct {
	Env string `envconfig:"APP_ENV" default:"dev"`

	Server     ServerConfig     `envconfig:"SERVER"`
	Database   DatabaseConfig   `envconfig:"DATABASE"`
	JWT        JWTConfig        `envconfig:"JWT"`
	Janus      JanusConfig      `envconfig:"JANUS"`
	MediaToken MediaTokenConfig `envconfig:"MEDIA_TOKEN"`
	Email      EmailConfig      `envconfig:"EMAIL"`
	Log        LogConfig        `envconfig:"LOG"`
	Cache      CacheConfig      `envconfig:"CACHE"`
	RateLimit  RateLimitConfig  `envconfig:"RATE_LIMIT"`
	Internal   InternalConfig   `envconfig:"INTERNAL"`
}

type ServerConfig struct {
	Host        string   `split_words:"true" default:"0.0.0.0"`
	Port        int      `split_words:"true" default:"9090"`
	CORSOrigins []string `split_words:"true" default:"*"`
}

type DatabaseConfig struct {
	Path string `split_words:"true" default:"./data/huddle.db"`
}

// JWTConfig holds the key access tokens are verified with. Tokens are
// issued by the auth service.
type JWTConfig struct {
	Secret string `split_words:"true"`
}

// JanusConfig points at the media gateway's WebSocket API.
type JanusConfig struct {
	URL               string        `split_words:"true" default:"ws://localhost:8188"`
	APISecret         string        `split_words:"true"`
	RequestTimeout    time.Duration `split_words:"true" default:"10s"`
	KeepaliveInterval time.Duration `split_words:"true" default:"25s"`
}

// MediaTokenConfig enables client media tokens in join responses. URL is
// returned alongside so clients know which media edge checks them. Tokens
// are only issued when both key and secret are set.
type MediaTokenConfig struct {
	URL       string        `split_words:"true"`
	APIKey    string        `split_words:"true"`
	APISecret string        `split_words:"true"`
	TTL       time.Duration `split_words:"true" default:"24h"`
}

func (c MediaTokenConfig) Enabled() bool {
	return c.APIKey != "" && c.APISecret != ""
}

// EmailConfig enables "meeting ended" mails to room owners when the Resend
// key is set.
type EmailConfig struct {
	ResendAPIKey string `split_words:"true"`
	From         string `split_words:"true" default:"huddle <noreply@huddle.local>"`
	AppURL       string `split_words:"true" default:"http://localhost:3030"`
}

func (c EmailConfig) Enabled() bool {
	return c.ResendAPIKey != ""
}

type LogConfig struct {
	Level   string `split_words:"true" default:"info"`
	Backend string `split_words:"true"`
}

type CacheConfig struct {
	MembershipTTL time.Duration `split_words:"true" default:"30s"`
}

type RateLimitConfig struct {
	Joins  int           `split_words:"true" default:"10"`
	Window time.Duration `split_words:"true" default:"1m"`
}

// InternalConfig guards the room-sync endpoints called by the room service.
type InternalConfig struct {
	Token string `split_words:"true"`
}

// Load builds the Config from .env and the process environment.
func Load() (*Config, error) {
	// A missing .env is fine; production sets real variables.
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	if cfg.JWT.Secret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable is required")
	}

	if cfg.Server.Port <= 0 || cfg.Server.Port > 65535 {
		return nil, fmt.Errorf("invalid SERVER_PORT: %d", cfg.Server.Port)
	}
	if cfg.RateLimit.Joins <= 0 || cfg.RateLimit.Window <= 0 {
		return nil, fmt.Errorf("RATE_LIMIT_JOINS and RATE_LIMIT_WINDOW must be positive")
	}

	return &cfg, nil
}

// Addr returns the listen address, e.g. "0.0.0.0:9090".
func (c *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
