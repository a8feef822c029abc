package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
)

// Config holds all configuration for the meet-api service.
type Config struct {
	// Service settings
	ServiceName     string        `env:"SERVICE_NAME" envDefault:"meet-api"`
	Environment     string        `env:"ENVIRONMENT" envDefault:"development"`
	HTTPPort        int           `env:"SERVER_PORT" envDefault:"6080"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`

	// OpenTelemetry
	EnableTracing bool   `env:"OTEL_ENABLED" envDefault:"false"`
	OTLPEndpoint  string `env:"OTEL_EXPORTER_OTLP_ENDPOINT" envDefault:""`

	// Auth (Keycloak)
	AuthEnabled  bool   `env:"AUTH_ENABLED" envDefault:"false"`
	AuthIssuer   string `env:"ISSUER"`
	AuthAudience string `env:"AUDIENCE"`
	AuthJWKSURL  string `env:"JWKS_URL"`

	// OpenVidu Meet
	MeetServerURL        string        `env:"MEET_SERVER_URL" envDefault:"http://localhost:9080"`
	MeetAPIPath          string        `env:"MEET_API_PATH" envDefault:"/api/v1"`
	MeetAPIKey           string        `env:"MEET_API_KEY"`
	MeetWebcomponentPath string        `env:"MEET_WEBCOMPONENT_PATH" envDefault:"/v1/openvidu-meet.js"`
	MeetRequestTimeout   time.Duration `env:"MEET_REQUEST_TIMEOUT" envDefault:"30s"`

	// Default feature set applied to every room created through this service
	RoomChatEnabled              bool   `env:"MEET_ROOM_CHAT_ENABLED" envDefault:"true"`
	RoomRecordingEnabled         bool   `env:"MEET_ROOM_RECORDING_ENABLED" envDefault:"true"`
	RoomRecordingAccess          string `env:"MEET_ROOM_RECORDING_ACCESS" envDefault:"admin_moderator_speaker"`
	RoomVirtualBackgroundEnabled bool   `env:"MEET_ROOM_VIRTUAL_BACKGROUND_ENABLED" envDefault:"true"`

	// Recordings
	RecordingsPageSize int `env:"MEET_RECORDINGS_PAGE_SIZE" envDefault:"100"`
	RecordingsFanout   int `env:"MEET_RECORDINGS_FANOUT" envDefault:"4"`

	// Registry reconciliation against the upstream room list. Zero disables it.
	ReconcileInterval time.Duration `env:"MEET_RECONCILE_INTERVAL" envDefault:"0s"`
}

// Load parses environment variables into Config.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks cross-field constraints that struct tags cannot express.
func (c *Config) Validate() error {
	if c.AuthEnabled {
		if strings.TrimSpace(c.AuthIssuer) == "" {
			return fmt.Errorf("ISSUER is required when AUTH_ENABLED is true")
		}
		if strings.TrimSpace(c.AuthAudience) == "" {
			return fmt.Errorf("AUDIENCE is required when AUTH_ENABLED is true")
		}
		if strings.TrimSpace(c.AuthJWKSURL) == "" {
			return fmt.Errorf("JWKS_URL is required when AUTH_ENABLED is true")
		}
	}

	if strings.TrimSpace(c.MeetAPIKey) == "" {
		return fmt.Errorf("MEET_API_KEY is required")
	}
	u, err := url.Parse(c.MeetServerURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("MEET_SERVER_URL must be an absolute URL, got %q", c.MeetServerURL)
	}

	if c.RecordingsPageSize <= 0 {
		return fmt.Errorf("MEET_RECORDINGS_PAGE_SIZE must be positive")
	}
	if c.RecordingsFanout <= 0 {
		return fmt.Errorf("MEET_RECORDINGS_FANOUT must be positive")
	}
	return nil
}

// Addr returns the HTTP server address.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}

// MeetAPIURL returns the base URL of the OpenVidu Meet REST API.
func (c *Config) MeetAPIURL() string {
	return joinURL(c.MeetServerURL, c.MeetAPIPath)
}

// MeetWebcomponentURL returns the URL the browser loads the Meet web component from.
func (c *Config) MeetWebcomponentURL() string {
	return joinURL(c.MeetServerURL, c.MeetWebcomponentPath)
}

func joinURL(base, path string) string {
	base = strings.TrimRight(base, "/")
	if path == "" {
		return base
	}
	return base + "/" + strings.TrimLeft(path, "/")
}
