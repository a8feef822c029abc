package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("MEET_API_KEY", "meet-api-key")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "meet-api", cfg.ServiceName)
	assert.Equal(t, 6080, cfg.HTTPPort)
	assert.Equal(t, ":6080", cfg.Addr())
	assert.Equal(t, "http://localhost:9080/api/v1", cfg.MeetAPIURL())
	assert.Equal(t, "http://localhost:9080/v1/openvidu-meet.js", cfg.MeetWebcomponentURL())
	assert.Equal(t, 100, cfg.RecordingsPageSize)
	assert.True(t, cfg.RoomChatEnabled)
	assert.Equal(t, "admin_moderator_speaker", cfg.RoomRecordingAccess)
	assert.Zero(t, cfg.ReconcileInterval)
}

func TestLoad_MissingAPIKey(t *testing.T) {
	t.Setenv("MEET_API_KEY", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "MEET_API_KEY")
}

func TestLoad_AuthRequiresIssuer(t *testing.T) {
	t.Setenv("MEET_API_KEY", "meet-api-key")
	t.Setenv("AUTH_ENABLED", "true")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ISSUER")
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		return &Config{
			MeetServerURL:      "http://meet:9080",
			MeetAPIKey:         "key",
			RecordingsPageSize: 100,
			RecordingsFanout:   4,
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"valid", func(c *Config) {}, ""},
		{"relative server url", func(c *Config) { c.MeetServerURL = "meet:9080/x" }, "MEET_SERVER_URL"},
		{"zero page size", func(c *Config) { c.RecordingsPageSize = 0 }, "MEET_RECORDINGS_PAGE_SIZE"},
		{"zero fanout", func(c *Config) { c.RecordingsFanout = 0 }, "MEET_RECORDINGS_FANOUT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestJoinURL(t *testing.T) {
	assert.Equal(t, "http://a/api/v1", joinURL("http://a/", "/api/v1"))
	assert.Equal(t, "http://a/api/v1", joinURL("http://a", "api/v1"))
	assert.Equal(t, "http://a", joinURL("http://a/", ""))
}
