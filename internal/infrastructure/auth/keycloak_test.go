package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeycloakValidator_ReadyRecoversAfterJWKSOutage(t *testing.T) {
	var failing atomic.Bool
	jwksServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if failing.Load() {
			http.Error(w, "unavailable", http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"keys":[]}`))
	}))
	defer jwksServer.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	v, err := NewKeycloakValidator(ctx, jwksServer.URL, "http://issuer", "", 20*time.Millisecond, time.Minute, zerolog.Nop())
	require.NoError(t, err)
	require.True(t, v.Ready())

	failing.Store(true)
	assert.Eventually(t, func() bool { return !v.Ready() }, 2*time.Second, 10*time.Millisecond)

	failing.Store(false)
	assert.Eventually(t, v.Ready, 2*time.Second, 10*time.Millisecond)
}

func TestNewKeycloakValidator_RequiresURL(t *testing.T) {
	_, err := NewKeycloakValidator(context.Background(), "", "iss", "", time.Minute, 0, zerolog.Nop())
	assert.Error(t, err)
}
