package meet

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jan-server/services/meet-api/internal/config"
	"jan-server/services/meet-api/internal/domain/room"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{
		MeetServerURL:      server.URL,
		MeetAPIPath:        "/api/v1",
		MeetAPIKey:         "test-key",
		MeetRequestTimeout: 5 * time.Second,
	}
	return NewClient(cfg, zerolog.Nop())
}

func TestClient_CreateRoom(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/rooms", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get(APIKeyHeader))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req room.CreateRoomRequest
		if assert.NoError(t, json.NewDecoder(r.Body).Decode(&req)) && assert.NotNil(t, req.Config) {
			assert.Equal(t, "standup", req.RoomName)
			assert.True(t, req.Config.Chat.Enabled)
			assert.Equal(t, "admin_moderator_speaker", req.Config.Recording.AllowAccessTo)
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"roomId":"standup-abc","roomName":"standup","moderatorUrl":"http://m","speakerUrl":"http://s","creationDate":1700000000000}`))
	})

	req := room.NewCreateRoomRequest("standup", room.Features{
		ChatEnabled:      true,
		RecordingEnabled: true,
		RecordingAccess:  "admin_moderator_speaker",
	})
	created, err := client.CreateRoom(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "standup-abc", created.RoomID)
	assert.Equal(t, "http://m", created.ModeratorURL)
	assert.Equal(t, "http://s", created.SpeakerURL)
	assert.Equal(t, int64(1700000000000), created.CreationDate)
}

func TestClient_NoContent(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/v1/rooms/room-1", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	})

	require.NoError(t, client.DeleteRoom(context.Background(), "room-1"))
}

func TestClient_APIErrorCarriesStatusAndMessage(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"Room Error","message":"Room 'x' does not exist"}`))
	})

	err := client.DeleteRoom(context.Background(), "x")
	apiErr, ok := AsAPIError(err)
	require.True(t, ok, "expected APIError, got %v", err)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "Room 'x' does not exist", apiErr.Message)
}

func TestClient_APIErrorFallbackMessage(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`<html>bad gateway</html>`))
	})

	_, err := client.GetRecordingURL(context.Background(), "rec-1")
	apiErr, ok := AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	assert.Equal(t, defaultAPIErrorMessage, apiErr.Message)
}

func TestClient_NetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	client := NewClient(&config.Config{MeetServerURL: url, MeetAPIPath: "/api/v1", MeetAPIKey: "k"}, zerolog.Nop())
	err := client.DeleteRecording(context.Background(), "rec-1")
	require.Error(t, err)

	var netErr *NetworkError
	assert.True(t, errors.As(err, &netErr))
	_, isAPI := AsAPIError(err)
	assert.False(t, isAPI)
}

func TestClient_ListRecordings(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/recordings", r.URL.Path)
		assert.Equal(t, "100", r.URL.Query().Get("maxItems"))
		assert.Equal(t, "room-1", r.URL.Query().Get("roomId"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"recordings":[{"recordingId":"room-1--EG_a","roomId":"room-1","status":"complete","duration":12.5,"size":2048}],"pagination":{"isTruncated":false}}`))
	})

	recs, err := client.ListRecordings(context.Background(), "room-1", 100)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "room-1--EG_a", recs[0].RecordingID)
	assert.EqualValues(t, "complete", recs[0].Status)
	assert.Equal(t, 12.5, recs[0].Duration)
	assert.Equal(t, int64(2048), recs[0].Size)
}

func TestClient_ListRecordingsEmptyBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{}`))
	})

	recs, err := client.ListRecordings(context.Background(), "room-1", 10)
	require.NoError(t, err)
	assert.NotNil(t, recs)
	assert.Empty(t, recs)
}

func TestClient_ListRoomsFollowsPagination(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Query().Get("nextPageToken") == "" {
			_, _ = w.Write([]byte(`{"rooms":[{"roomId":"a"}],"pagination":{"isTruncated":true,"nextPageToken":"p2"}}`))
			return
		}
		assert.Equal(t, "p2", r.URL.Query().Get("nextPageToken"))
		_, _ = w.Write([]byte(`{"rooms":[{"roomId":"b"}],"pagination":{"isTruncated":false}}`))
	})

	rooms, err := client.ListRooms(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, rooms, 2)
	assert.Equal(t, "a", rooms[0].RoomID)
	assert.Equal(t, "b", rooms[1].RoomID)
	assert.Equal(t, int32(2), calls.Load())
}

func TestClient_OpenRecordingMedia(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/recordings/rec-1/media", r.URL.Path)
		assert.Equal(t, "bytes=0-3", r.Header.Get("Range"))
		w.Header().Set("Content-Type", "video/mp4")
		w.Header().Set("Content-Range", "bytes 0-3/10")
		w.WriteHeader(http.StatusPartialContent)
		_, _ = w.Write([]byte("abcd"))
	})

	media, err := client.OpenRecordingMedia(context.Background(), "rec-1", "bytes=0-3")
	require.NoError(t, err)
	defer media.Body.Close()

	assert.Equal(t, http.StatusPartialContent, media.StatusCode)
	assert.Equal(t, "video/mp4", media.Header.Get("Content-Type"))
	data, err := io.ReadAll(media.Body)
	require.NoError(t, err)
	assert.Equal(t, "abcd", string(data))
}

func TestClient_OpenRecordingMediaError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"Recording 'rec-1' not found"}`))
	})

	_, err := client.OpenRecordingMedia(context.Background(), "rec-1", "")
	apiErr, ok := AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "Recording 'rec-1' not found", apiErr.Message)
}

func TestResourceOf(t *testing.T) {
	tests := map[string]string{
		"rooms":                        "rooms",
		"rooms?maxItems=10":            "rooms",
		"rooms/abc":                    "rooms/{id}",
		"recordings/abc/url":           "recordings/{id}/url",
		"/recordings?roomId=x&max=100": "recordings",
	}
	for in, want := range tests {
		assert.Equal(t, want, resourceOf(in), in)
	}
}
