package handlers

import (
	"context"

	"jan-server/services/meet-api/internal/domain/recording"
)

// RecordingHandler handles recording-related HTTP requests.
type RecordingHandler struct {
	service recording.Service
}

// NewRecordingHandler creates a new recording handler.
func NewRecordingHandler(service recording.Service) *RecordingHandler {
	return &RecordingHandler{service: service}
}

// ListRecordings lists recordings of one room, or of all rooms when roomName is empty.
func (h *RecordingHandler) ListRecordings(ctx context.Context, roomName string) ([]*recording.Recording, error) {
	return h.service.ListRecordings(ctx, roomName)
}

// DeleteRecording deletes a recording upstream.
func (h *RecordingHandler) DeleteRecording(ctx context.Context, recordingID string) error {
	return h.service.DeleteRecording(ctx, recordingID)
}

// GetRecordingURL returns a playback URL for a recording.
func (h *RecordingHandler) GetRecordingURL(ctx context.Context, recordingID string) (string, error) {
	return h.service.GetRecordingURL(ctx, recordingID)
}

// OpenRecordingMedia opens the recording media stream. The caller closes it.
func (h *RecordingHandler) OpenRecordingMedia(ctx context.Context, recordingID, rangeHeader string) (*recording.Media, error) {
	return h.service.OpenRecordingMedia(ctx, recordingID, rangeHeader)
}
