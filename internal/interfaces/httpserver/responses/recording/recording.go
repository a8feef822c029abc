// Package recordingres contains HTTP response DTOs for recording endpoints.
package recordingres

import (
	domainrecording "jan-server/services/meet-api/internal/domain/recording"
)

// ListRecordingsResponse is the body of GET /recordings.
type ListRecordingsResponse struct {
	Recordings []*domainrecording.Recording `json:"recordings"`
}

// RecordingURLResponse is the body of GET /recordings/{id}/url.
type RecordingURLResponse struct {
	URL string `json:"url"`
}

// NewListRecordingsResponse never encodes recordings as null.
func NewListRecordingsResponse(recordings []*domainrecording.Recording) *ListRecordingsResponse {
	if recordings == nil {
		recordings = []*domainrecording.Recording{}
	}
	return &ListRecordingsResponse{Recordings: recordings}
}
