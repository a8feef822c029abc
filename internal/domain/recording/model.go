package recording

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"jan-server/services/meet-api/internal/utils/jsonx"
)

// Status is the lifecycle state of a recording as reported upstream.
type Status string

const (
	StatusStarting     Status = "starting"
	StatusActive       Status = "active"
	StatusEnding       Status = "ending"
	StatusComplete     Status = "complete"
	StatusFailed       Status = "failed"
	StatusAborted      Status = "aborted"
	StatusLimitReached Status = "limit_reached"
)

// Recording is a media artifact of a room. It is never stored locally.
type Recording struct {
	RecordingID string  `json:"recordingId"`
	RoomID      string  `json:"roomId"`
	RoomName    string  `json:"roomName,omitempty"`
	Status      Status  `json:"status"`
	Filename    string  `json:"filename,omitempty"`
	StartDate   int64   `json:"startDate,omitempty"`
	EndDate     int64   `json:"endDate,omitempty"`
	Duration    float64 `json:"duration,omitempty"`
	Size        int64   `json:"size,omitempty"`
	ErrorCode   int     `json:"errorCode,omitempty"`
	Error       string  `json:"error,omitempty"`
	Details     string  `json:"details,omitempty"`

	Extra map[string]json.RawMessage `json:"-"`
}

// UnmarshalJSON decodes an upstream recording, keeping unknown members in Extra.
func (r *Recording) UnmarshalJSON(data []byte) error {
	type plain Recording
	var p plain
	extra, err := jsonx.SplitUnknown(data, &p)
	if err != nil {
		return err
	}
	*r = Recording(p)
	r.Extra = extra
	return nil
}

// MarshalJSON encodes the recording together with its Extra members.
func (r Recording) MarshalJSON() ([]byte, error) {
	type plain Recording
	return jsonx.MergeUnknown(plain(r), r.Extra)
}

// Media is an open recording media stream. Callers must close Body.
type Media struct {
	StatusCode int
	Header     http.Header
	Body       io.ReadCloser
}

// Gateway is the subset of the upstream Meet API used for recordings.
type Gateway interface {
	ListRecordings(ctx context.Context, roomID string, maxItems int) ([]*Recording, error)
	DeleteRecording(ctx context.Context, recordingID string) error
	GetRecordingURL(ctx context.Context, recordingID string) (string, error)
	OpenRecordingMedia(ctx context.Context, recordingID, rangeHeader string) (*Media, error)
}
