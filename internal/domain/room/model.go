package room

import (
	"encoding/json"
	"errors"

	"jan-server/services/meet-api/internal/utils/jsonx"
)

var (
	// ErrRoomNotFound is returned when a room name is not registered.
	ErrRoomNotFound = errors.New("room not found")
	// ErrRoomAlreadyExists is returned when a room name is already registered.
	ErrRoomAlreadyExists = errors.New("room already exists")
	// ErrRoomNameRequired is returned when a create request carries no room name.
	ErrRoomNameRequired = errors.New("room name is required")
)

// Room is a Meet room as returned by the upstream API, keyed locally by Name.
type Room struct {
	// Name is the client-chosen key in the registry.
	Name string `json:"name"`

	RoomID           string          `json:"roomId"`
	RoomName         string          `json:"roomName,omitempty"`
	ModeratorURL     string          `json:"moderatorUrl,omitempty"`
	SpeakerURL       string          `json:"speakerUrl,omitempty"`
	CreationDate     int64           `json:"creationDate,omitempty"`
	AutoDeletionDate *int64          `json:"autoDeletionDate,omitempty"`
	Status           string          `json:"status,omitempty"`
	Config           json.RawMessage `json:"config,omitempty"`

	// Extra holds upstream members not modelled above; they are relayed as is.
	Extra map[string]json.RawMessage `json:"-"`
}

// UnmarshalJSON decodes an upstream room, keeping unknown members in Extra.
func (r *Room) UnmarshalJSON(data []byte) error {
	type plain Room
	var p plain
	extra, err := jsonx.SplitUnknown(data, &p)
	if err != nil {
		return err
	}
	*r = Room(p)
	r.Extra = extra
	return nil
}

// MarshalJSON encodes the room together with its Extra members.
func (r Room) MarshalJSON() ([]byte, error) {
	type plain Room
	return jsonx.MergeUnknown(plain(r), r.Extra)
}

// Features is the feature set requested when a room is created.
type Features struct {
	ChatEnabled              bool
	RecordingEnabled         bool
	RecordingAccess          string
	VirtualBackgroundEnabled bool
}

// CreateRoomRequest is the upstream payload for room creation.
type CreateRoomRequest struct {
	RoomName         string      `json:"roomName"`
	AutoDeletionDate *int64      `json:"autoDeletionDate,omitempty"`
	Config           *RoomConfig `json:"config,omitempty"`
}

// RoomConfig mirrors the upstream room configuration object.
type RoomConfig struct {
	Chat              ToggleConfig    `json:"chat"`
	Recording         RecordingConfig `json:"recording"`
	VirtualBackground ToggleConfig    `json:"virtualBackground"`
}

// ToggleConfig is a feature that can only be switched on or off.
type ToggleConfig struct {
	Enabled bool `json:"enabled"`
}

// RecordingConfig controls recording and who may access recordings.
type RecordingConfig struct {
	Enabled       bool   `json:"enabled"`
	AllowAccessTo string `json:"allowAccessTo,omitempty"`
}

// NewCreateRoomRequest builds the upstream create payload for the given features.
func NewCreateRoomRequest(name string, f Features) *CreateRoomRequest {
	rec := RecordingConfig{Enabled: f.RecordingEnabled}
	if f.RecordingEnabled {
		rec.AllowAccessTo = f.RecordingAccess
	}
	return &CreateRoomRequest{
		RoomName: name,
		Config: &RoomConfig{
			Chat:              ToggleConfig{Enabled: f.ChatEnabled},
			Recording:         rec,
			VirtualBackground: ToggleConfig{Enabled: f.VirtualBackgroundEnabled},
		},
	}
}
