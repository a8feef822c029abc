package handlers

import (
	"github.com/google/wire"
)

// Provider holds all HTTP handlers.
type Provider struct {
	Room      *RoomHandler
	Recording *RecordingHandler
	Config    *ConfigHandler
}

// NewProvider creates a new handler provider.
func NewProvider(roomHandler *RoomHandler, recordingHandler *RecordingHandler, configHandler *ConfigHandler) *Provider {
	return &Provider{
		Room:      roomHandler,
		Recording: recordingHandler,
		Config:    configHandler,
	}
}

// HandlerProvider provides all handlers for wire.
var HandlerProvider = wire.NewSet(
	NewRoomHandler,
	NewRecordingHandler,
	NewConfigHandler,
	NewProvider,
)
