package domain

import (
	"github.com/google/wire"
	"github.com/rs/zerolog"

	"jan-server/services/meet-api/internal/config"
	"jan-server/services/meet-api/internal/domain/recording"
	"jan-server/services/meet-api/internal/domain/room"
)

// RoomFeatures returns the default feature set for newly created rooms.
func RoomFeatures(cfg *config.Config) room.Features {
	return room.Features{
		ChatEnabled:              cfg.RoomChatEnabled,
		RecordingEnabled:         cfg.RoomRecordingEnabled,
		RecordingAccess:          cfg.RoomRecordingAccess,
		VirtualBackgroundEnabled: cfg.RoomVirtualBackgroundEnabled,
	}
}

// ProvideRoomService provides a room service.
func ProvideRoomService(
	store room.Store,
	gateway room.Gateway,
	cfg *config.Config,
	log zerolog.Logger,
) room.Service {
	return room.NewService(store, gateway, RoomFeatures(cfg), log)
}

// ProvideRecordingService provides a recording service.
func ProvideRecordingService(
	store room.Store,
	gateway recording.Gateway,
	cfg *config.Config,
	log zerolog.Logger,
) recording.Service {
	return recording.NewService(store, gateway, cfg.RecordingsPageSize, cfg.RecordingsFanout, log)
}

// ServiceProvider provides all domain services.
var ServiceProvider = wire.NewSet(
	ProvideRoomService,
	ProvideRecordingService,
)
