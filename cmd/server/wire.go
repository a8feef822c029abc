//go:build wireinject
// +build wireinject

package main

import (
	"context"

	"github.com/google/wire"
	"github.com/rs/zerolog"

	"jan-server/services/meet-api/internal/config"
	"jan-server/services/meet-api/internal/domain"
	"jan-server/services/meet-api/internal/domain/recording"
	"jan-server/services/meet-api/internal/domain/room"
	"jan-server/services/meet-api/internal/infrastructure/meet"
	"jan-server/services/meet-api/internal/infrastructure/store"
	"jan-server/services/meet-api/internal/interfaces"
)

// ProviderSet is the wire provider set for the application.
var ProviderSet = wire.NewSet(
	// Infrastructure providers
	meet.NewClient,
	wire.Bind(new(room.Gateway), new(*meet.Client)),
	wire.Bind(new(recording.Gateway), new(*meet.Client)),
	wire.Bind(new(store.RoomLister), new(*meet.Client)),
	store.NewMemoryStore,
	wire.Bind(new(room.Store), new(*store.MemoryStore)),
	ProvideReconciler,
	ProvideAuthValidator,

	// Domain providers
	domain.ServiceProvider,

	// Interface providers
	interfaces.InterfacesProvider,

	// Application
	NewApplication,
)

// CreateApplication creates the application with all dependencies wired.
func CreateApplication(
	ctx context.Context,
	cfg *config.Config,
	log zerolog.Logger,
) (*Application, error) {
	wire.Build(ProviderSet)
	return nil, nil
}
