package main

import (
	"context"

	"github.com/rs/zerolog"

	"jan-server/services/meet-api/internal/config"
	"jan-server/services/meet-api/internal/domain/room"
	"jan-server/services/meet-api/internal/infrastructure/auth"
	"jan-server/services/meet-api/internal/infrastructure/store"
)

// ProvideReconciler provides the registry reconciler.
func ProvideReconciler(
	roomStore room.Store,
	upstream store.RoomLister,
	cfg *config.Config,
	log zerolog.Logger,
) *store.Reconciler {
	return store.NewReconciler(roomStore, upstream, cfg.RecordingsPageSize, cfg.ReconcileInterval, log)
}

// ProvideAuthValidator provides an auth validator.
func ProvideAuthValidator(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*auth.Validator, error) {
	return auth.NewValidator(ctx, cfg, log)
}
