// @title           Meet API
// @version         1.0
// @description     Room and recording management backed by an OpenVidu Meet server.

// @contact.name   Jan Team
// @contact.url    https://github.com/janhq/jan-server

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:6080
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT Bearer token from Keycloak

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"jan-server/services/meet-api/internal/config"
	"jan-server/services/meet-api/internal/domain"
	"jan-server/services/meet-api/internal/infrastructure/logger"
	"jan-server/services/meet-api/internal/infrastructure/meet"
	"jan-server/services/meet-api/internal/infrastructure/observability"
	"jan-server/services/meet-api/internal/infrastructure/store"
	"jan-server/services/meet-api/internal/interfaces/httpserver"
	"jan-server/services/meet-api/internal/interfaces/httpserver/handlers"
	"jan-server/services/meet-api/internal/interfaces/httpserver/routes"
	"jan-server/services/meet-api/internal/utils/redact"
)

// Application holds the main application components.
type Application struct {
	httpServer *httpserver.HTTPServer
	reconciler *store.Reconciler
	log        zerolog.Logger
}

// NewApplication creates a new application instance.
func NewApplication(httpServer *httpserver.HTTPServer, reconciler *store.Reconciler, log zerolog.Logger) *Application {
	return &Application{
		httpServer: httpServer,
		reconciler: reconciler,
		log:        log,
	}
}

// Start runs the reconciler and the HTTP server until ctx is cancelled.
func (a *Application) Start(ctx context.Context) error {
	a.reconciler.Start(ctx)
	err := a.httpServer.Run(ctx)
	a.reconciler.Stop()
	return err
}

func main() {
	loadEnvFiles()

	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	log := logger.New(cfg)

	if err := run(cfg, log); err != nil {
		log.Fatal().Err(err).Msg("application stopped with error")
	}
	log.Info().Msg("application exited cleanly")
}

func run(cfg *config.Config, log zerolog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTelemetry, err := observability.Setup(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("initialize observability: %w", err)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := shutdownTelemetry(flushCtx); err != nil {
			log.Error().Err(err).Msg("failed to shutdown telemetry")
		}
	}()

	app, err := buildApplication(ctx, cfg, log)
	if err != nil {
		return err
	}

	log.Info().
		Int("port", cfg.HTTPPort).
		Str("meet_api_url", cfg.MeetAPIURL()).
		Str("meet_api_key_fp", redact.Fingerprint(cfg.MeetAPIKey)).
		Bool("auth_enabled", cfg.AuthEnabled).
		Dur("reconcile_interval", cfg.ReconcileInterval).
		Msg("starting application")

	return app.Start(ctx)
}

// buildApplication mirrors CreateApplication in wire.go.
func buildApplication(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*Application, error) {
	authValidator, err := ProvideAuthValidator(ctx, cfg, log)
	if err != nil {
		return nil, fmt.Errorf("initialize auth validator: %w", err)
	}

	meetClient := meet.NewClient(cfg, log)
	roomStore := store.NewMemoryStore(log)

	handlerProvider := handlers.NewProvider(
		handlers.NewRoomHandler(domain.ProvideRoomService(roomStore, meetClient, cfg, log)),
		handlers.NewRecordingHandler(domain.ProvideRecordingService(roomStore, meetClient, cfg, log)),
		handlers.NewConfigHandler(cfg),
	)
	httpServer := httpserver.New(cfg, log, routes.NewProvider(handlerProvider, authValidator), authValidator)

	return NewApplication(httpServer, ProvideReconciler(roomStore, meetClient, cfg, log), log), nil
}

func loadEnvFiles() {
	for _, path := range []string{".env", "../.env", "../../.env"} {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Overload(path); err != nil {
				fmt.Fprintf(os.Stderr, "warning: failed to load %s: %v\n", path, err)
			}
		}
	}
}
