package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/google/wire"

	"jan-server/services/meet-api/internal/infrastructure/auth"
	"jan-server/services/meet-api/internal/interfaces/httpserver/handlers"
	"jan-server/services/meet-api/internal/interfaces/httpserver/routes/api"
)

// Provider holds all route providers.
type Provider struct {
	API           *api.Routes
	authValidator *auth.Validator
}

// NewProvider creates a new route provider.
func NewProvider(handlerProvider *handlers.Provider, authValidator *auth.Validator) *Provider {
	return &Provider{
		API:           api.NewRoutes(handlerProvider),
		authValidator: authValidator,
	}
}

// Register registers all API routes on the engine behind the auth middleware.
func (p *Provider) Register(engine *gin.Engine) {
	var authMiddleware gin.HandlerFunc
	if p.authValidator != nil {
		authMiddleware = p.authValidator.Middleware()
	}
	p.API.Register(engine, authMiddleware)
}

// RouteProvider provides the route provider for wire.
var RouteProvider = wire.NewSet(NewProvider)
