package api

import (
	"github.com/gin-gonic/gin"

	"jan-server/services/meet-api/internal/interfaces/httpserver/handlers"
)

// Routes holds the API route configuration.
type Routes struct {
	handlers *handlers.Provider
}

// NewRoutes creates a new API routes instance.
func NewRoutes(handlerProvider *handlers.Provider) *Routes {
	return &Routes{handlers: handlerProvider}
}

// Register mounts the room, recording and config routes at the engine root.
// authMiddleware, when non-nil, guards all of them.
func (r *Routes) Register(engine *gin.Engine, authMiddleware gin.HandlerFunc) {
	api := engine.Group("/")
	if authMiddleware != nil {
		api.Use(authMiddleware)
	}
	RegisterRoomRoutes(api, r.handlers.Room)
	RegisterRecordingRoutes(api, r.handlers.Recording)
	RegisterConfigRoutes(api, r.handlers.Config)
}
