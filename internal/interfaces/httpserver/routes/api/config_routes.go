package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jan-server/services/meet-api/internal/interfaces/httpserver/handlers"
	roomres "jan-server/services/meet-api/internal/interfaces/httpserver/responses/room"
)

// RegisterConfigRoutes registers the client configuration route.
func RegisterConfigRoutes(router gin.IRoutes, handler *handlers.ConfigHandler) {
	router.GET("/config", getConfig(handler))
}

// getConfig godoc
// @Summary      Client configuration
// @Description  Returns the URL of the meeting web component script.
// @Tags         Config
// @Produce      json
// @Success      200 {object} roomres.ConfigResponse
// @Security     BearerAuth
// @Router       /config [get]
func getConfig(handler *handlers.ConfigHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, roomres.ConfigResponse{MeetWebcomponentURL: handler.WebcomponentURL()})
	}
}
