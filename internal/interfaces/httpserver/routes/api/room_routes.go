package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	domainroom "jan-server/services/meet-api/internal/domain/room"
	"jan-server/services/meet-api/internal/interfaces/httpserver/handlers"
	roomreq "jan-server/services/meet-api/internal/interfaces/httpserver/requests/room"
	"jan-server/services/meet-api/internal/interfaces/httpserver/responses"
	roomres "jan-server/services/meet-api/internal/interfaces/httpserver/responses/room"
)

// RegisterRoomRoutes registers the room routes.
func RegisterRoomRoutes(router gin.IRoutes, handler *handlers.RoomHandler) {
	router.POST("/rooms", createRoom(handler))
	router.GET("/rooms", listRooms(handler))
	router.GET("/rooms/:name", getRoom(handler))
	router.DELETE("/rooms/:name", deleteRoom(handler))
}

// createRoom godoc
// @Summary      Create a room
// @Description  Creates a Meet room with the default feature set and registers it under roomName.
// @Tags         Rooms
// @Accept       json,x-www-form-urlencoded
// @Produce      json
// @Param        request body roomreq.CreateRoomRequest true "Room to create"
// @Success      201 {object} roomres.CreateRoomResponse
// @Failure      400 {object} responses.ErrorResponse "Missing or duplicate room name"
// @Failure      500 {object} responses.ErrorResponse
// @Security     BearerAuth
// @Router       /rooms [post]
func createRoom(handler *handlers.RoomHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req roomreq.CreateRoomRequest
		// A malformed body is treated as a missing name.
		_ = c.ShouldBind(&req)
		name := strings.TrimSpace(req.RoomName)

		r, err := handler.CreateRoom(c.Request.Context(), name)
		if err != nil {
			responses.HandleError(c, err, createRoomErrorMessage(name, err))
			return
		}

		c.JSON(http.StatusCreated, roomres.NewCreateRoomResponse(r))
	}
}

func createRoomErrorMessage(name string, err error) string {
	switch {
	case errors.Is(err, domainroom.ErrRoomNameRequired):
		return "'roomName' is required"
	case errors.Is(err, domainroom.ErrRoomAlreadyExists):
		return fmt.Sprintf("Room '%s' already exists", name)
	default:
		return fmt.Sprintf("Error creating room '%s'", name)
	}
}

// listRooms godoc
// @Summary      List rooms
// @Description  Lists every registered room in registration order.
// @Tags         Rooms
// @Produce      json
// @Success      200 {object} roomres.ListRoomsResponse
// @Failure      500 {object} responses.ErrorResponse
// @Security     BearerAuth
// @Router       /rooms [get]
func listRooms(handler *handlers.RoomHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		rooms, err := handler.ListRooms(c.Request.Context())
		if err != nil {
			responses.HandleError(c, err, "Error listing rooms")
			return
		}

		c.JSON(http.StatusOK, roomres.NewListRoomsResponse(rooms))
	}
}

// getRoom godoc
// @Summary      Get a room
// @Description  Looks a registered room up by the name it was created with.
// @Tags         Rooms
// @Produce      json
// @Param        name path string true "Room name"
// @Success      200 {object} roomres.RoomResponse
// @Failure      404 {object} responses.ErrorResponse
// @Security     BearerAuth
// @Router       /rooms/{name} [get]
func getRoom(handler *handlers.RoomHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.Param("name")

		r, err := handler.GetRoom(c.Request.Context(), name)
		if err != nil {
			responses.HandleError(c, err, fmt.Sprintf("Room '%s' not found", name))
			return
		}

		c.JSON(http.StatusOK, roomres.RoomResponse{Room: r})
	}
}

// deleteRoom godoc
// @Summary      Delete a room
// @Description  Deletes the Meet room registered under name and unregisters it.
// @Tags         Rooms
// @Produce      json
// @Param        name path string true "Room name"
// @Success      200 {object} responses.MessageResponse
// @Failure      404 {object} responses.ErrorResponse
// @Failure      500 {object} responses.ErrorResponse
// @Security     BearerAuth
// @Router       /rooms/{name} [delete]
func deleteRoom(handler *handlers.RoomHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.Param("name")

		if err := handler.DeleteRoom(c.Request.Context(), name); err != nil {
			msg := fmt.Sprintf("Error deleting room '%s'", name)
			if errors.Is(err, domainroom.ErrRoomNotFound) {
				msg = fmt.Sprintf("Room '%s' not found", name)
			}
			responses.HandleError(c, err, msg)
			return
		}

		c.JSON(http.StatusOK, responses.MessageResponse{
			Message: fmt.Sprintf("Room '%s' deleted successfully", name),
		})
	}
}
