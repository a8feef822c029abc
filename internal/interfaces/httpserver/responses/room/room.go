// Package roomres contains HTTP response DTOs for room endpoints.
package roomres

import (
	"fmt"

	domainroom "jan-server/services/meet-api/internal/domain/room"
)

// CreateRoomResponse is the body of a successful POST /rooms.
type CreateRoomResponse struct {
	Message string           `json:"message"`
	Room    *domainroom.Room `json:"room"`
}

// RoomResponse wraps a single room.
type RoomResponse struct {
	Room *domainroom.Room `json:"room"`
}

// ListRoomsResponse is the body of GET /rooms.
type ListRoomsResponse struct {
	Rooms []*domainroom.Room `json:"rooms"`
}

// ConfigResponse is the body of GET /config.
type ConfigResponse struct {
	MeetWebcomponentURL string `json:"meetWebcomponentUrl"`
}

// NewCreateRoomResponse builds the creation confirmation for r.
func NewCreateRoomResponse(r *domainroom.Room) *CreateRoomResponse {
	return &CreateRoomResponse{
		Message: fmt.Sprintf("Room '%s' created successfully", r.Name),
		Room:    r,
	}
}

// NewListRoomsResponse never encodes rooms as null.
func NewListRoomsResponse(rooms []*domainroom.Room) *ListRoomsResponse {
	if rooms == nil {
		rooms = []*domainroom.Room{}
	}
	return &ListRoomsResponse{Rooms: rooms}
}
