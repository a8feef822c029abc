// Package room contains HTTP request DTOs for room endpoints.
package room

// CreateRoomRequest is the body of POST /rooms, sent as JSON or as a
// urlencoded form.
type CreateRoomRequest struct {
	RoomName string `json:"roomName" form:"roomName" example:"standup"`
}
