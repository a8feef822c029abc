package handlers

import (
	"context"

	"jan-server/services/meet-api/internal/domain/room"
	"jan-server/services/meet-api/internal/infrastructure/metrics"
)

// RoomHandler handles room-related HTTP requests.
type RoomHandler struct {
	service room.Service
}

// NewRoomHandler creates a new room handler.
func NewRoomHandler(service room.Service) *RoomHandler {
	return &RoomHandler{service: service}
}

// CreateRoom creates an upstream room and registers it under name.
func (h *RoomHandler) CreateRoom(ctx context.Context, name string) (*room.Room, error) {
	r, err := h.service.CreateRoom(ctx, name)
	if err != nil {
		return nil, err
	}
	metrics.RecordRoomCreated()
	return r, nil
}

// GetRoom looks a registered room up by name.
func (h *RoomHandler) GetRoom(ctx context.Context, name string) (*room.Room, error) {
	return h.service.GetRoom(ctx, name)
}

// ListRooms returns every registered room in registration order.
func (h *RoomHandler) ListRooms(ctx context.Context) ([]*room.Room, error) {
	return h.service.ListRooms(ctx)
}

// DeleteRoom deletes the upstream room and unregisters name.
func (h *RoomHandler) DeleteRoom(ctx context.Context, name string) error {
	if err := h.service.DeleteRoom(ctx, name); err != nil {
		return err
	}
	metrics.RecordRoomDeleted()
	return nil
}
