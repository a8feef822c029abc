package room

import "context"

// Store is the local room registry, keyed by room name.
// Iteration order is insertion order.
type Store interface {
	// Add registers a room under name. Fails with ErrRoomAlreadyExists.
	Add(ctx context.Context, name string, r *Room) error

	// Get returns the room registered under name or ErrRoomNotFound.
	Get(ctx context.Context, name string) (*Room, error)

	// Exists reports whether name is registered.
	Exists(ctx context.Context, name string) bool

	// Remove drops name from the registry. Fails with ErrRoomNotFound.
	Remove(ctx context.Context, name string) error

	// List returns every registered room in insertion order.
	List(ctx context.Context) ([]*Room, error)

	// Len returns the number of registered rooms.
	Len() int
}

// Gateway is the subset of the upstream Meet API used for rooms.
type Gateway interface {
	CreateRoom(ctx context.Context, req *CreateRoomRequest) (*Room, error)
	DeleteRoom(ctx context.Context, roomID string) error
}
