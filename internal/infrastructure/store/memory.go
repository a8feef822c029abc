package store

import (
	"context"
	"sync"

	"github.com/rs/zerolog"
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"jan-server/services/meet-api/internal/domain/room"
	"jan-server/services/meet-api/internal/infrastructure/metrics"
)

// MemoryStore is a mutex-based in-memory room registry.
// Rooms are kept in insertion order; nothing expires them.
type MemoryStore struct {
	mu    sync.RWMutex
	rooms *orderedmap.OrderedMap[string, *room.Room]
	log   zerolog.Logger
}

// NewMemoryStore creates a new in-memory room registry.
func NewMemoryStore(log zerolog.Logger) *MemoryStore {
	return &MemoryStore{
		rooms: orderedmap.New[string, *room.Room](),
		log:   log.With().Str("component", "room-store").Logger(),
	}
}

// Add registers a room under name.
func (s *MemoryStore) Add(ctx context.Context, name string, r *room.Room) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.rooms.Get(name); exists {
		return room.ErrRoomAlreadyExists
	}
	s.rooms.Set(name, r)
	metrics.RegisteredRooms.Set(float64(s.rooms.Len()))

	s.log.Debug().Str("room", name).Str("room_id", r.RoomID).Msg("room registered")
	return nil
}

// Get retrieves a room by name.
func (s *MemoryStore) Get(ctx context.Context, name string) (*room.Room, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.rooms.Get(name)
	if !ok {
		return nil, room.ErrRoomNotFound
	}
	return r, nil
}

// Exists reports whether name is registered.
func (s *MemoryStore) Exists(ctx context.Context, name string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.rooms.Get(name)
	return ok
}

// Remove drops a room by name.
func (s *MemoryStore) Remove(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.rooms.Delete(name); !ok {
		return room.ErrRoomNotFound
	}
	metrics.RegisteredRooms.Set(float64(s.rooms.Len()))

	s.log.Debug().Str("room", name).Msg("room unregistered")
	return nil
}

// List returns all rooms, oldest first.
func (s *MemoryStore) List(ctx context.Context) ([]*room.Room, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*room.Room, 0, s.rooms.Len())
	for pair := s.rooms.Oldest(); pair != nil; pair = pair.Next() {
		result = append(result, pair.Value)
	}
	return result, nil
}

// Len returns the number of registered rooms.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.rooms.Len()
}
