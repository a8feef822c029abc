package store

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jan-server/services/meet-api/internal/domain/room"
)

func TestMemoryStore_AddGet(t *testing.T) {
	s := NewMemoryStore(zerolog.Nop())
	ctx := context.Background()

	require.NoError(t, s.Add(ctx, "standup", &room.Room{Name: "standup", RoomID: "standup-123"}))

	got, err := s.Get(ctx, "standup")
	require.NoError(t, err)
	assert.Equal(t, "standup-123", got.RoomID)
	assert.True(t, s.Exists(ctx, "standup"))
	assert.Equal(t, 1, s.Len())
}

func TestMemoryStore_AddDuplicateLeavesOriginal(t *testing.T) {
	s := NewMemoryStore(zerolog.Nop())
	ctx := context.Background()

	require.NoError(t, s.Add(ctx, "standup", &room.Room{RoomID: "first"}))
	err := s.Add(ctx, "standup", &room.Room{RoomID: "second"})
	assert.ErrorIs(t, err, room.ErrRoomAlreadyExists)

	got, err := s.Get(ctx, "standup")
	require.NoError(t, err)
	assert.Equal(t, "first", got.RoomID)
	assert.Equal(t, 1, s.Len())
}

func TestMemoryStore_GetUnknown(t *testing.T) {
	s := NewMemoryStore(zerolog.Nop())

	_, err := s.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, room.ErrRoomNotFound)
	assert.False(t, s.Exists(context.Background(), "nope"))
}

func TestMemoryStore_Remove(t *testing.T) {
	s := NewMemoryStore(zerolog.Nop())
	ctx := context.Background()

	require.NoError(t, s.Add(ctx, "a", &room.Room{RoomID: "a-1"}))
	require.NoError(t, s.Remove(ctx, "a"))

	_, err := s.Get(ctx, "a")
	assert.ErrorIs(t, err, room.ErrRoomNotFound)
	assert.ErrorIs(t, s.Remove(ctx, "a"), room.ErrRoomNotFound)

	list, err := s.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestMemoryStore_ListInsertionOrder(t *testing.T) {
	s := NewMemoryStore(zerolog.Nop())
	ctx := context.Background()

	names := []string{"zulu", "alpha", "mike", "bravo"}
	for _, n := range names {
		require.NoError(t, s.Add(ctx, n, &room.Room{Name: n, RoomID: n + "-id"}))
	}
	require.NoError(t, s.Remove(ctx, "mike"))
	require.NoError(t, s.Add(ctx, "mike", &room.Room{Name: "mike", RoomID: "mike-id"}))

	list, err := s.List(ctx)
	require.NoError(t, err)

	got := make([]string, 0, len(list))
	for _, r := range list {
		got = append(got, r.Name)
	}
	assert.Equal(t, []string{"zulu", "alpha", "bravo", "mike"}, got)
}

func TestMemoryStore_ConcurrentAddSameName(t *testing.T) {
	s := NewMemoryStore(zerolog.Nop())
	ctx := context.Background()

	var wg sync.WaitGroup
	var wins atomic.Int32
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if err := s.Add(ctx, "shared", &room.Room{RoomID: fmt.Sprintf("r-%d", i)}); err == nil {
				wins.Add(1)
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int32(1), wins.Load())
	assert.Equal(t, 1, s.Len())
}
