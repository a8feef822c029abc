package room

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"

	"jan-server/services/meet-api/internal/utils/redact"
)

// Service defines the business operations for room management.
type Service interface {
	CreateRoom(ctx context.Context, name string) (*Room, error)
	GetRoom(ctx context.Context, name string) (*Room, error)
	ListRooms(ctx context.Context) ([]*Room, error)
	DeleteRoom(ctx context.Context, name string) error
}

type service struct {
	store    Store
	gateway  Gateway
	features Features
	log      zerolog.Logger
}

// NewService creates a new room service.
func NewService(store Store, gateway Gateway, features Features, log zerolog.Logger) Service {
	return &service{
		store:    store,
		gateway:  gateway,
		features: features,
		log:      log.With().Str("component", "room-service").Logger(),
	}
}

func (s *service) CreateRoom(ctx context.Context, name string) (*Room, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrRoomNameRequired
	}
	if s.store.Exists(ctx, name) {
		return nil, ErrRoomAlreadyExists
	}

	created, err := s.gateway.CreateRoom(ctx, NewCreateRoomRequest(name, s.features))
	if err != nil {
		s.log.Error().Err(err).Str("room", name).Msg("failed to create upstream room")
		return nil, err
	}
	created.Name = name

	if err := s.store.Add(ctx, name, created); err != nil {
		// Lost a race with a concurrent create for the same name.
		if errors.Is(err, ErrRoomAlreadyExists) {
			s.discard(ctx, created)
		}
		return nil, err
	}

	s.log.Info().
		Str("room", name).
		Str("room_id", created.RoomID).
		Str("moderator_url", redact.URL(created.ModeratorURL)).
		Str("speaker_url", redact.URL(created.SpeakerURL)).
		Msg("room created")

	return created, nil
}

func (s *service) GetRoom(ctx context.Context, name string) (*Room, error) {
	return s.store.Get(ctx, name)
}

func (s *service) ListRooms(ctx context.Context) ([]*Room, error) {
	return s.store.List(ctx)
}

func (s *service) DeleteRoom(ctx context.Context, name string) error {
	r, err := s.store.Get(ctx, name)
	if err != nil {
		return err
	}

	if err := s.gateway.DeleteRoom(ctx, r.RoomID); err != nil {
		s.log.Error().Err(err).Str("room", name).Str("room_id", r.RoomID).Msg("failed to delete upstream room")
		return err
	}

	if err := s.store.Remove(ctx, name); err != nil && !errors.Is(err, ErrRoomNotFound) {
		return err
	}

	s.log.Info().Str("room", name).Str("room_id", r.RoomID).Msg("room deleted")
	return nil
}

// discard removes an upstream room that could not be registered locally.
func (s *service) discard(ctx context.Context, r *Room) {
	if err := s.gateway.DeleteRoom(context.WithoutCancel(ctx), r.RoomID); err != nil {
		s.log.Warn().Err(err).Str("room", r.Name).Str("room_id", r.RoomID).Msg("failed to discard duplicate upstream room")
		return
	}
	s.log.Warn().Str("room", r.Name).Str("room_id", r.RoomID).Msg("discarded duplicate upstream room")
}
