package recording

import (
	"context"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"jan-server/services/meet-api/internal/domain/room"
)

// Service defines the business operations for recordings.
type Service interface {
	// ListRecordings returns the recordings of roomName, or of every
	// registered room when roomName is empty.
	ListRecordings(ctx context.Context, roomName string) ([]*Recording, error)
	DeleteRecording(ctx context.Context, recordingID string) error
	GetRecordingURL(ctx context.Context, recordingID string) (string, error)
	OpenRecordingMedia(ctx context.Context, recordingID, rangeHeader string) (*Media, error)
}

type service struct {
	rooms    room.Store
	gateway  Gateway
	pageSize int
	fanout   int
	log      zerolog.Logger
}

// NewService creates a new recording service. pageSize is passed upstream as
// maxItems for every room; fanout bounds concurrent upstream calls.
func NewService(rooms room.Store, gateway Gateway, pageSize, fanout int, log zerolog.Logger) Service {
	if fanout < 1 {
		fanout = 1
	}
	return &service{
		rooms:    rooms,
		gateway:  gateway,
		pageSize: pageSize,
		fanout:   fanout,
		log:      log.With().Str("component", "recording-service").Logger(),
	}
}

func (s *service) ListRecordings(ctx context.Context, roomName string) ([]*Recording, error) {
	var targets []*room.Room
	if roomName != "" {
		r, err := s.rooms.Get(ctx, roomName)
		if err != nil {
			return nil, err
		}
		targets = []*room.Room{r}
	} else {
		all, err := s.rooms.List(ctx)
		if err != nil {
			return nil, err
		}
		targets = all
	}

	// One slot per room keeps the output in registry order regardless of
	// which upstream call finishes first.
	perRoom := make([][]*Recording, len(targets))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.fanout)
	for i, r := range targets {
		g.Go(func() error {
			recs, err := s.gateway.ListRecordings(gctx, r.RoomID, s.pageSize)
			if err != nil {
				s.log.Error().Err(err).Str("room", r.Name).Str("room_id", r.RoomID).Msg("failed to list recordings")
				return err
			}
			perRoom[i] = recs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := 0
	for _, recs := range perRoom {
		total += len(recs)
	}
	out := make([]*Recording, 0, total)
	for _, recs := range perRoom {
		out = append(out, recs...)
	}
	return out, nil
}

func (s *service) DeleteRecording(ctx context.Context, recordingID string) error {
	if err := s.gateway.DeleteRecording(ctx, recordingID); err != nil {
		return err
	}
	s.log.Info().Str("recording_id", recordingID).Msg("recording deleted")
	return nil
}

func (s *service) GetRecordingURL(ctx context.Context, recordingID string) (string, error) {
	return s.gateway.GetRecordingURL(ctx, recordingID)
}

func (s *service) OpenRecordingMedia(ctx context.Context, recordingID, rangeHeader string) (*Media, error) {
	return s.gateway.OpenRecordingMedia(ctx, recordingID, rangeHeader)
}
