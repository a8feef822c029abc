package store

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"jan-server/services/meet-api/internal/domain/room"
	"jan-server/services/meet-api/internal/infrastructure/metrics"
)

// RoomLister lists every room the Meet server currently knows about.
type RoomLister interface {
	ListRooms(ctx context.Context, pageSize int) ([]*room.Room, error)
}

// Reconciler periodically compares the registry with the upstream room list.
// Registered rooms the upstream no longer reports are counted and logged as
// orphans; the registry itself is never modified.
type Reconciler struct {
	store     room.Store
	upstream  RoomLister
	pageSize  int
	interval  time.Duration
	log       zerolog.Logger
	done      chan struct{}
	wg        sync.WaitGroup
	startOnce sync.Once
	stopOnce  sync.Once
}

// NewReconciler creates a reconciler. A zero interval disables it.
func NewReconciler(store room.Store, upstream RoomLister, pageSize int, interval time.Duration, log zerolog.Logger) *Reconciler {
	return &Reconciler{
		store:    store,
		upstream: upstream,
		pageSize: pageSize,
		interval: interval,
		log:      log.With().Str("component", "room-reconciler").Logger(),
		done:     make(chan struct{}),
	}
}

// Start runs the reconcile loop in the background. Only the first call has
// any effect.
func (r *Reconciler) Start(ctx context.Context) {
	if r.interval <= 0 {
		r.log.Info().Msg("room reconciler disabled")
		return
	}
	r.startOnce.Do(func() {
		r.wg.Add(1)
		go r.run(ctx)
		r.log.Info().Dur("interval", r.interval).Msg("room reconciler started")
	})
}

// Stop shuts the loop down and waits for an in-flight cycle to finish.
func (r *Reconciler) Stop() {
	r.stopOnce.Do(func() {
		close(r.done)
		r.wg.Wait()
		r.log.Info().Msg("room reconciler stopped")
	})
}

func (r *Reconciler) run(ctx context.Context) {
	defer r.wg.Done()

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-r.done:
			return
		case <-ticker.C:
			r.Reconcile(ctx)
		}
	}
}

// Reconcile runs one cycle and returns the names of orphaned rooms.
func (r *Reconciler) Reconcile(ctx context.Context) []string {
	// Registry before upstream: rooms registered mid-cycle are not orphans.
	registered, err := r.store.List(ctx)
	if err != nil {
		r.log.Error().Err(err).Msg("failed to list registered rooms")
		return nil
	}

	upstream, err := r.upstream.ListRooms(ctx, r.pageSize)
	if err != nil {
		metrics.ReconcileErrors.Inc()
		r.log.Warn().Err(err).Msg("failed to list upstream rooms")
		return nil
	}

	known := make(map[string]struct{}, len(upstream))
	for _, u := range upstream {
		known[u.RoomID] = struct{}{}
	}

	var orphaned []string
	for _, reg := range registered {
		if _, ok := known[reg.RoomID]; !ok {
			orphaned = append(orphaned, reg.Name)
		}
	}
	metrics.OrphanedRooms.Set(float64(len(orphaned)))

	if len(orphaned) > 0 {
		r.log.Warn().
			Strs("rooms", orphaned).
			Int("registered", len(registered)).
			Int("upstream", len(upstream)).
			Msg("registered rooms missing upstream")
	} else {
		r.log.Debug().
			Int("registered", len(registered)).
			Int("upstream", len(upstream)).
			Msg("reconcile cycle")
	}
	return orphaned
}
