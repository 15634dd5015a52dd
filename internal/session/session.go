// Package session owns the one live GameState. Every driver call locks the
// session, runs a pure engine transition, swaps in the returned snapshot,
// and publishes what happened on the event bus after unlocking.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/osse101/GrowRoom_Go/internal/clock"
	"github.com/osse101/GrowRoom_Go/internal/domain"
	"github.com/osse101/GrowRoom_Go/internal/event"
	"github.com/osse101/GrowRoom_Go/internal/game"
	"github.com/osse101/GrowRoom_Go/internal/logger"
	"github.com/osse101/GrowRoom_Go/internal/metrics"
	"github.com/osse101/GrowRoom_Go/internal/persistence"
)

// Result is what every driver call returns: the outcome flag, the state
// after the call, and an operation-specific detail such as a harvest yield
type Result struct {
	Accepted bool             `json:"accepted"`
	Reason   string           `json:"reason,omitempty"`
	State    domain.GameState `json:"state"`
	Detail   interface{}      `json:"detail,omitempty"`
	Err      error            `json:"-"`
}

// Session is safe for concurrent use
type Session struct {
	engine  *game.Engine
	adapter *persistence.Adapter
	bus     event.Bus
	clock   clock.Clock

	mu     sync.Mutex
	state  domain.GameState
	rev    uint64 // bumped on every accepted change
	saved  uint64 // rev of the last successful save
	loaded bool
}

// New creates a session. Call Load before serving driver calls.
func New(engine *game.Engine, adapter *persistence.Adapter, bus event.Bus, clk clock.Clock) *Session {
	return &Session{
		engine:  engine,
		adapter: adapter,
		bus:     bus,
		clock:   clk,
		state:   game.NewState(clk.Now()),
	}
}

// Load replaces the in-memory state with the saved game. An unusable save
// is logged and the session continues with a new game.
func (s *Session) Load(ctx context.Context) {
	state, err := s.adapter.Load(ctx)
	log := logger.FromContext(ctx)
	if err != nil {
		log.Warn(LogMsgLoadFallback, "error", err)
	}

	s.mu.Lock()
	s.state = state
	s.rev, s.saved = 0, 0
	s.loaded = true
	s.mu.Unlock()

	metrics.RecordState(state)
	log.Info(LogMsgSessionLoaded, "key", s.adapter.Key(), "nugs", state.Nugs, "buds", state.Buds, "slots", len(state.Slots))
}

// Ready reports whether Load has completed
func (s *Session) Ready() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loaded
}

// State returns a copy of the current state
func (s *Session) State() domain.GameState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// Dirty reports whether the state changed since the last save
func (s *Session) Dirty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rev != s.saved
}

// Engine returns the engine the session drives, for read-only queries
func (s *Session) Engine() *game.Engine {
	return s.engine
}

// Now returns the session clock's time
func (s *Session) Now() time.Time {
	return s.clock.Now()
}

// transition is one engine call. It returns the new state, the outcome, an
// optional detail for the caller and the events to publish on acceptance.
type transition func(state domain.GameState, now time.Time) (domain.GameState, game.Outcome, interface{}, []event.Event)

func (s *Session) apply(ctx context.Context, op string, fn transition) Result {
	s.mu.Lock()
	now := s.clock.Now()
	next, outcome, detail, events := fn(s.state, now)
	if outcome.Accepted {
		s.state = next
		s.rev++
	}
	result := Result{
		Accepted: outcome.Accepted,
		Reason:   outcome.Reason,
		State:    s.state.Clone(),
		Detail:   detail,
		Err:      outcome.Err,
	}
	s.mu.Unlock()

	log := logger.FromContext(ctx)
	if !outcome.Accepted {
		log.Debug(LogMsgOperationDeclined, "op", op, "reason", outcome.Reason, "error", outcome.Err)
		metrics.RecordDeclined(op, outcome.Reason)
		return result
	}

	log.Debug(LogMsgOperationAccepted, "op", op)
	metrics.RecordState(result.State)
	s.publish(ctx, events...)
	return result
}

func (s *Session) publish(ctx context.Context, events ...event.Event) {
	for _, evt := range events {
		if err := s.bus.Publish(ctx, evt); err != nil {
			logger.FromContext(ctx).Warn(LogMsgPublishFailed, "type", evt.Type, "error", err)
		}
	}
}

// InvariantReporter counts violations and hands them to next
// (game.LogReporter, or game.PanicReporter when strict)
func InvariantReporter(next game.InvariantReporter) game.InvariantReporter {
	return func(v *domain.InvariantViolation) {
		metrics.RecordInvariantViolation(v)
		next(v)
	}
}
