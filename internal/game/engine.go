package game

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/GrowRoom_Go/internal/catalog"
	"github.com/osse101/GrowRoom_Go/internal/domain"
	"github.com/osse101/GrowRoom_Go/internal/economy"
	"github.com/osse101/GrowRoom_Go/internal/gameevent"
	"github.com/osse101/GrowRoom_Go/internal/growth"
	"github.com/osse101/GrowRoom_Go/internal/quest"
	"github.com/osse101/GrowRoom_Go/internal/utils"
)

// Engine exposes every driver call as a pure transition over GameState.
// It holds no game state of its own and is safe to share.
type Engine struct {
	catalog *catalog.Catalog
	growth  *growth.Engine
	economy *economy.Engine
	events  *gameevent.Controller
	newID   func() string
	report  InvariantReporter
}

// Option configures an Engine
type Option func(*Engine)

// WithInvariantReporter replaces the default LogReporter
func WithInvariantReporter(r InvariantReporter) Option {
	return func(e *Engine) {
		e.report = r
	}
}

// WithIDGenerator replaces uuid-based plant IDs
func WithIDGenerator(fn func() string) Option {
	return func(e *Engine) {
		e.newID = fn
	}
}

// NewEngine wires the sub-engines over one catalog and random source
func NewEngine(c *catalog.Catalog, rnd utils.RandomSource, opts ...Option) *Engine {
	e := &Engine{
		catalog: c,
		growth:  growth.NewEngine(c),
		economy: economy.NewEngine(rnd),
		events:  gameevent.NewController(rnd),
		newID:   uuid.NewString,
		report:  LogReporter,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Catalog returns the catalog the engine was built with
func (e *Engine) Catalog() *catalog.Catalog {
	return e.catalog
}

// Growth returns the growth engine, for read-only queries like Progress
func (e *Engine) Growth() *growth.Engine {
	return e.growth
}

// NewState returns the state of a brand new game
func NewState(now time.Time) domain.GameState {
	return domain.GameState{
		Version:  domain.StateSchemaVersion,
		Nugs:     domain.StartingNugs,
		Buds:     domain.StartingBuds,
		Slots:    make([]*domain.Plant, domain.DefaultSlotCount),
		Upgrades: map[string]int{},
		Trade:    domain.TradeState{Offers: []domain.TradeOffer{}},
		Quests:   quest.DefaultQuests(),
		Settings: domain.Settings{
			RandomEventsEnabled: true,
			AutosaveEnabled:     true,
			SoundEnabled:        true,
		},
		CreatedAt:  now,
		LastTickAt: now,
	}
}

func (e *Engine) violation(op string, err error) Outcome {
	e.report(&domain.InvariantViolation{Op: op, Err: err})
	return declined(err)
}

// plantAt resolves a slot that must hold a plant
func plantAt(state domain.GameState, slot int) (*domain.Plant, error) {
	p, ok := state.PlantAt(slot)
	if !ok {
		return nil, fmt.Errorf("%w: %d", domain.ErrSlotOutOfRange, slot)
	}
	if p == nil {
		return nil, fmt.Errorf("%w: %d", domain.ErrSlotEmpty, slot)
	}
	return p, nil
}
