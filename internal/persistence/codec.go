package persistence

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/osse101/GrowRoom_Go/internal/catalog"
	"github.com/osse101/GrowRoom_Go/internal/domain"
	"github.com/osse101/GrowRoom_Go/internal/game"
	"github.com/osse101/GrowRoom_Go/internal/growth"
	"github.com/osse101/GrowRoom_Go/internal/logger"
	"github.com/osse101/GrowRoom_Go/internal/quest"
)

// LoadError means the saved blob was unusable and the caller got a fresh game
type LoadError struct {
	Msg string
	Err error
}

func (e *LoadError) Error() string {
	if e.Err == nil {
		return e.Msg
	}
	return fmt.Sprintf("%s: %v", e.Msg, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Codec turns a GameState into a blob and back
type Codec struct {
	catalog *catalog.Catalog
}

// NewCodec creates a codec that validates plants against c
func NewCodec(c *catalog.Catalog) *Codec {
	return &Codec{catalog: c}
}

// Serialize snapshots the whole state
func (c *Codec) Serialize(state domain.GameState) ([]byte, error) {
	data, err := json.Marshal(state)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgEncodeFailed, err)
	}
	return data, nil
}

// Deserialize never fails hard: an unreadable blob yields a new game and a
// *LoadError. A readable blob is decoded on top of a new game, so fields an
// older save lacks keep their defaults. Quests are merged with the default
// catalog and out-of-range values are repaired and logged.
func (c *Codec) Deserialize(ctx context.Context, data []byte, now time.Time) (domain.GameState, error) {
	defaults := game.NewState(now)

	var top map[string]json.RawMessage
	if err := json.Unmarshal(data, &top); err != nil || top == nil {
		return defaults, &LoadError{Msg: ErrMsgNotAnObject, Err: err}
	}

	state := game.NewState(now)
	state.Quests = nil
	if err := json.Unmarshal(data, &state); err != nil {
		return defaults, &LoadError{Msg: ErrMsgDecodeFailed, Err: err}
	}

	if state.Version > domain.StateSchemaVersion {
		logger.FromContext(ctx).Warn(LogMsgNewerSchema, "version", state.Version)
	}

	state.Quests = quest.Merge(quest.DefaultQuests(), state.Quests)
	if repairs := c.sanitize(&state, now); len(repairs) > 0 {
		logger.FromContext(ctx).Warn(LogMsgSaveRepaired, "repairs", repairs)
	}
	return state, nil
}

// sanitize fixes values a hand-edited or corrupted save could carry
func (c *Codec) sanitize(state *domain.GameState, now time.Time) []string {
	var repairs []string
	fix := func(format string, args ...interface{}) {
		repairs = append(repairs, fmt.Sprintf(format, args...))
	}

	if state.Version <= 0 {
		state.Version = domain.StateSchemaVersion
	}
	if state.Nugs < 0 {
		fix("nugs %d reset to 0", state.Nugs)
		state.Nugs = 0
	}
	if state.Buds < 0 {
		fix("buds %d reset to 0", state.Buds)
		state.Buds = 0
	}
	if len(state.Slots) == 0 {
		state.Slots = make([]*domain.Plant, domain.DefaultSlotCount)
	}
	if state.Upgrades == nil {
		state.Upgrades = map[string]int{}
	}
	if state.Trade.Offers == nil {
		state.Trade.Offers = []domain.TradeOffer{}
	}
	if state.CreatedAt.IsZero() {
		state.CreatedAt = now
	}

	for i, p := range state.Slots {
		if p == nil {
			continue
		}
		if _, ok := c.catalog.Strain(p.StrainID); !ok {
			fix("slot %d: unknown strain %q removed", i, p.StrainID)
			state.Slots[i] = nil
			continue
		}
		c.sanitizePlant(i, p, fix)
	}

	offers := state.Trade.Offers[:0]
	for _, o := range state.Trade.Offers {
		if o.ID == "" || o.Quantity <= 0 || o.PricePerBud <= 0 {
			fix("offer %q dropped", o.ID)
			continue
		}
		offers = append(offers, o)
	}
	state.Trade.Offers = offers

	if state.ActiveEvent != nil && state.ActiveEvent.EndsAt.IsZero() {
		fix("event %q without end time dropped", state.ActiveEvent.ID)
		state.ActiveEvent = nil
	}

	return repairs
}

func (c *Codec) sanitizePlant(slot int, p *domain.Plant, fix func(string, ...interface{})) {
	last := c.catalog.LastPhaseIndex()
	if p.PhaseIndex < 0 || p.PhaseIndex > last {
		clamped := p.PhaseIndex
		if clamped < 0 {
			clamped = 0
		} else {
			clamped = last
		}
		fix("slot %d: phase %d clamped to %d", slot, p.PhaseIndex, clamped)
		p.PhaseIndex = clamped
	}
	if p.HarvestReady && p.PhaseIndex != last {
		fix("slot %d: harvest-ready flag cleared outside the last phase", slot)
		p.HarvestReady = false
	}
	if p.ElapsedInPhase < 0 || math.IsNaN(p.ElapsedInPhase) {
		fix("slot %d: elapsed %v reset to 0", slot, p.ElapsedInPhase)
		p.ElapsedInPhase = 0
	}
	if !p.Modifiers.SoilType.Valid() {
		fix("slot %d: soil %q replaced with %s", slot, p.Modifiers.SoilType, domain.SoilBasic)
		p.Modifiers.SoilType = domain.SoilBasic
	}
	q := p.Modifiers.QualityMultiplier
	switch {
	case q < growth.BaseQualityMultiplier || math.IsNaN(q):
		fix("slot %d: quality %v raised to %v", slot, q, growth.BaseQualityMultiplier)
		p.Modifiers.QualityMultiplier = growth.BaseQualityMultiplier
	case q > growth.MaxQualityMultiplier:
		fix("slot %d: quality %v capped at %v", slot, q, growth.MaxQualityMultiplier)
		p.Modifiers.QualityMultiplier = growth.MaxQualityMultiplier
	}
	if p.Modifiers.WaterStacks < 0 {
		p.Modifiers.WaterStacks = 0
	}
}
