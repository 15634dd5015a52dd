package game

import (
	"time"

	"github.com/osse101/GrowRoom_Go/internal/domain"
	"github.com/osse101/GrowRoom_Go/internal/gameevent"
)

// PhaseAdvance records a plant crossing into a new phase during a tick
type PhaseAdvance struct {
	Slot      int
	PlantID   string
	FromPhase int
	ToPhase   int
	Ready     bool
}

// TickResult describes what a tick changed
type TickResult struct {
	Delta        time.Duration
	PlantsGrown  int
	Advances     []PhaseAdvance
	ExpiredEvent *domain.GameEvent
}

// Changed reports whether the tick moved any plant or cleared the event
func (r TickResult) Changed() bool {
	return r.PlantsGrown > 0 || r.ExpiredEvent != nil
}

// Tick advances every plant by the time since the last tick, then expires
// the active event. Growth uses the event as it was before expiry. A
// non-positive delta is a no-op. At most MaxTickDelta is consumed per tick and
// LastTickAt moves by that amount, so a long gap is spread over several
// ticks. Each plant still crosses at most one phase per tick and the time
// beyond that boundary is discarded, so most of a long offline gap does not
// turn into growth.
func (e *Engine) Tick(state domain.GameState, now time.Time) (domain.GameState, TickResult) {
	var result TickResult

	if state.LastTickAt.IsZero() {
		next := state.Clone()
		next.LastTickAt = now
		return next, result
	}

	delta := now.Sub(state.LastTickAt)
	if delta <= 0 {
		return state, result
	}
	if delta > MaxTickDelta {
		delta = MaxTickDelta
	}
	result.Delta = delta

	next := state.Clone()
	for i, p := range next.Slots {
		if p == nil {
			continue
		}
		advanced, err := e.growth.Advance(p, state.ActiveEvent, delta.Seconds())
		if err != nil {
			e.violation(OpTick, err)
			continue
		}
		if advanced.PhaseIndex != p.PhaseIndex {
			result.Advances = append(result.Advances, PhaseAdvance{
				Slot:      i,
				PlantID:   advanced.ID,
				FromPhase: p.PhaseIndex,
				ToPhase:   advanced.PhaseIndex,
				Ready:     e.growth.IsReady(advanced, state.ActiveEvent),
			})
		}
		next.Slots[i] = advanced
		if advanced.PhaseIndex != p.PhaseIndex || advanced.ElapsedInPhase != p.ElapsedInPhase ||
			advanced.HarvestReady != p.HarvestReady {
			result.PlantsGrown++
		}
	}

	if state.ActiveEvent != nil && gameevent.Expire(state.ActiveEvent, now) == nil {
		result.ExpiredEvent = state.ActiveEvent.Clone()
		next.ActiveEvent = nil
	}

	next.LastTickAt = state.LastTickAt.Add(delta)
	return next, result
}
