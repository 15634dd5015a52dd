package game

import (
	"time"

	"github.com/osse101/GrowRoom_Go/internal/domain"
	"github.com/osse101/GrowRoom_Go/internal/gameevent"
)

// TriggerEvent starts a random event, replacing any active one
func (e *Engine) TriggerEvent(state domain.GameState, now time.Time) (domain.GameState, Outcome) {
	event, err := e.events.Trigger(state.Settings, now)
	if err != nil {
		return state, declined(err)
	}
	return startEvent(state, event), accepted()
}

// MaybeTriggerEvent is TriggerEvent behind a chance roll. A missed roll is
// accepted with the state unchanged.
func (e *Engine) MaybeTriggerEvent(state domain.GameState, now time.Time, chance float64) (domain.GameState, Outcome) {
	event, err := e.events.MaybeTrigger(state.Settings, now, chance)
	if err != nil {
		return state, declined(err)
	}
	if event == nil {
		return state, accepted()
	}
	return startEvent(state, event), accepted()
}

func startEvent(state domain.GameState, event *domain.GameEvent) domain.GameState {
	next := state.Clone()
	next.ActiveEvent = event
	next.Stats.EventsTriggered++
	return next
}

// TickEvent clears the active event once it has run out
func (e *Engine) TickEvent(state domain.GameState, now time.Time) (domain.GameState, Outcome) {
	if state.ActiveEvent == nil || gameevent.Expire(state.ActiveEvent, now) != nil {
		return state, accepted()
	}
	next := state.Clone()
	next.ActiveEvent = nil
	return next, accepted()
}
