package domain

import "time"

// EventEffects are the multipliers a random event applies while active.
// A nil field means the event leaves that rate alone.
type EventEffects struct {
	PriceMultiplier    *float64 `json:"price_multiplier,omitempty"`
	QuantityMultiplier *float64 `json:"quantity_multiplier,omitempty"`
	GrowthMultiplier   *float64 `json:"growth_multiplier,omitempty"` // scales phase duration
}

// GameEvent is the single timed global modifier
type GameEvent struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	EndsAt      time.Time    `json:"ends_at"`
	Effects     EventEffects `json:"effects"`
}

// PriceMultiplier is nil-safe; a missing event or effect is identity
func (e *GameEvent) PriceMultiplier() float64 {
	if e == nil {
		return 1
	}
	return multiplierOrOne(e.Effects.PriceMultiplier)
}

// QuantityMultiplier is nil-safe; a missing event or effect is identity
func (e *GameEvent) QuantityMultiplier() float64 {
	if e == nil {
		return 1
	}
	return multiplierOrOne(e.Effects.QuantityMultiplier)
}

// GrowthMultiplier is nil-safe; a missing event or effect is identity
func (e *GameEvent) GrowthMultiplier() float64 {
	if e == nil {
		return 1
	}
	return multiplierOrOne(e.Effects.GrowthMultiplier)
}

// Clone returns a deep copy. Clone of nil is nil.
func (e *GameEvent) Clone() *GameEvent {
	if e == nil {
		return nil
	}
	c := *e
	c.Effects = EventEffects{
		PriceMultiplier:    cloneFloat(e.Effects.PriceMultiplier),
		QuantityMultiplier: cloneFloat(e.Effects.QuantityMultiplier),
		GrowthMultiplier:   cloneFloat(e.Effects.GrowthMultiplier),
	}
	return &c
}

func multiplierOrOne(m *float64) float64 {
	if m == nil {
		return 1
	}
	return *m
}

func cloneFloat(f *float64) *float64 {
	if f == nil {
		return nil
	}
	c := *f
	return &c
}

// Float returns a pointer to f, for building EventEffects literals
func Float(f float64) *float64 {
	return &f
}
