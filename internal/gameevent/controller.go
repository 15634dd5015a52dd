package gameevent

import (
	"time"

	"github.com/osse101/GrowRoom_Go/internal/domain"
	"github.com/osse101/GrowRoom_Go/internal/utils"
)

// Preset is a template for a random event
type Preset struct {
	ID          string
	Name        string
	Description string
	Effects     domain.EventEffects
}

// Presets returns the built-in event list
func Presets() []Preset {
	return []Preset{
		{
			ID:          PresetGrowthSpurt,
			Name:        "Growth Spurt",
			Description: "Perfect conditions! Plants grow twice as fast.",
			Effects:     domain.EventEffects{GrowthMultiplier: domain.Float(0.5)},
		},
		{
			ID:          PresetMarketBoom,
			Name:        "Market Boom",
			Description: "Buyers are paying 50% more per bud.",
			Effects:     domain.EventEffects{PriceMultiplier: domain.Float(1.5)},
		},
		{
			ID:          PresetBulkBuyers,
			Name:        "Bulk Buyers",
			Description: "Big orders are coming in. Offer sizes are doubled.",
			Effects:     domain.EventEffects{QuantityMultiplier: domain.Float(2.0)},
		},
		{
			ID:          PresetDrought,
			Name:        "Drought",
			Description: "Dry spell. Plants grow slower but prices rise.",
			Effects:     domain.EventEffects{GrowthMultiplier: domain.Float(1.5), PriceMultiplier: domain.Float(1.2)},
		},
	}
}

// Controller picks random events from a preset list
type Controller struct {
	rnd     utils.RandomSource
	presets []Preset
}

// NewController creates a controller over the built-in presets
func NewController(rnd utils.RandomSource) *Controller {
	return &Controller{rnd: rnd, presets: Presets()}
}

// Trigger picks a preset uniformly and starts it at now. A new event replaces
// whatever was active.
func (c *Controller) Trigger(settings domain.Settings, now time.Time) (*domain.GameEvent, error) {
	if !settings.RandomEventsEnabled {
		return nil, domain.ErrEventsDisabled
	}
	p := c.presets[c.rnd.Intn(len(c.presets))]
	return Start(p, now), nil
}

// MaybeTrigger is Trigger gated by a chance roll. It returns nil without
// error when the roll misses.
func (c *Controller) MaybeTrigger(settings domain.Settings, now time.Time, chance float64) (*domain.GameEvent, error) {
	if !settings.RandomEventsEnabled {
		return nil, domain.ErrEventsDisabled
	}
	if !utils.Roll(c.rnd, chance) {
		return nil, nil
	}
	return c.Trigger(settings, now)
}

// Start instantiates a preset
func Start(p Preset, now time.Time) *domain.GameEvent {
	e := &domain.GameEvent{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		EndsAt:      now.Add(EventDuration),
		Effects:     p.Effects,
	}
	return e.Clone()
}

// Expire returns nil once now has reached the event's end, otherwise a copy
// of the event
func Expire(event *domain.GameEvent, now time.Time) *domain.GameEvent {
	if event == nil || !now.Before(event.EndsAt) {
		return nil
	}
	return event.Clone()
}

// Remaining returns how long the event has left
func Remaining(event *domain.GameEvent, now time.Time) time.Duration {
	if event == nil {
		return 0
	}
	if d := event.EndsAt.Sub(now); d > 0 {
		return d
	}
	return 0
}
