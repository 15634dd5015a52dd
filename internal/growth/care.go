package growth

import (
	"math"
	"time"

	"github.com/osse101/GrowRoom_Go/internal/domain"
)

// CanWater reports whether the plant can be watered with the given funds
func (e *Engine) CanWater(p *domain.Plant, event *domain.GameEvent, nugs int, now time.Time) domain.ActionEligibility {
	elig, _ := e.checkWater(p, event, nugs, now)
	return elig
}

// CanFertilize reports whether the plant can be fertilized with the given funds
func (e *Engine) CanFertilize(p *domain.Plant, event *domain.GameEvent, nugs int, now time.Time) domain.ActionEligibility {
	elig, _ := e.checkFertilize(p, event, nugs, now)
	return elig
}

// Water returns the watered plant and the cost to charge
func (e *Engine) Water(p *domain.Plant, event *domain.GameEvent, nugs int, now time.Time) (*domain.Plant, int, error) {
	elig, err := e.checkWater(p, event, nugs, now)
	if err != nil {
		return nil, 0, err
	}
	out := p.Clone()
	out.Modifiers.WaterStacks++
	out.Modifiers.LastWaterTime = &now
	return out, elig.Cost, nil
}

// Fertilize returns the fertilized plant and the cost to charge
func (e *Engine) Fertilize(p *domain.Plant, event *domain.GameEvent, nugs int, now time.Time) (*domain.Plant, int, error) {
	elig, err := e.checkFertilize(p, event, nugs, now)
	if err != nil {
		return nil, 0, err
	}
	out := p.Clone()
	out.Modifiers.FertilizerApplied = true
	out.Modifiers.LastFertilizerTime = &now
	out.Modifiers.QualityMultiplier = NextQuality(p.Modifiers.QualityMultiplier)
	return out, elig.Cost, nil
}

// NextQuality applies one fertilizer step to a quality multiplier
func NextQuality(q float64) float64 {
	return math.Min(MaxQualityMultiplier, q+FertilizerQualityStep)
}

func (e *Engine) checkWater(p *domain.Plant, event *domain.GameEvent, nugs int, now time.Time) (domain.ActionEligibility, error) {
	elig := domain.ActionEligibility{Cost: WaterCost, CooldownTotal: WaterCooldown}
	if p == nil {
		return decline(elig, domain.ErrSlotEmpty)
	}
	if phase, ok := e.catalog.Phase(p.PhaseIndex); ok {
		elig.CooldownTotal = phase.WaterCooldown(WaterCooldown)
	}
	elig.CooldownRemaining = cooldownRemaining(now, p.Modifiers.LastWaterTime, elig.CooldownTotal)

	if e.IsReady(p, event) {
		return decline(elig, domain.ErrPlantReady)
	}
	if nugs < elig.Cost {
		return decline(elig, domain.ErrInsufficientFunds)
	}
	if elig.CooldownRemaining > 0 {
		return decline(elig, domain.ErrOnCooldown)
	}
	elig.CanPerform = true
	return elig, nil
}

func (e *Engine) checkFertilize(p *domain.Plant, event *domain.GameEvent, nugs int, now time.Time) (domain.ActionEligibility, error) {
	elig := domain.ActionEligibility{Cost: FertilizerCost, CooldownTotal: FertilizerCooldown}
	if p == nil {
		return decline(elig, domain.ErrSlotEmpty)
	}
	if phase, ok := e.catalog.Phase(p.PhaseIndex); ok {
		elig.CooldownTotal = phase.FertilizerCooldown(FertilizerCooldown)
	}
	elig.CooldownRemaining = cooldownRemaining(now, p.Modifiers.LastFertilizerTime, elig.CooldownTotal)

	if e.IsReady(p, event) {
		return decline(elig, domain.ErrPlantReady)
	}
	if p.Modifiers.FertilizerApplied {
		return decline(elig, domain.ErrAlreadyFertilized)
	}
	if nugs < elig.Cost {
		return decline(elig, domain.ErrInsufficientFunds)
	}
	if elig.CooldownRemaining > 0 {
		return decline(elig, domain.ErrOnCooldown)
	}
	elig.CanPerform = true
	return elig, nil
}

func decline(elig domain.ActionEligibility, err error) (domain.ActionEligibility, error) {
	elig.CanPerform = false
	elig.Reason = err.Error()
	return elig, err
}

// cooldownRemaining returns how long until an action last used at lastUsed
// is available again. A nil lastUsed has no cooldown.
func cooldownRemaining(now time.Time, lastUsed *time.Time, total time.Duration) time.Duration {
	if lastUsed == nil {
		return 0
	}
	remaining := total - now.Sub(*lastUsed)
	if remaining < 0 {
		return 0
	}
	return remaining
}
