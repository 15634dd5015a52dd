package game

import (
	"fmt"
	"math"
	"time"

	"github.com/osse101/GrowRoom_Go/internal/domain"
	"github.com/osse101/GrowRoom_Go/internal/quest"
)

// PlantSeed pots a new plant into an empty slot and charges the strain's seed cost
func (e *Engine) PlantSeed(state domain.GameState, slot int, strainID string, soil domain.SoilType, now time.Time) (domain.GameState, Outcome) {
	current, ok := state.PlantAt(slot)
	if !ok {
		return state, declined(fmt.Errorf("%w: %d", domain.ErrSlotOutOfRange, slot))
	}
	if current != nil {
		return state, declined(fmt.Errorf("%w: %d", domain.ErrSlotOccupied, slot))
	}

	p, err := e.growth.NewPlant(e.newID(), strainID, soil, now)
	if err != nil {
		return state, declined(err)
	}
	strain, _ := e.catalog.Strain(strainID)
	if state.Nugs < strain.SeedCost {
		return state, declined(fmt.Errorf("%w: seed costs %d", domain.ErrInsufficientFunds, strain.SeedCost))
	}

	next := state.Clone()
	next.Nugs -= strain.SeedCost
	next.Slots[slot] = p
	next.Stats.PlantsPlanted++
	return next, accepted()
}

// RemovePlant empties a slot without harvesting it
func (e *Engine) RemovePlant(state domain.GameState, slot int) (domain.GameState, Outcome) {
	if _, err := plantAt(state, slot); err != nil {
		return state, declined(err)
	}
	next := state.Clone()
	next.Slots[slot] = nil
	return next, accepted()
}

// UpdatePlant overwrites a plant's timer. The phase may move forward but never
// back, and elapsed time is clamped into the phase duration.
func (e *Engine) UpdatePlant(state domain.GameState, slot int, elapsed float64, phaseIndex int) (domain.GameState, Outcome) {
	p, err := plantAt(state, slot)
	if err != nil {
		return state, declined(err)
	}
	if phaseIndex < p.PhaseIndex || phaseIndex > e.catalog.LastPhaseIndex() {
		return state, declined(fmt.Errorf("%w: %d (current %d)", domain.ErrInvalidPhase, phaseIndex, p.PhaseIndex))
	}
	if elapsed < 0 || math.IsNaN(elapsed) {
		return state, declined(fmt.Errorf("%w: elapsed %v", domain.ErrInvalidAmount, elapsed))
	}

	updated := p.Clone()
	if phaseIndex != p.PhaseIndex {
		updated.Modifiers.FertilizerApplied = false
	}
	updated.PhaseIndex = phaseIndex

	duration, err := e.growth.PhaseDuration(updated, state.ActiveEvent)
	if err != nil {
		return state, e.violation(OpUpdatePlant, err)
	}
	updated.ElapsedInPhase = math.Min(elapsed, duration)
	if updated.PhaseIndex == e.catalog.LastPhaseIndex() && elapsed >= duration {
		updated.HarvestReady = true
	}

	next := state.Clone()
	next.Slots[slot] = updated
	return next, accepted()
}

// Water waters a plant, charges the water cost and counts toward water quests
func (e *Engine) Water(state domain.GameState, slot int, now time.Time) (domain.GameState, Outcome) {
	p, err := plantAt(state, slot)
	if err != nil {
		return state, declined(err)
	}
	watered, cost, err := e.growth.Water(p, state.ActiveEvent, state.Nugs, now)
	if err != nil {
		return state, declined(err)
	}

	next := state.Clone()
	next.Nugs -= cost
	next.Slots[slot] = watered
	next.Quests = quest.RecordAction(next.Quests, domain.QuestTypeWater, 1)
	return next, accepted()
}

// Fertilize fertilizes a plant and charges the fertilizer cost
func (e *Engine) Fertilize(state domain.GameState, slot int, now time.Time) (domain.GameState, Outcome) {
	p, err := plantAt(state, slot)
	if err != nil {
		return state, declined(err)
	}
	fertilized, cost, err := e.growth.Fertilize(p, state.ActiveEvent, state.Nugs, now)
	if err != nil {
		return state, declined(err)
	}

	next := state.Clone()
	next.Nugs -= cost
	next.Slots[slot] = fertilized
	return next, accepted()
}

// Harvest collects a ready plant, credits buds, updates stats and harvest
// quests, and empties the slot. Harvesting a plant that is still growing is
// an invariant violation.
func (e *Engine) Harvest(state domain.GameState, slot int) (domain.GameState, domain.HarvestYield, Outcome) {
	p, err := plantAt(state, slot)
	if err != nil {
		return state, domain.HarvestYield{}, declined(err)
	}
	yield, err := e.growth.Harvest(p, state.ActiveEvent)
	if err != nil {
		return state, domain.HarvestYield{}, e.violation(OpHarvest, err)
	}

	next := state.Clone()
	next.Buds += yield.BudsYielded
	next.Slots[slot] = nil
	next.Stats.RecordHarvest(yield.BudsYielded)
	next.Quests = quest.RecordAction(next.Quests, domain.QuestTypeHarvest, 1)
	return next, yield, accepted()
}

// CanWater answers the eligibility query for a slot
func (e *Engine) CanWater(state domain.GameState, slot int, now time.Time) domain.ActionEligibility {
	p, _ := state.PlantAt(slot)
	return e.growth.CanWater(p, state.ActiveEvent, state.Nugs, now)
}

// CanFertilize answers the eligibility query for a slot
func (e *Engine) CanFertilize(state domain.GameState, slot int, now time.Time) domain.ActionEligibility {
	p, _ := state.PlantAt(slot)
	return e.growth.CanFertilize(p, state.ActiveEvent, state.Nugs, now)
}

// AddSlot appends an empty slot
func (e *Engine) AddSlot(state domain.GameState) (domain.GameState, Outcome) {
	next := state.Clone()
	next.Slots = append(next.Slots, nil)
	return next, accepted()
}
