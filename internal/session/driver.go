package session

import (
	"context"
	"time"

	"github.com/osse101/GrowRoom_Go/internal/domain"
	"github.com/osse101/GrowRoom_Go/internal/economy"
	"github.com/osse101/GrowRoom_Go/internal/event"
	"github.com/osse101/GrowRoom_Go/internal/game"
)

// PlantSeed pots a seed into an empty slot
func (s *Session) PlantSeed(ctx context.Context, slot int, strainID string, soil domain.SoilType) Result {
	return s.apply(ctx, game.OpPlantSeed, func(state domain.GameState, now time.Time) (domain.GameState, game.Outcome, interface{}, []event.Event) {
		next, outcome := s.engine.PlantSeed(state, slot, strainID, soil, now)
		if !outcome.Accepted {
			return next, outcome, nil, nil
		}
		planted := next.Slots[slot]
		return next, outcome, planted.Clone(), []event.Event{
			event.NewPlantEvent(event.PlantPlanted, slot, planted, state.Nugs-next.Nugs, now),
		}
	})
}

// RemovePlant empties a slot without harvesting
func (s *Session) RemovePlant(ctx context.Context, slot int) Result {
	return s.apply(ctx, game.OpRemovePlant, func(state domain.GameState, now time.Time) (domain.GameState, game.Outcome, interface{}, []event.Event) {
		next, outcome := s.engine.RemovePlant(state, slot)
		if !outcome.Accepted {
			return next, outcome, nil, nil
		}
		removed, _ := state.PlantAt(slot)
		return next, outcome, nil, []event.Event{event.NewPlantEvent(event.PlantRemoved, slot, removed, 0, now)}
	})
}

// UpdatePlant overwrites a plant's phase timer
func (s *Session) UpdatePlant(ctx context.Context, slot int, elapsed float64, phaseIndex int) Result {
	return s.apply(ctx, game.OpUpdatePlant, func(state domain.GameState, now time.Time) (domain.GameState, game.Outcome, interface{}, []event.Event) {
		next, outcome := s.engine.UpdatePlant(state, slot, elapsed, phaseIndex)
		if !outcome.Accepted {
			return next, outcome, nil, nil
		}
		before, _ := state.PlantAt(slot)
		after := next.Slots[slot]
		var events []event.Event
		if after.PhaseIndex != before.PhaseIndex {
			events = append(events, event.NewPhaseAdvancedEvent(slot, after, now))
		}
		return next, outcome, after.Clone(), events
	})
}

// Water waters the plant in slot
func (s *Session) Water(ctx context.Context, slot int) Result {
	return s.apply(ctx, game.OpWater, func(state domain.GameState, now time.Time) (domain.GameState, game.Outcome, interface{}, []event.Event) {
		next, outcome := s.engine.Water(state, slot, now)
		if !outcome.Accepted {
			return next, outcome, nil, nil
		}
		plant := next.Slots[slot]
		return next, outcome, plant.Clone(), []event.Event{
			event.NewPlantEvent(event.PlantWatered, slot, plant, state.Nugs-next.Nugs, now),
		}
	})
}

// Fertilize fertilizes the plant in slot
func (s *Session) Fertilize(ctx context.Context, slot int) Result {
	return s.apply(ctx, game.OpFertilize, func(state domain.GameState, now time.Time) (domain.GameState, game.Outcome, interface{}, []event.Event) {
		next, outcome := s.engine.Fertilize(state, slot, now)
		if !outcome.Accepted {
			return next, outcome, nil, nil
		}
		plant := next.Slots[slot]
		return next, outcome, plant.Clone(), []event.Event{
			event.NewPlantEvent(event.PlantFertilized, slot, plant, state.Nugs-next.Nugs, now),
		}
	})
}

// CanWater answers the eligibility query without changing state
func (s *Session) CanWater(slot int) domain.ActionEligibility {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.CanWater(s.state, slot, s.clock.Now())
}

// CanFertilize answers the eligibility query without changing state
func (s *Session) CanFertilize(slot int) domain.ActionEligibility {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.CanFertilize(s.state, slot, s.clock.Now())
}

// Harvest collects the ready plant in slot
func (s *Session) Harvest(ctx context.Context, slot int) Result {
	return s.apply(ctx, game.OpHarvest, func(state domain.GameState, now time.Time) (domain.GameState, game.Outcome, interface{}, []event.Event) {
		next, yield, outcome := s.engine.Harvest(state, slot)
		if !outcome.Accepted {
			return next, outcome, nil, nil
		}
		harvested, _ := state.PlantAt(slot)
		return next, outcome, yield, []event.Event{event.NewPlantHarvestedEvent(slot, harvested, yield, now)}
	})
}

// GenerateOffers refreshes the trade board
func (s *Session) GenerateOffers(ctx context.Context) Result {
	return s.apply(ctx, game.OpGenerateOffers, func(state domain.GameState, now time.Time) (domain.GameState, game.Outcome, interface{}, []event.Event) {
		next, outcome := s.engine.GenerateOffers(state, now)
		if !outcome.Accepted {
			return next, outcome, nil, nil
		}
		stage := economy.Stage(next.Stats.HarvestCount)
		return next, outcome, next.Trade, []event.Event{event.NewOffersGeneratedEvent(next.Trade, stage, now)}
	})
}

// AcceptOffer sells buds into an offer
func (s *Session) AcceptOffer(ctx context.Context, offerID string) Result {
	return s.apply(ctx, game.OpAcceptOffer, func(state domain.GameState, now time.Time) (domain.GameState, game.Outcome, interface{}, []event.Event) {
		next, sale, outcome := s.engine.AcceptOffer(state, offerID)
		if !outcome.Accepted {
			return next, outcome, nil, nil
		}
		return next, outcome, sale, []event.Event{event.NewOfferAcceptedEvent(sale.Offer, sale.NugsEarned, now)}
	})
}

// HaggleOffer haggles over an offer's price
func (s *Session) HaggleOffer(ctx context.Context, offerID string) Result {
	return s.apply(ctx, game.OpHaggleOffer, func(state domain.GameState, now time.Time) (domain.GameState, game.Outcome, interface{}, []event.Event) {
		next, haggle, outcome := s.engine.HaggleOffer(state, offerID)
		if !outcome.Accepted {
			return next, outcome, nil, nil
		}
		return next, outcome, haggle, []event.Event{
			event.NewOfferHaggledEvent(offerID, haggle.Succeeded, haggle.OldPrice, haggle.NewPrice, now),
		}
	})
}

// ClaimQuest collects a completed quest's reward
func (s *Session) ClaimQuest(ctx context.Context, questID string) Result {
	return s.apply(ctx, game.OpClaimQuest, func(state domain.GameState, now time.Time) (domain.GameState, game.Outcome, interface{}, []event.Event) {
		next, claim, outcome := s.engine.ClaimQuest(state, questID)
		if !outcome.Accepted {
			return next, outcome, nil, nil
		}
		return next, outcome, claim, []event.Event{event.NewQuestClaimedEvent(claim.QuestID, claim.Reward, now)}
	})
}

// TriggerEvent starts a random event, replacing the active one
func (s *Session) TriggerEvent(ctx context.Context) Result {
	return s.apply(ctx, game.OpTriggerEvent, func(state domain.GameState, now time.Time) (domain.GameState, game.Outcome, interface{}, []event.Event) {
		next, outcome := s.engine.TriggerEvent(state, now)
		return next, outcome, next.ActiveEvent.Clone(), eventChange(state, next, now)
	})
}

// MaybeTriggerEvent triggers a random event with the given chance
func (s *Session) MaybeTriggerEvent(ctx context.Context, chance float64) Result {
	return s.apply(ctx, game.OpTriggerEvent, func(state domain.GameState, now time.Time) (domain.GameState, game.Outcome, interface{}, []event.Event) {
		next, outcome := s.engine.MaybeTriggerEvent(state, now, chance)
		return next, outcome, next.ActiveEvent.Clone(), eventChange(state, next, now)
	})
}

// TickEvent clears the active event once it has run out
func (s *Session) TickEvent(ctx context.Context) Result {
	return s.apply(ctx, game.OpTickEvent, func(state domain.GameState, now time.Time) (domain.GameState, game.Outcome, interface{}, []event.Event) {
		next, outcome := s.engine.TickEvent(state, now)
		return next, outcome, next.ActiveEvent.Clone(), eventChange(state, next, now)
	})
}

// eventChange reports the random event transitions between two states
func eventChange(before, after domain.GameState, now time.Time) []event.Event {
	var events []event.Event
	if before.ActiveEvent != nil && after.ActiveEvent != before.ActiveEvent {
		events = append(events, event.NewRandomEvent(event.RandomEventEnd, before.ActiveEvent, now))
	}
	if after.ActiveEvent != nil && after.ActiveEvent != before.ActiveEvent {
		events = append(events, event.NewRandomEvent(event.RandomEventStart, after.ActiveEvent, now))
	}
	return events
}

// AddNugs credits nugs
func (s *Session) AddNugs(ctx context.Context, amount int) Result {
	return s.wallet(ctx, game.OpAddNugs, func(state domain.GameState) (domain.GameState, game.Outcome) {
		return s.engine.AddNugs(state, amount)
	})
}

// SpendNugs debits nugs
func (s *Session) SpendNugs(ctx context.Context, amount int) Result {
	return s.wallet(ctx, game.OpSpendNugs, func(state domain.GameState) (domain.GameState, game.Outcome) {
		return s.engine.SpendNugs(state, amount)
	})
}

// AddBuds credits buds
func (s *Session) AddBuds(ctx context.Context, amount int) Result {
	return s.wallet(ctx, game.OpAddBuds, func(state domain.GameState) (domain.GameState, game.Outcome) {
		return s.engine.AddBuds(state, amount)
	})
}

// SpendBuds debits buds
func (s *Session) SpendBuds(ctx context.Context, amount int) Result {
	return s.wallet(ctx, game.OpSpendBuds, func(state domain.GameState) (domain.GameState, game.Outcome) {
		return s.engine.SpendBuds(state, amount)
	})
}

// UpgradeLevel bumps an upgrade's level
func (s *Session) UpgradeLevel(ctx context.Context, upgradeID string) Result {
	return s.wallet(ctx, game.OpUpgradeLevel, func(state domain.GameState) (domain.GameState, game.Outcome) {
		return s.engine.UpgradeLevel(state, upgradeID)
	})
}

// AddSlot appends an empty growth slot
func (s *Session) AddSlot(ctx context.Context) Result {
	return s.wallet(ctx, game.OpAddSlot, s.engine.AddSlot)
}

// UpdateSettings replaces the player settings
func (s *Session) UpdateSettings(ctx context.Context, settings domain.Settings) Result {
	return s.wallet(ctx, game.OpUpdateSettings, func(state domain.GameState) (domain.GameState, game.Outcome) {
		return s.engine.UpdateSettings(state, settings)
	})
}

// wallet adapts the clock-free, event-free transitions
func (s *Session) wallet(ctx context.Context, op string, fn func(domain.GameState) (domain.GameState, game.Outcome)) Result {
	return s.apply(ctx, op, func(state domain.GameState, _ time.Time) (domain.GameState, game.Outcome, interface{}, []event.Event) {
		next, outcome := fn(state)
		return next, outcome, nil, nil
	})
}
