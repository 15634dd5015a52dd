package game

import (
	"fmt"
	"strings"

	"github.com/osse101/GrowRoom_Go/internal/domain"
)

// AddNugs credits nugs
func (e *Engine) AddNugs(state domain.GameState, amount int) (domain.GameState, Outcome) {
	if amount <= 0 {
		return state, declined(fmt.Errorf("%w: %d", domain.ErrInvalidAmount, amount))
	}
	next := state.Clone()
	next.Nugs += amount
	return next, accepted()
}

// SpendNugs debits nugs if the balance covers it
func (e *Engine) SpendNugs(state domain.GameState, amount int) (domain.GameState, Outcome) {
	if amount <= 0 {
		return state, declined(fmt.Errorf("%w: %d", domain.ErrInvalidAmount, amount))
	}
	if state.Nugs < amount {
		return state, declined(fmt.Errorf("%w: have %d, need %d", domain.ErrInsufficientFunds, state.Nugs, amount))
	}
	next := state.Clone()
	next.Nugs -= amount
	return next, accepted()
}

// AddBuds credits buds
func (e *Engine) AddBuds(state domain.GameState, amount int) (domain.GameState, Outcome) {
	if amount <= 0 {
		return state, declined(fmt.Errorf("%w: %d", domain.ErrInvalidAmount, amount))
	}
	next := state.Clone()
	next.Buds += amount
	return next, accepted()
}

// SpendBuds debits buds if the balance covers it
func (e *Engine) SpendBuds(state domain.GameState, amount int) (domain.GameState, Outcome) {
	if amount <= 0 {
		return state, declined(fmt.Errorf("%w: %d", domain.ErrInvalidAmount, amount))
	}
	if state.Buds < amount {
		return state, declined(fmt.Errorf("%w: have %d, need %d", domain.ErrInsufficientBuds, state.Buds, amount))
	}
	next := state.Clone()
	next.Buds -= amount
	return next, accepted()
}

// UpgradeLevel bumps the level of an upgrade. Costs are charged by the caller
// through SpendNugs.
func (e *Engine) UpgradeLevel(state domain.GameState, upgradeID string) (domain.GameState, Outcome) {
	upgradeID = strings.TrimSpace(upgradeID)
	if upgradeID == "" {
		return state, declined(fmt.Errorf("%w: empty id", domain.ErrInvalidUpgrade))
	}
	next := state.Clone()
	if next.Upgrades == nil {
		next.Upgrades = map[string]int{}
	}
	next.Upgrades[upgradeID]++
	return next, accepted()
}

// UpdateSettings replaces the player settings
func (e *Engine) UpdateSettings(state domain.GameState, settings domain.Settings) (domain.GameState, Outcome) {
	next := state.Clone()
	next.Settings = settings
	return next, accepted()
}
