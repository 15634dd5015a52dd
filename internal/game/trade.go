package game

import (
	"time"

	"github.com/osse101/GrowRoom_Go/internal/domain"
	"github.com/osse101/GrowRoom_Go/internal/economy"
)

// GenerateOffers refreshes the offer batch once the refresh cooldown has passed
func (e *Engine) GenerateOffers(state domain.GameState, now time.Time) (domain.GameState, Outcome) {
	next, err := e.economy.Refresh(state, now)
	if err != nil {
		return state, declined(err)
	}
	return next, accepted()
}

// AcceptOffer sells buds into an offer. Accepting an offer id that is not on
// the board is an invariant violation.
func (e *Engine) AcceptOffer(state domain.GameState, offerID string) (domain.GameState, economy.AcceptResult, Outcome) {
	next, result, err := economy.AcceptOffer(state, offerID)
	if err != nil {
		if state.Trade.FindOffer(offerID) < 0 {
			return state, result, e.violation(OpAcceptOffer, err)
		}
		return state, result, declined(err)
	}
	return next, result, accepted()
}

// HaggleOffer haggles over an offer. A failed haggle is still an accepted
// operation: the offer is gone and result.Removed says so.
func (e *Engine) HaggleOffer(state domain.GameState, offerID string) (domain.GameState, economy.HaggleResult, Outcome) {
	next, result, err := e.economy.Haggle(state, offerID)
	if err != nil {
		return state, result, declined(err)
	}
	return next, result, accepted()
}
