package economy

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/GrowRoom_Go/internal/domain"
	"github.com/osse101/GrowRoom_Go/internal/quest"
	"github.com/osse101/GrowRoom_Go/internal/utils"
)

// Engine provides pure trade logic. Randomness comes from the injected source.
type Engine struct {
	rnd   utils.RandomSource
	newID func() string
}

// NewEngine creates an economy engine drawing from rnd
func NewEngine(rnd utils.RandomSource) *Engine {
	return &Engine{
		rnd:   rnd,
		newID: uuid.NewString,
	}
}

// Stage derives the progression stage from lifetime harvests
func Stage(harvestCount int) int {
	if harvestCount <= 0 {
		return 0
	}
	return harvestCount / HarvestsPerStage
}

// QuantityBounds returns the inclusive offer quantity range for a stage
func QuantityBounds(stage int, event *domain.GameEvent) (int, int) {
	mult := event.QuantityMultiplier()
	minQty := scaleQuantity(min(MinQuantityCap, BaseMinQuantity+stage*MinQuantityPerStage), mult)
	maxQty := scaleQuantity(min(MaxQuantityCap, BaseMaxQuantity+stage*MaxQuantityPerStage), mult)
	if maxQty < minQty {
		maxQty = minQty
	}
	return minQty, maxQty
}

func scaleQuantity(qty int, mult float64) int {
	scaled := int(math.Floor(float64(qty) * mult))
	if scaled < 1 {
		return 1
	}
	return scaled
}

// CanRefresh reports whether a new offer batch may be generated
func CanRefresh(trade domain.TradeState, now time.Time) bool {
	return !now.Before(trade.NextRefreshAt)
}

// GenerateOffers builds a fresh batch of offers and the next refresh time
func (e *Engine) GenerateOffers(stage int, event *domain.GameEvent, now time.Time) domain.TradeState {
	minQty, maxQty := QuantityBounds(stage, event)

	offers := make([]domain.TradeOffer, 0, OffersPerBatch)
	for i := 0; i < OffersPerBatch; i++ {
		offers = append(offers, domain.TradeOffer{
			ID:          e.newID(),
			Quantity:    utils.RandomInt(e.rnd, minQty, maxQty),
			PricePerBud: e.rollPrice(stage, event),
		})
	}

	return domain.TradeState{
		Offers:        offers,
		NextRefreshAt: now.Add(RefreshCooldown),
	}
}

func (e *Engine) rollPrice(stage int, event *domain.GameEvent) float64 {
	raw := (BasePrice + utils.RandomFloatRange(e.rnd, 0, PriceSpread) + float64(stage)*PricePerStage) * event.PriceMultiplier()
	return utils.RoundTo(utils.Clamp(raw, MinPrice, MaxOfferPrice), PriceDecimals)
}

// Refresh replaces the offer batch if the refresh cooldown has passed
func (e *Engine) Refresh(state domain.GameState, now time.Time) (domain.GameState, error) {
	if !CanRefresh(state.Trade, now) {
		return state, fmt.Errorf("%w: %s left", domain.ErrRefreshOnCooldown, state.Trade.NextRefreshAt.Sub(now).Round(time.Second))
	}
	next := state.Clone()
	next.Trade = e.GenerateOffers(Stage(state.Stats.HarvestCount), state.ActiveEvent, now)
	return next, nil
}

// AcceptResult describes a completed sale
type AcceptResult struct {
	Offer      domain.TradeOffer `json:"offer"`
	NugsEarned int               `json:"nugs_earned"`
}

// AcceptOffer sells buds into an offer. On failure the state is returned unchanged.
func AcceptOffer(state domain.GameState, offerID string) (domain.GameState, AcceptResult, error) {
	idx := state.Trade.FindOffer(offerID)
	if idx < 0 {
		return state, AcceptResult{}, fmt.Errorf("%w: '%s'", domain.ErrOfferNotFound, offerID)
	}
	offer := state.Trade.Offers[idx]
	if state.Buds < offer.Quantity {
		return state, AcceptResult{}, fmt.Errorf("%w: have %d, need %d", domain.ErrInsufficientBuds, state.Buds, offer.Quantity)
	}

	earned := offer.Total()
	next := state.Clone()
	next.Buds -= offer.Quantity
	next.Nugs += earned
	next.Trade.Offers = removeOffer(next.Trade.Offers, idx)
	next.Stats.RecordSale(offer.Quantity, earned)
	next.Quests = quest.RecordAction(next.Quests, domain.QuestTypeSell, offer.Quantity)

	return next, AcceptResult{Offer: offer, NugsEarned: earned}, nil
}

// HaggleResult describes a haggle attempt. Removed is true when the buyer
// walked away; the two outcomes are exclusive.
type HaggleResult struct {
	Succeeded bool    `json:"succeeded"`
	Removed   bool    `json:"removed"`
	OldPrice  float64 `json:"old_price"`
	NewPrice  float64 `json:"new_price,omitempty"`
}

// Haggle rolls once against HaggleSuccessChance. A win raises the price by
// HaggleMultiplier (capped at MaxHagglePrice); a loss removes the offer.
func (e *Engine) Haggle(state domain.GameState, offerID string) (domain.GameState, HaggleResult, error) {
	idx := state.Trade.FindOffer(offerID)
	if idx < 0 {
		return state, HaggleResult{}, fmt.Errorf("%w: '%s'", domain.ErrOfferNotFound, offerID)
	}

	next := state.Clone()
	offer := next.Trade.Offers[idx]
	result := HaggleResult{OldPrice: offer.PricePerBud}

	if utils.Roll(e.rnd, HaggleSuccessChance) {
		result.Succeeded = true
		result.NewPrice = HagglePrice(offer.PricePerBud)
		next.Trade.Offers[idx].PricePerBud = result.NewPrice
		next.Stats.HaggleWins++
		return next, result, nil
	}

	result.Removed = true
	next.Trade.Offers = removeOffer(next.Trade.Offers, idx)
	next.Stats.HaggleLosses++
	return next, result, nil
}

// HagglePrice applies one successful haggle to a price
func HagglePrice(price float64) float64 {
	return math.Min(MaxHagglePrice, utils.RoundTo(price*HaggleMultiplier, PriceDecimals))
}

func removeOffer(offers []domain.TradeOffer, idx int) []domain.TradeOffer {
	out := make([]domain.TradeOffer, 0, len(offers)-1)
	out = append(out, offers[:idx]...)
	return append(out, offers[idx+1:]...)
}
