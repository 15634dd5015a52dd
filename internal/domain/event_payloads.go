package domain

import "time"

// PlantPayload is the event payload for plant.planted, plant.removed,
// plant.watered and plant.fertilized events
type PlantPayload struct {
	Slot      int    `json:"slot"`
	PlantID   string `json:"plant_id"`
	StrainID  string `json:"strain_id"`
	Cost      int    `json:"cost,omitempty"`
	Timestamp int64  `json:"timestamp"`
}

// PhaseAdvancedPayload is the event payload for plant.phase_advanced events
type PhaseAdvancedPayload struct {
	Slot       int    `json:"slot"`
	PlantID    string `json:"plant_id"`
	StrainID   string `json:"strain_id"`
	PhaseIndex int    `json:"phase_index"`
	Timestamp  int64  `json:"timestamp"`
}

// PlantHarvestedPayload is the event payload for plant.harvested events
type PlantHarvestedPayload struct {
	Slot              int     `json:"slot"`
	PlantID           string  `json:"plant_id"`
	StrainID          string  `json:"strain_id"`
	BudsYielded       int     `json:"buds_yielded"`
	QualityMultiplier float64 `json:"quality_multiplier"`
	Timestamp         int64   `json:"timestamp"`
}

// OffersGeneratedPayload is the event payload for trade.offers_generated events
type OffersGeneratedPayload struct {
	Offers        []TradeOffer `json:"offers"`
	Stage         int          `json:"stage"`
	NextRefreshAt time.Time    `json:"next_refresh_at"`
	Timestamp     int64        `json:"timestamp"`
}

// OfferAcceptedPayload is the event payload for trade.offer_accepted events
type OfferAcceptedPayload struct {
	OfferID     string  `json:"offer_id"`
	Quantity    int     `json:"quantity"`
	PricePerBud float64 `json:"price_per_bud"`
	NugsEarned  int     `json:"nugs_earned"`
	Timestamp   int64   `json:"timestamp"`
}

// OfferHaggledPayload is the event payload for trade.offer_haggled events.
// A failed haggle means the buyer walked away and the offer is gone.
type OfferHaggledPayload struct {
	OfferID   string  `json:"offer_id"`
	Succeeded bool    `json:"succeeded"`
	OldPrice  float64 `json:"old_price"`
	NewPrice  float64 `json:"new_price,omitempty"`
	Timestamp int64   `json:"timestamp"`
}

// QuestClaimedPayload is the event payload for quest.claimed events
type QuestClaimedPayload struct {
	QuestID    string `json:"quest_id"`
	RewardNugs int    `json:"reward_nugs"`
	RewardBuds int    `json:"reward_buds"`
	Timestamp  int64  `json:"timestamp"`
}

// RandomEventPayload is the event payload for random_event.started and
// random_event.ended events
type RandomEventPayload struct {
	EventID   string    `json:"event_id"`
	Name      string    `json:"name"`
	EndsAt    time.Time `json:"ends_at"`
	Timestamp int64     `json:"timestamp"`
}

// GameSavedPayload is the event payload for game.saved and game.reset events
type GameSavedPayload struct {
	Key       string `json:"key"`
	Bytes     int    `json:"bytes"`
	Manual    bool   `json:"manual"`
	Timestamp int64  `json:"timestamp"`
}
