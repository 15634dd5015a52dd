package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/GrowRoom_Go/internal/domain"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata interface{}

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata"`
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if m, ok := e.Metadata.(map[string]interface{}); ok {
		return m[key]
	}
	return nil
}

// Simulation event types
const (
	PlantPlanted     Type = domain.EventTypePlantPlanted
	PlantRemoved     Type = domain.EventTypePlantRemoved
	PlantWatered     Type = domain.EventTypePlantWatered
	PlantFertilized  Type = domain.EventTypePlantFertilized
	PhaseAdvanced    Type = domain.EventTypePhaseAdvanced
	PlantHarvested   Type = domain.EventTypePlantHarvested
	OffersGenerated  Type = domain.EventTypeOffersGenerated
	OfferAccepted    Type = domain.EventTypeOfferAccepted
	OfferHaggled     Type = domain.EventTypeOfferHaggled
	QuestClaimed     Type = domain.EventTypeQuestClaimed
	RandomEventStart Type = domain.EventTypeRandomEventStarted
	RandomEventEnd   Type = domain.EventTypeRandomEventEnded
	GameSaved        Type = domain.EventTypeGameSaved
	GameReset        Type = domain.EventTypeGameReset
)

// AllTypes lists every simulation event type
var AllTypes = []Type{
	PlantPlanted, PlantRemoved, PlantWatered, PlantFertilized, PhaseAdvanced, PlantHarvested,
	OffersGenerated, OfferAccepted, OfferHaggled, QuestClaimed,
	RandomEventStart, RandomEventEnd, GameSaved, GameReset,
}

// Type-safe event constructors

// NewPlantEvent creates a planted/removed/watered/fertilized event
func NewPlantEvent(eventType Type, slot int, plant *domain.Plant, cost int, now time.Time) Event {
	payload := domain.PlantPayload{Slot: slot, Cost: cost, Timestamp: now.Unix()}
	if plant != nil {
		payload.PlantID = plant.ID
		payload.StrainID = plant.StrainID
	}
	return Event{
		Version: EventSchemaVersion,
		Type:    eventType,
		Payload: payload,
	}
}

// NewPhaseAdvancedEvent creates a phase advanced event
func NewPhaseAdvancedEvent(slot int, plant *domain.Plant, now time.Time) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    PhaseAdvanced,
		Payload: domain.PhaseAdvancedPayload{
			Slot:       slot,
			PlantID:    plant.ID,
			StrainID:   plant.StrainID,
			PhaseIndex: plant.PhaseIndex,
			Timestamp:  now.Unix(),
		},
	}
}

// NewPlantHarvestedEvent creates a harvest event
func NewPlantHarvestedEvent(slot int, plant *domain.Plant, yield domain.HarvestYield, now time.Time) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    PlantHarvested,
		Payload: domain.PlantHarvestedPayload{
			Slot:              slot,
			PlantID:           plant.ID,
			StrainID:          plant.StrainID,
			BudsYielded:       yield.BudsYielded,
			QualityMultiplier: yield.QualityMultiplier,
			Timestamp:         now.Unix(),
		},
	}
}

// NewOffersGeneratedEvent creates an offers generated event
func NewOffersGeneratedEvent(trade domain.TradeState, stage int, now time.Time) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    OffersGenerated,
		Payload: domain.OffersGeneratedPayload{
			Offers:        trade.Offers,
			Stage:         stage,
			NextRefreshAt: trade.NextRefreshAt,
			Timestamp:     now.Unix(),
		},
	}
}

// NewOfferAcceptedEvent creates a sale event
func NewOfferAcceptedEvent(offer domain.TradeOffer, nugsEarned int, now time.Time) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    OfferAccepted,
		Payload: domain.OfferAcceptedPayload{
			OfferID:     offer.ID,
			Quantity:    offer.Quantity,
			PricePerBud: offer.PricePerBud,
			NugsEarned:  nugsEarned,
			Timestamp:   now.Unix(),
		},
	}
}

// NewOfferHaggledEvent creates a haggle event
func NewOfferHaggledEvent(offerID string, succeeded bool, oldPrice, newPrice float64, now time.Time) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    OfferHaggled,
		Payload: domain.OfferHaggledPayload{
			OfferID:   offerID,
			Succeeded: succeeded,
			OldPrice:  oldPrice,
			NewPrice:  newPrice,
			Timestamp: now.Unix(),
		},
	}
}

// NewQuestClaimedEvent creates a quest claim event
func NewQuestClaimedEvent(questID string, reward domain.QuestReward, now time.Time) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    QuestClaimed,
		Payload: domain.QuestClaimedPayload{
			QuestID:    questID,
			RewardNugs: reward.Nugs,
			RewardBuds: reward.Buds,
			Timestamp:  now.Unix(),
		},
	}
}

// NewRandomEvent creates a random_event.started or random_event.ended event
func NewRandomEvent(eventType Type, ge *domain.GameEvent, now time.Time) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    eventType,
		Payload: domain.RandomEventPayload{
			EventID:   ge.ID,
			Name:      ge.Name,
			EndsAt:    ge.EndsAt,
			Timestamp: now.Unix(),
		},
	}
}

// NewGameSavedEvent creates a save or reset event
func NewGameSavedEvent(eventType Type, key string, size int, manual bool, now time.Time) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    eventType,
		Payload: domain.GameSavedPayload{
			Key:       key,
			Bytes:     size,
			Manual:    manual,
			Timestamp: now.Unix(),
		},
		Metadata: map[string]interface{}{
			MetadataKeySource: sourceFor(manual),
		},
	}
}

func sourceFor(manual bool) string {
	if manual {
		return SourceManual
	}
	return SourceAuto
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish runs every subscriber of the event type synchronously and joins their errors
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers := append([]Handler(nil), b.handlers[event.Type]...)
	b.mu.RUnlock()

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}
	return nil
}

// Subscribe registers a handler for an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
