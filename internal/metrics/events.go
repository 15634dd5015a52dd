package metrics

import (
	"context"
	"strconv"

	"github.com/osse101/GrowRoom_Go/internal/domain"
	"github.com/osse101/GrowRoom_Go/internal/event"
	"github.com/osse101/GrowRoom_Go/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all simulation events
func (e *EventMetricsCollector) Register(bus event.Bus) {
	for _, eventType := range event.AllTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}
}

// HandleEvent processes events and updates metrics.
// Undecodable payloads are logged and skipped, never returned as errors.
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	var err error
	switch evt.Type {
	case event.PlantPlanted:
		var p domain.PlantPayload
		if p, err = event.DecodePayload[domain.PlantPayload](evt.Payload); err == nil {
			PlantsPlanted.WithLabelValues(p.StrainID).Inc()
		}

	case event.PlantWatered:
		CareActions.WithLabelValues(ActionWater).Inc()

	case event.PlantFertilized:
		CareActions.WithLabelValues(ActionFertilize).Inc()

	case event.PhaseAdvanced:
		var p domain.PhaseAdvancedPayload
		if p, err = event.DecodePayload[domain.PhaseAdvancedPayload](evt.Payload); err == nil {
			PhaseAdvances.WithLabelValues(strconv.Itoa(p.PhaseIndex)).Inc()
		}

	case event.PlantHarvested:
		var p domain.PlantHarvestedPayload
		if p, err = event.DecodePayload[domain.PlantHarvestedPayload](evt.Payload); err == nil {
			PlantsHarvested.WithLabelValues(p.StrainID).Inc()
			BudsHarvested.Add(float64(p.BudsYielded))
		}

	case event.OfferAccepted:
		var p domain.OfferAcceptedPayload
		if p, err = event.DecodePayload[domain.OfferAcceptedPayload](evt.Payload); err == nil {
			BudsSold.Add(float64(p.Quantity))
			NugsEarned.Add(float64(p.NugsEarned))
		}

	case event.OfferHaggled:
		var p domain.OfferHaggledPayload
		if p, err = event.DecodePayload[domain.OfferHaggledPayload](evt.Payload); err == nil {
			result := ResultLost
			if p.Succeeded {
				result = ResultWon
			}
			Haggles.WithLabelValues(result).Inc()
		}

	case event.QuestClaimed:
		var p domain.QuestClaimedPayload
		if p, err = event.DecodePayload[domain.QuestClaimedPayload](evt.Payload); err == nil {
			QuestsClaimed.WithLabelValues(p.QuestID).Inc()
		}

	case event.RandomEventStart, event.RandomEventEnd:
		var p domain.RandomEventPayload
		if p, err = event.DecodePayload[domain.RandomEventPayload](evt.Payload); err == nil {
			state := StateStarted
			if evt.Type == event.RandomEventEnd {
				state = StateEnded
			}
			RandomEvents.WithLabelValues(p.EventID, state).Inc()
		}

	case event.GameSaved:
		var p domain.GameSavedPayload
		if p, err = event.DecodePayload[domain.GameSavedPayload](evt.Payload); err == nil {
			source, _ := evt.GetMetadataValue(event.MetadataKeySource).(string)
			Saves.WithLabelValues(source).Inc()
			SaveBytes.Set(float64(p.Bytes))
		}
	}

	if err != nil {
		log.Debug(LogMsgEventPayloadInvalid, "type", evt.Type, "error", err)
		return nil
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}
