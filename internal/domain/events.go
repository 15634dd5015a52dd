package domain

// Event type constants used for event bus subscriptions and metrics tracking.
// They represent things that happened in the simulation after a transition
// was accepted.
//
// Event types follow the pattern: <entity>.<action> (e.g., "plant.harvested")
const (
	// EventTypePlantPlanted is published when a seed goes into a slot
	EventTypePlantPlanted = "plant.planted"

	// EventTypePlantRemoved is published when a plant is pulled without harvesting
	EventTypePlantRemoved = "plant.removed"

	// EventTypePlantWatered is published after a successful watering
	EventTypePlantWatered = "plant.watered"

	// EventTypePlantFertilized is published after a successful fertilizer application
	EventTypePlantFertilized = "plant.fertilized"

	// EventTypePhaseAdvanced is published when a tick moves a plant to its next phase
	EventTypePhaseAdvanced = "plant.phase_advanced"

	// EventTypePlantHarvested is published when a ready plant is harvested
	EventTypePlantHarvested = "plant.harvested"

	// EventTypeOffersGenerated is published when a new batch of trade offers is created
	EventTypeOffersGenerated = "trade.offers_generated"

	// EventTypeOfferAccepted is published when the player sells buds to an offer
	EventTypeOfferAccepted = "trade.offer_accepted"

	// EventTypeOfferHaggled is published for every haggle attempt, won or lost
	EventTypeOfferHaggled = "trade.offer_haggled"

	// EventTypeQuestClaimed is published when a quest reward is collected
	EventTypeQuestClaimed = "quest.claimed"

	// EventTypeRandomEventStarted is published when a random event becomes active
	EventTypeRandomEventStarted = "random_event.started"

	// EventTypeRandomEventEnded is published when the active random event expires
	EventTypeRandomEventEnded = "random_event.ended"

	// EventTypeGameSaved is published after the state blob is persisted
	EventTypeGameSaved = "game.saved"

	// EventTypeGameReset is published after the state is wiped
	EventTypeGameReset = "game.reset"
)
