package game

import "time"

// MaxTickDelta caps how much time one Tick may apply
const MaxTickDelta = time.Hour

// Operation names, used for invariant reports and logs
const (
	OpPlantSeed      = "plant_seed"
	OpRemovePlant    = "remove_plant"
	OpUpdatePlant    = "update_plant"
	OpWater          = "water"
	OpFertilize      = "fertilize"
	OpHarvest        = "harvest"
	OpGenerateOffers = "generate_offers"
	OpAcceptOffer    = "accept_offer"
	OpHaggleOffer    = "haggle_offer"
	OpClaimQuest     = "claim_quest"
	OpTriggerEvent   = "trigger_event"
	OpTickEvent      = "tick_event"
	OpAddNugs        = "add_nugs"
	OpSpendNugs      = "spend_nugs"
	OpAddBuds        = "add_buds"
	OpSpendBuds      = "spend_buds"
	OpUpgradeLevel   = "upgrade_level"
	OpAddSlot        = "add_slot"
	OpUpdateSettings = "update_settings"
	OpTick           = "tick"
)

// Log messages
const (
	LogMsgInvariantViolation = "Engine invariant violated"
)
