package gameevent

import "time"

// EventDuration is how long a triggered event stays active
const EventDuration = 60 * time.Second

// AutoEventChance is the probability an automatic trigger fires
const AutoEventChance = 0.25

// Preset IDs
const (
	PresetGrowthSpurt = "growth_spurt"
	PresetMarketBoom  = "market_boom"
	PresetBulkBuyers  = "bulk_buyers"
	PresetDrought     = "drought"
)
