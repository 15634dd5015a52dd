package growth

import (
	"time"

	"github.com/osse101/GrowRoom_Go/internal/domain"
)

// Care policy
const (
	WaterCost     = 5
	WaterCooldown = 15 * time.Second

	FertilizerCost     = 20
	FertilizerCooldown = 30 * time.Second

	// FertilizerQualityStep is added to the quality multiplier per application,
	// capped at MaxQualityMultiplier
	FertilizerQualityStep = 0.25
	MaxQualityMultiplier  = 2.0
	BaseQualityMultiplier = 1.0
)

// MinYield is the floor on buds produced by any harvest
const MinYield = 1

// soilMultipliers scales phase duration per soil type. Every domain.SoilType
// must have an entry.
var soilMultipliers = map[domain.SoilType]float64{
	domain.SoilBasic:    1.0,
	domain.SoilLightMix: 0.9,
	domain.SoilAllMix:   1.0,
}
