package economy

import "time"

// Offer generation
const (
	OffersPerBatch  = 3
	RefreshCooldown = 30 * time.Second

	// HarvestsPerStage converts lifetime harvests into a progression stage
	HarvestsPerStage = 5

	BaseMinQuantity     = 5
	MinQuantityPerStage = 10
	MinQuantityCap      = 200

	BaseMaxQuantity     = 20
	MaxQuantityPerStage = 20
	MaxQuantityCap      = 400

	// Price is (BasePrice + U(0, PriceSpread) + stage*PricePerStage) * event,
	// clamped to [MinPrice, MaxOfferPrice]
	BasePrice     = 1.0
	PriceSpread   = 2.0
	PricePerStage = 0.1
	MinPrice      = 1.0
	MaxOfferPrice = 4.0
)

// Haggling
const (
	HaggleSuccessChance = 0.4
	HaggleMultiplier    = 1.2
	MaxHagglePrice      = 5.0
)

// PriceDecimals is the precision every price is rounded to
const PriceDecimals = 1
