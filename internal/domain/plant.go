package domain

import (
	"encoding/json"
	"time"
)

// SoilType is the growing medium a plant was potted in
type SoilType string

const (
	SoilBasic    SoilType = "basic"
	SoilLightMix SoilType = "light-mix"
	SoilAllMix   SoilType = "all-mix"
)

// SoilTypes lists every soil the engine knows, in display order
var SoilTypes = []SoilType{SoilBasic, SoilLightMix, SoilAllMix}

// Valid reports whether s is a known soil type
func (s SoilType) Valid() bool {
	for _, known := range SoilTypes {
		if s == known {
			return true
		}
	}
	return false
}

// PlantModifiers holds the care history of a single plant
type PlantModifiers struct {
	WaterStacks        int        `json:"water_stacks"`
	FertilizerApplied  bool       `json:"fertilizer_applied"` // cleared on phase advance
	SoilType           SoilType   `json:"soil_type"`
	LastWaterTime      *time.Time `json:"last_water_time,omitempty"`
	LastFertilizerTime *time.Time `json:"last_fertilizer_time,omitempty"`
	QualityMultiplier  float64    `json:"quality_multiplier"`
}

// Plant is the occupant of one growth slot
type Plant struct {
	ID             string         `json:"id"`
	StrainID       string         `json:"strain_id"`
	PhaseIndex     int            `json:"phase_index"`
	ElapsedInPhase float64        `json:"elapsed_in_phase"` // seconds
	PlantedAt      time.Time      `json:"planted_at"`
	Modifiers      PlantModifiers `json:"modifiers"`
	// HarvestReady latches once the last phase completes. Later events that
	// stretch or shrink the phase do not clear it.
	HarvestReady   bool           `json:"harvest_ready,omitempty"`
}

// Clone returns a deep copy of the plant. Clone of nil is nil.
func (p *Plant) Clone() *Plant {
	if p == nil {
		return nil
	}
	c := *p
	c.Modifiers.LastWaterTime = cloneTime(p.Modifiers.LastWaterTime)
	c.Modifiers.LastFertilizerTime = cloneTime(p.Modifiers.LastFertilizerTime)
	return &c
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}

// ActionEligibility answers "can the player water/fertilize this plant right now"
type ActionEligibility struct {
	CanPerform        bool          `json:"can_perform"`
	Reason            string        `json:"reason,omitempty"`
	Cost              int           `json:"cost"`
	CooldownRemaining time.Duration `json:"-"`
	CooldownTotal     time.Duration `json:"-"`
}

type eligibilityJSON struct {
	CanPerform          bool   `json:"can_perform"`
	Reason              string `json:"reason,omitempty"`
	Cost                int    `json:"cost"`
	CooldownRemainingMs int64  `json:"cooldown_remaining_ms"`
	CooldownTotalMs     int64  `json:"cooldown_total_ms"`
}

// MarshalJSON reports cooldowns in whole milliseconds
func (a ActionEligibility) MarshalJSON() ([]byte, error) {
	return json.Marshal(eligibilityJSON{
		CanPerform:          a.CanPerform,
		Reason:              a.Reason,
		Cost:                a.Cost,
		CooldownRemainingMs: a.CooldownRemaining.Milliseconds(),
		CooldownTotalMs:     a.CooldownTotal.Milliseconds(),
	})
}

// UnmarshalJSON reads the millisecond form written by MarshalJSON
func (a *ActionEligibility) UnmarshalJSON(data []byte) error {
	var raw eligibilityJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*a = ActionEligibility{
		CanPerform:        raw.CanPerform,
		Reason:            raw.Reason,
		Cost:              raw.Cost,
		CooldownRemaining: time.Duration(raw.CooldownRemainingMs) * time.Millisecond,
		CooldownTotal:     time.Duration(raw.CooldownTotalMs) * time.Millisecond,
	}
	return nil
}

// HarvestYield is what a harvest-ready plant produces
type HarvestYield struct {
	BudsYielded       int     `json:"buds_yielded"`
	QualityMultiplier float64 `json:"quality_multiplier"`
}
