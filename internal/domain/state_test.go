package domain

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleState() GameState {
	watered := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	return GameState{
		Version: StateSchemaVersion,
		Nugs:    100,
		Buds:    40,
		Slots: []*Plant{
			{
				ID:       "p1",
				StrainID: "northern_lights",
				Modifiers: PlantModifiers{
					SoilType:          SoilBasic,
					LastWaterTime:     &watered,
					QualityMultiplier: 1,
				},
			},
			nil,
		},
		Upgrades: map[string]int{"lamp": 1},
		Trade: TradeState{
			Offers: []TradeOffer{{ID: "o1", Quantity: 10, PricePerBud: 2.5}},
		},
		ActiveEvent: &GameEvent{ID: "e1", Effects: EventEffects{GrowthMultiplier: Float(0.5)}},
		Quests:      []Quest{{ID: "q1", Type: QuestTypeHarvest, Goal: 1}},
	}
}

func TestGameState_CloneIsDeep(t *testing.T) {
	orig := sampleState()
	c := orig.Clone()
	require.Equal(t, orig, c)

	c.Slots[0].PhaseIndex = 3
	*c.Slots[0].Modifiers.LastWaterTime = time.Time{}
	c.Upgrades["lamp"] = 9
	c.Trade.Offers[0].PricePerBud = 4
	*c.ActiveEvent.Effects.GrowthMultiplier = 2
	c.Quests[0].Progress = 1

	assert.Equal(t, 0, orig.Slots[0].PhaseIndex)
	assert.False(t, orig.Slots[0].Modifiers.LastWaterTime.IsZero())
	assert.Equal(t, 1, orig.Upgrades["lamp"])
	assert.Equal(t, 2.5, orig.Trade.Offers[0].PricePerBud)
	assert.Equal(t, 0.5, orig.ActiveEvent.GrowthMultiplier())
	assert.Equal(t, 0, orig.Quests[0].Progress)
}

func TestGameState_PlantAtAndFreeSlot(t *testing.T) {
	s := sampleState()

	p, ok := s.PlantAt(0)
	assert.True(t, ok)
	assert.Equal(t, "p1", p.ID)

	p, ok = s.PlantAt(1)
	assert.True(t, ok)
	assert.Nil(t, p)

	_, ok = s.PlantAt(2)
	assert.False(t, ok)
	_, ok = s.PlantAt(-1)
	assert.False(t, ok)

	assert.Equal(t, 1, s.FreeSlot())
	s.Slots[1] = &Plant{ID: "p2"}
	assert.Equal(t, -1, s.FreeSlot())
}

func TestGameEvent_MultipliersDefaultToIdentity(t *testing.T) {
	var none *GameEvent
	assert.Equal(t, 1.0, none.PriceMultiplier())
	assert.Equal(t, 1.0, none.QuantityMultiplier())
	assert.Equal(t, 1.0, none.GrowthMultiplier())

	partial := &GameEvent{Effects: EventEffects{PriceMultiplier: Float(1.5)}}
	assert.Equal(t, 1.5, partial.PriceMultiplier())
	assert.Equal(t, 1.0, partial.QuantityMultiplier())
	assert.Equal(t, 1.0, partial.GrowthMultiplier())
}

func TestTradeOffer_Total(t *testing.T) {
	tests := []struct {
		quantity int
		price    float64
		want     int
	}{
		{10, 2.3, 23},
		{15, 2.3, 34}, // 34.5 floors
		{3, 1.1, 3},
		{7, 0.7, 4},
		{200, 4.0, 800},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%dx%.1f", tt.quantity, tt.price), func(t *testing.T) {
			assert.Equal(t, tt.want, TradeOffer{Quantity: tt.quantity, PricePerBud: tt.price}.Total())
		})
	}
}

func TestReasonFor(t *testing.T) {
	assert.Equal(t, "", ReasonFor(nil))
	assert.Equal(t, "insufficient funds", ReasonFor(ErrInsufficientFunds))
	assert.Equal(t, "cooling down", ReasonFor(fmt.Errorf("%w: 3s remaining", ErrOnCooldown)))
	assert.Equal(t, "refresh cooling down", ReasonFor(fmt.Errorf("%w: 10s", ErrRefreshOnCooldown)))
	assert.Equal(t, ReasonInternal, ReasonFor(fmt.Errorf("boom")))
}

func TestInvariantViolation_Unwrap(t *testing.T) {
	err := &InvariantViolation{Op: "harvest", Err: ErrNotReady}
	assert.ErrorIs(t, err, ErrNotReady)
	assert.Contains(t, err.Error(), "harvest")
}
