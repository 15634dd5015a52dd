package game

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/GrowRoom_Go/internal/catalog"
	"github.com/osse101/GrowRoom_Go/internal/domain"
	"github.com/osse101/GrowRoom_Go/internal/quest"
	"github.com/osse101/GrowRoom_Go/internal/utils"
)

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

type recorder struct {
	violations []*domain.InvariantViolation
}

func (r *recorder) report(v *domain.InvariantViolation) {
	r.violations = append(r.violations, v)
}

func newTestEngine(t *testing.T, rnd utils.RandomSource) (*Engine, *recorder) {
	t.Helper()
	rec := &recorder{}
	n := 0
	e := NewEngine(catalog.Default(), rnd,
		WithInvariantReporter(rec.report),
		WithIDGenerator(func() string {
			n++
			return fmt.Sprintf("plant-%d", n)
		}),
	)
	return e, rec
}

func plantedState(t *testing.T, e *Engine) domain.GameState {
	t.Helper()
	state, out := e.PlantSeed(NewState(testNow), 0, catalog.StrainHomegrown, domain.SoilBasic, testNow)
	require.True(t, out.Accepted, out.Reason)
	return state
}

func readyState(t *testing.T, e *Engine) domain.GameState {
	t.Helper()
	state := plantedState(t, e)
	state.Slots[0].PhaseIndex = e.Catalog().LastPhaseIndex()
	state.Slots[0].ElapsedInPhase = catalog.HarvestDurationSeconds
	return state
}

func TestNewState(t *testing.T) {
	s := NewState(testNow)

	assert.Equal(t, domain.StateSchemaVersion, s.Version)
	assert.Equal(t, 100, s.Nugs)
	assert.Equal(t, 0, s.Buds)
	assert.Len(t, s.Slots, 4)
	assert.Equal(t, 0, s.FreeSlot())
	assert.Empty(t, s.Upgrades)
	assert.Nil(t, s.ActiveEvent)
	assert.Equal(t, quest.DefaultQuests(), s.Quests)
	assert.True(t, s.Settings.RandomEventsEnabled)
	assert.True(t, s.Settings.AutosaveEnabled)
	assert.True(t, s.Settings.SoundEnabled)
	assert.Equal(t, testNow, s.CreatedAt)
	assert.Equal(t, testNow, s.LastTickAt)
}

func TestPlantSeed(t *testing.T) {
	e, _ := newTestEngine(t, utils.NewSeededSource(1))
	start := NewState(testNow)

	state, out := e.PlantSeed(start, 2, catalog.StrainQuickBloom, domain.SoilLightMix, testNow)
	require.True(t, out.Accepted)
	assert.Equal(t, 80, state.Nugs)
	require.NotNil(t, state.Slots[2])
	assert.Equal(t, "plant-1", state.Slots[2].ID)
	assert.Equal(t, domain.SoilLightMix, state.Slots[2].Modifiers.SoilType)
	assert.Equal(t, 1, state.Stats.PlantsPlanted)
	assert.Nil(t, start.Slots[2], "input untouched")
}

func TestPlantSeed_Declined(t *testing.T) {
	e, rec := newTestEngine(t, utils.NewSeededSource(1))
	occupied := plantedState(t, e)
	poor := NewState(testNow)
	poor.Nugs = 5

	tests := []struct {
		name   string
		state  domain.GameState
		slot   int
		strain string
		soil   domain.SoilType
		reason string
	}{
		{"slot out of range", NewState(testNow), 9, catalog.StrainHomegrown, domain.SoilBasic, domain.ErrMsgSlotOutOfRange},
		{"negative slot", NewState(testNow), -1, catalog.StrainHomegrown, domain.SoilBasic, domain.ErrMsgSlotOutOfRange},
		{"occupied", occupied, 0, catalog.StrainHomegrown, domain.SoilBasic, domain.ErrMsgSlotOccupied},
		{"unknown strain", NewState(testNow), 0, "mystery", domain.SoilBasic, domain.ErrMsgUnknownStrain},
		{"unknown soil", NewState(testNow), 0, catalog.StrainHomegrown, "gravel", domain.ErrMsgUnknownSoil},
		{"too poor", poor, 0, catalog.StrainHomegrown, domain.SoilBasic, domain.ErrMsgInsufficientFunds},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := tt.state.Clone()
			state, out := e.PlantSeed(tt.state, tt.slot, tt.strain, tt.soil, testNow)
			assert.False(t, out.Accepted)
			assert.Equal(t, tt.reason, out.Reason)
			assert.Error(t, out.Err)
			assert.Equal(t, before, state)
		})
	}
	assert.Empty(t, rec.violations)
}

func TestRemovePlant(t *testing.T) {
	e, _ := newTestEngine(t, utils.NewSeededSource(1))
	state := plantedState(t, e)

	state, out := e.RemovePlant(state, 0)
	require.True(t, out.Accepted)
	assert.Nil(t, state.Slots[0])

	_, out = e.RemovePlant(state, 0)
	assert.Equal(t, domain.ErrMsgSlotEmpty, out.Reason)
}

func TestUpdatePlant(t *testing.T) {
	e, _ := newTestEngine(t, utils.NewSeededSource(1))
	state := plantedState(t, e)
	state.Slots[0].Modifiers.FertilizerApplied = true

	next, out := e.UpdatePlant(state, 0, 500, 1)
	require.True(t, out.Accepted)
	assert.Equal(t, 1, next.Slots[0].PhaseIndex)
	assert.Equal(t, float64(catalog.GerminationDurationSeconds), next.Slots[0].ElapsedInPhase, "clamped")
	assert.False(t, next.Slots[0].Modifiers.FertilizerApplied)

	_, out = e.UpdatePlant(next, 0, 10, 0)
	assert.Equal(t, domain.ErrMsgInvalidPhase, out.Reason, "phase never goes back")

	_, out = e.UpdatePlant(next, 0, 10, 6)
	assert.Equal(t, domain.ErrMsgInvalidPhase, out.Reason)

	_, out = e.UpdatePlant(next, 0, -1, 1)
	assert.Equal(t, domain.ErrMsgInvalidAmount, out.Reason)
}

func TestWater(t *testing.T) {
	e, _ := newTestEngine(t, utils.NewSeededSource(1))
	state := plantedState(t, e)

	next, out := e.Water(state, 0, testNow)
	require.True(t, out.Accepted)
	assert.Equal(t, state.Nugs-5, next.Nugs)
	assert.Equal(t, 1, next.Slots[0].Modifiers.WaterStacks)
	q, _ := quest.Find(next.Quests, quest.QuestWater25)
	assert.Equal(t, 1, q.Progress)

	again, out := e.Water(next, 0, testNow.Add(time.Second))
	assert.False(t, out.Accepted)
	assert.Equal(t, domain.ErrMsgOnCooldown, out.Reason)
	assert.Equal(t, next, again)

	elig := e.CanWater(next, 0, testNow.Add(time.Second))
	assert.Equal(t, 14*time.Second, elig.CooldownRemaining)

	_, out = e.Water(next, 3, testNow)
	assert.Equal(t, domain.ErrMsgSlotEmpty, out.Reason)
}

func TestFertilize(t *testing.T) {
	e, _ := newTestEngine(t, utils.NewSeededSource(1))
	state := plantedState(t, e)

	next, out := e.Fertilize(state, 0, testNow)
	require.True(t, out.Accepted)
	assert.Equal(t, state.Nugs-20, next.Nugs)
	assert.Equal(t, 1.25, next.Slots[0].Modifiers.QualityMultiplier)

	_, out = e.Fertilize(next, 0, testNow.Add(time.Hour))
	assert.Equal(t, domain.ErrMsgAlreadyFertilized, out.Reason)
	assert.False(t, e.CanFertilize(next, 0, testNow).CanPerform)
}

func TestHarvest(t *testing.T) {
	e, rec := newTestEngine(t, utils.NewSeededSource(1))
	state := readyState(t, e)

	next, yield, out := e.Harvest(state, 0)
	require.True(t, out.Accepted)
	assert.Equal(t, 10, yield.BudsYielded)
	assert.Equal(t, 10, next.Buds)
	assert.Nil(t, next.Slots[0])
	assert.Equal(t, 1, next.Stats.HarvestCount)
	assert.Equal(t, 10, next.Stats.BestHarvest)
	q, _ := quest.Find(next.Quests, quest.QuestHarvest1)
	assert.Equal(t, 1, q.Progress)
	assert.Empty(t, rec.violations)
}

func TestHarvest_NotReadyIsInvariantViolation(t *testing.T) {
	e, rec := newTestEngine(t, utils.NewSeededSource(1))
	state := plantedState(t, e)

	next, _, out := e.Harvest(state, 0)
	assert.False(t, out.Accepted)
	assert.Equal(t, domain.ErrMsgNotReady, out.Reason)
	assert.ErrorIs(t, out.Err, domain.ErrInvalidState)
	assert.Equal(t, state, next)

	require.Len(t, rec.violations, 1)
	assert.Equal(t, OpHarvest, rec.violations[0].Op)
}

func TestHarvest_PanicReporter(t *testing.T) {
	e := NewEngine(catalog.Default(), utils.NewSeededSource(1), WithInvariantReporter(PanicReporter))
	state, _ := e.PlantSeed(NewState(testNow), 0, catalog.StrainHomegrown, domain.SoilBasic, testNow)

	assert.Panics(t, func() { e.Harvest(state, 0) })
}

func TestTick(t *testing.T) {
	e, _ := newTestEngine(t, utils.NewSeededSource(1))
	state := plantedState(t, e)

	// Three 20s ticks cross the 60s seed phase exactly once
	var result TickResult
	for i := 1; i <= 3; i++ {
		state, result = e.Tick(state, testNow.Add(time.Duration(i)*20*time.Second))
	}
	assert.Equal(t, 1, state.Slots[0].PhaseIndex)
	assert.Equal(t, 0.0, state.Slots[0].ElapsedInPhase)
	require.Len(t, result.Advances, 1)
	assert.Equal(t, PhaseAdvance{Slot: 0, PlantID: "plant-1", FromPhase: 0, ToPhase: 1}, result.Advances[0])
	assert.True(t, result.Changed())
}

func TestTick_NonPositiveDelta(t *testing.T) {
	e, _ := newTestEngine(t, utils.NewSeededSource(1))
	state := plantedState(t, e)

	next, result := e.Tick(state, testNow)
	assert.Equal(t, state, next)
	assert.False(t, result.Changed())

	next, _ = e.Tick(state, testNow.Add(-time.Minute))
	assert.Equal(t, state, next)
}

func TestTick_ZeroLastTickInitializes(t *testing.T) {
	e, _ := newTestEngine(t, utils.NewSeededSource(1))
	state := plantedState(t, e)
	state.LastTickAt = time.Time{}

	next, result := e.Tick(state, testNow.Add(time.Hour))
	assert.Equal(t, testNow.Add(time.Hour), next.LastTickAt)
	assert.Equal(t, 0.0, next.Slots[0].ElapsedInPhase)
	assert.False(t, result.Changed())
}

func TestTick_CatchesUpInSteps(t *testing.T) {
	e, _ := newTestEngine(t, utils.NewSeededSource(1))
	state := plantedState(t, e)
	later := testNow.Add(10 * time.Hour)

	next, result := e.Tick(state, later)
	assert.Equal(t, MaxTickDelta, result.Delta)
	assert.Equal(t, testNow.Add(MaxTickDelta), next.LastTickAt)
	assert.Equal(t, 1, next.Slots[0].PhaseIndex)

	for i := 0; i < 9; i++ {
		next, _ = e.Tick(next, later)
	}
	assert.Equal(t, later, next.LastTickAt)
	assert.True(t, e.Growth().IsReady(next.Slots[0], nil))
}

func TestTick_ReadyPlantIsNotAChange(t *testing.T) {
	e, _ := newTestEngine(t, utils.NewSeededSource(1))
	state := plantedState(t, e)
	later := testNow.Add(10 * time.Hour)
	for i := 0; i < 10; i++ {
		state, _ = e.Tick(state, later)
	}
	require.True(t, state.Slots[0].HarvestReady)

	next, result := e.Tick(state, later.Add(5*time.Second))
	assert.Zero(t, result.PlantsGrown)
	assert.False(t, result.Changed())
	assert.Equal(t, state.Slots[0], next.Slots[0])
}

func TestTick_ExpiresEventAfterGrowth(t *testing.T) {
	e, _ := newTestEngine(t, &utils.ScriptedSource{Ints: []int{0}})
	state := plantedState(t, e)

	state, out := e.TriggerEvent(state, testNow)
	require.True(t, out.Accepted)
	require.NotNil(t, state.ActiveEvent)

	// Growth spurt halves the 60s seed phase
	next, result := e.Tick(state, testNow.Add(30*time.Second))
	assert.Equal(t, 1, next.Slots[0].PhaseIndex)
	assert.NotNil(t, next.ActiveEvent)
	assert.Nil(t, result.ExpiredEvent)

	next, result = e.Tick(next, testNow.Add(60*time.Second))
	assert.Nil(t, next.ActiveEvent)
	require.NotNil(t, result.ExpiredEvent)
	assert.Equal(t, "growth_spurt", result.ExpiredEvent.ID)
}

func TestTick_CorruptPlantReported(t *testing.T) {
	e, rec := newTestEngine(t, utils.NewSeededSource(1))
	state := plantedState(t, e)
	state.Slots[0].StrainID = "deleted_strain"

	next, _ := e.Tick(state, testNow.Add(time.Second))
	assert.Equal(t, state.Slots[0], next.Slots[0])
	require.Len(t, rec.violations, 1)
	assert.ErrorIs(t, rec.violations[0], domain.ErrUnknownStrain)
}

func TestTrade(t *testing.T) {
	e, rec := newTestEngine(t, utils.NewSeededSource(5))
	state := NewState(testNow)
	state.Buds = 1000

	state, out := e.GenerateOffers(state, testNow)
	require.True(t, out.Accepted)
	require.Len(t, state.Trade.Offers, 3)

	_, out = e.GenerateOffers(state, testNow.Add(29*time.Second))
	assert.Equal(t, domain.ErrMsgRefreshOnCooldown, out.Reason)

	offer := state.Trade.Offers[0]
	sold, result, out := e.AcceptOffer(state, offer.ID)
	require.True(t, out.Accepted)
	assert.Equal(t, offer.Total(), result.NugsEarned)
	assert.Equal(t, 1000-offer.Quantity, sold.Buds)
	assert.Len(t, sold.Trade.Offers, 2)

	_, _, out = e.HaggleOffer(sold, "nope")
	assert.Equal(t, domain.ErrMsgOfferNotFound, out.Reason)
	assert.Empty(t, rec.violations, "haggling a stale offer is a soft failure")

	haggled, hr, out := e.HaggleOffer(sold, sold.Trade.Offers[0].ID)
	require.True(t, out.Accepted)
	if hr.Succeeded {
		assert.Len(t, haggled.Trade.Offers, 2)
	} else {
		assert.Len(t, haggled.Trade.Offers, 1)
	}
}

func TestAcceptOffer_Violations(t *testing.T) {
	e, rec := newTestEngine(t, utils.NewSeededSource(5))
	state, _ := e.GenerateOffers(NewState(testNow), testNow)

	same, _, out := e.AcceptOffer(state, state.Trade.Offers[0].ID)
	assert.Equal(t, domain.ErrMsgInsufficientBuds, out.Reason)
	assert.Equal(t, state, same)
	assert.Empty(t, rec.violations)

	_, _, out = e.AcceptOffer(state, "ghost")
	assert.Equal(t, domain.ErrMsgOfferNotFound, out.Reason)
	require.Len(t, rec.violations, 1)
	assert.Equal(t, OpAcceptOffer, rec.violations[0].Op)
}

func TestClaimQuest(t *testing.T) {
	e, _ := newTestEngine(t, utils.NewSeededSource(1))
	state := readyState(t, e)
	state, _, _ = e.Harvest(state, 0)
	nugs := state.Nugs

	next, result, out := e.ClaimQuest(state, quest.QuestHarvest1)
	require.True(t, out.Accepted)
	assert.Equal(t, 50, result.Reward.Nugs)
	assert.Equal(t, nugs+50, next.Nugs)
	assert.Equal(t, 1, next.Stats.QuestsClaimed)

	_, _, out = e.ClaimQuest(next, quest.QuestHarvest1)
	assert.Equal(t, domain.ErrMsgQuestAlreadyClaimed, out.Reason)

	_, _, out = e.ClaimQuest(next, quest.QuestHarvest10)
	assert.Equal(t, domain.ErrMsgQuestIncomplete, out.Reason)
}

func TestTriggerEvent(t *testing.T) {
	e, _ := newTestEngine(t, &utils.ScriptedSource{Ints: []int{1, 2}})
	state := NewState(testNow)

	state, out := e.TriggerEvent(state, testNow)
	require.True(t, out.Accepted)
	assert.Equal(t, "market_boom", state.ActiveEvent.ID)

	state, out = e.TriggerEvent(state, testNow.Add(10*time.Second))
	require.True(t, out.Accepted)
	assert.Equal(t, "bulk_buyers", state.ActiveEvent.ID, "last trigger wins")
	assert.Equal(t, 2, state.Stats.EventsTriggered)

	state.Settings.RandomEventsEnabled = false
	same, out := e.TriggerEvent(state, testNow)
	assert.Equal(t, domain.ErrMsgEventsDisabled, out.Reason)
	assert.Equal(t, state, same)
}

func TestMaybeTriggerEvent(t *testing.T) {
	e, _ := newTestEngine(t, utils.NewScriptedSource(0.9))
	state := NewState(testNow)

	next, out := e.MaybeTriggerEvent(state, testNow, 0.25)
	assert.True(t, out.Accepted)
	assert.Nil(t, next.ActiveEvent)
}

func TestTickEvent(t *testing.T) {
	e, _ := newTestEngine(t, &utils.ScriptedSource{Ints: []int{0}})
	state, _ := e.TriggerEvent(NewState(testNow), testNow)

	kept, out := e.TickEvent(state, testNow.Add(59*time.Second))
	assert.True(t, out.Accepted)
	assert.NotNil(t, kept.ActiveEvent)

	cleared, _ := e.TickEvent(state, testNow.Add(60*time.Second))
	assert.Nil(t, cleared.ActiveEvent)
	assert.NotNil(t, state.ActiveEvent, "input untouched")
}

func TestWallet(t *testing.T) {
	e, _ := newTestEngine(t, utils.NewSeededSource(1))
	state := NewState(testNow)

	state, out := e.AddNugs(state, 50)
	require.True(t, out.Accepted)
	assert.Equal(t, 150, state.Nugs)

	state, out = e.SpendNugs(state, 150)
	require.True(t, out.Accepted)
	assert.Equal(t, 0, state.Nugs)

	_, out = e.SpendNugs(state, 1)
	assert.Equal(t, domain.ErrMsgInsufficientFunds, out.Reason)

	state, out = e.AddBuds(state, 3)
	require.True(t, out.Accepted)
	_, out = e.SpendBuds(state, 4)
	assert.Equal(t, domain.ErrMsgInsufficientBuds, out.Reason)
	state, out = e.SpendBuds(state, 3)
	require.True(t, out.Accepted)
	assert.Equal(t, 0, state.Buds)

	for _, op := range []func(domain.GameState, int) (domain.GameState, Outcome){e.AddNugs, e.SpendNugs, e.AddBuds, e.SpendBuds} {
		_, out = op(state, 0)
		assert.Equal(t, domain.ErrMsgInvalidAmount, out.Reason)
	}
}

func TestUpgradesAndSlots(t *testing.T) {
	e, _ := newTestEngine(t, utils.NewSeededSource(1))
	state := NewState(testNow)
	state.Upgrades = nil

	state, out := e.UpgradeLevel(state, "lamp")
	require.True(t, out.Accepted)
	state, _ = e.UpgradeLevel(state, "lamp")
	assert.Equal(t, 2, state.Upgrades["lamp"])

	_, out = e.UpgradeLevel(state, "  ")
	assert.Equal(t, domain.ErrMsgInvalidUpgrade, out.Reason)

	state, out = e.AddSlot(state)
	require.True(t, out.Accepted)
	assert.Len(t, state.Slots, 5)
	assert.Nil(t, state.Slots[4])
}

func TestUpdateSettings(t *testing.T) {
	e, _ := newTestEngine(t, utils.NewSeededSource(1))
	state, out := e.UpdateSettings(NewState(testNow), domain.Settings{SoundEnabled: true})
	require.True(t, out.Accepted)
	assert.False(t, state.Settings.AutosaveEnabled)
	assert.True(t, state.Settings.SoundEnabled)
}
