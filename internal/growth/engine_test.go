package growth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/GrowRoom_Go/internal/catalog"
	"github.com/osse101/GrowRoom_Go/internal/domain"
)

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestPlant(t *testing.T, e *Engine, strainID string, soil domain.SoilType) *domain.Plant {
	t.Helper()
	p, err := e.NewPlant("p1", strainID, soil, testNow)
	require.NoError(t, err)
	return p
}

func TestAdvance_ThreeTwentySecondTicks(t *testing.T) {
	engine := NewEngine(catalog.Default())
	p := newTestPlant(t, engine, catalog.StrainHomegrown, domain.SoilBasic)

	// Seed phase lasts 60s for a 1.0 strain in basic soil
	p1, err := engine.Advance(p, nil, 20)
	require.NoError(t, err)
	assert.Equal(t, 0, p1.PhaseIndex)
	assert.Equal(t, 20.0, p1.ElapsedInPhase)

	p2, err := engine.Advance(p1, nil, 20)
	require.NoError(t, err)
	assert.Equal(t, 0, p2.PhaseIndex)
	assert.Equal(t, 40.0, p2.ElapsedInPhase)

	p3, err := engine.Advance(p2, nil, 20)
	require.NoError(t, err)
	assert.Equal(t, 1, p3.PhaseIndex)
	assert.Equal(t, 0.0, p3.ElapsedInPhase)

	// Inputs are untouched
	assert.Equal(t, 0.0, p.ElapsedInPhase)
	assert.Equal(t, 20.0, p1.ElapsedInPhase)
}

func TestAdvance_OnePhasePerCall(t *testing.T) {
	engine := NewEngine(catalog.Default())
	p := newTestPlant(t, engine, catalog.StrainHomegrown, domain.SoilBasic)

	out, err := engine.Advance(p, nil, 10000)
	require.NoError(t, err)
	assert.Equal(t, 1, out.PhaseIndex)
	assert.Equal(t, 0.0, out.ElapsedInPhase)
}

func TestAdvance_NonPositiveDelta(t *testing.T) {
	engine := NewEngine(catalog.Default())
	p := newTestPlant(t, engine, catalog.StrainHomegrown, domain.SoilBasic)
	p.ElapsedInPhase = 12

	out, err := engine.Advance(p, nil, -5)
	require.NoError(t, err)
	assert.Equal(t, 12.0, out.ElapsedInPhase)
	assert.NotSame(t, p, out)
}

func TestAdvance_ClearsFertilizerFlagOnPhaseChange(t *testing.T) {
	engine := NewEngine(catalog.Default())
	p := newTestPlant(t, engine, catalog.StrainHomegrown, domain.SoilBasic)
	p.Modifiers.FertilizerApplied = true

	out, err := engine.Advance(p, nil, 60)
	require.NoError(t, err)
	assert.Equal(t, 1, out.PhaseIndex)
	assert.False(t, out.Modifiers.FertilizerApplied)
}

func TestAdvance_TerminalPhaseClamps(t *testing.T) {
	engine := NewEngine(catalog.Default())
	p := newTestPlant(t, engine, catalog.StrainHomegrown, domain.SoilBasic)
	p.PhaseIndex = engine.Catalog().LastPhaseIndex()

	out, err := engine.Advance(p, nil, 5000)
	require.NoError(t, err)
	assert.Equal(t, engine.Catalog().LastPhaseIndex(), out.PhaseIndex)
	assert.Equal(t, float64(catalog.HarvestDurationSeconds), out.ElapsedInPhase)
	assert.True(t, engine.IsReady(out, nil))

	again, err := engine.Advance(out, nil, 5000)
	require.NoError(t, err)
	assert.Equal(t, out.PhaseIndex, again.PhaseIndex)
	assert.Equal(t, out.ElapsedInPhase, again.ElapsedInPhase)
}

func TestAdvance_ReadinessSurvivesEventChanges(t *testing.T) {
	engine := NewEngine(catalog.Default())
	last := engine.Catalog().LastPhaseIndex()
	spurt := &domain.GameEvent{Effects: domain.EventEffects{GrowthMultiplier: domain.Float(0.5)}}
	drought := &domain.GameEvent{Effects: domain.EventEffects{GrowthMultiplier: domain.Float(1.5)}}

	t.Run("shorter phase during event", func(t *testing.T) {
		p := newTestPlant(t, engine, catalog.StrainHomegrown, domain.SoilBasic)
		p.PhaseIndex = last
		p.ElapsedInPhase = catalog.HarvestDurationSeconds

		during, err := engine.Advance(p, spurt, 5)
		require.NoError(t, err)
		assert.True(t, during.HarvestReady)
		assert.GreaterOrEqual(t, during.ElapsedInPhase, p.ElapsedInPhase, "clamp never moves the timer back")
		assert.True(t, engine.IsReady(during, spurt))

		assert.True(t, engine.IsReady(during, nil), "still ready once the event ends")
		_, err = engine.Harvest(during, nil)
		assert.NoError(t, err)
	})

	t.Run("longer phase after ready", func(t *testing.T) {
		p := newTestPlant(t, engine, catalog.StrainHomegrown, domain.SoilBasic)
		p.PhaseIndex = last

		ready, err := engine.Advance(p, nil, 5000)
		require.NoError(t, err)
		require.True(t, ready.HarvestReady)

		assert.True(t, engine.IsReady(ready, drought))
		progress, err := engine.Progress(ready, drought)
		require.NoError(t, err)
		assert.Equal(t, 1.0, progress)
		remaining, err := engine.RemainingSeconds(ready, drought)
		require.NoError(t, err)
		assert.Zero(t, remaining)

		again, err := engine.Advance(ready, drought, 30)
		require.NoError(t, err)
		assert.Equal(t, ready, again, "advancing a ready plant changes nothing")
		_, err = engine.Harvest(again, drought)
		assert.NoError(t, err)
	})
}

func TestAdvance_InvariantsOverManyTicks(t *testing.T) {
	engine := NewEngine(catalog.Default())
	p := newTestPlant(t, engine, catalog.StrainQuickBloom, domain.SoilLightMix)
	event := &domain.GameEvent{Effects: domain.EventEffects{GrowthMultiplier: domain.Float(0.5)}}

	prevPhase := p.PhaseIndex
	for i := 0; i < 5000; i++ {
		var err error
		p, err = engine.Advance(p, event, 7)
		require.NoError(t, err)

		duration, err := engine.PhaseDuration(p, event)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, p.PhaseIndex, prevPhase)
		assert.GreaterOrEqual(t, p.ElapsedInPhase, 0.0)
		assert.LessOrEqual(t, p.ElapsedInPhase, duration)
		prevPhase = p.PhaseIndex
	}
	assert.True(t, engine.IsReady(p, event))
}

func TestPhaseDuration_Multipliers(t *testing.T) {
	engine := NewEngine(catalog.Default())

	tests := []struct {
		name   string
		strain string
		soil   domain.SoilType
		event  *domain.GameEvent
		want   float64
	}{
		{"baseline", catalog.StrainHomegrown, domain.SoilBasic, nil, 60},
		{"light mix", catalog.StrainHomegrown, domain.SoilLightMix, nil, 54},
		{"all mix", catalog.StrainHomegrown, domain.SoilAllMix, nil, 60},
		{"fast strain", catalog.StrainQuickBloom, domain.SoilBasic, nil, 45},
		{"growth event", catalog.StrainHomegrown, domain.SoilBasic,
			&domain.GameEvent{Effects: domain.EventEffects{GrowthMultiplier: domain.Float(1.5)}}, 90},
		{"event without growth effect", catalog.StrainHomegrown, domain.SoilBasic,
			&domain.GameEvent{Effects: domain.EventEffects{PriceMultiplier: domain.Float(2)}}, 60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestPlant(t, engine, tt.strain, tt.soil)
			got, err := engine.PhaseDuration(p, tt.event)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestPhaseDuration_Errors(t *testing.T) {
	engine := NewEngine(catalog.Default())
	p := newTestPlant(t, engine, catalog.StrainHomegrown, domain.SoilBasic)

	bad := p.Clone()
	bad.Modifiers.SoilType = "clay"
	_, err := engine.PhaseDuration(bad, nil)
	assert.ErrorIs(t, err, domain.ErrUnknownSoil)

	bad = p.Clone()
	bad.PhaseIndex = 9
	_, err = engine.PhaseDuration(bad, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidPhase)

	bad = p.Clone()
	bad.StrainID = "ghost"
	_, err = engine.PhaseDuration(bad, nil)
	assert.ErrorIs(t, err, domain.ErrUnknownStrain)
}

func TestSoilMultiplier_CoversAllSoilTypes(t *testing.T) {
	engine := NewEngine(catalog.Default())
	for _, soil := range domain.SoilTypes {
		_, err := engine.SoilMultiplier(soil)
		assert.NoError(t, err, soil)
	}
}

func TestProgress(t *testing.T) {
	engine := NewEngine(catalog.Default())
	p := newTestPlant(t, engine, catalog.StrainHomegrown, domain.SoilBasic)

	p.ElapsedInPhase = 30
	progress, err := engine.Progress(p, nil)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, progress, 1e-9)

	remaining, err := engine.RemainingSeconds(p, nil)
	require.NoError(t, err)
	assert.InDelta(t, 30, remaining, 1e-9)

	p.ElapsedInPhase = 600
	progress, err = engine.Progress(p, nil)
	require.NoError(t, err)
	assert.Equal(t, 1.0, progress)
}

func TestHarvest(t *testing.T) {
	engine := NewEngine(catalog.Default())
	p := newTestPlant(t, engine, catalog.StrainHomegrown, domain.SoilBasic)

	_, err := engine.Harvest(p, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidState)
	assert.ErrorIs(t, err, domain.ErrNotReady)

	p.PhaseIndex = engine.Catalog().LastPhaseIndex()
	p.ElapsedInPhase = catalog.HarvestDurationSeconds
	p.Modifiers.QualityMultiplier = 1.5

	yield, err := engine.Harvest(p, nil)
	require.NoError(t, err)
	assert.Equal(t, 15, yield.BudsYielded)
	assert.Equal(t, 1.5, yield.QualityMultiplier)

	p.Modifiers.QualityMultiplier = 0
	yield, err = engine.Harvest(p, nil)
	require.NoError(t, err)
	assert.Equal(t, MinYield, yield.BudsYielded)

	_, err = engine.Harvest(nil, nil)
	assert.ErrorIs(t, err, domain.ErrSlotEmpty)
}

func TestNewPlant(t *testing.T) {
	engine := NewEngine(catalog.Default())

	p := newTestPlant(t, engine, catalog.StrainGoldenLeaf, domain.SoilAllMix)
	assert.Equal(t, "p1", p.ID)
	assert.Equal(t, 0, p.PhaseIndex)
	assert.Equal(t, BaseQualityMultiplier, p.Modifiers.QualityMultiplier)
	assert.Equal(t, testNow, p.PlantedAt)

	_, err := engine.NewPlant("p2", "homegrwn", domain.SoilBasic, testNow)
	assert.ErrorIs(t, err, domain.ErrUnknownStrain)
	assert.Contains(t, err.Error(), "did you mean")

	_, err = engine.NewPlant("p3", catalog.StrainHomegrown, "sand", testNow)
	assert.ErrorIs(t, err, domain.ErrUnknownSoil)
}
