package gameevent

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/GrowRoom_Go/internal/domain"
	"github.com/osse101/GrowRoom_Go/internal/utils"
)

var (
	testNow  = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	enabled  = domain.Settings{RandomEventsEnabled: true}
	disabled = domain.Settings{}
)

func TestTrigger_PicksPreset(t *testing.T) {
	presets := Presets()
	require.Len(t, presets, 4)

	for i, p := range presets {
		c := NewController(&utils.ScriptedSource{Ints: []int{i}})
		event, err := c.Trigger(enabled, testNow)
		require.NoError(t, err)
		assert.Equal(t, p.ID, event.ID)
		assert.Equal(t, testNow.Add(60*time.Second), event.EndsAt)
	}
}

func TestTrigger_Disabled(t *testing.T) {
	c := NewController(utils.NewSeededSource(1))
	event, err := c.Trigger(disabled, testNow)
	assert.ErrorIs(t, err, domain.ErrEventsDisabled)
	assert.Nil(t, event)
}

func TestTrigger_EffectsAreIndependentCopies(t *testing.T) {
	c := NewController(&utils.ScriptedSource{Ints: []int{0}})
	a, err := c.Trigger(enabled, testNow)
	require.NoError(t, err)
	b, err := c.Trigger(enabled, testNow)
	require.NoError(t, err)

	*a.Effects.GrowthMultiplier = 9
	assert.Equal(t, 0.5, b.GrowthMultiplier())
	assert.Equal(t, 0.5, *Presets()[0].Effects.GrowthMultiplier)
}

func TestMaybeTrigger(t *testing.T) {
	miss := NewController(utils.NewScriptedSource(0.3))
	event, err := miss.MaybeTrigger(enabled, testNow, AutoEventChance)
	require.NoError(t, err)
	assert.Nil(t, event)

	hit := NewController(&utils.ScriptedSource{Floats: []float64{0.1}, Ints: []int{3}})
	event, err = hit.MaybeTrigger(enabled, testNow, AutoEventChance)
	require.NoError(t, err)
	require.NotNil(t, event)
	assert.Equal(t, PresetDrought, event.ID)

	_, err = hit.MaybeTrigger(disabled, testNow, 1)
	assert.ErrorIs(t, err, domain.ErrEventsDisabled)
}

func TestExpire(t *testing.T) {
	event := Start(Presets()[1], testNow)

	assert.NotNil(t, Expire(event, testNow.Add(59*time.Second)))
	assert.Nil(t, Expire(event, testNow.Add(60*time.Second)))
	assert.Nil(t, Expire(event, testNow.Add(time.Hour)))
	assert.Nil(t, Expire(nil, testNow))

	// Idempotent
	kept := Expire(event, testNow)
	assert.Equal(t, event, Expire(kept, testNow))
}

func TestRemaining(t *testing.T) {
	event := Start(Presets()[0], testNow)
	assert.Equal(t, 45*time.Second, Remaining(event, testNow.Add(15*time.Second)))
	assert.Zero(t, Remaining(event, testNow.Add(2*time.Minute)))
	assert.Zero(t, Remaining(nil, testNow))
}
