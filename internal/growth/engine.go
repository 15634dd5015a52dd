package growth

import (
	"fmt"
	"math"
	"time"

	"github.com/osse101/GrowRoom_Go/internal/catalog"
	"github.com/osse101/GrowRoom_Go/internal/domain"
)

// Engine provides pure plant growth logic. It never mutates the plants it is
// given; every transition returns a fresh copy.
type Engine struct {
	catalog *catalog.Catalog
}

// NewEngine creates a growth engine over a catalog
func NewEngine(c *catalog.Catalog) *Engine {
	return &Engine{catalog: c}
}

// Catalog returns the catalog the engine reads from
func (e *Engine) Catalog() *catalog.Catalog {
	return e.catalog
}

// SoilMultiplier returns the phase duration factor for a soil type
func (e *Engine) SoilMultiplier(soil domain.SoilType) (float64, error) {
	m, ok := soilMultipliers[soil]
	if !ok {
		return 0, fmt.Errorf("%w: '%s'", domain.ErrUnknownSoil, soil)
	}
	return m, nil
}

// PhaseDuration returns how many seconds the plant's current phase lasts
// under the given event
func (e *Engine) PhaseDuration(p *domain.Plant, event *domain.GameEvent) (float64, error) {
	phase, ok := e.catalog.Phase(p.PhaseIndex)
	if !ok {
		return 0, fmt.Errorf("%w: %d", domain.ErrInvalidPhase, p.PhaseIndex)
	}
	strain, ok := e.catalog.Strain(p.StrainID)
	if !ok {
		return 0, fmt.Errorf("%w: '%s'", domain.ErrUnknownStrain, p.StrainID)
	}
	soil, err := e.SoilMultiplier(p.Modifiers.SoilType)
	if err != nil {
		return 0, err
	}
	return phase.DurationSeconds * strain.GrowthRate * soil * event.GrowthMultiplier(), nil
}

// Advance moves the plant's phase timer forward by deltaSeconds. At most one
// phase boundary is crossed per call and elapsed time resets to zero on the
// new phase. Completing the last phase latches HarvestReady; a latched plant
// no longer changes.
func (e *Engine) Advance(p *domain.Plant, event *domain.GameEvent, deltaSeconds float64) (*domain.Plant, error) {
	if p == nil {
		return nil, domain.ErrSlotEmpty
	}
	duration, err := e.PhaseDuration(p, event)
	if err != nil {
		return nil, err
	}

	out := p.Clone()
	if deltaSeconds <= 0 || (out.HarvestReady && out.PhaseIndex == e.catalog.LastPhaseIndex()) {
		return out, nil
	}

	out.ElapsedInPhase += deltaSeconds
	if out.ElapsedInPhase < duration {
		return out, nil
	}

	if out.PhaseIndex < e.catalog.LastPhaseIndex() {
		out.PhaseIndex++
		out.ElapsedInPhase = 0
		out.Modifiers.FertilizerApplied = false
		return out, nil
	}

	out.ElapsedInPhase = math.Max(p.ElapsedInPhase, duration)
	out.HarvestReady = true
	return out, nil
}

// Progress returns the fraction of the current phase completed, in [0, 1]
func (e *Engine) Progress(p *domain.Plant, event *domain.GameEvent) (float64, error) {
	duration, err := e.PhaseDuration(p, event)
	if err != nil {
		return 0, err
	}
	if duration <= 0 || e.latched(p) {
		return 1, nil
	}
	return math.Max(0, math.Min(1, p.ElapsedInPhase/duration)), nil
}

// IsReady reports whether the plant is in the last phase and has either
// latched HarvestReady or reached full progress under event
func (e *Engine) IsReady(p *domain.Plant, event *domain.GameEvent) bool {
	if p == nil || p.PhaseIndex != e.catalog.LastPhaseIndex() {
		return false
	}
	if p.HarvestReady {
		return true
	}
	progress, err := e.Progress(p, event)
	return err == nil && progress >= 1
}

func (e *Engine) latched(p *domain.Plant) bool {
	return p.HarvestReady && p.PhaseIndex == e.catalog.LastPhaseIndex()
}

// RemainingSeconds returns the seconds left in the current phase
func (e *Engine) RemainingSeconds(p *domain.Plant, event *domain.GameEvent) (float64, error) {
	duration, err := e.PhaseDuration(p, event)
	if err != nil {
		return 0, err
	}
	if e.latched(p) {
		return 0, nil
	}
	return math.Max(0, duration-p.ElapsedInPhase), nil
}

// Harvest computes the yield of a ready plant
func (e *Engine) Harvest(p *domain.Plant, event *domain.GameEvent) (domain.HarvestYield, error) {
	if p == nil {
		return domain.HarvestYield{}, domain.ErrSlotEmpty
	}
	if !e.IsReady(p, event) {
		return domain.HarvestYield{}, fmt.Errorf("%w: %w", domain.ErrInvalidState, domain.ErrNotReady)
	}
	strain, ok := e.catalog.Strain(p.StrainID)
	if !ok {
		return domain.HarvestYield{}, fmt.Errorf("%w: '%s'", domain.ErrUnknownStrain, p.StrainID)
	}

	quality := p.Modifiers.QualityMultiplier
	buds := int(math.Round(float64(strain.BaseYield) * quality))
	if buds < MinYield {
		buds = MinYield
	}
	return domain.HarvestYield{BudsYielded: buds, QualityMultiplier: quality}, nil
}

// NewPlant builds a freshly potted plant at phase 0
func (e *Engine) NewPlant(id, strainID string, soil domain.SoilType, now time.Time) (*domain.Plant, error) {
	if _, ok := e.catalog.Strain(strainID); !ok {
		if suggestions := e.catalog.Suggest(strainID); len(suggestions) > 0 {
			return nil, fmt.Errorf("%w: '%s' (did you mean %v?)", domain.ErrUnknownStrain, strainID, suggestions)
		}
		return nil, fmt.Errorf("%w: '%s'", domain.ErrUnknownStrain, strainID)
	}
	if _, err := e.SoilMultiplier(soil); err != nil {
		return nil, err
	}
	return &domain.Plant{
		ID:        id,
		StrainID:  strainID,
		PlantedAt: now,
		Modifiers: domain.PlantModifiers{
			SoilType:          soil,
			QualityMultiplier: BaseQualityMultiplier,
		},
	}, nil
}
