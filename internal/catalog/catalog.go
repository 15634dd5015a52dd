package catalog

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/GrowRoom_Go/internal/domain"
)

// Phase is one ordered growth stage
type Phase struct {
	Key                   string  `json:"key" yaml:"key" validate:"required"`
	Name                  string  `json:"name" yaml:"name" validate:"required"`
	DurationSeconds       float64 `json:"duration_seconds" yaml:"duration_seconds" validate:"gt=0"`
	WaterRecommended      bool    `json:"water_recommended" yaml:"water_recommended"`
	FertilizerRecommended bool    `json:"fertilizer_recommended" yaml:"fertilizer_recommended"`
	WaterCooldownMs       int64   `json:"water_cooldown_ms,omitempty" yaml:"water_cooldown_ms,omitempty" validate:"gte=0"`
	FertilizerCooldownMs  int64   `json:"fertilizer_cooldown_ms,omitempty" yaml:"fertilizer_cooldown_ms,omitempty" validate:"gte=0"`
}

// WaterCooldown returns the phase override, or def when none is set
func (p Phase) WaterCooldown(def time.Duration) time.Duration {
	if p.WaterCooldownMs > 0 {
		return time.Duration(p.WaterCooldownMs) * time.Millisecond
	}
	return def
}

// FertilizerCooldown returns the phase override, or def when none is set
func (p Phase) FertilizerCooldown(def time.Duration) time.Duration {
	if p.FertilizerCooldownMs > 0 {
		return time.Duration(p.FertilizerCooldownMs) * time.Millisecond
	}
	return def
}

// Strain describes a plantable variety. GrowthRate multiplies every phase
// duration, so values below 1 grow faster.
type Strain struct {
	ID         string  `json:"id" yaml:"id" validate:"required"`
	Name       string  `json:"name" yaml:"name" validate:"required"`
	GrowthRate float64 `json:"growth_rate" yaml:"growth_rate" validate:"gt=0"`
	BaseYield  int     `json:"base_yield" yaml:"base_yield" validate:"gt=0"`
	SeedCost   int     `json:"seed_cost" yaml:"seed_cost" validate:"gte=0"`
}

// Catalog is read-only phase and strain data
type Catalog struct {
	Version string   `json:"version,omitempty" yaml:"version,omitempty"`
	Phases  []Phase  `json:"phases" yaml:"phases" validate:"len=6,dive"`
	Strains []Strain `json:"strains" yaml:"strains" validate:"min=1,dive"`

	strainIndex map[string]int
}

var structValidator = validator.New()

// New validates the phase and strain lists and builds a catalog
func New(phases []Phase, strains []Strain) (*Catalog, error) {
	c := &Catalog{
		Phases:  append([]Phase(nil), phases...),
		Strains: append([]Strain(nil), strains...),
	}
	if err := c.init(); err != nil {
		return nil, err
	}
	return c, nil
}

// MustNew is New for static data; it panics on invalid input
func MustNew(phases []Phase, strains []Strain) *Catalog {
	c, err := New(phases, strains)
	if err != nil {
		panic(err)
	}
	return c
}

func (c *Catalog) init() error {
	if err := structValidator.Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			return fmt.Errorf("%w: "+ErrMsgCatalogFieldInvalid, domain.ErrInvalidCatalog, fe.Namespace(), fe.Tag())
		}
		return fmt.Errorf("%w: %v", domain.ErrInvalidCatalog, err)
	}

	seenPhases := make(map[string]bool, len(c.Phases))
	for _, p := range c.Phases {
		if seenPhases[p.Key] {
			return fmt.Errorf("%w: "+ErrMsgDuplicatePhase, domain.ErrInvalidCatalog, p.Key)
		}
		seenPhases[p.Key] = true
	}

	c.strainIndex = make(map[string]int, len(c.Strains))
	for i, s := range c.Strains {
		if _, dup := c.strainIndex[s.ID]; dup {
			return fmt.Errorf("%w: "+ErrMsgDuplicateStrain, domain.ErrInvalidCatalog, s.ID)
		}
		c.strainIndex[s.ID] = i
	}
	return nil
}

// PhaseCount returns the number of phases
func (c *Catalog) PhaseCount() int {
	return len(c.Phases)
}

// LastPhaseIndex returns the index of the terminal (harvest) phase
func (c *Catalog) LastPhaseIndex() int {
	return len(c.Phases) - 1
}

// Phase looks up a phase by index
func (c *Catalog) Phase(index int) (Phase, bool) {
	if index < 0 || index >= len(c.Phases) {
		return Phase{}, false
	}
	return c.Phases[index], true
}

// Strain looks up a strain by ID
func (c *Catalog) Strain(id string) (Strain, bool) {
	i, ok := c.strainIndex[id]
	if !ok {
		return Strain{}, false
	}
	return c.Strains[i], true
}

// StrainIDs returns all strain IDs in sorted order
func (c *Catalog) StrainIDs() []string {
	ids := make([]string, 0, len(c.Strains))
	for _, s := range c.Strains {
		ids = append(ids, s.ID)
	}
	sort.Strings(ids)
	return ids
}

// DefaultPhases returns the built-in phase list
func DefaultPhases() []Phase {
	return []Phase{
		{Key: PhaseSeed, Name: "Seed", DurationSeconds: SeedDurationSeconds, WaterRecommended: true},
		{Key: PhaseGermination, Name: "Germination", DurationSeconds: GerminationDurationSeconds, WaterRecommended: true},
		{Key: PhaseSeedling, Name: "Seedling", DurationSeconds: SeedlingDurationSeconds, WaterRecommended: true, FertilizerRecommended: true},
		{Key: PhaseVegetative, Name: "Vegetative", DurationSeconds: VegetativeDurationSeconds, WaterRecommended: true, FertilizerRecommended: true},
		{Key: PhaseFlowering, Name: "Flowering", DurationSeconds: FloweringDurationSeconds, FertilizerRecommended: true, WaterCooldownMs: 20000},
		{Key: PhaseHarvest, Name: "Harvest", DurationSeconds: HarvestDurationSeconds},
	}
}

// DefaultStrains returns the built-in strain list
func DefaultStrains() []Strain {
	return []Strain{
		{ID: StrainHomegrown, Name: "Homegrown", GrowthRate: 1.0, BaseYield: 10, SeedCost: 10},
		{ID: StrainQuickBloom, Name: "Quick Bloom", GrowthRate: 0.75, BaseYield: 7, SeedCost: 20},
		{ID: StrainHeavyHitter, Name: "Heavy Hitter", GrowthRate: 1.3, BaseYield: 18, SeedCost: 35},
		{ID: StrainGoldenLeaf, Name: "Golden Leaf", GrowthRate: 1.6, BaseYield: 30, SeedCost: 60},
	}
}

// Default returns the built-in catalog
func Default() *Catalog {
	return MustNew(DefaultPhases(), DefaultStrains())
}
