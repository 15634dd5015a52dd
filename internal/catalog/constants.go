package catalog

// Default phase durations in seconds
const (
	SeedDurationSeconds        = 60
	GerminationDurationSeconds = 120
	SeedlingDurationSeconds    = 300
	VegetativeDurationSeconds  = 600
	FloweringDurationSeconds   = 900
	HarvestDurationSeconds     = 1200
)

// PhaseCount is the number of ordered growth phases a plant passes through
const PhaseCount = 6

// Phase keys
const (
	PhaseSeed        = "seed"
	PhaseGermination = "germination"
	PhaseSeedling    = "seedling"
	PhaseVegetative  = "vegetative"
	PhaseFlowering   = "flowering"
	PhaseHarvest     = "harvest"
)

// Default strain IDs
const (
	StrainHomegrown   = "homegrown"
	StrainQuickBloom  = "quick_bloom"
	StrainHeavyHitter = "heavy_hitter"
	StrainGoldenLeaf  = "golden_leaf"
)

// SchemaName identifies the embedded catalog schema in the validator
const SchemaName = "catalog.schema.json"

// Suggestion tuning
const (
	MaxSuggestions = 3
)

// Error messages
const (
	ErrMsgReadCatalogFailed   = "failed to read catalog file: %w"
	ErrMsgParseCatalogFailed  = "failed to parse catalog: %w"
	ErrMsgConvertYAMLFailed   = "failed to convert YAML catalog: %w"
	ErrMsgSchemaFailed        = "schema validation failed for %s: %w"
	ErrMsgDuplicateStrain     = "duplicate strain id '%s'"
	ErrMsgDuplicatePhase      = "duplicate phase key '%s'"
	ErrMsgUnsupportedFormat   = "unsupported catalog format '%s'"
	ErrMsgCatalogFieldInvalid = "%s failed on '%s'"
)
