package domain

// State schema
const (
	// StateSchemaVersion is bumped when the persisted shape gains fields that
	// need more than a default to load. Additive changes do not bump it.
	StateSchemaVersion = 1
)

// Starting values for a fresh game
const (
	StartingNugs     = 100
	StartingBuds     = 0
	DefaultSlotCount = 4
)

// Currency names used in logs, events and the driver API
const (
	CurrencyNugs = "nugs"
	CurrencyBuds = "buds"
)
