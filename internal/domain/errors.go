package domain

import (
	"errors"
	"fmt"
)

// Error message string constants - single source of truth for error messages.
// They double as the stable reason codes returned to the driver when an
// operation is declined, so changing one is a breaking change for clients.
const (
	// Wallet errors
	ErrMsgInsufficientFunds = "insufficient funds"
	ErrMsgInsufficientBuds  = "insufficient buds"
	ErrMsgInvalidAmount     = "invalid amount"

	// Cooldown errors
	ErrMsgOnCooldown        = "cooling down"
	ErrMsgRefreshOnCooldown = "refresh cooling down"

	// Slot / plant errors
	ErrMsgSlotOutOfRange    = "invalid slot"
	ErrMsgSlotOccupied      = "slot occupied"
	ErrMsgSlotEmpty         = "slot empty"
	ErrMsgUnknownStrain     = "unknown strain"
	ErrMsgUnknownSoil       = "unknown soil"
	ErrMsgInvalidPhase      = "invalid phase"
	ErrMsgNotReady          = "not ready"
	ErrMsgPlantReady        = "harvest ready"
	ErrMsgAlreadyFertilized = "already fertilized"

	// Trade errors
	ErrMsgOfferNotFound = "offer not found"

	// Quest errors
	ErrMsgQuestNotFound       = "quest not found"
	ErrMsgQuestAlreadyClaimed = "already claimed"
	ErrMsgQuestIncomplete     = "incomplete"

	// Event errors
	ErrMsgEventsDisabled = "events disabled"

	// Catalog errors
	ErrMsgInvalidCatalog = "invalid catalog"

	// Upgrade errors
	ErrMsgInvalidUpgrade = "invalid upgrade"
)

// Common domain errors.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrInsufficientFunds = errors.New(ErrMsgInsufficientFunds)
	ErrInsufficientBuds  = errors.New(ErrMsgInsufficientBuds)
	ErrInvalidAmount     = errors.New(ErrMsgInvalidAmount)

	ErrOnCooldown        = errors.New(ErrMsgOnCooldown)
	ErrRefreshOnCooldown = errors.New(ErrMsgRefreshOnCooldown)

	ErrSlotOutOfRange    = errors.New(ErrMsgSlotOutOfRange)
	ErrSlotOccupied      = errors.New(ErrMsgSlotOccupied)
	ErrSlotEmpty         = errors.New(ErrMsgSlotEmpty)
	ErrUnknownStrain     = errors.New(ErrMsgUnknownStrain)
	ErrUnknownSoil       = errors.New(ErrMsgUnknownSoil)
	ErrInvalidPhase      = errors.New(ErrMsgInvalidPhase)
	ErrNotReady          = errors.New(ErrMsgNotReady)
	ErrPlantReady        = errors.New(ErrMsgPlantReady)
	ErrAlreadyFertilized = errors.New(ErrMsgAlreadyFertilized)

	ErrOfferNotFound = errors.New(ErrMsgOfferNotFound)

	ErrQuestNotFound       = errors.New(ErrMsgQuestNotFound)
	ErrQuestAlreadyClaimed = errors.New(ErrMsgQuestAlreadyClaimed)
	ErrQuestIncomplete     = errors.New(ErrMsgQuestIncomplete)

	ErrEventsDisabled = errors.New(ErrMsgEventsDisabled)

	ErrInvalidCatalog = errors.New(ErrMsgInvalidCatalog)

	ErrInvalidUpgrade = errors.New(ErrMsgInvalidUpgrade)

	// ErrInvalidState marks a call the caller should never have made, such as
	// harvesting a plant that is still growing.
	ErrInvalidState = errors.New("invalid state")
)

// reasonErrors is checked in order by ReasonFor
var reasonErrors = []error{
	ErrInsufficientFunds,
	ErrInsufficientBuds,
	ErrInvalidAmount,
	ErrRefreshOnCooldown,
	ErrOnCooldown,
	ErrSlotOutOfRange,
	ErrSlotOccupied,
	ErrSlotEmpty,
	ErrUnknownStrain,
	ErrUnknownSoil,
	ErrInvalidPhase,
	ErrNotReady,
	ErrPlantReady,
	ErrAlreadyFertilized,
	ErrOfferNotFound,
	ErrQuestNotFound,
	ErrQuestAlreadyClaimed,
	ErrQuestIncomplete,
	ErrEventsDisabled,
	ErrInvalidCatalog,
	ErrInvalidUpgrade,
	ErrInvalidState,
}

// ReasonFor maps an error onto its stable reason code.
// Unknown errors map to ReasonInternal.
func ReasonFor(err error) string {
	if err == nil {
		return ""
	}
	for _, sentinel := range reasonErrors {
		if errors.Is(err, sentinel) {
			return sentinel.Error()
		}
	}
	return ReasonInternal
}

// ReasonInternal is reported for errors that carry no domain reason
const ReasonInternal = "internal error"

// InvariantViolation reports a programming error in the caller: the engine
// was asked to do something its own eligibility checks would have refused.
type InvariantViolation struct {
	Op  string
	Err error
}

func (e *InvariantViolation) Error() string {
	return fmt.Sprintf("invariant violation in %s: %v", e.Op, e.Err)
}

func (e *InvariantViolation) Unwrap() error {
	return e.Err
}
