package game

import (
	"context"

	"github.com/osse101/GrowRoom_Go/internal/domain"
	"github.com/osse101/GrowRoom_Go/internal/logger"
)

// Outcome is the result flag every driver call returns beside the new state.
// A declined outcome always comes with the input state unchanged.
type Outcome struct {
	Accepted bool   `json:"accepted"`
	Reason   string `json:"reason,omitempty"`
	Err      error  `json:"-"`
}

func accepted() Outcome {
	return Outcome{Accepted: true}
}

func declined(err error) Outcome {
	return Outcome{Reason: domain.ReasonFor(err), Err: err}
}

// InvariantReporter receives programming errors detected by the engine
type InvariantReporter func(v *domain.InvariantViolation)

// LogReporter logs violations at error level and carries on
func LogReporter(v *domain.InvariantViolation) {
	logger.FromContext(context.Background()).Error(LogMsgInvariantViolation, "op", v.Op, "error", v.Err)
}

// PanicReporter turns violations into panics, for debug builds and tests
func PanicReporter(v *domain.InvariantViolation) {
	panic(v.Error())
}
