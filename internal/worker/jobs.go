package worker

import (
	"context"

	"github.com/osse101/GrowRoom_Go/internal/domain"
	"github.com/osse101/GrowRoom_Go/internal/game"
	"github.com/osse101/GrowRoom_Go/internal/logger"
	"github.com/osse101/GrowRoom_Go/internal/session"
)

// Simulation is the slice of the session the recurring jobs drive
type Simulation interface {
	Tick(ctx context.Context) game.TickResult
	Autosave(ctx context.Context) (bool, error)
	MaybeTriggerEvent(ctx context.Context, chance float64) session.Result
	TickEvent(ctx context.Context) session.Result
}

// TickJob advances the simulation clock
type TickJob struct {
	Sim Simulation
}

func (j TickJob) Name() string { return "tick" }

func (j TickJob) Process(ctx context.Context) error {
	result := j.Sim.Tick(ctx)
	if result.Changed() {
		logger.FromContext(ctx).Debug(LogMsgTickApplied,
			"delta", result.Delta, "plants", result.PlantsGrown, "advances", len(result.Advances))
	}
	return nil
}

// AutosaveJob persists the session when it is dirty and autosave is on
type AutosaveJob struct {
	Sim Simulation
}

func (j AutosaveJob) Name() string { return "autosave" }

func (j AutosaveJob) Process(ctx context.Context) error {
	saved, err := j.Sim.Autosave(ctx)
	if err != nil {
		return err
	}
	if !saved {
		logger.FromContext(ctx).Debug(LogMsgAutosaveSkipped)
	}
	return nil
}

// EventRollJob tries to start a random event with probability Chance
type EventRollJob struct {
	Sim    Simulation
	Chance float64
}

func (j EventRollJob) Name() string { return "event_roll" }

func (j EventRollJob) Process(ctx context.Context) error {
	chance := j.Chance
	if chance <= 0 {
		chance = AutoEventChance
	}
	res := j.Sim.MaybeTriggerEvent(ctx, chance)
	if !res.Accepted && res.Reason != domain.ErrMsgEventsDisabled {
		logger.FromContext(ctx).Debug(LogMsgEventRollDeclined, "reason", res.Reason)
	}
	return nil
}
