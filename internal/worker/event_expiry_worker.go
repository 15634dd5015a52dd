package worker

import (
	"context"
	"time"

	"github.com/osse101/GrowRoom_Go/internal/clock"
	"github.com/osse101/GrowRoom_Go/internal/domain"
	"github.com/osse101/GrowRoom_Go/internal/event"
	"github.com/osse101/GrowRoom_Go/internal/logger"
)

// EventExpiryWorker ends random events at their deadline instead of waiting
// for the next tick to notice
type EventExpiryWorker struct {
	BaseWorker
	sim   Simulation
	clock clock.Clock
}

// NewEventExpiryWorker creates a new EventExpiryWorker
func NewEventExpiryWorker(sim Simulation, clk clock.Clock) *EventExpiryWorker {
	w := &EventExpiryWorker{sim: sim, clock: clk}
	w.init()
	return w
}

// Start schedules expiry for an event that was already active at load time
func (w *EventExpiryWorker) Start(active *domain.GameEvent) {
	if active != nil {
		w.scheduleExpiry(active.ID, active.EndsAt)
	}
}

// Subscribe subscribes the worker to event starts
func (w *EventExpiryWorker) Subscribe(bus event.Bus) {
	bus.Subscribe(event.RandomEventStart, w.handleEventStarted)
}

func (w *EventExpiryWorker) handleEventStarted(ctx context.Context, e event.Event) error {
	payload, err := event.DecodePayload[domain.RandomEventPayload](e.Payload)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgEventExpiryPayload, "error", err)
		return nil
	}
	w.scheduleExpiry(payload.EventID, payload.EndsAt)
	return nil
}

func (w *EventExpiryWorker) scheduleExpiry(eventID string, endsAt time.Time) {
	d := w.clock.Until(endsAt)
	logger.FromContext(context.Background()).Debug(LogMsgSchedulingEventExpiry, "event", eventID, "duration", d)
	w.schedule(eventID, d, func() {
		ctx := context.Background()
		log := logger.FromContext(ctx)
		log.Info(LogMsgExpiringEvent, "event", eventID)
		if res := w.sim.TickEvent(ctx); !res.Accepted {
			log.Error(LogMsgEventExpiryFailed, "event", eventID, "reason", res.Reason, "error", res.Err)
		}
	})
}

// Shutdown cancels pending expiries and waits for in-flight ones
func (w *EventExpiryWorker) Shutdown(ctx context.Context) error {
	return w.shutdownInternal(ctx, WorkerNameEventExpiry)
}
