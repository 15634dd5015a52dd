package session

import (
	"context"

	"github.com/osse101/GrowRoom_Go/internal/event"
	"github.com/osse101/GrowRoom_Go/internal/game"
	"github.com/osse101/GrowRoom_Go/internal/logger"
	"github.com/osse101/GrowRoom_Go/internal/metrics"
)

// Tick advances every plant to the session clock's now and expires the
// active event. Ticks that only move the tick timestamp do not mark the
// session dirty.
func (s *Session) Tick(ctx context.Context) game.TickResult {
	s.mu.Lock()
	now := s.clock.Now()
	next, result := s.engine.Tick(s.state, now)
	s.state = next
	if result.Changed() {
		s.rev++
	}

	var events []event.Event
	for _, adv := range result.Advances {
		events = append(events, event.NewPhaseAdvancedEvent(adv.Slot, next.Slots[adv.Slot], now))
	}
	if result.ExpiredEvent != nil {
		events = append(events, event.NewRandomEvent(event.RandomEventEnd, result.ExpiredEvent, now))
	}
	snapshot := next
	s.mu.Unlock()

	if result.ExpiredEvent != nil {
		logger.FromContext(ctx).Info(LogMsgEventExpired, "event", result.ExpiredEvent.ID)
	}
	if result.Changed() {
		metrics.RecordState(snapshot)
	}
	s.publish(ctx, events...)
	return result
}
