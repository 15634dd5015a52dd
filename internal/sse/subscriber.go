package sse

import (
	"context"
	"log/slog"
	"time"

	"github.com/osse101/GrowRoom_Go/internal/event"
)

// Subscriber forwards every simulation event from the bus to the hub
type Subscriber struct {
	hub *Hub
	now func() time.Time
}

// NewSubscriber creates a subscriber stamping events with now
func NewSubscriber(hub *Hub, now func() time.Time) *Subscriber {
	return &Subscriber{hub: hub, now: now}
}

// Subscribe registers the forwarder for all event types
func (s *Subscriber) Subscribe(bus event.Bus) {
	for _, t := range event.AllTypes {
		bus.Subscribe(t, s.handle)
	}
	slog.Info(LogMsgSubscribed, "types", len(event.AllTypes))
}

func (s *Subscriber) handle(_ context.Context, evt event.Event) error {
	s.hub.Broadcast(string(evt.Type), evt.Payload, s.now())
	return nil
}
