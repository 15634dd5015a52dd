package bootstrap

import (
	"log/slog"

	"github.com/osse101/GrowRoom_Go/internal/event"
	"github.com/osse101/GrowRoom_Go/internal/metrics"
	"github.com/osse101/GrowRoom_Go/internal/sse"
	"github.com/osse101/GrowRoom_Go/internal/worker"
)

// RegisterEventHandlers subscribes the metrics collector and, when given,
// the event expiry worker and the stream forwarder
func RegisterEventHandlers(bus event.Bus, expiry *worker.EventExpiryWorker, stream *sse.Subscriber) {
	metrics.NewEventMetricsCollector().Register(bus)
	slog.Info(LogMsgMetricsCollectorRegistered)

	if expiry != nil {
		expiry.Subscribe(bus)
		slog.Info(LogMsgExpiryWorkerSubscribed)
	}

	if stream != nil {
		stream.Subscribe(bus)
	}
}
