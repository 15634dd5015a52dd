package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/GrowRoom_Go/internal/event"
	"github.com/osse101/GrowRoom_Go/internal/scheduler"
	"github.com/osse101/GrowRoom_Go/internal/server"
	"github.com/osse101/GrowRoom_Go/internal/session"
	"github.com/osse101/GrowRoom_Go/internal/sse"
	"github.com/osse101/GrowRoom_Go/internal/storage"
	"github.com/osse101/GrowRoom_Go/internal/worker"
)

// ShutdownComponents holds everything that needs a graceful stop. Nil
// entries are skipped.
type ShutdownComponents struct {
	Hub                *sse.Hub
	Server             *server.Server
	Scheduler          *scheduler.Scheduler
	Pool               *worker.Pool
	ExpiryWorker       *worker.EventExpiryWorker
	Session            *session.Session
	ResilientPublisher *event.ResilientPublisher
	Store              storage.Store
}

// GracefulShutdown stops components in dependency order:
// 1. Event streams, then the HTTP server (no new driver calls)
// 2. Scheduler, worker pool and expiry timers (no new background work)
// 3. Final save, while the store is still open
// 4. Event publisher (flush pending events)
// 5. Store
//
// Errors are logged and do not stop the sequence.
func GracefulShutdown(ctx context.Context, c ShutdownComponents) {
	// Open streams never go idle, so close them before draining the server
	if c.Hub != nil {
		c.Hub.Stop()
	}
	if c.Server != nil {
		slog.Info(LogMsgShuttingDownServer)
		if err := c.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if c.Scheduler != nil {
		c.Scheduler.Stop()
	}
	if c.Pool != nil {
		c.Pool.Stop()
	}
	if c.ExpiryWorker != nil {
		if err := c.ExpiryWorker.Shutdown(ctx); err != nil {
			slog.Error(LogMsgWorkerShutdownFailed, "worker", worker.WorkerNameEventExpiry, "error", err)
		}
	}

	if c.Session != nil && c.Session.Ready() {
		if _, err := c.Session.ManualSave(ctx); err != nil {
			slog.Error(LogMsgFinalSaveFailed, "error", err)
		} else {
			slog.Info(LogMsgFinalSave)
		}
	}

	if c.ResilientPublisher != nil {
		slog.Info(LogMsgShuttingDownEventPublisher)
		if err := c.ResilientPublisher.Shutdown(ctx); err != nil {
			slog.Error(LogMsgResilientPublisherFailed, "error", err)
		}
	}

	if c.Store != nil {
		if err := c.Store.Close(); err != nil {
			slog.Error(LogMsgStoreCloseFailed, "error", err)
		}
	}

	slog.Info(LogMsgServerStopped)
}
