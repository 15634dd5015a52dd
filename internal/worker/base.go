package worker

import (
	"context"
	"sync"
	"time"

	"github.com/osse101/GrowRoom_Go/internal/logger"
)

// BaseWorker provides common functionality for background workers that
// manage one-shot timers keyed by a string ID
type BaseWorker struct {
	mu     sync.Mutex
	timers map[string]*time.Timer
	closed bool
	wg     sync.WaitGroup
}

func (w *BaseWorker) init() {
	if w.timers == nil {
		w.timers = make(map[string]*time.Timer)
	}
}

// schedule runs fn after d in a tracked goroutine, replacing any timer
// already pending under id. A non-positive d runs fn right away. Nothing is
// scheduled or started once shutdown has begun.
func (w *BaseWorker) schedule(id string, d time.Duration, fn func()) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	if existing, ok := w.timers[id]; ok {
		existing.Stop()
		delete(w.timers, id)
	}
	if d <= 0 {
		w.goLocked(fn)
		return
	}

	var timer *time.Timer
	timer = time.AfterFunc(d, func() {
		w.mu.Lock()
		defer w.mu.Unlock()
		if w.closed {
			return
		}
		if w.timers[id] == timer {
			delete(w.timers, id)
		}
		w.goLocked(fn)
	})
	w.timers[id] = timer
}

// goLocked starts fn as a tracked goroutine. Caller holds mu and has checked
// closed, so wg.Add never races with the Wait in shutdownInternal.
func (w *BaseWorker) goLocked(fn func()) {
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		fn()
	}()
}

func (w *BaseWorker) pending() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.timers)
}

func (w *BaseWorker) isClosed() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.closed
}

func (w *BaseWorker) shutdownInternal(ctx context.Context, workerName string) error {
	log := logger.FromContext(ctx)
	log.Info("Shutting down " + workerName)

	w.mu.Lock()
	w.closed = true
	for id, timer := range w.timers {
		timer.Stop()
		log.Info(LogMsgCancelledExpiry, "worker", workerName, "id", id)
	}
	w.timers = make(map[string]*time.Timer)
	w.mu.Unlock()

	done := make(chan struct{})
	go func() {
		w.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		log.Info(workerName + " shutdown complete")
		return nil
	case <-ctx.Done():
		log.Warn(workerName + " shutdown timeout")
		return ctx.Err()
	}
}
