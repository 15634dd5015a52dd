package bootstrap

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/osse101/GrowRoom_Go/internal/config"
	"github.com/osse101/GrowRoom_Go/internal/event"
)

// InitializeEventSystem returns the in-process bus together with the
// resilient publisher that the session publishes through. Undeliverable
// events end up in cfg.DeadLetterPath.
func InitializeEventSystem(cfg *config.Config) (*event.MemoryBus, *event.ResilientPublisher, error) {
	if err := os.MkdirAll(filepath.Dir(cfg.DeadLetterPath), DirPermission); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateDeadLetterDir, err)
	}

	retries := orDefault(cfg.EventMaxRetries, EventDefaultMaxRetries)
	delay := orDefault(cfg.EventRetryDelay, EventDefaultRetryDelay)

	bus := event.NewMemoryBus()
	publisher, err := event.NewResilientPublisher(bus, retries, delay, cfg.DeadLetterPath)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", ErrMsgFailedCreatePublisher, err)
	}

	slog.Info(LogMsgEventSystemInitialized,
		"max_retries", retries,
		"retry_delay", delay,
		"deadletter_path", cfg.DeadLetterPath)
	return bus, publisher, nil
}

func orDefault[T comparable](v, fallback T) T {
	var zero T
	if v == zero {
		return fallback
	}
	return v
}
