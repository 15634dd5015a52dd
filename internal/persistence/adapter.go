package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/osse101/GrowRoom_Go/internal/clock"
	"github.com/osse101/GrowRoom_Go/internal/domain"
	"github.com/osse101/GrowRoom_Go/internal/game"
	"github.com/osse101/GrowRoom_Go/internal/logger"
	"github.com/osse101/GrowRoom_Go/internal/storage"
)

// Adapter reads and writes the single save through a Store
type Adapter struct {
	store storage.Store
	codec *Codec
	key   string
	clock clock.Clock
}

// NewAdapter creates an adapter for key. An empty key means DefaultKey.
func NewAdapter(store storage.Store, codec *Codec, key string, clk clock.Clock) *Adapter {
	if key == "" {
		key = DefaultKey
	}
	return &Adapter{store: store, codec: codec, key: key, clock: clk}
}

// Key returns the store key the adapter writes to
func (a *Adapter) Key() string {
	return a.key
}

// Load returns the saved state, or a new game when there is none. A store
// or decode failure still returns a playable new game alongside a *LoadError.
func (a *Adapter) Load(ctx context.Context) (domain.GameState, error) {
	now := a.clock.Now()
	log := logger.FromContext(ctx)

	data, err := a.store.Load(ctx, a.key)
	if errors.Is(err, storage.ErrNotFound) {
		log.Info(LogMsgSaveNotFound, "key", a.key)
		return game.NewState(now), nil
	}
	if err != nil {
		log.Warn(LogMsgLoadFallback, "key", a.key, "error", err)
		return game.NewState(now), &LoadError{Msg: ErrMsgStoreLoad, Err: err}
	}

	state, err := a.codec.Deserialize(ctx, data, now)
	if err != nil {
		log.Warn(LogMsgLoadFallback, "key", a.key, "error", err)
	}
	return state, err
}

// Save stamps LastSavedAt and writes the state. It returns the stamped state
// and the blob size.
func (a *Adapter) Save(ctx context.Context, state domain.GameState) (domain.GameState, int, error) {
	saved := state.Clone()
	saved.LastSavedAt = a.clock.Now()

	data, err := a.codec.Serialize(saved)
	if err != nil {
		return state, 0, err
	}
	if err := a.store.Save(ctx, a.key, data); err != nil {
		return state, 0, fmt.Errorf("%s: %w", ErrMsgStoreSave, err)
	}

	logger.FromContext(ctx).Debug(LogMsgStateSaved, "key", a.key, "bytes", len(data))
	return saved, len(data), nil
}

// Reset deletes the save and returns a new game
func (a *Adapter) Reset(ctx context.Context) (domain.GameState, error) {
	if err := a.store.Delete(ctx, a.key); err != nil {
		return domain.GameState{}, fmt.Errorf("%s: %w", ErrMsgStoreDelete, err)
	}
	logger.FromContext(ctx).Info(LogMsgStateReset, "key", a.key)
	return game.NewState(a.clock.Now()), nil
}
