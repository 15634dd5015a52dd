package persistence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/GrowRoom_Go/internal/clock"
	"github.com/osse101/GrowRoom_Go/internal/game"
	"github.com/osse101/GrowRoom_Go/internal/storage"
)

// failingStore errors on every call
type failingStore struct{ err error }

func (f failingStore) Load(context.Context, string) ([]byte, error) { return nil, f.err }
func (f failingStore) Save(context.Context, string, []byte) error   { return f.err }
func (f failingStore) Delete(context.Context, string) error         { return f.err }
func (f failingStore) Close() error                                 { return nil }

func newAdapter(store storage.Store) (*Adapter, *clock.SimulatedClock) {
	clk := clock.NewSimulatedClock(testNow)
	return NewAdapter(store, newCodec(), "", clk), clk
}

func TestAdapter_LoadMissingStartsNewGame(t *testing.T) {
	a, _ := newAdapter(storage.NewMemoryStore())
	assert.Equal(t, DefaultKey, a.Key())

	state, err := a.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, game.NewState(testNow), state)
}

func TestAdapter_SaveThenLoad(t *testing.T) {
	store := storage.NewMemoryStore()
	a, clk := newAdapter(store)
	ctx := context.Background()

	clk.Advance(10 * time.Second)
	saved, size, err := a.Save(ctx, busyState())
	require.NoError(t, err)
	assert.Positive(t, size)
	assert.Equal(t, testNow.Add(10*time.Second), saved.LastSavedAt)

	loaded, err := a.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, saved, loaded)
}

func TestAdapter_SaveDoesNotMutateInput(t *testing.T) {
	a, _ := newAdapter(storage.NewMemoryStore())
	state := busyState()
	_, _, err := a.Save(context.Background(), state)
	require.NoError(t, err)
	assert.True(t, state.LastSavedAt.IsZero())
}

func TestAdapter_LoadCorruptBlob(t *testing.T) {
	store := storage.NewMemoryStore()
	require.NoError(t, store.Save(context.Background(), DefaultKey, []byte("{broken")))
	a, _ := newAdapter(store)

	state, err := a.Load(context.Background())
	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, game.NewState(testNow), state)
}

func TestAdapter_StoreFailures(t *testing.T) {
	boom := errors.New("disk on fire")
	a, _ := newAdapter(failingStore{err: boom})
	ctx := context.Background()

	state, err := a.Load(ctx)
	require.ErrorIs(t, err, boom)
	var loadErr *LoadError
	assert.ErrorAs(t, err, &loadErr)
	assert.Equal(t, game.NewState(testNow), state, "a broken store still yields a playable game")

	original := busyState()
	returned, _, err := a.Save(ctx, original)
	require.ErrorIs(t, err, boom)
	assert.Equal(t, original, returned)

	_, err = a.Reset(ctx)
	assert.ErrorIs(t, err, boom)
}

func TestAdapter_Reset(t *testing.T) {
	store := storage.NewMemoryStore()
	a, clk := newAdapter(store)
	ctx := context.Background()

	_, _, err := a.Save(ctx, busyState())
	require.NoError(t, err)

	clk.Advance(time.Minute)
	fresh, err := a.Reset(ctx)
	require.NoError(t, err)
	assert.Equal(t, game.NewState(testNow.Add(time.Minute)), fresh)

	_, err = store.Load(ctx, DefaultKey)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}
