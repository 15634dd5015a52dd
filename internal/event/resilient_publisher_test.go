package event

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// flakyBus fails the first failCount publishes
type flakyBus struct {
	mu        sync.Mutex
	failCount int
	calls     []Event
}

func (m *flakyBus) Publish(ctx context.Context, event Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, event)
	if m.failCount != 0 {
		if m.failCount > 0 {
			m.failCount--
		}
		return errors.New("publish failed")
	}
	return nil
}

func (m *flakyBus) Subscribe(eventType Type, handler Handler) {}

func (m *flakyBus) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

func newTestPublisher(t *testing.T, bus Bus, maxRetries int) (*ResilientPublisher, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "deadletter.jsonl")
	p, err := NewResilientPublisher(bus, maxRetries, 5*time.Millisecond, path)
	require.NoError(t, err)
	return p, path
}

func readDeadLetters(t *testing.T, path string) []DeadLetterEntry {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	entries, err := ReadDeadLetters(f)
	require.NoError(t, err)
	return entries
}

func countLines(path string) int {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0
	}
	return bytes.Count(data, []byte("\n"))
}

func TestResilientPublisher_SuccessfulPublish(t *testing.T) {
	bus := &flakyBus{}
	p, path := newTestPublisher(t, bus, 3)

	require.NoError(t, p.Publish(context.Background(), Event{Type: PlantPlanted}))
	require.NoError(t, p.Shutdown(context.Background()))

	assert.Equal(t, 1, bus.CallCount())
	assert.Empty(t, readDeadLetters(t, path))
}

func TestResilientPublisher_RetrySuccess(t *testing.T) {
	bus := &flakyBus{failCount: 2}
	p, path := newTestPublisher(t, bus, 5)

	p.PublishWithRetry(context.Background(), Event{Type: OfferAccepted})

	assert.Eventually(t, func() bool { return bus.CallCount() == 3 }, time.Second, 5*time.Millisecond)
	require.NoError(t, p.Shutdown(context.Background()))
	assert.Empty(t, readDeadLetters(t, path))
}

func TestResilientPublisher_RetryExhaustion(t *testing.T) {
	bus := &flakyBus{failCount: -1}
	p, path := newTestPublisher(t, bus, 2)

	p.PublishWithRetry(context.Background(), Event{Type: QuestClaimed})

	// one initial publish plus two retries
	assert.Eventually(t, func() bool { return countLines(path) == 1 }, time.Second, 5*time.Millisecond)
	require.NoError(t, p.Shutdown(context.Background()))

	entries := readDeadLetters(t, path)
	require.Len(t, entries, 1)
	assert.Equal(t, QuestClaimed, entries[0].Event.Type)
	assert.Equal(t, 3, entries[0].Attempts)
	assert.Equal(t, "publish failed", entries[0].LastError)
	assert.Equal(t, 3, bus.CallCount())
}

func TestResilientPublisher_ShutdownDeadLettersPending(t *testing.T) {
	bus := &flakyBus{failCount: -1}
	path := filepath.Join(t.TempDir(), "deadletter.jsonl")
	p, err := NewResilientPublisher(bus, 5, time.Hour, path)
	require.NoError(t, err)

	p.PublishWithRetry(context.Background(), Event{Type: GameSaved})
	require.NoError(t, p.Shutdown(context.Background()))

	entries := readDeadLetters(t, path)
	require.Len(t, entries, 1)
	assert.Equal(t, GameSaved, entries[0].Event.Type)
}

func TestResilientPublisher_ShutdownTwice(t *testing.T) {
	p, _ := newTestPublisher(t, &flakyBus{}, 1)
	require.NoError(t, p.Shutdown(context.Background()))
	assert.NotPanics(t, func() { _ = p.Shutdown(context.Background()) })
}

func TestResilientPublisher_ConcurrentPublishes(t *testing.T) {
	bus := &flakyBus{}
	p, _ := newTestPublisher(t, bus, 1)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p.PublishWithRetry(context.Background(), Event{Type: PlantWatered})
		}()
	}
	wg.Wait()
	require.NoError(t, p.Shutdown(context.Background()))
	assert.Equal(t, 20, bus.CallCount())
}
