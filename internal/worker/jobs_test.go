package worker

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/GrowRoom_Go/internal/clock"
	"github.com/osse101/GrowRoom_Go/internal/domain"
	"github.com/osse101/GrowRoom_Go/internal/event"
	"github.com/osse101/GrowRoom_Go/internal/game"
	"github.com/osse101/GrowRoom_Go/internal/session"
)

type fakeSim struct {
	mu         sync.Mutex
	ticks      int
	saves      int
	chances    []float64
	tickEvents int
	saveErr    error
	saved      bool
	rollResult session.Result
}

func (f *fakeSim) Tick(ctx context.Context) game.TickResult {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ticks++
	return game.TickResult{Delta: time.Second, PlantsGrown: 1}
}

func (f *fakeSim) Autosave(ctx context.Context) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.saves++
	return f.saved, f.saveErr
}

func (f *fakeSim) MaybeTriggerEvent(ctx context.Context, chance float64) session.Result {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.chances = append(f.chances, chance)
	return f.rollResult
}

func (f *fakeSim) TickEvent(ctx context.Context) session.Result {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tickEvents++
	return session.Result{Accepted: true}
}

func (f *fakeSim) tickEventCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.tickEvents
}

// MockSimulation records the calls the jobs make
type MockSimulation struct {
	mock.Mock
}

func (m *MockSimulation) Tick(ctx context.Context) game.TickResult {
	args := m.Called(ctx)
	return args.Get(0).(game.TickResult)
}

func (m *MockSimulation) Autosave(ctx context.Context) (bool, error) {
	args := m.Called(ctx)
	return args.Bool(0), args.Error(1)
}

func (m *MockSimulation) MaybeTriggerEvent(ctx context.Context, chance float64) session.Result {
	args := m.Called(ctx, chance)
	return args.Get(0).(session.Result)
}

func (m *MockSimulation) TickEvent(ctx context.Context) session.Result {
	args := m.Called(ctx)
	return args.Get(0).(session.Result)
}

func TestJobs_DriveSimulation(t *testing.T) {
	ctx := context.Background()
	sim := new(MockSimulation)
	sim.On("Tick", ctx).Return(game.TickResult{}).Once()
	sim.On("Autosave", ctx).Return(false, nil).Once()
	sim.On("MaybeTriggerEvent", ctx, AutoEventChance).Return(session.Result{Accepted: true}).Once()

	require.NoError(t, TickJob{Sim: sim}.Process(ctx))
	require.NoError(t, AutosaveJob{Sim: sim}.Process(ctx))
	require.NoError(t, EventRollJob{Sim: sim}.Process(ctx))

	sim.AssertExpectations(t)
	sim.AssertNotCalled(t, "TickEvent", mock.Anything)
}

func TestTickJob(t *testing.T) {
	sim := &fakeSim{}
	require.NoError(t, TickJob{Sim: sim}.Process(context.Background()))
	assert.Equal(t, 1, sim.ticks)
}

func TestAutosaveJob(t *testing.T) {
	sim := &fakeSim{saved: true}
	require.NoError(t, AutosaveJob{Sim: sim}.Process(context.Background()))

	sim.saveErr = errors.New("disk full")
	err := AutosaveJob{Sim: sim}.Process(context.Background())
	assert.EqualError(t, err, "disk full")
	assert.Equal(t, 2, sim.saves)
}

func TestEventRollJob(t *testing.T) {
	sim := &fakeSim{rollResult: session.Result{Reason: domain.ErrMsgEventsDisabled}}

	require.NoError(t, EventRollJob{Sim: sim}.Process(context.Background()))
	require.NoError(t, EventRollJob{Sim: sim, Chance: 0.9}.Process(context.Background()))
	assert.Equal(t, []float64{AutoEventChance, 0.9}, sim.chances)
}

func TestJobNames(t *testing.T) {
	assert.Equal(t, "tick", jobName(TickJob{}))
	assert.Equal(t, "autosave", jobName(AutosaveJob{}))
	assert.Equal(t, "event_roll", jobName(EventRollJob{}))
	assert.Equal(t, "anonymous", jobName(&testJob{}))
}

func TestEventExpiryWorker_ExpiresAtDeadline(t *testing.T) {
	sim := &fakeSim{}
	w := NewEventExpiryWorker(sim, clock.NewRealClock())
	bus := event.NewMemoryBus()
	w.Subscribe(bus)

	ge := &domain.GameEvent{ID: "market_boom", EndsAt: time.Now().Add(20 * time.Millisecond)}
	require.NoError(t, bus.Publish(context.Background(), event.NewRandomEvent(event.RandomEventStart, ge, time.Now())))
	assert.Equal(t, 1, w.pending())

	assert.Eventually(t, func() bool { return sim.tickEventCount() == 1 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, 0, w.pending())
	require.NoError(t, w.Shutdown(context.Background()))
}

func TestEventExpiryWorker_PastDeadlineRunsNow(t *testing.T) {
	sim := &fakeSim{}
	clk := clock.NewSimulatedClock(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	w := NewEventExpiryWorker(sim, clk)

	w.Start(&domain.GameEvent{ID: "drought", EndsAt: clk.Now().Add(-time.Second)})
	assert.Eventually(t, func() bool { return sim.tickEventCount() == 1 }, time.Second, 5*time.Millisecond)
	require.NoError(t, w.Shutdown(context.Background()))
}

func TestEventExpiryWorker_RetriggerReplacesTimer(t *testing.T) {
	sim := &fakeSim{}
	clk := clock.NewRealClock()
	w := NewEventExpiryWorker(sim, clk)

	w.scheduleExpiry("growth_spurt", time.Now().Add(time.Hour))
	w.scheduleExpiry("growth_spurt", time.Now().Add(2*time.Hour))
	assert.Equal(t, 1, w.pending())

	require.NoError(t, w.Shutdown(context.Background()))
	assert.Equal(t, 0, w.pending())
	assert.Zero(t, sim.tickEventCount())
}

func TestEventExpiryWorker_NothingStartsAfterShutdown(t *testing.T) {
	sim := &fakeSim{}
	w := NewEventExpiryWorker(sim, clock.NewRealClock())

	w.scheduleExpiry("drought", time.Now().Add(10*time.Millisecond))
	require.NoError(t, w.Shutdown(context.Background()))
	assert.True(t, w.isClosed())

	w.schedule("late", 0, func() { t.Error("ran after shutdown") })
	w.scheduleExpiry("market_boom", time.Now().Add(time.Millisecond))
	assert.Zero(t, w.pending())

	time.Sleep(30 * time.Millisecond)
	assert.Zero(t, sim.tickEventCount())
}

func TestEventExpiryWorker_ConcurrentShutdown(t *testing.T) {
	for i := 0; i < 50; i++ {
		sim := &fakeSim{}
		w := NewEventExpiryWorker(sim, clock.NewRealClock())
		w.scheduleExpiry("growth_spurt", time.Now())
		w.scheduleExpiry("drought", time.Now().Add(time.Millisecond))
		require.NoError(t, w.Shutdown(context.Background()))
		require.LessOrEqual(t, sim.tickEventCount(), 2)
	}
}

func TestEventExpiryWorker_IgnoresBadPayload(t *testing.T) {
	w := NewEventExpiryWorker(&fakeSim{}, clock.NewRealClock())
	err := w.handleEventStarted(context.Background(), event.Event{Type: event.RandomEventStart, Payload: "junk"})
	assert.NoError(t, err)
	assert.Zero(t, w.pending())
}
