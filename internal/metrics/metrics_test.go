package metrics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/GrowRoom_Go/internal/domain"
	"github.com/osse101/GrowRoom_Go/internal/event"
)

var testNow = time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)

func TestEventMetricsCollector(t *testing.T) {
	bus := event.NewMemoryBus()
	NewEventMetricsCollector().Register(bus)
	ctx := context.Background()
	plant := &domain.Plant{ID: "p1", StrainID: "metrics_kush", PhaseIndex: 4}

	harvestedBefore := testutil.ToFloat64(PlantsHarvested.WithLabelValues("metrics_kush"))
	budsBefore := testutil.ToFloat64(BudsHarvested)
	soldBefore := testutil.ToFloat64(BudsSold)
	wonBefore := testutil.ToFloat64(Haggles.WithLabelValues(ResultWon))
	manualBefore := testutil.ToFloat64(Saves.WithLabelValues(event.SourceManual))

	require.NoError(t, bus.Publish(ctx, event.NewPlantEvent(event.PlantPlanted, 0, plant, 10, testNow)))
	require.NoError(t, bus.Publish(ctx, event.NewPlantHarvestedEvent(0, plant,
		domain.HarvestYield{BudsYielded: 12, QualityMultiplier: 1.2}, testNow)))
	require.NoError(t, bus.Publish(ctx, event.NewOfferAcceptedEvent(
		domain.TradeOffer{ID: "o", Quantity: 5, PricePerBud: 2}, 10, testNow)))
	require.NoError(t, bus.Publish(ctx, event.NewOfferHaggledEvent("o", true, 2, 2.4, testNow)))
	require.NoError(t, bus.Publish(ctx, event.NewGameSavedEvent(event.GameSaved, "k", 321, true, testNow)))

	assert.Equal(t, 1.0, testutil.ToFloat64(PlantsPlanted.WithLabelValues("metrics_kush")))
	assert.Equal(t, harvestedBefore+1, testutil.ToFloat64(PlantsHarvested.WithLabelValues("metrics_kush")))
	assert.Equal(t, budsBefore+12, testutil.ToFloat64(BudsHarvested))
	assert.Equal(t, soldBefore+5, testutil.ToFloat64(BudsSold))
	assert.Equal(t, wonBefore+1, testutil.ToFloat64(Haggles.WithLabelValues(ResultWon)))
	assert.Equal(t, manualBefore+1, testutil.ToFloat64(Saves.WithLabelValues(event.SourceManual)))
	assert.Equal(t, 321.0, testutil.ToFloat64(SaveBytes))
}

func TestEventMetricsCollector_BadPayloadIsNotAnError(t *testing.T) {
	err := NewEventMetricsCollector().HandleEvent(context.Background(), event.Event{
		Type:    event.PlantHarvested,
		Payload: "not a payload",
	})
	assert.NoError(t, err)
}

func TestRecordState(t *testing.T) {
	state := domain.GameState{
		Nugs:  77,
		Buds:  3,
		Slots: []*domain.Plant{{ID: "a"}, nil, {ID: "b"}},
	}
	RecordState(state)
	assert.Equal(t, 77.0, testutil.ToFloat64(Nugs))
	assert.Equal(t, 3.0, testutil.ToFloat64(Buds))
	assert.Equal(t, 2.0, testutil.ToFloat64(PlantsGrowing))
}

func TestRecordDeclinedAndViolations(t *testing.T) {
	RecordDeclined("water", domain.ErrMsgOnCooldown)
	RecordInvariantViolation(&domain.InvariantViolation{Op: "harvest", Err: domain.ErrNotReady})
	assert.GreaterOrEqual(t, testutil.ToFloat64(OperationsDeclined.WithLabelValues("water", domain.ErrMsgOnCooldown)), 1.0)
	assert.GreaterOrEqual(t, testutil.ToFloat64(InvariantViolations.WithLabelValues("harvest")), 1.0)
}

func TestMiddleware_UsesRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Middleware)
	r.Post("/plants/{slot}/water", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	})

	before := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues(http.MethodPost, "/plants/{slot}/water", "202"))
	for _, slot := range []string{"0", "1", "2"} {
		req := httptest.NewRequest(http.MethodPost, "/plants/"+slot+"/water", nil)
		r.ServeHTTP(httptest.NewRecorder(), req)
	}
	after := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues(http.MethodPost, "/plants/{slot}/water", "202"))
	assert.Equal(t, before+3, after)
}

func TestRecordSecurityRejection(t *testing.T) {
	before := testutil.ToFloat64(SecurityRejections.WithLabelValues("rate"))
	RecordSecurityRejection("rate")
	RecordSecurityRejection("rate")
	assert.Equal(t, before+2, testutil.ToFloat64(SecurityRejections.WithLabelValues("rate")))
}
