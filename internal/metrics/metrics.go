package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/osse101/GrowRoom_Go/internal/domain"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameHTTPRequestsTotal,
			Help:      HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      MetricNameHTTPRequestDuration,
			Help:      HelpTextHTTPRequestDuration,
			Buckets:   HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      MetricNameHTTPRequestsInFlight,
			Help:      HelpTextHTTPRequestsInFlight,
		},
	)
)

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameEventsPublished,
			Help:      HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameEventHandlerErrors,
			Help:      HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Simulation Metrics
var (
	PlantsPlanted = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: Namespace, Name: MetricNamePlantsPlanted, Help: HelpTextPlantsPlanted},
		[]string{LabelStrain},
	)

	PlantsHarvested = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: Namespace, Name: MetricNamePlantsHarvested, Help: HelpTextPlantsHarvested},
		[]string{LabelStrain},
	)

	BudsHarvested = promauto.NewCounter(
		prometheus.CounterOpts{Namespace: Namespace, Name: MetricNameBudsHarvested, Help: HelpTextBudsHarvested},
	)

	PhaseAdvances = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: Namespace, Name: MetricNamePhaseAdvances, Help: HelpTextPhaseAdvances},
		[]string{LabelPhase},
	)

	CareActions = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: Namespace, Name: MetricNameCareActions, Help: HelpTextCareActions},
		[]string{LabelAction},
	)

	BudsSold = promauto.NewCounter(
		prometheus.CounterOpts{Namespace: Namespace, Name: MetricNameBudsSold, Help: HelpTextBudsSold},
	)

	NugsEarned = promauto.NewCounter(
		prometheus.CounterOpts{Namespace: Namespace, Name: MetricNameNugsEarned, Help: HelpTextNugsEarned},
	)

	Haggles = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: Namespace, Name: MetricNameHaggles, Help: HelpTextHaggles},
		[]string{LabelResult},
	)

	QuestsClaimed = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: Namespace, Name: MetricNameQuestsClaimed, Help: HelpTextQuestsClaimed},
		[]string{LabelQuest},
	)

	RandomEvents = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: Namespace, Name: MetricNameRandomEvents, Help: HelpTextRandomEvents},
		[]string{LabelEvent, LabelState},
	)

	Saves = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: Namespace, Name: MetricNameSaves, Help: HelpTextSaves},
		[]string{LabelSource},
	)

	SaveBytes = promauto.NewGauge(
		prometheus.GaugeOpts{Namespace: Namespace, Name: MetricNameSaveBytes, Help: HelpTextSaveBytes},
	)

	OperationsDeclined = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: Namespace, Name: MetricNameOperationsDeclined, Help: HelpTextOperationsDeclined},
		[]string{LabelOp, LabelReason},
	)

	InvariantViolations = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: Namespace, Name: MetricNameInvariantViolations, Help: HelpTextInvariantViolations},
		[]string{LabelOp},
	)

	SecurityRejections = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: Namespace, Name: MetricNameSecurityRejections, Help: HelpTextSecurityRejections},
		[]string{LabelKind},
	)
)

// State gauges
var (
	Nugs = promauto.NewGauge(
		prometheus.GaugeOpts{Namespace: Namespace, Name: MetricNameNugs, Help: HelpTextNugs},
	)

	Buds = promauto.NewGauge(
		prometheus.GaugeOpts{Namespace: Namespace, Name: MetricNameBuds, Help: HelpTextBuds},
	)

	PlantsGrowing = promauto.NewGauge(
		prometheus.GaugeOpts{Namespace: Namespace, Name: MetricNamePlantsGrowing, Help: HelpTextPlantsGrowing},
	)
)

// RecordState sets the state gauges from a snapshot
func RecordState(state domain.GameState) {
	Nugs.Set(float64(state.Nugs))
	Buds.Set(float64(state.Buds))

	growing := 0
	for _, p := range state.Slots {
		if p != nil {
			growing++
		}
	}
	PlantsGrowing.Set(float64(growing))
}

// RecordDeclined counts a declined driver operation
func RecordDeclined(op, reason string) {
	OperationsDeclined.WithLabelValues(op, reason).Inc()
}

// RecordInvariantViolation counts an engine invariant violation
func RecordInvariantViolation(v *domain.InvariantViolation) {
	InvariantViolations.WithLabelValues(v.Op).Inc()
}

// RecordSecurityRejection counts a request refused for auth or rate reasons
func RecordSecurityRejection(kind string) {
	SecurityRejections.WithLabelValues(kind).Inc()
}
