package metrics

// ============================================================================
// Metric Names
// ============================================================================

// Namespace prefixes every metric
const Namespace = "growroom"

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Simulation metric names
const (
	MetricNamePlantsPlanted       = "plants_planted_total"
	MetricNamePlantsHarvested     = "plants_harvested_total"
	MetricNameBudsHarvested       = "buds_harvested_total"
	MetricNamePhaseAdvances       = "phase_advances_total"
	MetricNameCareActions         = "care_actions_total"
	MetricNameBudsSold            = "buds_sold_total"
	MetricNameNugsEarned          = "nugs_earned_total"
	MetricNameHaggles             = "haggles_total"
	MetricNameQuestsClaimed       = "quests_claimed_total"
	MetricNameRandomEvents        = "random_events_total"
	MetricNameSaves               = "saves_total"
	MetricNameSaveBytes           = "save_bytes"
	MetricNameOperationsDeclined  = "operations_declined_total"
	MetricNameInvariantViolations = "invariant_violations_total"
	MetricNameSecurityRejections  = "security_rejections_total"
	MetricNameNugs                = "nugs"
	MetricNameBuds                = "buds"
	MetricNamePlantsGrowing       = "plants_growing"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Simulation metric help text
const (
	HelpTextPlantsPlanted       = "Seeds planted, by strain"
	HelpTextPlantsHarvested     = "Plants harvested, by strain"
	HelpTextBudsHarvested       = "Buds produced by harvests"
	HelpTextPhaseAdvances       = "Growth phase advances, by phase reached"
	HelpTextCareActions         = "Water and fertilizer applications, by action"
	HelpTextBudsSold            = "Buds sold to trade offers"
	HelpTextNugsEarned          = "Nugs earned from trade offers"
	HelpTextHaggles             = "Haggle attempts, by result"
	HelpTextQuestsClaimed       = "Quest rewards claimed, by quest"
	HelpTextRandomEvents        = "Random event transitions, by event and state"
	HelpTextSaves               = "State saves, by source"
	HelpTextSaveBytes           = "Size of the last saved state blob"
	HelpTextOperationsDeclined  = "Driver operations declined, by operation and reason"
	HelpTextInvariantViolations = "Engine invariant violations, by operation"
	HelpTextSecurityRejections  = "Requests rejected by the API guard, by kind"
	HelpTextNugs                = "Current nugs balance"
	HelpTextBuds                = "Current buds balance"
	HelpTextPlantsGrowing       = "Occupied growth slots"
)

// ============================================================================
// Labels
// ============================================================================

const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelType   = "type"
	LabelStrain = "strain"
	LabelPhase  = "phase"
	LabelAction = "action"
	LabelResult = "result"
	LabelQuest  = "quest"
	LabelEvent  = "event"
	LabelState  = "state"
	LabelSource = "source"
	LabelOp     = "op"
	LabelKind   = "kind"
	LabelReason = "reason"
)

// Label values
const (
	ResultWon       = "won"
	ResultLost      = "lost"
	ActionWater     = "water"
	ActionFertilize = "fertilize"
	StateStarted    = "started"
	StateEnded      = "ended"
	PathUnmatched   = "unmatched"
)

// HTTPLatencyBuckets are the histogram buckets for request latency
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1}

// Log messages
const (
	LogMsgMetricsRecorded     = "Metrics recorded for event"
	LogMsgEventPayloadInvalid = "Event payload did not decode for metrics"
)
