package worker

import "time"

// ============================================================================
// Log Messages - Worker Pool
// ============================================================================

// Log messages for pool operations
const (
	LogMsgWorkerJobFailed = "Worker job failed"
	LogMsgPoolStopped     = "Worker pool stopped"
)

// ============================================================================
// Log Messages - Simulation Jobs
// ============================================================================

// Log messages for the recurring simulation jobs
const (
	LogMsgTickApplied       = "Tick applied"
	LogMsgAutosaveSkipped   = "Autosave skipped"
	LogMsgEventRollDeclined = "Automatic event roll declined"
)

// ============================================================================
// Log Messages - Event Expiry Worker
// ============================================================================

// Log messages for event expiry worker operations
const (
	LogMsgSchedulingEventExpiry = "Scheduling event expiry"
	LogMsgExpiringEvent         = "Expiring random event"
	LogMsgEventExpiryFailed     = "Failed to expire random event"
	LogMsgEventExpiryPayload    = "Event expiry worker received unreadable payload"
	LogMsgCancelledExpiry       = "Cancelled pending event expiry"
)

// Worker names, used in shutdown logs
const (
	WorkerNameEventExpiry = "event expiry worker"
)

// AutoEventChance is the probability an automatic event roll starts an event
const AutoEventChance = 0.25

// Default pool sizing for the simulation loop
const (
	DefaultWorkerCount = 2
	DefaultQueueSize   = 16
)

// ============================================================================
// Test Configuration
// ============================================================================

// Test pool configuration values used in pool_test.go
const (
	TestWorkerCount           = 2
	TestQueueSize             = 10
	TestExpectedJobCount      = 2
	TestWorkerProcessWaitTime = 100 * time.Millisecond
)
