package scheduler

// Log messages
const (
	LogMsgJobScheduled = "Job scheduled"
	LogMsgJobDisabled  = "Job disabled, interval not positive"
	LogMsgJobSkipped   = "Worker queue full, skipping run"
	LogMsgStopped      = "Scheduler stopped"
)
