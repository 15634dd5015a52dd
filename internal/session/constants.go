package session

// Log messages
const (
	LogMsgSessionLoaded      = "Session loaded"
	LogMsgLoadFallback       = "Save unusable, session started from a new game"
	LogMsgOperationDeclined  = "Operation declined"
	LogMsgOperationAccepted  = "Operation accepted"
	LogMsgAutosaved          = "Autosaved"
	LogMsgSaveFailed         = "Save failed"
	LogMsgManualSave         = "Manual save"
	LogMsgGameReset          = "Game reset"
	LogMsgPublishFailed      = "Failed to publish event"
	LogMsgEventExpired       = "Random event ended"
)

// Operation names for operations that exist only at the session level
const (
	OpManualSave = "manual_save"
	OpAutosave   = "autosave"
	OpReset      = "reset"
)
