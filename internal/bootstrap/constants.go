package bootstrap

import "time"

const (
	DirPermission  = 0o755
	FilePermission = 0o644
)

// Session log files. One file is opened per process start and the oldest are
// pruned so that LogFileRetentionCount remain alongside the new one.
const (
	LogFileNamePattern     = "session_%s.log"
	LogFileTimestampFormat = "2006-01-02_15-04-05"
	LogFileExtension       = ".log"
	LogFileRetentionCount  = 9
)

// Fallbacks for a config that leaves event retries unset
const (
	EventDefaultMaxRetries = 5
	EventDefaultRetryDelay = 2 * time.Second
)

// Startup
const (
	LogMsgStarting                   = "Starting GrowRoom"
	LogMsgLoggingInitialized         = "Logging initialized"
	LogMsgConfigurationLoaded        = "Configuration loaded"
	LogMsgStoreOpened                = "Save store opened"
	LogMsgCatalogLoaded              = "Catalog loaded"
	LogMsgCatalogDefault             = "No catalog file, using built-in catalog"
	LogMsgEventSystemInitialized     = "Event system initialized"
	LogMsgMetricsCollectorRegistered = "Metrics collector registered"
	LogMsgExpiryWorkerSubscribed     = "Event expiry worker subscribed"
	LogMsgFailedDeleteOldLog         = "Failed to delete old log file"
)

// Wrapped into returned errors
const (
	ErrMsgFailedCreateLogsDir       = "create log directory"
	ErrMsgFailedOpenLogFile         = "open log file"
	ErrMsgFailedCreateStoreDir      = "create store directory"
	ErrMsgFailedOpenStore           = "open store"
	ErrMsgFailedLoadCatalog         = "load catalog"
	ErrMsgFailedCreateDeadLetterDir = "create dead-letter directory"
	ErrMsgFailedCreatePublisher     = "start resilient publisher"
)

// Shutdown
const (
	LogMsgShuttingDownServer         = "Shutting down server..."
	LogMsgServerStopped              = "Server stopped"
	LogMsgServerForcedShutdown       = "Server forced to shutdown"
	LogMsgWorkerShutdownFailed       = "Worker shutdown failed"
	LogMsgFinalSave                  = "Final save written"
	LogMsgFinalSaveFailed            = "Final save failed"
	LogMsgShuttingDownEventPublisher = "Shutting down event publisher..."
	LogMsgResilientPublisherFailed   = "Resilient publisher shutdown failed"
	LogMsgStoreCloseFailed           = "Store close failed"
)
