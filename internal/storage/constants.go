package storage

import "time"

// Backend names accepted by Open
const (
	BackendMemory   = "memory"
	BackendFile     = "file"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
)

// File store
const (
	FileExtension       = ".json"
	FilePermissions     = 0644
	DirPermissions      = 0755
	TempFilePattern     = ".save-*.tmp"
	SQLiteConnectParams = "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
)

// Cache defaults
const (
	DefaultCacheSize = 16
	DefaultCacheTTL  = 5 * time.Minute
)

// Error messages
const (
	ErrMsgUnknownBackend = "unknown store backend"
	ErrMsgInvalidKey     = "invalid save key"
	ErrMsgOpenFailed     = "failed to open store"
	ErrMsgMigrateFailed  = "failed to migrate store"
)
