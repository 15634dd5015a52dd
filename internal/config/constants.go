package config

import "time"

// Default values applied when an environment variable is unset
const (
	DefaultPort             = 8080
	DefaultLogLevel         = "info"
	DefaultLogFormat        = "text"
	DefaultEnvironment      = "dev"
	DefaultStoreBackend     = "file"
	DefaultStorePath        = "data"
	DefaultSQLitePath       = "data/growroom.db"
	DefaultStoreKey         = "growroom.save"
	DefaultStoreCacheSize   = 16
	DefaultStoreCacheTTL    = 5 * time.Minute
	DefaultDBMaxConns       = 4
	DefaultTickInterval     = time.Second
	DefaultAutosaveInterval = 5 * time.Second
	DefaultEventInterval    = time.Duration(0)
	DefaultShutdownTimeout  = 10 * time.Second
	DefaultDeadLetterPath   = "data/deadletter.jsonl"
)

const (
	// Configuration file paths
	ConfigPathEnvFile = ".env"
	ConfigPathCatalog = "configs/catalog.yaml"
)

// Environment variable names
const (
	EnvSchemaVersion    = "ENV_SCHEMA_VERSION"
	EnvPort             = "PORT"
	EnvLogLevel         = "LOG_LEVEL"
	EnvLogFormat        = "LOG_FORMAT"
	EnvEnvironment      = "ENVIRONMENT"
	EnvStoreBackend     = "STORE_BACKEND"
	EnvStorePath        = "STORE_PATH"
	EnvStoreKey         = "STORE_KEY"
	EnvStoreCacheSize   = "STORE_CACHE_SIZE"
	EnvStoreCacheTTL    = "STORE_CACHE_TTL"
	EnvDBUser           = "DB_USER"
	EnvDBPassword       = "DB_PASSWORD"
	EnvDBHost           = "DB_HOST"
	EnvDBPort           = "DB_PORT"
	EnvDBName           = "DB_NAME"
	EnvDBMaxConns       = "DB_MAX_CONNS"
	EnvCatalogPath      = "CATALOG_PATH"
	EnvTickInterval     = "TICK_INTERVAL"
	EnvAutosaveInterval = "AUTOSAVE_INTERVAL"
	EnvEventInterval    = "EVENT_INTERVAL"
	EnvRNGSeed          = "RNG_SEED"
	EnvStrictInvariants = "STRICT_INVARIANTS"
	EnvShutdownTimeout  = "SHUTDOWN_TIMEOUT"
	EnvDeadLetterPath   = "DEAD_LETTER_PATH"
	EnvAPIKey           = "API_KEY"
	EnvLogDir           = "LOG_DIR"
	EnvEventMaxRetries  = "EVENT_MAX_RETRIES"
	EnvEventRetryDelay  = "EVENT_RETRY_DELAY"
	EnvTrustedProxies   = "TRUSTED_PROXIES"
)
