package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/osse101/GrowRoom_Go/internal/database"
	"github.com/osse101/GrowRoom_Go/internal/storage"
)

// Config holds the application configuration
type Config struct {
	Port        int    `validate:"min=1,max=65535"`
	LogLevel    string `validate:"oneof=debug info warn warning error"`
	LogFormat   string `validate:"oneof=json text"`
	Environment string `validate:"required"`
	LogDir      string // empty logs to stdout only

	StoreBackend   string        `validate:"oneof=memory file sqlite postgres"`
	StorePath      string        `validate:"required_if=StoreBackend file,required_if=StoreBackend sqlite"`
	StoreKey       string        `validate:"required"`
	StoreCacheSize int           `validate:"gte=0"`
	StoreCacheTTL  time.Duration `validate:"gte=0"`

	DBUser     string
	DBPassword string
	DBHost     string `validate:"required_if=StoreBackend postgres"`
	DBPort     string `validate:"required_if=StoreBackend postgres"`
	DBName     string `validate:"required_if=StoreBackend postgres"`
	DBMaxConns int    `validate:"gte=1"`

	CatalogPath string

	TickInterval     time.Duration `validate:"gt=0"`
	AutosaveInterval time.Duration `validate:"gt=0"`
	EventInterval    time.Duration `validate:"gte=0"`
	ShutdownTimeout  time.Duration `validate:"gt=0"`

	RNGSeed          int64
	StrictInvariants bool
	DeadLetterPath   string        `validate:"required"`
	EventMaxRetries  int           `validate:"gte=0"`
	EventRetryDelay  time.Duration `validate:"gte=0"`

	// An empty APIKey leaves the driver API open, for local use only
	APIKey         string
	TrustedProxies []string
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	backend := getEnv(EnvStoreBackend, DefaultStoreBackend)
	defaultPath := DefaultStorePath
	if backend == storage.BackendSQLite {
		defaultPath = DefaultSQLitePath
	}

	cfg := &Config{
		LogLevel:         getEnv(EnvLogLevel, DefaultLogLevel),
		LogFormat:        getEnv(EnvLogFormat, DefaultLogFormat),
		Environment:      getEnv(EnvEnvironment, DefaultEnvironment),
		LogDir:           getEnv(EnvLogDir, ""),
		StoreBackend:     backend,
		StorePath:        getEnv(EnvStorePath, defaultPath),
		StoreKey:         getEnv(EnvStoreKey, DefaultStoreKey),
		StoreCacheSize:   getEnvAsInt(EnvStoreCacheSize, DefaultStoreCacheSize),
		StoreCacheTTL:    getEnvAsDuration(EnvStoreCacheTTL, DefaultStoreCacheTTL),
		DBUser:           getEnv(EnvDBUser, "postgres"),
		DBPassword:       getEnv(EnvDBPassword, "postgres"),
		DBHost:           getEnv(EnvDBHost, "localhost"),
		DBPort:           getEnv(EnvDBPort, "5432"),
		DBName:           getEnv(EnvDBName, "growroom"),
		DBMaxConns:       getEnvAsInt(EnvDBMaxConns, DefaultDBMaxConns),
		CatalogPath:      getEnv(EnvCatalogPath, ""),
		TickInterval:     getEnvAsDuration(EnvTickInterval, DefaultTickInterval),
		AutosaveInterval: getEnvAsDuration(EnvAutosaveInterval, DefaultAutosaveInterval),
		EventInterval:    getEnvAsDuration(EnvEventInterval, DefaultEventInterval),
		ShutdownTimeout:  getEnvAsDuration(EnvShutdownTimeout, DefaultShutdownTimeout),
		StrictInvariants: getEnvAsBool(EnvStrictInvariants, false),
		DeadLetterPath:   getEnv(EnvDeadLetterPath, DefaultDeadLetterPath),
		EventMaxRetries:  getEnvAsInt(EnvEventMaxRetries, 0),
		EventRetryDelay:  getEnvAsDuration(EnvEventRetryDelay, 0),
		APIKey:           getEnv(EnvAPIKey, ""),
		TrustedProxies:   getEnvAsList(EnvTrustedProxies),
	}

	port, err := strconv.Atoi(getEnv(EnvPort, strconv.Itoa(DefaultPort)))
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	seed, err := strconv.ParseInt(getEnv(EnvRNGSeed, "0"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid RNG_SEED value: %w", err)
	}
	cfg.RNGSeed = seed

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt parses an integer variable, falling back to the default when
// it is unset or malformed
func getEnvAsInt(key string, defaultValue int) int {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}

// getEnvAsDuration accepts Go duration strings ("1s", "500ms") or a bare
// number of milliseconds
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(value); err == nil {
		return d
	}
	if ms, err := strconv.Atoi(value); err == nil {
		return time.Duration(ms) * time.Millisecond
	}
	return defaultValue
}

// getEnvAsList splits a comma-separated variable, dropping empty entries
func getEnvAsList(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func getEnvAsBool(key string, defaultValue bool) bool {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return defaultValue
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return b
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return database.ConnString(c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName)
}

// StoreOptions maps the store settings onto storage.Options
func (c *Config) StoreOptions() storage.Options {
	opts := storage.Options{
		Backend:   c.StoreBackend,
		Path:      c.StorePath,
		MaxConns:  c.DBMaxConns,
		CacheSize: c.StoreCacheSize,
		CacheTTL:  c.StoreCacheTTL,
	}
	if c.StoreBackend == storage.BackendPostgres {
		opts.PostgresURL = c.GetDBConnString()
	}
	return opts
}
