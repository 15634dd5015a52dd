package bootstrap

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/osse101/GrowRoom_Go/internal/config"
	"github.com/osse101/GrowRoom_Go/internal/logger"
)

// SetupLogger installs the default logger from config. With a LogDir set,
// output also goes to a timestamped file there and old files are pruned; the
// returned file must then be closed by the caller. Otherwise it is nil.
func SetupLogger(cfg *config.Config, version string) (*os.File, error) {
	var (
		w       io.Writer = os.Stdout
		logFile *os.File
	)

	if cfg.LogDir != "" {
		if err := os.MkdirAll(cfg.LogDir, DirPermission); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateLogsDir, err)
		}
		cleanupLogs(cfg.LogDir, LogFileRetentionCount)

		name := filepath.Join(cfg.LogDir, fmt.Sprintf(LogFileNamePattern, time.Now().Format(LogFileTimestampFormat)))
		f, err := os.OpenFile(name, os.O_CREATE|os.O_WRONLY|os.O_APPEND, FilePermission)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedOpenLogFile, err)
		}
		logFile = f
		w = io.MultiWriter(os.Stdout, f)
	}

	addSource := cfg.Environment == "dev" || cfg.Environment == "development"
	lcfg := logger.NewConfig(cfg.LogLevel, cfg.LogFormat, logger.DefaultServiceName, version, cfg.Environment, addSource)
	logger.Setup(lcfg, w)

	slog.Info(LogMsgLoggingInitialized, "level", lcfg.LogLevel())
	slog.Info(LogMsgStarting,
		"environment", cfg.Environment,
		"log_format", cfg.LogFormat,
		"version", version)
	slog.Debug(LogMsgConfigurationLoaded,
		"store_backend", cfg.StoreBackend,
		"store_path", cfg.StorePath,
		"port", cfg.Port,
		"tick_interval", cfg.TickInterval,
		"autosave_interval", cfg.AutosaveInterval,
		"event_interval", cfg.EventInterval)

	return logFile, nil
}

// cleanupLogs deletes the oldest log files so at most keep remain.
// Names carry a sortable timestamp, so name order is age order.
func cleanupLogs(logDir string, keep int) {
	entries, err := os.ReadDir(logDir)
	if err != nil {
		return
	}

	var logFiles []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), LogFileExtension) {
			logFiles = append(logFiles, entry.Name())
		}
	}
	sort.Strings(logFiles)

	for len(logFiles) > keep {
		if err := os.Remove(filepath.Join(logDir, logFiles[0])); err != nil {
			slog.Warn(LogMsgFailedDeleteOldLog, "file", logFiles[0], "error", err)
		}
		logFiles = logFiles[1:]
	}
}
