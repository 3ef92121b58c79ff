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

	"github.com/osse101/IdleMiner_Go/internal/config"
	"github.com/osse101/IdleMiner_Go/internal/logger"
)

// SetupLogger installs the default logger writing to stdout and a fresh
// session file under cfg.LogDir. Older session files beyond the retention
// count are removed first. The caller closes the returned file.
func SetupLogger(cfg *config.Config) (*os.File, error) {
	return setupLogger(cfg, os.Stdout, time.Now())
}

func setupLogger(cfg *config.Config, console io.Writer, now time.Time) (*os.File, error) {
	if err := os.MkdirAll(cfg.LogDir, DirPermission); err != nil {
		return nil, fmt.Errorf("failed to create logs directory: %w", err)
	}

	cleanupLogs(cfg.LogDir, LogFileRetentionCount)

	name := filepath.Join(cfg.LogDir, fmt.Sprintf(LogFileNamePattern, now.Format(LogFileTimestampFormat)))
	logFile, err := os.OpenFile(name, os.O_CREATE|os.O_WRONLY|os.O_APPEND, LogFilePermission)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	lc := cfg.LoggerConfig()
	logger.InitLoggerWithWriter(lc, io.MultiWriter(console, logFile))

	slog.Info(LogMsgLoggingInitialized, "level", lc.LogLevel(), "file", name)
	slog.Info(LogMsgStarting,
		"environment", cfg.Environment,
		"version", cfg.Version,
		"log_format", cfg.LogFormat)
	slog.Debug(LogMsgConfigurationLoaded,
		"db_host", cfg.DBHost,
		"db_port", cfg.DBPort,
		"db_name", cfg.DBName,
		"port", cfg.Port,
		"mines_config", cfg.MinesConfigPath)

	return logFile, nil
}

// cleanupLogs deletes the oldest session logs so at most keep remain.
// Session file names sort chronologically.
func cleanupLogs(logDir string, keep int) {
	entries, err := os.ReadDir(logDir)
	if err != nil {
		return
	}

	var logs []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), LogFileExtension) {
			logs = append(logs, entry.Name())
		}
	}
	if len(logs) <= keep {
		return
	}

	sort.Strings(logs)
	for _, name := range logs[:len(logs)-keep] {
		if err := os.Remove(filepath.Join(logDir, name)); err != nil {
			slog.Warn(LogMsgFailedDeleteOldLog, "file", name, "error", err)
		}
	}
}
