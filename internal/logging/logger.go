// Package logging wraps charmbracelet/log for the gotelegraph CLI and
// client: leveled loggers, a process-wide default, and the structured field
// keys used across API calls and commands.
package logging

import (
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
)

// defaultLogger backs Default; it is created lazily on first use.
//
//nolint:gochecknoglobals // Package-level logger is intentional for convenience
var (
	defaultLogger     *log.Logger
	defaultLoggerOnce sync.Once
)

func getDefaultLogger() *log.Logger {
	defaultLoggerOnce.Do(func() {
		defaultLogger = New("info")
	})
	return defaultLogger
}

// New creates a stderr logger at the given level ("debug", "info", "warn",
// or "error"; anything else means "info"). Timestamps and callers are off,
// keeping output clean next to the commands' own stdout.
func New(level string) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
		ReportCaller:    false,
	})

	setLoggerLevel(logger, level)

	return logger
}

func setLoggerLevel(logger *log.Logger, level string) {
	switch strings.ToLower(level) {
	case "debug":
		logger.SetLevel(log.DebugLevel)
	case "info":
		logger.SetLevel(log.InfoLevel)
	case "warn", "warning":
		logger.SetLevel(log.WarnLevel)
	case "error":
		logger.SetLevel(log.ErrorLevel)
	default:
		logger.SetLevel(log.InfoLevel)
	}
}

// Default returns the shared logger used when no explicit logger is wired
// in, creating it on first call.
func Default() *log.Logger {
	return getDefaultLogger()
}

// SetDefault replaces the shared logger.
func SetDefault(logger *log.Logger) {
	defaultLogger = logger
}

// SetLevel adjusts the shared logger's verbosity, e.g. for --debug.
func SetLevel(level string) {
	setLoggerLevel(getDefaultLogger(), level)
}
