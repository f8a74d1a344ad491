// Package logging configures zerolog for binlink.
//
// Log records are diagnostics for whoever runs binlink with --verbose; the
// link lines a run prints are rendered by pkg/ui/output and never go
// through here.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// levels maps the --verbose count to a level; higher counts mean trace
var levels = []zerolog.Level{
	zerolog.WarnLevel,
	zerolog.InfoLevel,
	zerolog.DebugLevel,
}

// SetupLogger installs the global logger for a run. Records go to stderr and
// are appended to binlink.log under the XDG state home. When the log file
// cannot be opened binlink logs to stderr only.
func SetupLogger(verbosity int) {
	level := zerolog.TraceLevel
	if verbosity >= 0 && verbosity < len(levels) {
		level = levels[verbosity]
	}
	zerolog.SetGlobalLevel(level)

	var sinks []io.Writer
	sinks = append(sinks, zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	path := getLogFilePath()
	file, fileErr := openLogFile(path)
	if fileErr == nil {
		sinks = append(sinks, file)
	}

	ctx := zerolog.New(io.MultiWriter(sinks...)).With().Timestamp()
	if verbosity >= 2 {
		ctx = ctx.Caller()
	}
	log.Logger = ctx.Logger()

	if fileErr != nil {
		log.Warn().Err(fileErr).Str("path", path).Msg("Log file unavailable, logging to stderr only")
	}
	log.Debug().Int("verbosity", verbosity).Str("logFile", path).Msg("Logger ready")
}

// GetLogger returns the global logger tagged with a component name
func GetLogger(name string) zerolog.Logger {
	return log.With().Str("component", name).Logger()
}

// getLogFilePath honours XDG_STATE_HOME set after process start, which
// xdg.StateHome (read once at init) would miss.
func getLogFilePath() string {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		stateHome = xdg.StateHome
	}
	if stateHome == "" {
		return "binlink.log"
	}
	return filepath.Join(stateHome, "binlink", "binlink.log")
}

func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("creating log directory: %w", err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	return file, nil
}

// LogOperationStart logs operation at debug level and returns a func that
// logs its completion with the elapsed time.
func LogOperationStart(logger zerolog.Logger, operation string) func() {
	start := time.Now()
	logger.Debug().Str("operation", operation).Msg("Operation started")

	return func() {
		logger.Debug().Str("operation", operation).Dur("duration", time.Since(start)).Msg("Operation completed")
	}
}
