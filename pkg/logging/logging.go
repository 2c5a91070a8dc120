package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// EnvLogFile overrides the log file location. An empty value keeps the
// XDG state default; "-" disables file logging.
const EnvLogFile = "AGENTKIT_LOG_FILE"

// Options controls where log output goes
type Options struct {
	// Verbosity is the -v count: 0 warn, 1 info, 2 debug, 3+ trace
	Verbosity int

	// Console receives the human-readable stream. Defaults to os.Stderr.
	Console io.Writer

	// NoColor disables ANSI colors on the console stream
	NoColor bool
}

var (
	mu      sync.Mutex
	logFile *os.File
)

// Setup configures the global logger. Every command run calls it, so the
// log file opened by a previous call is closed first.
func Setup(opts Options) {
	mu.Lock()
	defer mu.Unlock()

	zerolog.SetGlobalLevel(LevelFor(opts.Verbosity))

	console := opts.Console
	if console == nil {
		console = os.Stderr
	}

	// Pretty console output; the file gets plain JSON lines
	writers := []io.Writer{zerolog.ConsoleWriter{
		Out:        console,
		TimeFormat: time.Kitchen,
		NoColor:    opts.NoColor,
	}}

	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}

	path := getLogFilePath()
	var fileErr error
	if path != "" {
		logFile, fileErr = setupLogFile(path)
		if fileErr == nil {
			writers = append(writers, logFile)
		}
	}

	log.Logger = zerolog.New(io.MultiWriter(writers...)).With().Timestamp().Logger()

	// Report a missing log file through the logger we just built
	if fileErr != nil {
		log.Warn().Err(fileErr).Str("path", path).Msg("Failed to create log file, logging to console only")
	}

	// Caller info only pays off at debug and trace
	if opts.Verbosity >= 2 {
		log.Logger = log.Logger.With().Caller().Logger()
	}

	log.Debug().Int("verbosity", opts.Verbosity).Str("logFile", path).Msg("Logger initialized")
}

// LevelFor maps a -v count to a zerolog level
func LevelFor(verbosity int) zerolog.Level {
	switch verbosity {
	case 0:
		return zerolog.WarnLevel
	case 1:
		return zerolog.InfoLevel
	case 2:
		return zerolog.DebugLevel
	default:
		return zerolog.TraceLevel
	}
}

// GetLogger returns a contextualized logger with the given name
func GetLogger(name string) zerolog.Logger {
	return log.With().Str("component", name).Logger()
}

// getLogFilePath returns the log file location, "" when file logging is off.
// AGENTKIT_LOG_FILE wins, then XDG_STATE_HOME, then ~/.local/state/agentkit/
func getLogFilePath() string {
	if override := os.Getenv(EnvLogFile); override != "" {
		if override == "-" {
			return ""
		}
		return override
	}

	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			// No home: log next to wherever we were started
			return "agentkit.log"
		}
		stateHome = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(stateHome, "agentkit", "agentkit.log")
}

// setupLogFile opens logPath for appending, creating parent directories
func setupLogFile(logPath string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	return file, nil
}

// LogOperationStart logs the start of an operation and returns a function to log its completion
func LogOperationStart(logger zerolog.Logger, operation string) func() {
	start := time.Now()
	logger.Debug().
		Str("operation", operation).
		Msg("Operation started")

	return func() {
		logger.Debug().
			Str("operation", operation).
			Dur("duration", time.Since(start)).
			Msg("Operation completed")
	}
}
