// Package logging provides component loggers for filetally, built on
// charmbracelet/log. Logs go to a single writer (stderr by default); the
// classifier keeps no log file.
//
// Basic usage:
//
//	if err := logging.Init(logging.Config{Level: "debug"}); err != nil {
//	    return err
//	}
//	defer logging.Close()
//
//	logger := logging.Get("classifier")
//	logger.Debug("classified", "path", "main.c", "category", "c-source")
package logging

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// Level represents a logging level.
type Level int

// Log levels from least to most severe.
const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// String returns the string representation of the level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	default:
		return "unknown"
	}
}

// toCharmLevel converts our Level to charmbracelet/log level.
func (l Level) toCharmLevel() log.Level {
	switch l {
	case LevelDebug:
		return log.DebugLevel
	case LevelInfo:
		return log.InfoLevel
	case LevelWarn:
		return log.WarnLevel
	case LevelError:
		return log.ErrorLevel
	default:
		return log.WarnLevel
	}
}

// ErrInvalidLevel is returned when an invalid log level string is provided.
var ErrInvalidLevel = errors.New("invalid log level")

// ParseLevel parses a string into a Level.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return LevelWarn, fmt.Errorf("%w: %s", ErrInvalidLevel, s)
	}
}

// Config configures the logging system.
type Config struct {
	// Level is the default log level (debug, info, warn, error).
	// Empty means "warn".
	Level string

	// Components maps component names to their log levels.
	Components map[string]string

	// Output receives log lines. Nil means os.Stderr.
	Output io.Writer

	// ReportTimestamp prefixes each line with an HH:MM:SS timestamp.
	ReportTimestamp bool
}

// DefaultConfig returns a configuration that only surfaces warnings and errors.
func DefaultConfig() Config {
	return Config{
		Level:  LevelWarn.String(),
		Output: os.Stderr,
	}
}

// Logger wraps charmbracelet/log; its lines are prefixed with the component name.
type Logger struct {
	inner *log.Logger
}

// Debug logs a debug message.
func (l *Logger) Debug(msg string, args ...interface{}) {
	l.inner.Debug(msg, args...)
}

// Info logs an info message.
func (l *Logger) Info(msg string, args ...interface{}) {
	l.inner.Info(msg, args...)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string, args ...interface{}) {
	l.inner.Warn(msg, args...)
}

// Error logs an error message.
func (l *Logger) Error(msg string, args ...interface{}) {
	l.inner.Error(msg, args...)
}

// With returns a new logger with additional context.
func (l *Logger) With(args ...interface{}) *Logger {
	return &Logger{
		inner: l.inner.With(args...),
	}
}

// state holds the global logging state.
type state struct {
	mu          sync.RWMutex
	initialized bool
	output      io.Writer
	timestamps  bool
	level       Level
	components  map[string]Level
	loggers     map[string]*Logger
}

var globalState = &state{
	loggers:    make(map[string]*Logger),
	components: make(map[string]Level),
}

// Init initializes the logging system with the given configuration.
// Before Init is called, all loggers write to io.Discard.
// Loggers obtained earlier through Get are reconfigured in place.
func Init(cfg Config) error {
	levelStr := cfg.Level
	if levelStr == "" {
		levelStr = LevelWarn.String()
	}
	level, err := ParseLevel(levelStr)
	if err != nil {
		return fmt.Errorf("parsing log level: %w", err)
	}

	components := make(map[string]Level, len(cfg.Components))
	for comp, lvl := range cfg.Components {
		parsedLevel, err := ParseLevel(lvl)
		if err != nil {
			return fmt.Errorf("parsing level for component %s: %w", comp, err)
		}
		components[comp] = parsedLevel
	}

	output := cfg.Output
	if output == nil {
		output = os.Stderr
	}

	globalState.mu.Lock()
	defer globalState.mu.Unlock()

	globalState.level = level
	globalState.components = components
	globalState.output = output
	globalState.timestamps = cfg.ReportTimestamp
	globalState.initialized = true

	for component, logger := range globalState.loggers {
		logger.inner = newCharmLogger(component)
	}

	return nil
}

// Get returns a logger for the given component.
// If the component has a level override in the config, it uses that level.
func Get(component string) *Logger {
	globalState.mu.RLock()
	if logger, ok := globalState.loggers[component]; ok {
		globalState.mu.RUnlock()
		return logger
	}
	globalState.mu.RUnlock()

	globalState.mu.Lock()
	defer globalState.mu.Unlock()

	// Double-check after acquiring write lock
	if logger, ok := globalState.loggers[component]; ok {
		return logger
	}

	logger := &Logger{
		inner: newCharmLogger(component),
	}
	globalState.loggers[component] = logger
	return logger
}

// newCharmLogger builds the underlying logger for a component.
// Must be called with globalState.mu held.
func newCharmLogger(component string) *log.Logger {
	level := globalState.level
	if compLevel, ok := globalState.components[component]; ok {
		level = compLevel
	}

	if !globalState.initialized {
		return log.NewWithOptions(io.Discard, log.Options{
			Level:  level.toCharmLevel(),
			Prefix: component,
		})
	}

	return log.NewWithOptions(globalState.output, log.Options{
		Level:           level.toCharmLevel(),
		ReportCaller:    false,
		ReportTimestamp: globalState.timestamps,
		TimeFormat:      time.TimeOnly,
		Prefix:          component,
	})
}

// Close resets the logging system so that all loggers discard output again.
func Close() error {
	globalState.mu.Lock()
	defer globalState.mu.Unlock()

	if !globalState.initialized {
		return nil
	}

	globalState.initialized = false
	globalState.output = nil
	globalState.level = LevelWarn
	globalState.components = make(map[string]Level)

	for component, logger := range globalState.loggers {
		logger.inner = newCharmLogger(component)
	}

	return nil
}
