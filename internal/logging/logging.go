// Package logging provides the process-wide structured logger built on log/slog.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

var (
	// logger is the shared logger instance
	logger = New(os.Stderr, slog.LevelWarn)
	// mu protects logger
	mu sync.RWMutex
)

// New returns a text logger writing to w at the given level.
func New(w io.Writer, level slog.Level) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: level,
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// ParseLevel converts a level name such as "debug" or "warn" to a slog level.
// An empty name means info.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	case "off", "none":
		return slog.LevelError + 1, nil
	default:
		return 0, fmt.Errorf("unknown log level %q", name)
	}
}

// Init replaces the shared logger with one writing to w at the named level.
func Init(w io.Writer, levelName string) error {
	level, err := ParseLevel(levelName)
	if err != nil {
		return err
	}

	mu.Lock()
	defer mu.Unlock()
	logger = New(w, level)
	return nil
}

// Logger returns the shared logger.
func Logger() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

// With returns the shared logger with the given attributes.
func With(args ...any) *slog.Logger {
	return Logger().With(args...)
}
