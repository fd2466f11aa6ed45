// Package logger writes structured logs to a file. The terminal belongs to
// the TUI, so nothing is ever logged to stdout or stderr once the program
// is running.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

var (
	slogLogger *slog.Logger
	levelVar   = new(slog.LevelVar)
	logFile    *os.File
	mu         sync.Mutex
	initDone   bool
)

// DefaultLogPath returns the log file used when none is configured.
func DefaultLogPath() string {
	return filepath.Join(os.TempDir(), "kidhub-debug.log")
}

// SetDebug switches between debug and info level.
func SetDebug(enabled bool) {
	if enabled {
		levelVar.Set(slog.LevelDebug)
	} else {
		levelVar.Set(slog.LevelInfo)
	}
}

// SetLevel parses a level name ("debug", "info", "warn", "error").
// Unknown names leave the level unchanged and return an error.
func SetLevel(name string) error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return fmt.Errorf("parsing log level %q: %w", name, err)
	}
	levelVar.Set(level)
	return nil
}

// Init opens path for appending and routes all logging there.
// Calling Init again after a successful call is a no-op.
func Init(path string) error {
	mu.Lock()
	defer mu.Unlock()

	if initDone {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating log directory for %s: %w", path, err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("opening log file %s: %w", path, err)
	}
	logFile = f
	slogLogger = slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: levelVar}))
	initDone = true

	slogLogger.Info("logger initialized", "path", path)
	return nil
}

// InitWriter routes logging to w. Used by tests and by CLI commands that
// do not start the TUI.
func InitWriter(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()

	slogLogger = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: levelVar}))
	initDone = true
}

// Close closes the log file, if one is open.
func Close() {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
	slogLogger = nil
	initDone = false
}

// ComponentLogger returns a logger with the component attribute attached.
// Before Init it returns a logger that discards everything.
//
// Example:
//
//	log := logger.ComponentLogger("store")
//	log.Warn("corrupt value, using default", "key", key, "error", err)
func ComponentLogger(component string) *slog.Logger {
	mu.Lock()
	defer mu.Unlock()

	if slogLogger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return slogLogger.With(slog.String("component", component))
}
