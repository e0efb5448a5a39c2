// Package logging builds the slog loggers used by the CLI. The interactive
// editor owns the terminal, so its logs go to a file or nowhere.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// LevelOff is above every standard level.
const LevelOff = slog.Level(100)

// NewLogger creates a text logger writing to w.
func NewLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// NewFileLogger opens path in append mode, creating it and its directory.
// The caller closes the returned file.
func NewFileLogger(path string, level slog.Level) (*slog.Logger, *os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	return NewLogger(f, level), f, nil
}

// NewDiscardLogger creates a logger that drops everything.
func NewDiscardLogger() *slog.Logger {
	return NewLogger(io.Discard, LevelOff)
}

// LevelFromString converts debug, info, warn, error or off to a level.
// Unknown strings map to info.
func LevelFromString(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	case "off", "none":
		return LevelOff
	default:
		return slog.LevelInfo
	}
}

// Setup builds the process logger. With a file it logs there; without one
// it logs warnings and above to stderr unless level is off.
func Setup(file, level string, stderr io.Writer) (*slog.Logger, io.Closer, error) {
	lvl := LevelFromString(level)

	if file == "" {
		if lvl < slog.LevelWarn {
			lvl = slog.LevelWarn
		}

		return NewLogger(stderr, lvl), io.NopCloser(nil), nil
	}

	logger, f, err := NewFileLogger(file, lvl)
	if err != nil {
		return nil, nil, err
	}

	return logger, f, nil
}
