package objstore

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with objstore-specific helpers.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithID adds an identifier field to the logger (useful for tagging
// operations on a single entry).
func (l *Logger) WithID(id string) *Logger {
	return &Logger{
		Logger: l.Logger.With("id", id),
	}
}

// LogInsert logs an insert or replace operation.
func (l *Logger) LogInsert(id string, added bool) {
	l.Debug("insert completed",
		"id", id,
		"added", added,
	)
}

// LogDelete logs a delete operation.
func (l *Logger) LogDelete(id string, deleted bool) {
	l.Debug("delete completed",
		"id", id,
		"deleted", deleted,
	)
}

// LogRebuild logs a full rebuild triggered by a reconfiguration.
func (l *Logger) LogRebuild(count int, regeneratedIDs bool) {
	l.Info("store rebuilt",
		"count", count,
		"regenerated_ids", regeneratedIDs,
	)
}
