package vecframe

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with vecframe-specific context.
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
func NewJSONLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return NewLogger(slog.DiscardHandler)
}

// WithName adds a name field to the logger.
func (l *Logger) WithName(name any) *Logger {
	if name == nil {
		return l
	}
	return &Logger{
		Logger: l.Logger.With("name", name),
	}
}

// LogCast logs a backing store conversion.
func (l *Logger) LogCast(from, to string, size int, err error) {
	ctx := context.Background()
	if err != nil {
		l.DebugContext(ctx, "store cast failed",
			"from", from,
			"to", to,
			"size", size,
			"error", err,
		)
		return
	}
	l.DebugContext(ctx, "store cast",
		"from", from,
		"to", to,
		"size", size,
	)
}

// LogColumn logs a column insert, replace or delete.
func (l *Logger) LogColumn(op string, column any, rows int, err error) {
	ctx := context.Background()
	if err != nil {
		l.DebugContext(ctx, "column "+op+" failed",
			"column", column,
			"rows", rows,
			"error", err,
		)
		return
	}
	l.DebugContext(ctx, "column "+op,
		"column", column,
		"rows", rows,
	)
}

// LogResize logs a change in vector cardinality.
func (l *Logger) LogResize(op string, label any, size int) {
	l.DebugContext(context.Background(), "vector "+op,
		"label", label,
		"size", size,
	)
}
