package lloyd

import (
	"context"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with clustering-specific helpers.
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
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithK adds a k (cluster count) field to the logger.
func (l *Logger) WithK(k int) *Logger {
	return &Logger{
		Logger: l.Logger.With("k", k),
	}
}

// WithDimension adds a dimension field to the logger.
func (l *Logger) WithDimension(dim int) *Logger {
	return &Logger{
		Logger: l.Logger.With("dimension", dim),
	}
}

// WithSamples adds a sample count field to the logger.
func (l *Logger) WithSamples(n int) *Logger {
	return &Logger{
		Logger: l.Logger.With("samples", n),
	}
}

// LogInit logs the chosen initial centroid indices.
func (l *Logger) LogInit(ctx context.Context, indices []int) {
	l.DebugContext(ctx, "centroids initialized",
		"indices", indices,
	)
}

// LogIteration logs one assignment pass. inertia is omitted when it was
// not tracked.
func (l *Logger) LogIteration(ctx context.Context, pass, changed int, inertia float64, tracked bool) {
	if !l.Enabled(ctx, slog.LevelDebug) {
		return
	}
	attrs := []any{
		"pass", pass,
		"changed", changed,
	}
	if tracked {
		attrs = append(attrs, "inertia", inertia)
	}
	l.DebugContext(ctx, "pass completed", attrs...)
}

// LogEmptyClusters logs clusters that received no samples in an update.
func (l *Logger) LogEmptyClusters(ctx context.Context, pass int, clusters []int, policy EmptyPolicy) {
	l.WarnContext(ctx, "empty clusters",
		"pass", pass,
		"clusters", clusters,
		"policy", policy.String(),
	)
}

// LogFit logs the end of a fit.
func (l *Logger) LogFit(ctx context.Context, iterations int, state State, inertia float64, duration time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "fit failed",
			"iterations", iterations,
			"duration", duration,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "fit completed",
			"iterations", iterations,
			"state", state.String(),
			"inertia", inertia,
			"duration", duration,
		)
	}
}
