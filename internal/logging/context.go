package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// FromContext extracts the logger from context.
// If no logger is found, returns a disabled logger (no-op).
func FromContext(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

// WithContext returns a new context with the logger attached.
func WithContext(ctx context.Context, logger zerolog.Logger) context.Context {
	return logger.WithContext(ctx)
}

// WithComponent creates a child logger tagged with a component field
// (e.g. "reactor", "worker", "tree").
func WithComponent(ctx context.Context, component string) context.Context {
	logger := FromContext(ctx)
	return WithContext(ctx, logger.With().Str("component", component).Logger())
}

// WithPID creates a child logger with a pid field, for per-app worker logs.
func WithPID(ctx context.Context, pid int) context.Context {
	logger := FromContext(ctx)
	return WithContext(ctx, logger.With().Int("pid", pid).Logger())
}

// WithSpace creates a child logger with a space field.
func WithSpace(ctx context.Context, space string) context.Context {
	logger := FromContext(ctx)
	return WithContext(ctx, logger.With().Str("space", space).Logger())
}

// WithWindow creates a child logger with a window_id field.
func WithWindow(ctx context.Context, windowID string) context.Context {
	logger := FromContext(ctx)
	return WithContext(ctx, logger.With().Str("window_id", windowID).Logger())
}
