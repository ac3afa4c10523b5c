package xlog

import (
	"context"
	"fmt"
	"log/slog"
)

// New creates a Logger from the config.
func New(c Config) *Logger {
	level := &slog.LevelVar{}
	level.Set(c.Level)
	return &Logger{
		inner: slog.New(c.buildHandler(level)),
		level: level,
	}
}

// Logger wraps slog.Logger with dynamic level changes and printf-style
// helpers.
type Logger struct {
	inner *slog.Logger
	level *slog.LevelVar
}

// SetLevel changes the minimum emitted level at runtime.
func (l *Logger) SetLevel(lvl slog.Level) {
	l.level.Set(lvl)
}

// With returns a Logger that includes the given attributes in each
// output operation.
func (l *Logger) With(args ...any) *Logger {
	if len(args) == 0 {
		return l
	}
	return &Logger{inner: l.inner.With(args...), level: l.level}
}

// Enabled reports whether the logger emits records at the given level.
func (l *Logger) Enabled(lvl slog.Level) bool {
	return l.inner.Enabled(context.Background(), lvl)
}

// Debug logs at LevelDebug.
func (l *Logger) Debug(msg string, args ...any) {
	l.inner.Debug(msg, args...)
}

// DebugContext logs at LevelDebug with the given context.
func (l *Logger) DebugContext(ctx context.Context, msg string, args ...any) {
	l.inner.DebugContext(ctx, msg, args...)
}

// Debugf logs at LevelDebug with the given format.
func (l *Logger) Debugf(format string, args ...any) {
	l.inner.Debug(fmt.Sprintf(format, args...))
}

// Info logs at LevelInfo.
func (l *Logger) Info(msg string, args ...any) {
	l.inner.Info(msg, args...)
}

// InfoContext logs at LevelInfo with the given context.
func (l *Logger) InfoContext(ctx context.Context, msg string, args ...any) {
	l.inner.InfoContext(ctx, msg, args...)
}

// Infof logs at LevelInfo with the given format.
func (l *Logger) Infof(format string, args ...any) {
	l.inner.Info(fmt.Sprintf(format, args...))
}

// Warn logs at LevelWarn.
func (l *Logger) Warn(msg string, args ...any) {
	l.inner.Warn(msg, args...)
}

// WarnContext logs at LevelWarn with the given context.
func (l *Logger) WarnContext(ctx context.Context, msg string, args ...any) {
	l.inner.WarnContext(ctx, msg, args...)
}

// Warnf logs at LevelWarn with the given format.
func (l *Logger) Warnf(format string, args ...any) {
	l.inner.Warn(fmt.Sprintf(format, args...))
}

// Error logs at LevelError.
func (l *Logger) Error(msg string, args ...any) {
	l.inner.Error(msg, args...)
}

// ErrorContext logs at LevelError with the given context.
func (l *Logger) ErrorContext(ctx context.Context, msg string, args ...any) {
	l.inner.ErrorContext(ctx, msg, args...)
}

// Errorf logs at LevelError with the given format.
func (l *Logger) Errorf(format string, args ...any) {
	l.inner.Error(fmt.Sprintf(format, args...))
}
