package xlog

import (
	"context"
	"errors"
	"log/slog"

	"github.com/samber/lo"
)

// multiHandler fans records out to every wrapped slog.Handler.
type multiHandler []slog.Handler

// Enabled implements slog.Handler.
func (h multiHandler) Enabled(ctx context.Context, lvl slog.Level) bool {
	return lo.SomeBy(h, func(handler slog.Handler) bool {
		return handler.Enabled(ctx, lvl)
	})
}

// Handle implements slog.Handler.
func (h multiHandler) Handle(ctx context.Context, r slog.Record) error {
	var errs []error
	for _, handler := range h {
		if handler.Enabled(ctx, r.Level) {
			errs = append(errs, handler.Handle(ctx, r.Clone()))
		}
	}
	return errors.Join(errs...)
}

// WithAttrs implements slog.Handler.
func (h multiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return multiHandler(lo.Map(h, func(handler slog.Handler, _ int) slog.Handler {
		return handler.WithAttrs(attrs)
	}))
}

// WithGroup implements slog.Handler.
func (h multiHandler) WithGroup(name string) slog.Handler {
	return multiHandler(lo.Map(h, func(handler slog.Handler, _ int) slog.Handler {
		return handler.WithGroup(name)
	}))
}
