// Package logctx carries a request-scoped logger through the context so
// layers below the HTTP middleware emit entries already tagged with the
// request id and trace ids.
package logctx

import (
	"context"

	"github.com/peemtanapat/retail-backoffice/internal/observability"
)

type ctxKey int

const loggerKey ctxKey = iota

// With binds the logger to the context. A nil logger or context is returned
// unchanged so call sites need no guards.
func With(ctx context.Context, logger observability.Logger) context.Context {
	if ctx == nil || logger == nil {
		return ctx
	}
	return context.WithValue(ctx, loggerKey, logger)
}

// From returns the logger bound to the context, or nil when none was bound.
func From(ctx context.Context) observability.Logger {
	if ctx == nil {
		return nil
	}
	if logger, ok := ctx.Value(loggerKey).(observability.Logger); ok {
		return logger
	}
	return nil
}

// FromOr returns the context logger, falling back to the given one. The
// fallback is typically a component's own base logger.
func FromOr(ctx context.Context, fallback observability.Logger) observability.Logger {
	if logger := From(ctx); logger != nil {
		return logger
	}
	return fallback
}
