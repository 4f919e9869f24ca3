package logging

import (
	"context"

	"github.com/charmbracelet/log"
)

// ctxKey keys the logger carried on a context.
type ctxKey struct{}

// WithLogger attaches logger to ctx so render backends can pick it up
// with FromContext when no explicit logger was configured.
func WithLogger(ctx context.Context, logger *log.Logger) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, ctxKey{}, logger)
}

// FromContext returns the logger attached to ctx, falling back to the
// package default when none is attached.
func FromContext(ctx context.Context) *log.Logger {
	if ctx == nil {
		return Default()
	}
	if logger, ok := ctx.Value(ctxKey{}).(*log.Logger); ok && logger != nil {
		return logger
	}
	return Default()
}
