package tracing

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const traceIDKey = "traceId"

// InjectTraceID attaches a logger carrying a fresh trace id to ctx.
func InjectTraceID(ctx context.Context) context.Context {
	return WithTraceID(ctx, uuid.New().String())
}

// WithTraceID attaches a logger carrying the given trace id to ctx,
// e.g. an id taken from an incoming request.
func WithTraceID(ctx context.Context, id string) context.Context {
	if id == "" {
		id = uuid.New().String()
	}
	logger := log.With().Str(traceIDKey, id).Logger()
	return logger.WithContext(ctx)
}
