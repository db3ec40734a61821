package contextx

import (
	"context"
	"fmt"

	"github.com/rs/xid"
)

// TraceID ties together log lines of one HTTP request or one bot update.
type TraceID string

type contextKeyTraceID struct{}

// NewTraceID returns a random sortable id.
func NewTraceID() TraceID {
	return TraceID(xid.New().String())
}

func (t TraceID) String() string {
	return string(t)
}

func WithTraceID(ctx context.Context, traceID TraceID) context.Context {
	return context.WithValue(ctx, contextKeyTraceID{}, traceID)
}

func TraceIDFromContext(ctx context.Context) (TraceID, error) {
	traceID, ok := ctx.Value(contextKeyTraceID{}).(TraceID)
	if !ok {
		return "", fmt.Errorf("trace id: %w", ErrNoValue)
	}

	return traceID, nil
}

// EnsureTraceID keeps an existing trace id or adds a new one.
func EnsureTraceID(ctx context.Context) (context.Context, TraceID) {
	if traceID, err := TraceIDFromContext(ctx); err == nil && traceID != "" {
		return ctx, traceID
	}

	traceID := NewTraceID()

	return WithTraceID(ctx, traceID), traceID
}
