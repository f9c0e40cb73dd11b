package requestid

import (
	"context"

	"github.com/google/uuid"
)

// Header carries the request id on inbound and outbound calls.
const Header = "X-Request-Id"

type contextKey struct{}

// New returns a random request id.
func New() string {
	return uuid.NewString()
}

// WithRequestID stores id in ctx.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, contextKey{}, id)
}

// FromContext returns the request id stored in ctx, or "" when there is none.
func FromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(contextKey{}).(string)
	return id
}
