// Package ctxutil carries request-scoped values through context: who is
// calling, which request this is, and which calendar the caller's days
// belong to.
package ctxutil

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// key is a typed context key; the type parameter keeps lookups type-safe
// and distinct keys never collide.
type key[T any] struct{ name string }

var (
	userIDKey    = key[uuid.UUID]{"user_id"}
	requestIDKey = key[string]{"request_id"}
	locationKey  = key[*time.Location]{"location"}
)

func with[T any](ctx context.Context, k key[T], v T) context.Context {
	return context.WithValue(ctx, k, v)
}

func from[T any](ctx context.Context, k key[T]) (T, bool) {
	v, ok := ctx.Value(k).(T)
	return v, ok
}

// WithUserID marks the request as made by the user id.
func WithUserID(ctx context.Context, id uuid.UUID) context.Context {
	return with(ctx, userIDKey, id)
}

// UserIDFromCtx reports the authenticated user. A missing or nil id means
// the request is anonymous.
func UserIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	id, ok := from(ctx, userIDKey)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

// WithRequestID stores the request id echoed in X-Request-Id and logs.
func WithRequestID(ctx context.Context, id string) context.Context {
	return with(ctx, requestIDKey, id)
}

// RequestIDFromCtx returns the request id, or "" outside a request.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := from(ctx, requestIDKey)
	return id
}

// WithLocation stores the time zone the caller's calendar days are in.
func WithLocation(ctx context.Context, loc *time.Location) context.Context {
	return with(ctx, locationKey, loc)
}

// LocationFromCtx returns the caller's time zone, or fallback when none was set.
func LocationFromCtx(ctx context.Context, fallback *time.Location) *time.Location {
	if loc, ok := from(ctx, locationKey); ok && loc != nil {
		return loc
	}
	return fallback
}
