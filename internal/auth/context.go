package auth

import (
	"context"
	"errors"
)

// ErrNoAuthenticatedUser is returned when the request context carries no
// authenticated user. Callers decide whether that is fatal: single-item
// reads propagate it, listings treat the caller as anonymous.
var ErrNoAuthenticatedUser = errors.New("no authenticated user")

type userIDKey struct{}

// WithUserID returns a context carrying the authenticated user's ID.
func WithUserID(ctx context.Context, id uint) context.Context {
	return context.WithValue(ctx, userIDKey{}, id)
}

// UserID extracts the authenticated user's ID from the context.
func UserID(ctx context.Context) (uint, error) {
	id, ok := ctx.Value(userIDKey{}).(uint)
	if !ok {
		return 0, ErrNoAuthenticatedUser
	}
	return id, nil
}
