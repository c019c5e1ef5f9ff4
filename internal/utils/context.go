// Package utils provides general-purpose helpers shared by the handlers and
// services: type-safe context keys, JSON request and response helpers, JWT
// token generation and validation, and id generation.
package utils

import (
	"context"
)

// contextKey keeps this package's context values apart from string keys
// set elsewhere.
type contextKey string

func (c contextKey) String() string {
	return "diary-keeper context key " + string(c)
}

// UserIDCtxKey holds the authenticated user id, set by the auth middleware
// with [WithUserID].
var UserIDCtxKey = contextKey("userID")

// WithUserID returns a copy of ctx carrying userID.
func WithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, UserIDCtxKey, userID)
}

// GetUserIDFromContext returns the user id stored by [WithUserID]. ok is
// false when no id is stored or the stored id is not positive, so a zero id
// can never reach a repository query.
func GetUserIDFromContext(ctx context.Context) (userID int64, ok bool) {
	userID, ok = ctx.Value(UserIDCtxKey).(int64)
	if !ok || userID <= 0 {
		return 0, false
	}
	return userID, true
}
