package session

import (
	"context"
	"strings"
)

type userKey struct{}

// SetUserContext stores the signed-in user's identifier into context.
func SetUserContext(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userKey{}, strings.TrimSpace(userID))
}

// GetUserContext retrieves the signed-in user's identifier from context.
func GetUserContext(ctx context.Context) string {
	userID, ok := ctx.Value(userKey{}).(string)
	if !ok {
		return ""
	}
	return userID
}
