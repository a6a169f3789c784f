package session

import (
	"context"
	"testing"
)

func TestSetUserContext(t *testing.T) {
	ctx := context.Background()
	ctx = SetUserContext(ctx, "user_123")

	userID := GetUserContext(ctx)
	if userID != "user_123" {
		t.Errorf("expected user id 'user_123', got %q", userID)
	}
}

func TestSetUserContext_TrimsWhitespace(t *testing.T) {
	ctx := context.Background()
	ctx = SetUserContext(ctx, "  guest_42  ")

	userID := GetUserContext(ctx)
	if userID != "guest_42" {
		t.Errorf("expected trimmed user id 'guest_42', got %q", userID)
	}
}

func TestGetUserContext_Empty(t *testing.T) {
	ctx := context.Background()

	userID := GetUserContext(ctx)
	if userID != "" {
		t.Errorf("expected empty user id from fresh context, got %q", userID)
	}
}

func TestSetUserContext_Overwrite(t *testing.T) {
	ctx := context.Background()
	ctx = SetUserContext(ctx, "user_1")
	ctx = SetUserContext(ctx, "user_2")

	userID := GetUserContext(ctx)
	if userID != "user_2" {
		t.Errorf("expected user id 'user_2', got %q", userID)
	}
}
