package auth

import (
	"fmt"
	"strings"
	"time"
)

const resendCooldown = 60 * time.Second

func remainingResend(now, lastSent time.Time) time.Duration {
	if lastSent.IsZero() {
		return 0
	}
	next := lastSent.Add(resendCooldown)
	if now.Before(next) {
		return next.Sub(now)
	}
	return 0
}

func formatRemaining(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	m := int(d.Minutes())
	s := int(d.Seconds()) % 60
	if m > 0 {
		return fmt.Sprintf("%d m %d s", m, s)
	}
	return fmt.Sprintf("%d s", s)
}

func normalizeIdent(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
