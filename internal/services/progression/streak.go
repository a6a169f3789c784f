package progression

import (
	"time"
)

const loginDateLayout = "2006-01-02"

func loginDate(t time.Time) string {
	return t.Format(loginDateLayout)
}

// reconcileDailyLogin advances the streak on the first reconciliation of
// each calendar day: consecutive with yesterday's login extends it,
// anything older resets it to 1. Plain local-date string comparison, no
// timezone normalization beyond the device clock. Returns true when the
// profile changed.
func reconcileDailyLogin(p *Profile, now time.Time) bool {
	today := loginDate(now)
	if p.LastLoginDate == today {
		return false
	}

	yesterday := loginDate(now.AddDate(0, 0, -1))
	if p.LastLoginDate == yesterday {
		p.DailyStreak++
	} else {
		p.DailyStreak = 1
	}
	p.LastLoginDate = today
	return true
}
