package progression

import (
	"github.com/francislhj094/pocket-worlds/internal/gamedata"
)

type AchievementProgress struct {
	gamedata.Achievement
	Progress int `json:"progress"`
}

// metricValue reads the aggregate an achievement is judged against.
// Both the displayed progress and the unlock predicate go through this
// function, so they cannot disagree.
func metricValue(p *Profile, a gamedata.Achievement) int {
	switch a.Metric {
	case gamedata.MetricGamesPlayed:
		total := 0
		for _, stats := range p.GameStats {
			total += stats.GamesPlayed
		}
		return total
	case gamedata.MetricTotalCoins:
		total := 0
		for _, stats := range p.GameStats {
			total += stats.TotalCoins
		}
		return total
	case gamedata.MetricLevel:
		return p.Level
	case gamedata.MetricDailyStreak:
		return p.DailyStreak
	case gamedata.MetricHighScore:
		return p.GameStats[a.Game].HighScore
	case gamedata.MetricItemsPurchased:
		purchased := p.Inventory.TotalItems() - gamedata.DefaultItemCount
		if purchased < 0 {
			purchased = 0
		}
		return purchased
	}
	return 0
}

// unlockAchievements runs a single pass over the catalog, unlocking every
// achievement whose aggregate now meets its requirement and crediting its
// reward in the same transition. The pass does not restart when a reward
// pushes another aggregate over a threshold; that unlock lands on the
// next mutating call. Caller holds the lock.
func (g *GameImpl) unlockAchievements() []string {
	var unlocked []string
	for _, a := range gamedata.Achievements {
		if a.Metric == gamedata.MetricNone {
			continue
		}
		if g.profile.HasAchievement(a.ID) {
			continue
		}
		if metricValue(&g.profile, a) < a.Requirement {
			continue
		}

		g.profile.Achievements = append(g.profile.Achievements, a.ID)
		g.profile.Coins += a.Reward.Coins
		g.profile.Gems += a.Reward.Gems
		g.profile.XP += a.Reward.XP
		normalizeXP(&g.profile)
		unlocked = append(unlocked, a.ID)
	}
	return unlocked
}

// AchievementProgress annotates the catalog with each achievement's
// current progress, recomputed from the profile on every call.
func (g *GameImpl) AchievementProgress() []AchievementProgress {
	g.mu.Lock()
	defer g.mu.Unlock()

	out := make([]AchievementProgress, 0, len(gamedata.Achievements))
	for _, a := range gamedata.Achievements {
		out = append(out, AchievementProgress{
			Achievement: a,
			Progress:    metricValue(&g.profile, a),
		})
	}
	return out
}
