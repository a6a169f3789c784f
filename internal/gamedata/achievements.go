package gamedata

// Metric names the aggregate an achievement is judged against. Progress
// display and the unlock predicate both read the metric through the same
// lookup, so the two cannot drift apart.
type Metric int

const (
	// MetricNone never unlocks; kept for achievements whose requirement
	// cannot be derived from stored aggregates.
	MetricNone Metric = iota
	MetricGamesPlayed
	MetricTotalCoins
	MetricLevel
	MetricDailyStreak
	MetricHighScore
	MetricItemsPurchased
)

type Reward struct {
	Coins int `json:"coins,omitempty"`
	Gems  int `json:"gems,omitempty"`
	XP    int `json:"xp,omitempty"`
}

type Achievement struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Reward      Reward `json:"reward"`
	Requirement int    `json:"requirement"`

	Metric Metric `json:"-"`
	// Game scopes MetricHighScore to a single minigame.
	Game GameID `json:"-"`
}

var Achievements = []Achievement{
	{
		ID:          "first_game",
		Name:        "First Steps",
		Description: "Play your first game",
		Icon:        "🎮",
		Reward:      Reward{Coins: 100, XP: 50},
		Requirement: 1,
		Metric:      MetricGamesPlayed,
	},
	{
		ID:          "coin_collector",
		Name:        "Coin Collector",
		Description: "Collect 1000 total coins",
		Icon:        "🪙",
		Reward:      Reward{Gems: 5, XP: 100},
		Requirement: 1000,
		Metric:      MetricTotalCoins,
	},
	{
		ID:          "level_10",
		Name:        "Rising Star",
		Description: "Reach level 10",
		Icon:        "⭐",
		Reward:      Reward{Gems: 10, Coins: 500},
		Requirement: 10,
		Metric:      MetricLevel,
	},
	{
		ID:          "daily_champion",
		Name:        "Daily Champion",
		Description: "Complete a 7-day streak",
		Icon:        "🔥",
		Reward:      Reward{Gems: 25, XP: 200},
		Requirement: 7,
		Metric:      MetricDailyStreak,
	},
	{
		ID:          "obby_master",
		Name:        "Obby Master",
		Description: "Score 1000 in Obby Rush",
		Icon:        "🏃",
		Reward:      Reward{Gems: 15, XP: 150},
		Requirement: 1000,
		Metric:      MetricHighScore,
		Game:        GameObbyRush,
	},
	{
		ID:          "memory_genius",
		Name:        "Memory Genius",
		Description: "Complete Memory Match in under 30 seconds",
		Icon:        "🧠",
		Reward:      Reward{Gems: 15, XP: 150},
		Requirement: 30,
		// Memory Match reports a composite score, not elapsed time, so the
		// time requirement is not derivable from stored stats.
		Metric: MetricNone,
	},
	{
		ID:          "dodge_expert",
		Name:        "Dodge Expert",
		Description: "Survive 60 seconds in Dodge Master",
		Icon:        "⚡",
		Reward:      Reward{Gems: 15, XP: 150},
		Requirement: 60,
		// Dodge Master's score is seconds survived.
		Metric: MetricHighScore,
		Game:   GameDodgeMaster,
	},
	{
		ID:          "shopaholic",
		Name:        "Shopaholic",
		Description: "Purchase 5 items from the shop",
		Icon:        "🛍️",
		Reward:      Reward{Gems: 10, XP: 100},
		Requirement: 5,
		Metric:      MetricItemsPurchased,
	},
}
