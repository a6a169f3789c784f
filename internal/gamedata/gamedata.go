package gamedata

// GameID identifies one of the three minigames.
type GameID string

const (
	GameObbyRush    GameID = "obbyRush"
	GameMemoryMatch GameID = "memoryMatch"
	GameDodgeMaster GameID = "dodgeMaster"
)

func AllGames() []GameID {
	return []GameID{GameObbyRush, GameMemoryMatch, GameDodgeMaster}
}

func ValidGame(id GameID) bool {
	switch id {
	case GameObbyRush, GameMemoryMatch, GameDodgeMaster:
		return true
	}
	return false
}

type ItemCategory string

const (
	CategoryHats    ItemCategory = "hats"
	CategoryOutfits ItemCategory = "outfits"
	CategoryFaces   ItemCategory = "faces"
	CategoryEffects ItemCategory = "effects"
)

func ValidCategory(c ItemCategory) bool {
	switch c {
	case CategoryHats, CategoryOutfits, CategoryFaces, CategoryEffects:
		return true
	}
	return false
}

type Currency string

const (
	CurrencyCoins Currency = "coins"
	CurrencyGems  Currency = "gems"
)

const (
	XPPerLevel          = 100
	EnergyRefillMinutes = 10
	MaxEnergy           = 5

	// Items every profile starts with (2 outfits + 3 faces). Shopaholic
	// progress counts inventory size minus these.
	DefaultItemCount = 5
)

type AvatarOption struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Free bool   `json:"free"`
}

var SkinTones = []string{"#ffd6a5", "#c68642", "#8d5524", "#3d2817", "#f4c2a5", "#d4a574"}

var HairColors = []string{
	"#2d1b00", "#6b4423", "#c93305", "#e9c46a", "#f4a261", "#a855f7", "#14b8a6", "#3b82f6",
}

var Faces = []AvatarOption{
	{ID: "happy", Name: "Happy", Free: true},
	{ID: "cool", Name: "Cool", Free: true},
	{ID: "excited", Name: "Excited", Free: true},
	{ID: "wink", Name: "Wink", Free: false},
	{ID: "star", Name: "Star Eyes", Free: false},
	{ID: "kawaii", Name: "Kawaii", Free: false},
}

var HairStyles = []AvatarOption{
	{ID: "short", Name: "Short", Free: true},
	{ID: "long", Name: "Long", Free: true},
	{ID: "curly", Name: "Curly", Free: true},
	{ID: "spiky", Name: "Spiky", Free: false},
	{ID: "bun", Name: "Bun", Free: false},
	{ID: "afro", Name: "Afro", Free: false},
}

var Outfits = []AvatarOption{
	{ID: "casual", Name: "Casual", Free: true},
	{ID: "sporty", Name: "Sporty", Free: true},
	{ID: "formal", Name: "Formal", Free: false},
	{ID: "hoodie", Name: "Hoodie", Free: false},
	{ID: "ninja", Name: "Ninja", Free: false},
	{ID: "robot", Name: "Robot", Free: false},
}

type ShopItem struct {
	ID       string       `json:"id"`
	Name     string       `json:"name"`
	Category ItemCategory `json:"category"`
	Price    int          `json:"price"`
	Currency Currency     `json:"currency"`
	Preview  string       `json:"preview"`
}

var ShopItems = []ShopItem{
	{ID: "cap", Name: "Cool Cap", Category: CategoryHats, Price: 500, Currency: CurrencyCoins, Preview: "🧢"},
	{ID: "crown", Name: "Gold Crown", Category: CategoryHats, Price: 50, Currency: CurrencyGems, Preview: "👑"},
	{ID: "wizard", Name: "Wizard Hat", Category: CategoryHats, Price: 1000, Currency: CurrencyCoins, Preview: "🧙"},
	{ID: "party", Name: "Party Hat", Category: CategoryHats, Price: 25, Currency: CurrencyGems, Preview: "🎉"},

	{ID: "hero", Name: "Hero Suit", Category: CategoryOutfits, Price: 2000, Currency: CurrencyCoins, Preview: "🦸"},
	{ID: "space", Name: "Space Suit", Category: CategoryOutfits, Price: 75, Currency: CurrencyGems, Preview: "👨‍🚀"},
	{ID: "pirate", Name: "Pirate", Category: CategoryOutfits, Price: 1500, Currency: CurrencyCoins, Preview: "🏴‍☠️"},

	{ID: "wink", Name: "Wink", Category: CategoryFaces, Price: 300, Currency: CurrencyCoins, Preview: "😉"},
	{ID: "star", Name: "Star Eyes", Category: CategoryFaces, Price: 20, Currency: CurrencyGems, Preview: "🤩"},
	{ID: "kawaii", Name: "Kawaii", Category: CategoryFaces, Price: 500, Currency: CurrencyCoins, Preview: "😊"},

	{ID: "sparkle", Name: "Sparkle", Category: CategoryEffects, Price: 30, Currency: CurrencyGems, Preview: "✨"},
	{ID: "fire", Name: "Fire Aura", Category: CategoryEffects, Price: 50, Currency: CurrencyGems, Preview: "🔥"},
	{ID: "rainbow", Name: "Rainbow Trail", Category: CategoryEffects, Price: 40, Currency: CurrencyGems, Preview: "🌈"},
}

type DailyReward struct {
	Day    int `json:"day"`
	Coins  int `json:"coins,omitempty"`
	Gems   int `json:"gems,omitempty"`
	Energy int `json:"energy,omitempty"`
}

var DailyRewards = []DailyReward{
	{Day: 1, Coins: 100},
	{Day: 2, Coins: 150},
	{Day: 3, Coins: 200, Energy: 1},
	{Day: 4, Coins: 250},
	{Day: 5, Coins: 300, Gems: 5},
	{Day: 6, Coins: 400, Energy: 2},
	{Day: 7, Coins: 500, Gems: 20, Energy: 5},
}

// RewardForStreak returns the reward for the current streak day.
// Streaks past a week stay on the day-7 reward.
func RewardForStreak(streak int) DailyReward {
	if streak < 1 {
		streak = 1
	}
	if streak > len(DailyRewards) {
		streak = len(DailyRewards)
	}
	return DailyRewards[streak-1]
}
