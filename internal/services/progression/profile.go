package progression

import (
	"time"

	"github.com/google/uuid"

	"github.com/francislhj094/pocket-worlds/internal/gamedata"
)

type AvatarCustomization struct {
	SkinTone  string `json:"skinTone"`
	Face      string `json:"face"`
	HairStyle string `json:"hairStyle"`
	HairColor string `json:"hairColor"`
	Outfit    string `json:"outfit"`
	Hat       string `json:"hat,omitempty"`
	Effect    string `json:"effect,omitempty"`
}

type GameStats struct {
	HighScore   int `json:"highScore"`
	GamesPlayed int `json:"gamesPlayed"`
	TotalCoins  int `json:"totalCoins"`
}

type Inventory struct {
	Hats    []string `json:"hats"`
	Outfits []string `json:"outfits"`
	Faces   []string `json:"faces"`
	Effects []string `json:"effects"`
}

// Collection returns the slice backing one inventory category.
func (inv *Inventory) Collection(category gamedata.ItemCategory) *[]string {
	switch category {
	case gamedata.CategoryHats:
		return &inv.Hats
	case gamedata.CategoryOutfits:
		return &inv.Outfits
	case gamedata.CategoryFaces:
		return &inv.Faces
	case gamedata.CategoryEffects:
		return &inv.Effects
	}
	return nil
}

func (inv *Inventory) TotalItems() int {
	return len(inv.Hats) + len(inv.Outfits) + len(inv.Faces) + len(inv.Effects)
}

// Profile is the single root aggregate. Field names match the persisted
// JSON layout of the mobile client, so existing saves load unchanged.
type Profile struct {
	ID               string                             `json:"id"`
	Username         string                             `json:"username"`
	Avatar           AvatarCustomization                `json:"avatar"`
	Level            int                                `json:"level"`
	XP               int                                `json:"xp"`
	Coins            int                                `json:"coins"`
	Gems             int                                `json:"gems"`
	Energy           int                                `json:"energy"`
	MaxEnergy        int                                `json:"maxEnergy"`
	LastEnergyUpdate int64                              `json:"lastEnergyUpdate"`
	Inventory        Inventory                          `json:"inventory"`
	Achievements     []string                           `json:"achievements"`
	GameStats        map[gamedata.GameID]GameStats      `json:"gameStats"`
	DailyStreak      int                                `json:"dailyStreak"`
	LastLoginDate    string                             `json:"lastLoginDate"`
	CreatedAt        int64                              `json:"createdAt"`
}

func DefaultAvatar() AvatarCustomization {
	return AvatarCustomization{
		SkinTone:  "#ffd6a5",
		Face:      "happy",
		HairStyle: "short",
		HairColor: "#2d1b00",
		Outfit:    "casual",
	}
}

func DefaultProfile(now time.Time) Profile {
	return Profile{
		ID:               "player_" + uuid.NewString(),
		Username:         "Player",
		Avatar:           DefaultAvatar(),
		Level:            1,
		XP:               0,
		Coins:            1000,
		Gems:             50,
		Energy:           gamedata.MaxEnergy,
		MaxEnergy:        gamedata.MaxEnergy,
		LastEnergyUpdate: now.UnixMilli(),
		Inventory: Inventory{
			Hats:    []string{},
			Outfits: []string{"casual", "sporty"},
			Faces:   []string{"happy", "cool", "excited"},
			Effects: []string{},
		},
		Achievements: []string{},
		GameStats: map[gamedata.GameID]GameStats{
			gamedata.GameObbyRush:    {},
			gamedata.GameMemoryMatch: {},
			gamedata.GameDodgeMaster: {},
		},
		DailyStreak:   0,
		LastLoginDate: "",
		CreatedAt:     now.UnixMilli(),
	}
}

func (p *Profile) HasAchievement(id string) bool {
	for _, a := range p.Achievements {
		if a == id {
			return true
		}
	}
	return false
}

// Clone returns a deep copy so readers never alias engine-owned state.
func (p Profile) Clone() Profile {
	cp := p
	cp.Inventory.Hats = append([]string{}, p.Inventory.Hats...)
	cp.Inventory.Outfits = append([]string{}, p.Inventory.Outfits...)
	cp.Inventory.Faces = append([]string{}, p.Inventory.Faces...)
	cp.Inventory.Effects = append([]string{}, p.Inventory.Effects...)
	cp.Achievements = append([]string{}, p.Achievements...)
	cp.GameStats = make(map[gamedata.GameID]GameStats, len(p.GameStats))
	for k, v := range p.GameStats {
		cp.GameStats[k] = v
	}
	return cp
}
