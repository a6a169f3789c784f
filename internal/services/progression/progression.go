package progression

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/francislhj094/pocket-worlds/internal/gamedata"
	"github.com/francislhj094/pocket-worlds/internal/services/timer"
	"github.com/francislhj094/pocket-worlds/internal/store"
)

const (
	profileKey    = "profile"
	onboardingKey = "hasSeenAvatarCreator"

	energyTickInterval = 60 * time.Second
)

// Game owns the canonical profile. Every mutation goes through one of
// these methods; each locks, computes the next state from the latest
// committed state, and persists it before returning.
type Game interface {
	Load(ctx context.Context)
	Start(ctx context.Context)

	Profile() Profile
	HasSeenOnboarding() bool

	UpdateAvatar(ctx context.Context, avatar AvatarCustomization)
	CompleteOnboarding(ctx context.Context)
	SpendEnergy(ctx context.Context, amount int) bool
	AddCoins(ctx context.Context, amount int)
	AddGems(ctx context.Context, amount int)
	AddXP(ctx context.Context, amount int)
	RecordGameResult(ctx context.Context, game gamedata.GameID, score, coinsEarned int)
	PurchaseItem(ctx context.Context, itemID string, category gamedata.ItemCategory, price int, currency gamedata.Currency) bool
	ClaimDailyReward(ctx context.Context, coins, gems, energy int)
	AchievementProgress() []AchievementProgress

	ReconcileEnergy(ctx context.Context)
}

type GameImpl struct {
	mu                sync.Mutex
	store             store.Store
	profile           Profile
	hasSeenOnboarding bool
	now               func() time.Time
}

func NewGame(s store.Store) Game {
	now := time.Now
	return &GameImpl{
		store:   s,
		profile: DefaultProfile(now()),
		now:     now,
	}
}

// saveProfile persists the current profile. Persistence failure is logged
// and the in-memory state is kept; callers never see the error.
func (g *GameImpl) saveProfile(ctx context.Context) {
	data, err := json.Marshal(g.profile)
	if err != nil {
		log.Error().Err(err).Msg("failed to encode profile")
		return
	}
	if err := g.store.Set(ctx, profileKey, data); err != nil {
		log.Error().Err(err).Msg("failed to save profile")
	}
}

// Load reads the persisted profile and onboarding flag, falling back to
// defaults when the store has nothing (or nothing readable), then
// reconciles energy and the daily streak before the profile is first
// exposed. Never fatal.
func (g *GameImpl) Load(ctx context.Context) {
	g.mu.Lock()
	defer g.mu.Unlock()

	data, err := g.store.Get(ctx, profileKey)
	switch {
	case err == store.ErrNotFound:
		log.Info().Msg("no stored profile, starting fresh")
	case err != nil:
		log.Error().Err(err).Msg("failed to load profile, starting fresh")
	default:
		var p Profile
		if uerr := json.Unmarshal(data, &p); uerr != nil {
			// Distinct from "no data": prior progress is being discarded.
			log.Error().Err(uerr).Msg("stored profile is malformed, resetting progress")
		} else {
			if p.GameStats == nil {
				p.GameStats = DefaultProfile(g.now()).GameStats
			}
			g.profile = p
		}
	}

	changed := reconcileEnergy(&g.profile, g.now())
	if reconcileDailyLogin(&g.profile, g.now()) {
		changed = true
	}
	if changed {
		g.saveProfile(ctx)
	}

	if flag, err := g.store.Get(ctx, onboardingKey); err == nil && string(flag) == "true" {
		g.hasSeenOnboarding = true
	}
}

// Start runs the periodic energy tick until ctx is cancelled.
func (g *GameImpl) Start(ctx context.Context) {
	rt := timer.NewRepeatedTimer(energyTickInterval, func() {
		g.ReconcileEnergy(context.Background())
	})
	<-ctx.Done()
	rt.Stop()
}

func (g *GameImpl) Profile() Profile {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.profile.Clone()
}

func (g *GameImpl) HasSeenOnboarding() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.hasSeenOnboarding
}

// UpdateAvatar replaces the avatar wholesale. The avatar screen only
// offers owned options, so nothing is validated here.
func (g *GameImpl) UpdateAvatar(ctx context.Context, avatar AvatarCustomization) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.profile.Avatar = avatar
	g.saveProfile(ctx)
}

func (g *GameImpl) CompleteOnboarding(ctx context.Context) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.hasSeenOnboarding = true
	if err := g.store.Set(ctx, onboardingKey, []byte("true")); err != nil {
		log.Error().Err(err).Msg("failed to save onboarding flag")
	}
}

// SpendEnergy decrements energy by amount iff enough is available.
// No partial spend.
func (g *GameImpl) SpendEnergy(ctx context.Context, amount int) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.profile.Energy < amount {
		return false
	}
	g.profile.Energy -= amount
	g.saveProfile(ctx)
	return true
}

func (g *GameImpl) AddCoins(ctx context.Context, amount int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.profile.Coins += amount
	g.unlockAchievements()
	g.saveProfile(ctx)
}

func (g *GameImpl) AddGems(ctx context.Context, amount int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.profile.Gems += amount
	g.saveProfile(ctx)
}

func (g *GameImpl) AddXP(ctx context.Context, amount int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.profile.XP += amount
	normalizeXP(&g.profile)
	g.unlockAchievements()
	g.saveProfile(ctx)
}

// normalizeXP rolls surplus XP into levels. The threshold for level N is
// XPPerLevel * N, so requirements grow with each level.
func normalizeXP(p *Profile) {
	for p.XP >= gamedata.XPPerLevel*p.Level {
		p.XP -= gamedata.XPPerLevel * p.Level
		p.Level++
	}
}

// RecordGameResult folds one finished game into that game's running
// stats. Coins and XP earned are credited separately by the caller.
func (g *GameImpl) RecordGameResult(ctx context.Context, game gamedata.GameID, score, coinsEarned int) {
	g.mu.Lock()
	defer g.mu.Unlock()

	stats := g.profile.GameStats[game]
	if score > stats.HighScore {
		stats.HighScore = score
	}
	stats.GamesPlayed++
	stats.TotalCoins += coinsEarned
	g.profile.GameStats[game] = stats

	g.unlockAchievements()
	g.saveProfile(ctx)
}

// PurchaseItem debits the named currency and appends the item to the
// category's collection. Ownership is pre-checked by the shop screen.
func (g *GameImpl) PurchaseItem(ctx context.Context, itemID string, category gamedata.ItemCategory, price int, currency gamedata.Currency) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	collection := g.profile.Inventory.Collection(category)
	if collection == nil {
		return false
	}

	switch currency {
	case gamedata.CurrencyCoins:
		if g.profile.Coins < price {
			return false
		}
		g.profile.Coins -= price
	case gamedata.CurrencyGems:
		if g.profile.Gems < price {
			return false
		}
		g.profile.Gems -= price
	default:
		return false
	}

	*collection = append(*collection, itemID)

	g.unlockAchievements()
	g.saveProfile(ctx)
	return true
}

// ClaimDailyReward credits the reward unconditionally; the streak itself
// advances only during login reconciliation.
func (g *GameImpl) ClaimDailyReward(ctx context.Context, coins, gems, energy int) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.profile.Coins += coins
	g.profile.Gems += gems
	g.profile.Energy += energy
	if g.profile.Energy > g.profile.MaxEnergy {
		g.profile.Energy = g.profile.MaxEnergy
	}
	g.saveProfile(ctx)
}
