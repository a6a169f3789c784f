package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/francislhj094/pocket-worlds/internal/gamedata"
	"github.com/francislhj094/pocket-worlds/internal/services/progression"
)

// GET /api/v1/profile
func (h *Handler) GetProfile(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"profile":              h.game.Profile(),
		"hasSeenAvatarCreator": h.game.HasSeenOnboarding(),
	})
}

// PUT /api/v1/profile/avatar
func (h *Handler) UpdateAvatar(c *gin.Context) {
	var avatar progression.AvatarCustomization
	if err := c.ShouldBindJSON(&avatar); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.game.UpdateAvatar(c.Request.Context(), avatar)
	c.JSON(http.StatusOK, gin.H{"profile": h.game.Profile()})
}

// POST /api/v1/profile/onboarding/complete
func (h *Handler) CompleteOnboarding(c *gin.Context) {
	h.game.CompleteOnboarding(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"hasSeenAvatarCreator": true})
}

type amountReq struct {
	Amount int `json:"amount" binding:"required,min=1"`
}

// POST /api/v1/energy/spend
func (h *Handler) SpendEnergy(c *gin.Context) {
	var req amountReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !h.game.SpendEnergy(c.Request.Context(), req.Amount) {
		c.JSON(http.StatusConflict, gin.H{"error": "not enough energy"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"profile": h.game.Profile()})
}

// POST /api/v1/currency/coins
func (h *Handler) AddCoins(c *gin.Context) {
	var req amountReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.game.AddCoins(c.Request.Context(), req.Amount)
	c.JSON(http.StatusOK, gin.H{"profile": h.game.Profile()})
}

// POST /api/v1/currency/gems
func (h *Handler) AddGems(c *gin.Context) {
	var req amountReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.game.AddGems(c.Request.Context(), req.Amount)
	c.JSON(http.StatusOK, gin.H{"profile": h.game.Profile()})
}

// POST /api/v1/xp
func (h *Handler) AddXP(c *gin.Context) {
	var req amountReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.game.AddXP(c.Request.Context(), req.Amount)
	c.JSON(http.StatusOK, gin.H{"profile": h.game.Profile()})
}

type gameResultReq struct {
	Score       int `json:"score" binding:"min=0"`
	CoinsEarned int `json:"coinsEarned" binding:"min=0"`
}

// POST /api/v1/games/:id/result
func (h *Handler) RecordGameResult(c *gin.Context) {
	game := gamedata.GameID(c.Param("id"))
	if !gamedata.ValidGame(game) {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown game"})
		return
	}

	var req gameResultReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.game.RecordGameResult(c.Request.Context(), game, req.Score, req.CoinsEarned)
	c.JSON(http.StatusOK, gin.H{"profile": h.game.Profile()})
}

type purchaseReq struct {
	ItemID string `json:"itemId" binding:"required"`
}

// POST /api/v1/shop/purchase
// The catalog is authoritative for price and currency; the client only
// names the item.
func (h *Handler) PurchaseItem(c *gin.Context) {
	var req purchaseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, ok := findShopItem(req.ItemID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown item"})
		return
	}

	if !h.game.PurchaseItem(c.Request.Context(), item.ID, item.Category, item.Price, item.Currency) {
		c.JSON(http.StatusConflict, gin.H{"error": "purchase rejected"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"profile": h.game.Profile()})
}

func findShopItem(id string) (gamedata.ShopItem, bool) {
	for _, item := range gamedata.ShopItems {
		if item.ID == id {
			return item, true
		}
	}
	return gamedata.ShopItem{}, false
}

// POST /api/v1/daily/claim
func (h *Handler) ClaimDailyReward(c *gin.Context) {
	reward := gamedata.RewardForStreak(h.game.Profile().DailyStreak)
	h.game.ClaimDailyReward(c.Request.Context(), reward.Coins, reward.Gems, reward.Energy)
	c.JSON(http.StatusOK, gin.H{
		"reward":  reward,
		"profile": h.game.Profile(),
	})
}

// GET /api/v1/achievements
func (h *Handler) GetAchievements(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"achievements": h.game.AchievementProgress()})
}
