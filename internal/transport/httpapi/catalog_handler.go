package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/francislhj094/pocket-worlds/internal/gamedata"
)

// GET /api/v1/catalog/shop
func (h *Handler) GetShopCatalog(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"items": gamedata.ShopItems})
}

// GET /api/v1/catalog/avatar
func (h *Handler) GetAvatarCatalog(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"skinTones":  gamedata.SkinTones,
		"hairColors": gamedata.HairColors,
		"faces":      gamedata.Faces,
		"hairStyles": gamedata.HairStyles,
		"outfits":    gamedata.Outfits,
	})
}

// GET /api/v1/catalog/daily-rewards
func (h *Handler) GetDailyRewards(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"rewards": gamedata.DailyRewards})
}
