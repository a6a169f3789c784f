package httpapi

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/francislhj094/pocket-worlds/internal/services/auth"
	"github.com/francislhj094/pocket-worlds/internal/services/leaderboard"
	"github.com/francislhj094/pocket-worlds/internal/services/progression"
	"github.com/francislhj094/pocket-worlds/internal/services/session"
)

type Handler struct {
	game  progression.Game
	auth  auth.Service
	board leaderboard.Leaderboard
}

func NewHandler(game progression.Game, authService auth.Service, board leaderboard.Leaderboard) *Handler {
	return &Handler{
		game:  game,
		auth:  authService,
		board: board,
	}
}

// withSession copies the signed-in user's id into the request context so
// downstream handlers and logs can attribute the mutation.
func (h *Handler) withSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if user := h.auth.Current(); user != nil {
			c.Request = c.Request.WithContext(session.SetUserContext(c.Request.Context(), user.ID))
		}
		c.Next()
	}
}

func NewRouter(h *Handler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	config := cors.DefaultConfig()
	config.AllowAllOrigins = true
	config.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type"}
	config.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	config.MaxAge = 12 * time.Hour
	r.Use(cors.New(config))

	api := r.Group("/api/v1")
	api.Use(h.withSession())
	{
		api.GET("/profile", h.GetProfile)
		api.PUT("/profile/avatar", h.UpdateAvatar)
		api.POST("/profile/onboarding/complete", h.CompleteOnboarding)

		api.POST("/energy/spend", h.SpendEnergy)
		api.POST("/currency/coins", h.AddCoins)
		api.POST("/currency/gems", h.AddGems)
		api.POST("/xp", h.AddXP)
		api.POST("/games/:id/result", h.RecordGameResult)
		api.POST("/shop/purchase", h.PurchaseItem)
		api.POST("/daily/claim", h.ClaimDailyReward)
		api.GET("/achievements", h.GetAchievements)

		catalog := api.Group("/catalog")
		{
			catalog.GET("/shop", h.GetShopCatalog)
			catalog.GET("/avatar", h.GetAvatarCatalog)
			catalog.GET("/daily-rewards", h.GetDailyRewards)
		}

		board := api.Group("/leaderboard")
		{
			board.GET("/boards", h.GetBoards)
			board.GET("/:board", h.GetBoard)
		}

		authGroup := api.Group("/auth")
		{
			authGroup.GET("/session", h.GetSession)
			authGroup.GET("/availability", h.CheckAvailability)
			authGroup.POST("/signup", h.SignUp)
			authGroup.POST("/verify", h.VerifyEmail)
			authGroup.POST("/resend", h.ResendCode)
			authGroup.POST("/login", h.Login)
			authGroup.POST("/guest", h.LoginAsGuest)
			authGroup.POST("/password-reset", h.RequestPasswordReset)
			authGroup.POST("/logout", h.Logout)
		}
	}

	return r
}
