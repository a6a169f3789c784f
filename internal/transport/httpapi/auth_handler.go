package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/francislhj094/pocket-worlds/internal/services/auth"
)

// GET /api/v1/auth/session
func (h *Handler) GetSession(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"user":    h.auth.Current(),
		"pending": h.auth.Pending(),
	})
}

// GET /api/v1/auth/availability?username=...&email=...
func (h *Handler) CheckAvailability(c *gin.Context) {
	username := c.Query("username")
	email := c.Query("email")
	if username == "" && email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username or email required"})
		return
	}

	out := gin.H{}
	if username != "" {
		out["username"] = h.auth.CheckUsernameAvailability(c.Request.Context(), username)
	}
	if email != "" {
		out["email"] = h.auth.CheckEmailAvailability(c.Request.Context(), email)
	}
	c.JSON(http.StatusOK, out)
}

// POST /api/v1/auth/signup
func (h *Handler) SignUp(c *gin.Context) {
	var req auth.SignUpData
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res := h.auth.SignUp(c.Request.Context(), req)
	if !res.Success {
		c.JSON(http.StatusConflict, res)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"pending": h.auth.Pending(),
	})
}

type verifyReq struct {
	Code string `json:"code" binding:"required"`
}

// POST /api/v1/auth/verify
func (h *Handler) VerifyEmail(c *gin.Context) {
	var req verifyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res := h.auth.VerifyEmail(c.Request.Context(), req.Code)
	if !res.Success {
		c.JSON(http.StatusBadRequest, res)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user":    h.auth.Current(),
	})
}

// POST /api/v1/auth/resend
func (h *Handler) ResendCode(c *gin.Context) {
	if !h.auth.ResendCode(c.Request.Context()) {
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "resend on cooldown"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// POST /api/v1/auth/login
func (h *Handler) Login(c *gin.Context) {
	var req auth.LoginData
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res := h.auth.Login(c.Request.Context(), req)
	if !res.Success {
		// An unverified account reopens the verification flow.
		if pending := h.auth.Pending(); pending != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   res.Error,
				"pending": pending,
			})
			return
		}
		c.JSON(http.StatusUnauthorized, res)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user":    h.auth.Current(),
	})
}

// POST /api/v1/auth/guest
func (h *Handler) LoginAsGuest(c *gin.Context) {
	user := h.auth.LoginAsGuest(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user":    user,
	})
}

type passwordResetReq struct {
	Email string `json:"email" binding:"required"`
}

// POST /api/v1/auth/password-reset
func (h *Handler) RequestPasswordReset(c *gin.Context) {
	var req passwordResetReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res := h.auth.RequestPasswordReset(c.Request.Context(), req.Email)
	if !res.Success {
		c.JSON(http.StatusNotFound, res)
		return
	}
	c.JSON(http.StatusOK, res)
}

// POST /api/v1/auth/logout
func (h *Handler) Logout(c *gin.Context) {
	h.auth.Logout(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"success": true})
}
