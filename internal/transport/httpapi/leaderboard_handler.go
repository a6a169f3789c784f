package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GET /api/v1/leaderboard/boards
func (h *Handler) GetBoards(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"boards": h.board.Boards()})
}

// GET /api/v1/leaderboard/:board
func (h *Handler) GetBoard(c *gin.Context) {
	entries := h.board.Top(c.Param("board"))
	if entries == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown board"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"entries": entries})
}
