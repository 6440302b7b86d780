package reply

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jdkim-dev/boardgo/internal/auth"
	"github.com/jdkim-dev/boardgo/internal/board"
)

// Request carries the reply body for create and update.
type Request struct {
	Content string `json:"content" binding:"required"`
}

func parseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return uint(id), true
}

// RegisterRoutes mounts the reply endpoints under /board/:boardId/reply.
func RegisterRoutes(rg *gin.RouterGroup, svc *Service) {
	g := rg.Group("/board/:boardId/reply")

	g.GET("", func(c *gin.Context) {
		boardID, ok := parseID(c, "boardId")
		if !ok {
			return
		}
		replies, err := svc.ListByBoard(boardID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list replies"})
			return
		}
		c.JSON(http.StatusOK, replies)
	})

	g.POST("", func(c *gin.Context) {
		boardID, ok := parseID(c, "boardId")
		if !ok {
			return
		}

		p, authed := auth.PrincipalFrom(c.Request.Context())
		if !authed {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}

		var req Request
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		replies, err := svc.Create(boardID, p.UserID, req.Content)
		if err != nil {
			if errors.Is(err, board.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "board not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create reply"})
			return
		}
		c.JSON(http.StatusOK, replies)
	})

	g.PUT("/:replyId", func(c *gin.Context) {
		replyID, ok := parseID(c, "replyId")
		if !ok {
			return
		}
		var req Request
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		updated, err := svc.Update(replyID, req.Content)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "reply not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update reply"})
			return
		}
		c.JSON(http.StatusOK, updated)
	})

	g.DELETE("/:replyId", func(c *gin.Context) {
		replyID, ok := parseID(c, "replyId")
		if !ok {
			return
		}
		if err := svc.Delete(replyID); err != nil {
			if errors.Is(err, ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "reply not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete reply"})
			return
		}
		c.Status(http.StatusOK)
	})
}
