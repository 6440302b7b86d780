package board

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

func parseBoardID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("boardId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid board id"})
		return 0, false
	}
	return uint(id), true
}

// RegisterRoutes mounts the board CRUD endpoints on the given group.
func RegisterRoutes(rg *gin.RouterGroup, svc *Service) {
	rg.GET("/boards", func(c *gin.Context) {
		page, _ := strconv.Atoi(c.DefaultQuery("page", "0"))
		size, _ := strconv.Atoi(c.DefaultQuery("size", strconv.Itoa(defaultPageSize)))
		if page < 0 {
			page = 0
		}
		if size <= 0 || size > maxPageSize {
			size = defaultPageSize
		}

		result, err := svc.Search(c.Query("searchTitle"), page, size)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list boards"})
			return
		}
		if len(result.Content) == 0 {
			c.Status(http.StatusNoContent)
			return
		}
		c.JSON(http.StatusOK, result)
	})

	rg.POST("/boards", func(c *gin.Context) {
		var dto Dto
		if err := c.ShouldBindJSON(&dto); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		created, err := svc.Create(dto)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create board"})
			return
		}
		c.JSON(http.StatusOK, created)
	})

	rg.GET("/boards/:boardId", func(c *gin.Context) {
		id, ok := parseBoardID(c)
		if !ok {
			return
		}
		dto, err := svc.Get(id)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "board not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load board"})
			return
		}
		c.JSON(http.StatusOK, dto)
	})

	rg.PUT("/boards/:boardId", func(c *gin.Context) {
		id, ok := parseBoardID(c)
		if !ok {
			return
		}
		var dto Dto
		if err := c.ShouldBindJSON(&dto); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		updated, err := svc.Update(id, dto)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "board not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update board"})
			return
		}
		c.JSON(http.StatusOK, updated)
	})

	rg.DELETE("/boards/:boardId", func(c *gin.Context) {
		id, ok := parseBoardID(c)
		if !ok {
			return
		}
		if err := svc.Delete(id); err != nil {
			if errors.Is(err, ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "board not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete board"})
			return
		}
		c.Status(http.StatusOK)
	})
}
