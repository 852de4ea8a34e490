package story

import (
	"net/http"
	"teamhumanity/story-api/internal"
	"teamhumanity/story-api/internal/service"
	"teamhumanity/story-api/pkg/util"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type storyMoveOpts struct {
	Direction string `json:"direction"`
}

// StoryMove shifts a story one position up or down in the manual order.
// Moving past either end of the list is a quiet success so the admin UI
// doesn't have to special-case the boundaries.
func StoryMove(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)

	id, err := util.ParseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Invalid story ID",
			"requestID": requestID,
		})
		return
	}

	var data storyMoveOpts
	if err := c.BindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Malformed or invalid JSON request body",
			"requestID": requestID,
		})
		return
	}

	if err := d.Sort.MoveAdjacent(id, data.Direction); err != nil {
		if err == service.ErrBadDirection {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":     err.Error(),
				"requestID": requestID,
			})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     err.Error(),
			"requestID": requestID,
		})

		zap.L().Error("Failed to move story", zap.Uint("id", id), zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}
