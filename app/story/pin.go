package story

import (
	"net/http"
	"teamhumanity/story-api/internal"
	"teamhumanity/story-api/internal/service"
	"teamhumanity/story-api/pkg/util"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type storyPinOpts struct {
	Slot int `json:"slot"`
}

func StoryPin(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)

	id, err := util.ParseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Invalid story ID",
			"requestID": requestID,
		})
		return
	}

	var data storyPinOpts
	if err := c.BindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Malformed or invalid JSON request body",
			"requestID": requestID,
		})
		return
	}

	if err := d.Highlights.Pin(id, data.Slot); err != nil {
		switch err {
		case service.ErrBadSlot:
			c.JSON(http.StatusBadRequest, gin.H{
				"error":     err.Error(),
				"requestID": requestID,
			})
		case service.ErrNotFound:
			c.JSON(http.StatusNotFound, gin.H{
				"error":     "Story not found",
				"requestID": requestID,
			})
		case service.ErrCapacity:
			c.JSON(http.StatusConflict, gin.H{
				"error":     err.Error(),
				"requestID": requestID,
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":     err.Error(),
				"requestID": requestID,
			})

			zap.L().Error("Failed to pin story", zap.Uint("id", id), zap.Error(err))
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func StoryUnpin(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)

	id, err := util.ParseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Invalid story ID",
			"requestID": requestID,
		})
		return
	}

	if err := d.Highlights.Unpin(id); err != nil {
		if err == service.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{
				"error":     "Story not found",
				"requestID": requestID,
			})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     err.Error(),
			"requestID": requestID,
		})

		zap.L().Error("Failed to unpin story", zap.Uint("id", id), zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}
