package story

import (
	"context"
	"net/http"
	"teamhumanity/story-api/internal"
	"teamhumanity/story-api/internal/model"
	"teamhumanity/story-api/pkg/util"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func StoryDelete(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)

	id, err := util.ParseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Invalid story ID",
			"requestID": requestID,
		})
		return
	}

	var story model.Story

	err = d.DB.First(&story, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{
				"error":     "Story not found",
				"requestID": requestID,
			})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to fetch story for delete", zap.Error(err))
		return
	}

	if err := d.DB.Delete(&model.Story{}, id).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     err.Error(),
			"requestID": requestID,
		})

		zap.L().Error("Failed to delete story", zap.Error(err))
		return
	}

	// Best effort storage cleanup, an orphaned object is not worth
	// failing the delete over
	for _, key := range story.ImagePaths {
		if err := d.S3.Delete(context.Background(), key); err != nil {
			zap.L().Warn("Failed to delete story image", zap.String("key", key), zap.Error(err))
		}
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}
