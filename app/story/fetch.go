package story

import (
	"net/http"
	"strings"
	"teamhumanity/story-api/internal"
	"teamhumanity/story-api/internal/model"
	"teamhumanity/story-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// StoryFetch resolves a slug against the published stories and returns
// the full record. Slugs aren't stored anywhere: every request
// re-derives them from the names.
func StoryFetch(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)

	slug := strings.ToLower(strings.TrimSpace(c.Param("slug")))
	if slug == "" {
		c.JSON(http.StatusNotFound, gin.H{
			"error":     "Story not found",
			"requestID": requestID,
		})
		return
	}

	var candidates []model.Story

	err := d.DB.
		Select("id", "name").
		Where("is_published = ?", true).
		Order("id").
		Limit(viper.GetInt("stories.page_limit")).
		Find(&candidates).
		Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to fetch slug candidates", zap.Error(err))
		return
	}

	id, ok := service.ResolveSlug(slug, candidates)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"error":     "Story not found",
			"requestID": requestID,
		})
		return
	}

	var story model.Story

	err = d.DB.
		Where("id = ? AND is_published = ?", id, true).
		First(&story).
		Error
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

		zap.L().Error("Failed to fetch story", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, story)
}
