// Package story contains the public story listing plus the admin
// mutations (upsert, delete, reorder, pin)
package story

import (
	"net/http"
	"strconv"
	"teamhumanity/story-api/internal"
	"teamhumanity/story-api/internal/model"
	"teamhumanity/story-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Stories are served in display order: highlight slot 1, slot 2, then
// everything else by sort key. Pinned rows come from their own uncapped
// query so pagination of the tail can never push them out of the head
const listOrder = "sort_order IS NULL, sort_order, id"

func StoryList(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)

	pageStr := c.DefaultQuery("page", "0")
	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Page must be a non-negative number",
			"requestID": requestID,
		})
		return
	}

	pageLimit := viper.GetInt("stories.page_limit")

	limitStr := c.DefaultQuery("limit", strconv.Itoa(pageLimit))
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Limit must be greater than 0",
			"requestID": requestID,
		})
		return
	}

	if limit > pageLimit {
		limit = pageLimit
	}

	var pinned []model.Story

	err = d.DB.
		Where("is_published = ? AND highlight_slot IN (1, 2)", true).
		Find(&pinned).
		Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to fetch pinned stories", zap.Error(err))
		return
	}

	var tail []model.Story

	err = d.DB.
		Where("is_published = ? AND (highlight_slot IS NULL OR highlight_slot NOT IN (1, 2))", true).
		Order(listOrder).
		Offset(page * limit).
		Limit(limit).
		Find(&tail).
		Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to fetch stories", zap.Error(err))
		return
	}

	// Pins lead the first page only, later pages are pure tail
	if page > 0 {
		c.JSON(http.StatusOK, tail)
		return
	}

	c.JSON(http.StatusOK, service.ComposeDisplay(append(pinned, tail...)))
}
