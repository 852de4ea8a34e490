package join

import (
	"net/http"
	"strconv"
	"teamhumanity/story-api/internal"
	"teamhumanity/story-api/internal/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RequestList(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)

	archived := c.DefaultQuery("archived", "false") == "true"

	pageStr := c.DefaultQuery("page", "0")
	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Page must be a non-negative number",
			"requestID": requestID,
		})
		return
	}

	limitStr := c.DefaultQuery("limit", "50")
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit <= 0 || limit > 250 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Limit must be between 1 and 250",
			"requestID": requestID,
		})
		return
	}

	var requests []model.JoinRequest

	err = d.DB.
		Where("is_archived = ?", archived).
		Order("created_at desc").
		Offset(page * limit).
		Limit(limit).
		Find(&requests).
		Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to fetch join requests", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, requests)
}
