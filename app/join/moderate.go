package join

import (
	"net/http"
	"teamhumanity/story-api/internal"
	"teamhumanity/story-api/internal/model"
	"teamhumanity/story-api/internal/service"
	"teamhumanity/story-api/pkg/util"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RequestMarkRead(c *gin.Context, d *internal.Deps) {
	moderate(c, func(id uint) error {
		return service.SetRead(d.DB, &model.JoinRequest{}, id, true)
	})
}

func RequestMarkUnread(c *gin.Context, d *internal.Deps) {
	moderate(c, func(id uint) error {
		return service.SetRead(d.DB, &model.JoinRequest{}, id, false)
	})
}

func RequestArchive(c *gin.Context, d *internal.Deps) {
	moderate(c, func(id uint) error {
		return service.SetArchived(d.DB, &model.JoinRequest{}, id, true)
	})
}

func RequestUnarchive(c *gin.Context, d *internal.Deps) {
	moderate(c, func(id uint) error {
		return service.SetArchived(d.DB, &model.JoinRequest{}, id, false)
	})
}

func RequestDelete(c *gin.Context, d *internal.Deps) {
	moderate(c, func(id uint) error {
		res := d.DB.Delete(&model.JoinRequest{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return service.ErrNotFound
		}

		return nil
	})
}

func moderate(c *gin.Context, apply func(id uint) error) {
	requestID := c.MustGet("requestID").(string)

	id, err := util.ParseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Invalid request ID",
			"requestID": requestID,
		})
		return
	}

	if err := apply(id); err != nil {
		if err == service.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{
				"error":     "Join request not found",
				"requestID": requestID,
			})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     err.Error(),
			"requestID": requestID,
		})

		zap.L().Error("Failed to moderate join request", zap.Uint("id", id), zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}
