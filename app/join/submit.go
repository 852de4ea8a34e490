// Package join handles join request submissions from people asking to
// have their story featured, plus the admin review queue
package join

import (
	"net/http"
	"teamhumanity/story-api/internal"
	"teamhumanity/story-api/internal/model"
	"teamhumanity/story-api/validators"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func JoinSubmit(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)

	ip := c.ClientIP()

	rl := d.JoinLimiter.Check(ip)
	if !rl.Allowed {
		c.JSON(http.StatusTooManyRequests, gin.H{
			"error":     "Too many requests. Please try again later.",
			"limit":     d.JoinLimiter.Limit(),
			"resetAt":   rl.ResetAt,
			"requestID": requestID,
		})
		return
	}

	var form validators.JoinForm
	if err := c.BindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Malformed or invalid JSON request body",
			"requestID": requestID,
		})
		return
	}

	if err := form.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     err.Error(),
			"requestID": requestID,
		})
		return
	}

	var extra *string
	if form.ExtraInfo != "" {
		extra = &form.ExtraInfo
	}

	var ua *string
	if v := c.Request.UserAgent(); v != "" {
		ua = &v
	}

	err := d.DB.
		Create(&model.JoinRequest{
			Title:        form.Title,
			Email:        form.Email,
			Phone:        form.Phone,
			InstagramURL: form.InstagramURL,
			Story:        form.Story,
			ExtraInfo:    extra,
			IP:           ip,
			UserAgent:    ua,
			CreatedAt:    time.Now().Unix(),
		}).
		Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     err.Error(),
			"requestID": requestID,
		})

		zap.L().Error("Failed to save join request", zap.String("ip", ip), zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":        true,
		"remaining": rl.Remaining,
		"resetAt":   rl.ResetAt,
	})
}
