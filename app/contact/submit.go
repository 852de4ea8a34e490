// Package contact handles the public contact form and the admin
// message inbox
package contact

import (
	"net/http"
	"teamhumanity/story-api/internal"
	"teamhumanity/story-api/internal/model"
	"teamhumanity/story-api/validators"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ContactSubmit stores a contact message. Submissions are counted per
// client IP by the contact limiter before anything touches the database.
func ContactSubmit(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)

	ip := c.ClientIP()

	rl := d.ContactLimiter.Check(ip)
	if !rl.Allowed {
		c.JSON(http.StatusTooManyRequests, gin.H{
			"error":     "Rate limited. Please try again later.",
			"limit":     d.ContactLimiter.Limit(),
			"resetAt":   rl.ResetAt,
			"requestID": requestID,
		})
		return
	}

	var form validators.ContactForm
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

	var ua *string
	if v := c.Request.UserAgent(); v != "" {
		ua = &v
	}

	err := d.DB.
		Create(&model.ContactMessage{
			Name:      form.Name,
			Email:     form.Email,
			Message:   form.Message,
			IP:        ip,
			UserAgent: ua,
			CreatedAt: time.Now().Unix(),
		}).
		Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Failed to send message. Please try again.",
			"requestID": requestID,
		})

		zap.L().Error("Failed to save contact message", zap.String("ip", ip), zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":        true,
		"message":   "Your message has been sent. We will contact you within 72 business hours.",
		"remaining": rl.Remaining,
		"resetAt":   rl.ResetAt,
	})
}
