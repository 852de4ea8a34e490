package story

import (
	"net/http"
	"strings"
	"teamhumanity/story-api/internal"
	"teamhumanity/story-api/internal/model"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type storyUpsertOpts struct {
	ID   uint   `json:"id,omitempty"`
	Name string `json:"name"`
	Bio  *string `json:"bio,omitempty"`

	VideoURL *string `json:"video_url,omitempty"`

	DonationLink  *string             `json:"donation_link,omitempty"`
	DonationLinks model.DonationLinks `json:"donation_links"`

	ImagePaths []string `json:"image_paths"`

	SortOrder     *int `json:"sort_order,omitempty"`
	HighlightSlot *int `json:"highlight_slot,omitempty"`

	IsPublished    bool    `json:"is_published"`
	IsConfirmed    bool    `json:"is_confirmed"`
	ConfirmedLabel *string `json:"confirmed_label,omitempty"`
}

// StoryUpsert creates a story or overwrites an existing one wholesale,
// mirroring the admin form which always posts every field.
func StoryUpsert(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)

	var data storyUpsertOpts
	if err := c.BindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Malformed or invalid JSON request body",
			"requestID": requestID,
		})
		return
	}

	data.Name = strings.TrimSpace(data.Name)
	if data.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Name is required",
			"requestID": requestID,
		})
		return
	}

	// Only 1 and 2 are real slots, anything else means not pinned
	if data.HighlightSlot != nil && *data.HighlightSlot != 1 && *data.HighlightSlot != 2 {
		data.HighlightSlot = nil
	}

	links := make(model.DonationLinks, 0, len(data.DonationLinks))
	for _, l := range data.DonationLinks {
		l.Label = strings.TrimSpace(l.Label)
		l.URL = strings.TrimSpace(l.URL)

		if l.URL != "" {
			links = append(links, l)
		}
	}

	// The legacy single link mirrors the first of the new list so old
	// rows and old clients keep working
	donationLink := data.DonationLink
	if len(links) > 0 {
		donationLink = &links[0].URL
	}

	if data.ID > 0 {
		var story model.Story

		err := d.DB.First(&story, data.ID).Error
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

			zap.L().Error("Failed to fetch story for update", zap.Error(err))
			return
		}

		story.Name = data.Name
		story.Bio = data.Bio
		story.VideoURL = data.VideoURL
		story.DonationLink = donationLink
		story.DonationLinks = links
		story.ImagePaths = data.ImagePaths
		story.SortOrder = data.SortOrder
		story.HighlightSlot = data.HighlightSlot
		story.IsPublished = data.IsPublished
		story.IsConfirmed = data.IsConfirmed
		story.ConfirmedLabel = data.ConfirmedLabel

		if err := d.DB.Save(&story).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":     err.Error(),
				"requestID": requestID,
			})

			zap.L().Error("Failed to update story", zap.Error(err))
			return
		}

		c.JSON(http.StatusOK, gin.H{"id": story.ID})
		return
	}

	sortOrder := data.SortOrder
	if sortOrder == nil {
		key, err := d.Sort.NextInsertionKey()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":     "Internal server error",
				"requestID": requestID,
			})

			zap.L().Error("Failed to compute insertion key", zap.Error(err))
			return
		}

		sortOrder = &key
	}

	story := model.Story{
		Name:           data.Name,
		Bio:            data.Bio,
		VideoURL:       data.VideoURL,
		DonationLink:   donationLink,
		DonationLinks:  links,
		ImagePaths:     data.ImagePaths,
		SortOrder:      sortOrder,
		HighlightSlot:  data.HighlightSlot,
		IsPublished:    data.IsPublished,
		IsConfirmed:    data.IsConfirmed,
		ConfirmedLabel: data.ConfirmedLabel,
		CreatedAt:      time.Now().Unix(),
	}

	if err := d.DB.Create(&story).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     err.Error(),
			"requestID": requestID,
		})

		zap.L().Error("Failed to create story", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": story.ID})
}
