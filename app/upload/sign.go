package upload

import (
	"net/http"
	"strings"
	"teamhumanity/story-api/internal"
	"teamhumanity/story-api/validators"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type signOpts struct {
	FileName string `json:"fileName"`
	FileType string `json:"fileType"`
	FileSize int64  `json:"fileSize"`
}

// Sign runs the same gate as a direct upload but hands back a presigned
// PUT URL instead of taking the bytes. The declared size is all we can
// check here; the bucket never sees this server again for this object.
func Sign(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)

	var data signOpts
	if err := c.BindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Malformed or invalid JSON request body",
			"requestID": requestID,
		})
		return
	}

	data.FileName = strings.TrimSpace(data.FileName)
	if data.FileName == "" || data.FileSize <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Invalid upload request",
			"requestID": requestID,
		})
		return
	}

	category, err := validators.ClassifyUpload(data.FileType, data.FileName)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     err.Error(),
			"requestID": requestID,
		})
		return
	}

	if err := validators.ValidateUploadSize(category, data.FileSize); err != nil {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{
			"error":     err.Error(),
			"requestID": requestID,
		})
		return
	}

	contentType := data.FileType
	if contentType == "" {
		contentType = validators.FallbackContentType(category)
	}

	key := validators.StorageKey(category, data.FileName)

	url, err := d.S3.SignedUploadSlot(c.Request.Context(), key, contentType)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     err.Error(),
			"requestID": requestID,
		})

		zap.L().Error("Failed to presign upload", zap.String("key", key), zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":        true,
		"path":      key,
		"signedUrl": url,
	})
}
