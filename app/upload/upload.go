// Package upload accepts admin media uploads: either the bytes directly
// or a presigned slot the browser pushes to on its own
package upload

import (
	"io"
	"net/http"
	"teamhumanity/story-api/internal"
	"teamhumanity/story-api/validators"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Upload gates a multipart file (category, size), then stores it in S3
// under a generated key and returns that key.
func Upload(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)

	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "No file provided",
			"requestID": requestID,
		})
		return
	}

	declared := fh.Header.Get("Content-Type")

	category, err := validators.ClassifyUpload(declared, fh.Filename)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     err.Error(),
			"requestID": requestID,
		})
		return
	}

	if err := validators.ValidateUploadSize(category, fh.Size); err != nil {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{
			"error":     err.Error(),
			"requestID": requestID,
		})
		return
	}

	f, err := fh.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to open uploaded file", zap.Error(err))
		return
	}
	defer f.Close()

	// Sniff the actual bytes. The declared type decides the category,
	// but a spoofed header is worth a warning in the logs
	mime, err := mimetype.DetectReader(f)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to detect file type", zap.Error(err))
		return
	}

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to rewind uploaded file", zap.Error(err))
		return
	}

	contentType := declared
	if contentType == "" {
		contentType = validators.FallbackContentType(category)
	} else if !mime.Is(contentType) {
		zap.L().Warn("Declared content type doesn't match file bytes",
			zap.String("declared", declared),
			zap.String("detected", mime.String()),
		)
	}

	key := validators.StorageKey(category, fh.Filename)

	if err := d.S3.Upload(c.Request.Context(), key, f, fh.Size, contentType); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     err.Error(),
			"requestID": requestID,
		})

		zap.L().Error("Failed to upload file to S3", zap.String("key", key), zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":   true,
		"path": key,
	})
}
