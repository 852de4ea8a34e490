// Package validators contains validators found throughout the application
// that have been abstracted away from the main code
package validators

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/spf13/viper"
	"teamhumanity/story-api/pkg/util"
)

var (
	ErrFileTypeUnsupported = errors.New("unsupported file type")
	ErrFileTooLarge        = errors.New("file too large")
)

type UploadCategory string

const (
	CategoryImage UploadCategory = "image"
	CategoryVideo UploadCategory = "video"
)

var (
	imageTypes = []string{"image/jpeg", "image/png", "image/webp"}
	videoTypes = []string{"video/mp4", "video/webm", "video/quicktime"}

	imageExts = []string{"jpg", "jpeg", "png", "webp"}
	videoExts = []string{"mp4", "webm", "mov", "m4v"}
)

// ClassifyUpload decides whether a submission is an image or a video.
// The declared MIME type wins; the file extension is only consulted when
// the client sent no type at all.
func ClassifyUpload(declaredType, fileName string) (UploadCategory, error) {
	mime := strings.ToLower(strings.TrimSpace(declaredType))
	ext := fileExt(fileName)

	if slices.Contains(imageTypes, mime) || (mime == "" && slices.Contains(imageExts, ext)) {
		return CategoryImage, nil
	}

	if slices.Contains(videoTypes, mime) || (mime == "" && slices.Contains(videoExts, ext)) {
		return CategoryVideo, nil
	}

	return "", ErrFileTypeUnsupported
}

// MaxBytes returns the configured byte ceiling for the category.
func MaxBytes(category UploadCategory) int64 {
	if category == CategoryVideo {
		return viper.GetInt64("upload.video_max_size")
	}

	return viper.GetInt64("upload.image_max_size")
}

// ValidateUploadSize rejects files over the category ceiling. A file of
// exactly the ceiling passes.
func ValidateUploadSize(category UploadCategory, size int64) error {
	if size > MaxBytes(category) {
		return ErrFileTooLarge
	}

	return nil
}

// StorageKey builds the object key for a classified upload:
// <folder>/<unix millis>-<random>.<ext>. The timestamp plus random
// suffix keeps concurrent uploads from ever colliding.
func StorageKey(category UploadCategory, fileName string) string {
	folder := "uploads"
	fallback := "jpg"
	if category == CategoryVideo {
		folder = "videos"
		fallback = "mp4"
	}

	ext := fileExt(fileName)
	if ext == "" {
		ext = fallback
	}

	return fmt.Sprintf("%s/%d-%s.%s", folder, time.Now().UnixMilli(), util.RandStr(8), ext)
}

// FallbackContentType is stored alongside objects whose client sent no
// MIME type
func FallbackContentType(category UploadCategory) string {
	if category == CategoryVideo {
		return "video/mp4"
	}

	return "image/jpeg"
}

func fileExt(fileName string) string {
	idx := strings.LastIndex(fileName, ".")
	if idx == -1 || idx == len(fileName)-1 {
		return ""
	}

	return strings.ToLower(fileName[idx+1:])
}
