package validators

import (
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func TestClassifyUpload(t *testing.T) {
	cases := []struct {
		name     string
		mime     string
		fileName string
		want     UploadCategory
		wantErr  error
	}{
		{"declared image mime", "image/png", "whatever.bin", CategoryImage, nil},
		{"declared video mime beats extension", "video/mp4", "clip.png", CategoryVideo, nil},
		{"uppercase extension, no mime", "", "photo.JPG", CategoryImage, nil},
		{"mov extension, no mime", "", "clip.MOV", CategoryVideo, nil},
		{"mime padded with whitespace", "  image/webp ", "x", CategoryImage, nil},
		{"unknown mime", "application/zip", "archive.zip", "", ErrFileTypeUnsupported},
		{"unknown extension, no mime", "", "archive.zip", "", ErrFileTypeUnsupported},
		{"no mime, no extension", "", "README", "", ErrFileTypeUnsupported},
		{"known extension ignored when mime set", "application/pdf", "photo.jpg", "", ErrFileTypeUnsupported},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ClassifyUpload(tc.mime, tc.fileName)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestValidateUploadSize(t *testing.T) {
	viper.Set("upload.image_max_size", int64(6<<20))
	viper.Set("upload.video_max_size", int64(80<<20))

	require.NoError(t, ValidateUploadSize(CategoryImage, 6<<20))
	require.ErrorIs(t, ValidateUploadSize(CategoryImage, 6<<20+1), ErrFileTooLarge)

	require.NoError(t, ValidateUploadSize(CategoryVideo, 80<<20))
	require.ErrorIs(t, ValidateUploadSize(CategoryVideo, 80<<20+1), ErrFileTooLarge)
}

func TestStorageKey(t *testing.T) {
	key := StorageKey(CategoryImage, "photo.JPG")
	require.True(t, strings.HasPrefix(key, "uploads/"))
	require.True(t, strings.HasSuffix(key, ".jpg"))

	key = StorageKey(CategoryVideo, "clip.webm")
	require.True(t, strings.HasPrefix(key, "videos/"))
	require.True(t, strings.HasSuffix(key, ".webm"))

	// Missing extension falls back per category.
	require.True(t, strings.HasSuffix(StorageKey(CategoryImage, "photo"), ".jpg"))
	require.True(t, strings.HasSuffix(StorageKey(CategoryVideo, "clip"), ".mp4"))

	// Two keys for the same name never collide.
	require.NotEqual(t, StorageKey(CategoryImage, "a.png"), StorageKey(CategoryImage, "a.png"))
}

func TestFallbackContentType(t *testing.T) {
	require.Equal(t, "image/jpeg", FallbackContentType(CategoryImage))
	require.Equal(t, "video/mp4", FallbackContentType(CategoryVideo))
}
