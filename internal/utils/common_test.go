package utils_test

import (
	"testing"

	"showcase-api/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchesMimeType(t *testing.T) {
	assert.True(t, utils.MatchesMimeType("image/png", "image/png"))
	assert.True(t, utils.MatchesMimeType("image/png", "image/*"))
	assert.False(t, utils.MatchesMimeType("image/png", "video/*"))
	assert.False(t, utils.MatchesMimeType("imagepng", "image/*"))
}

func TestIsValidMimeType(t *testing.T) {
	patterns := []string{"image/*", "application/pdf"}

	assert.True(t, utils.IsValidMimeType("image/webp", patterns))
	assert.True(t, utils.IsValidMimeType("application/pdf", patterns))
	assert.False(t, utils.IsValidMimeType("application/zip", patterns))
	assert.False(t, utils.IsValidMimeType("video/mp4", nil))
}

func TestParseSizeString(t *testing.T) {
	tests := []struct {
		in   string
		want int64
	}{
		{"300MB", 300 * 1024 * 1024},
		{"1.5KB", 1536},
		{"2GB", 2 * 1024 * 1024 * 1024},
		{"1TB", 1024 * 1024 * 1024 * 1024},
		{"512B", 512},
		{"1024", 1024},
		{" 10MB ", 10 * 1024 * 1024},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := utils.ParseSizeString(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := utils.ParseSizeString("lots")
	assert.Error(t, err)
}

func TestFormatFileSize(t *testing.T) {
	assert.Equal(t, "512 B", utils.FormatFileSize(512))
	assert.Equal(t, "2.0 MB", utils.FormatFileSize(2*1024*1024))
}
