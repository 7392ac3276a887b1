package storage_test

import (
	"testing"

	"showcase-api/internal/storage"

	"github.com/stretchr/testify/assert"
)

func TestResolveResourceKind(t *testing.T) {
	tests := []struct {
		name        string
		hint        string
		contentType string
		want        string
	}{
		{"auto image", storage.ResourceKindAuto, "image/jpeg", storage.ResourceKindImage},
		{"auto video", storage.ResourceKindAuto, "video/mp4", storage.ResourceKindVideo},
		{"auto pdf", storage.ResourceKindAuto, "application/pdf", storage.ResourceKindRaw},
		{"auto zip", storage.ResourceKindAuto, "application/zip", storage.ResourceKindRaw},
		{"empty hint behaves as auto", "", "image/png", storage.ResourceKindImage},
		{"explicit hint wins", storage.ResourceKindRaw, "image/png", storage.ResourceKindRaw},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, storage.ResolveResourceKind(tt.hint, tt.contentType))
		})
	}
}
