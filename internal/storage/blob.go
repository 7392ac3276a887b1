package storage

import (
	"context"
	"strings"
)

// Resource kinds understood by the blob store.
const (
	ResourceKindImage = "image"
	ResourceKindVideo = "video"
	ResourceKindRaw   = "raw"
	ResourceKindAuto  = "auto"
)

// UploadOptions carries per-upload settings for the blob store.
type UploadOptions struct {
	// ResourceKind is a coarse hint: "image", "video", "raw" or "auto".
	ResourceKind string
	// Folder is the object key prefix inside the bucket.
	Folder string
	// ContentType is the MIME type of the payload.
	ContentType string
	// Filename is the original filename, used to build the object key.
	Filename string
}

// UploadResult is returned by the blob store on a successful upload.
type UploadResult struct {
	URL          string `json:"url"`
	PublicID     string `json:"publicId"`
	ResourceKind string `json:"resourceKind"`
	Format       string `json:"format"`
	Bytes        int64  `json:"bytes"`
}

// BlobStore uploads binary payloads to durable external storage. A single
// best-effort attempt is made per call; provider errors are returned as-is.
type BlobStore interface {
	Upload(ctx context.Context, data []byte, opts UploadOptions) (*UploadResult, error)
}

// ResolveResourceKind resolves an "auto" hint against the payload MIME type.
// Non-auto hints are returned unchanged.
func ResolveResourceKind(hint, contentType string) string {
	if hint != ResourceKindAuto && hint != "" {
		return hint
	}

	switch {
	case strings.HasPrefix(contentType, "image/"):
		return ResourceKindImage
	case strings.HasPrefix(contentType, "video/"):
		return ResourceKindVideo
	default:
		return ResourceKindRaw
	}
}
