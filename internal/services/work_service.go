package services

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"showcase-api/internal/config"
	"showcase-api/internal/constants"
	"showcase-api/internal/models"
	"showcase-api/internal/requests"
	"showcase-api/internal/storage"
	"showcase-api/internal/stores"
	"showcase-api/internal/utils"
)

// RejectedError marks a submission turned away before any external call.
type RejectedError struct {
	Reason string
}

func (e *RejectedError) Error() string {
	return e.Reason
}

// FilePayload is a binary payload read from a multipart upload.
type FilePayload struct {
	Data        []byte
	ContentType string
	Filename    string
	Size        int64
}

// WorkService validates submissions, dispatches them to the blob store when
// they carry a binary payload, and persists the resulting record.
type WorkService struct {
	store stores.WorkStore
	blob  storage.BlobStore
	cfg   config.UploadConfig
}

// NewWorkService creates a work service.
func NewWorkService(store stores.WorkStore, blob storage.BlobStore, cfg config.UploadConfig) *WorkService {
	return &WorkService{
		store: store,
		blob:  blob,
		cfg:   cfg,
	}
}

// submission is the resolved upload variant: either a reference URL or a
// binary payload. Exactly one variant exists per category.
type submission interface {
	resolve(ctx context.Context, s *WorkService) (fileURL, fileKind string, err error)
}

type urlSubmission struct {
	category string
	url      string
}

func (u urlSubmission) resolve(_ context.Context, _ *WorkService) (string, string, error) {
	raw := strings.TrimSpace(u.url)
	if raw == "" {
		return "", "", &RejectedError{Reason: fmt.Sprintf("%s URL is required", u.category)}
	}

	parsed, err := url.Parse(raw)
	if err != nil || !parsed.IsAbs() || parsed.Host == "" {
		return "", "", &RejectedError{Reason: "Invalid URL format"}
	}

	kind, _ := constants.URLFileKind(u.category)
	return raw, kind, nil
}

type fileSubmission struct {
	payload *FilePayload
}

func (f fileSubmission) resolve(ctx context.Context, s *WorkService) (string, string, error) {
	if f.payload == nil || len(f.payload.Data) == 0 {
		return "", "", &RejectedError{Reason: "File is required"}
	}
	if f.payload.Size > s.cfg.MaxFileSizeBytes {
		return "", "", &RejectedError{Reason: fmt.Sprintf("File size exceeds %s limit", s.cfg.MaxFileSize)}
	}
	if !utils.IsValidMimeType(f.payload.ContentType, s.cfg.AllowedMimeTypes) {
		return "", "", &RejectedError{Reason: "Invalid file type. Allowed: images, videos, PDFs, ZIP files"}
	}

	result, err := s.blob.Upload(ctx, f.payload.Data, storage.UploadOptions{
		ResourceKind: storage.ResolveResourceKind(storage.ResourceKindAuto, f.payload.ContentType),
		Folder:       s.cfg.Folder,
		ContentType:  f.payload.ContentType,
		Filename:     f.payload.Filename,
	})
	if err != nil {
		return "", "", err
	}

	return result.URL, FileKindFromMime(f.payload.ContentType), nil
}

// newSubmission selects the upload variant for a category. Website and Skit
// submissions reference an external URL; everything else carries a payload.
func newSubmission(in requests.UploadWorkRequest, payload *FilePayload) submission {
	if _, ok := constants.URLFileKind(in.Category); ok {
		return urlSubmission{category: in.Category, url: in.URL}
	}
	return fileSubmission{payload: payload}
}

// Submit runs the full intake sequence: dispatch to the matching upload
// variant, then persist the record. The blob upload and the record insert are
// not transactional; a failed insert after a successful upload leaves the
// blob in place.
func (s *WorkService) Submit(ctx context.Context, in requests.UploadWorkRequest, payload *FilePayload) (*models.Work, error) {
	fileURL, fileKind, err := newSubmission(in, payload).resolve(ctx, s)
	if err != nil {
		return nil, err
	}

	work := &models.Work{
		Name:        strings.TrimSpace(in.Name),
		Roll:        strings.TrimSpace(in.Roll),
		Email:       strings.ToLower(strings.TrimSpace(in.Email)),
		Title:       strings.TrimSpace(in.Title),
		Description: strings.TrimSpace(in.Description),
		Category:    in.Category,
		FileURL:     fileURL,
		FileType:    fileKind,
		Timestamp:   time.Now().UTC(),
	}

	return s.store.Create(ctx, work)
}

// List returns works matching the filter.
func (s *WorkService) List(ctx context.Context, filter stores.WorkFilter) ([]models.Work, error) {
	return s.store.List(ctx, filter)
}

// Get returns a single work by id.
func (s *WorkService) Get(ctx context.Context, id string) (*models.Work, error) {
	return s.store.GetByID(ctx, id)
}

// Delete removes a work record. The associated blob is not cleaned up.
func (s *WorkService) Delete(ctx context.Context, id string) error {
	return s.store.DeleteByID(ctx, id)
}

// FileKindFromMime derives the stored file kind from a payload MIME type.
func FileKindFromMime(contentType string) string {
	switch {
	case strings.HasPrefix(contentType, "image/"):
		return constants.FileKindImage
	case strings.HasPrefix(contentType, "video/"):
		return constants.FileKindVideo
	case contentType == "application/pdf":
		return constants.FileKindPDF
	case strings.Contains(contentType, "zip"):
		return constants.FileKindZip
	default:
		return constants.FileKindOther
	}
}
