package services_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"showcase-api/internal/config"
	"showcase-api/internal/models"
	"showcase-api/internal/services"
	"showcase-api/internal/storage"
	"showcase-api/internal/stores"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeBlobStore struct {
	calls   []storage.UploadOptions
	failErr error
}

func (f *fakeBlobStore) Upload(_ context.Context, data []byte, opts storage.UploadOptions) (*storage.UploadResult, error) {
	f.calls = append(f.calls, opts)
	if f.failErr != nil {
		return nil, f.failErr
	}
	return &storage.UploadResult{
		URL:          fmt.Sprintf("https://blobs.example.com/showcase/%s/%s", opts.Folder, opts.Filename),
		PublicID:     opts.Folder + "/" + opts.Filename,
		ResourceKind: storage.ResolveResourceKind(opts.ResourceKind, opts.ContentType),
		Bytes:        int64(len(data)),
	}, nil
}

type fakeWorkStore struct {
	works     map[string]models.Work
	createErr error
}

func newFakeWorkStore() *fakeWorkStore {
	return &fakeWorkStore{works: map[string]models.Work{}}
}

func (f *fakeWorkStore) Create(_ context.Context, work *models.Work) (*models.Work, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	work.ID = primitive.NewObjectID()
	f.works[work.ID.Hex()] = *work
	return work, nil
}

func (f *fakeWorkStore) List(_ context.Context, filter stores.WorkFilter) ([]models.Work, error) {
	var out []models.Work
	for _, w := range f.works {
		if filter.Category != "" && w.Category != filter.Category {
			continue
		}
		out = append(out, w)
	}
	return out, nil
}

func (f *fakeWorkStore) GetByID(_ context.Context, id string) (*models.Work, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, stores.ErrInvalidID
	}
	w, ok := f.works[id]
	if !ok {
		return nil, stores.ErrNotFound
	}
	return &w, nil
}

func (f *fakeWorkStore) DeleteByID(_ context.Context, id string) error {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return stores.ErrInvalidID
	}
	if _, ok := f.works[id]; !ok {
		return stores.ErrNotFound
	}
	delete(f.works, id)
	return nil
}

func testUploadConfig() config.UploadConfig {
	return config.UploadConfig{
		MaxFileSize: "300MB",
		AllowedMimeTypes: []string{
			"image/jpeg", "image/jpg", "image/png", "image/gif", "image/webp",
			"video/mp4", "video/quicktime", "video/x-msvideo",
			"application/pdf",
			"application/zip", "application/x-zip-compressed",
		},
		Folder:           "student-works",
		MaxFileSizeBytes: 300 * 1024 * 1024,
	}
}

func newTestService() (*services.WorkService, *fakeWorkStore, *fakeBlobStore) {
	store := newFakeWorkStore()
	blob := &fakeBlobStore{}
	return services.NewWorkService(store, blob, testUploadConfig()), store, blob
}

func jpegPayload() *services.FilePayload {
	data := make([]byte, 2*1024*1024)
	return &services.FilePayload{
		Data:        data,
		ContentType: "image/jpeg",
		Filename:    "comic.jpg",
		Size:        int64(len(data)),
	}
}

func TestSubmit_FileMode(t *testing.T) {
	svc, store, blob := newTestService()

	work, err := svc.Submit(context.Background(), validSubmission(), jpegPayload())
	require.NoError(t, err)

	require.Len(t, blob.calls, 1, "exactly one blob upload per file submission")
	assert.Equal(t, "image", blob.calls[0].ResourceKind)
	assert.Equal(t, "student-works", blob.calls[0].Folder)

	assert.Equal(t, "image", work.FileType)
	assert.Equal(t, "https://blobs.example.com/showcase/student-works/comic.jpg", work.FileURL)
	assert.False(t, work.ID.IsZero())
	assert.WithinDuration(t, time.Now().UTC(), work.Timestamp, 5*time.Second)

	stored, err := store.GetByID(context.Background(), work.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, work.FileURL, stored.FileURL)
}

func TestSubmit_FileModeNormalizesFields(t *testing.T) {
	svc, _, _ := newTestService()

	in := validSubmission()
	in.Name = "  Asha Verma "
	in.Email = " BT2112345@iiitn.ac.in "

	work, err := svc.Submit(context.Background(), in, jpegPayload())
	require.NoError(t, err)
	assert.Equal(t, "Asha Verma", work.Name)
	assert.Equal(t, "bt2112345@iiitn.ac.in", work.Email)
}

func TestSubmit_FileKindFromPayload(t *testing.T) {
	tests := []struct {
		contentType string
		fileType    string
	}{
		{"image/png", "image"},
		{"video/mp4", "video"},
		{"application/pdf", "pdf"},
		{"application/zip", "zip"},
		{"application/x-zip-compressed", "zip"},
	}

	for _, tt := range tests {
		t.Run(tt.contentType, func(t *testing.T) {
			svc, _, _ := newTestService()

			payload := jpegPayload()
			payload.ContentType = tt.contentType

			work, err := svc.Submit(context.Background(), validSubmission(), payload)
			require.NoError(t, err)
			assert.Equal(t, tt.fileType, work.FileType)
		})
	}
}

func TestSubmit_FileModeMissingFile(t *testing.T) {
	svc, _, blob := newTestService()

	_, err := svc.Submit(context.Background(), validSubmission(), nil)

	var rejected *services.RejectedError
	require.ErrorAs(t, err, &rejected)
	assert.Equal(t, "File is required", rejected.Reason)
	assert.Empty(t, blob.calls)
}

func TestSubmit_FileModeTooLarge(t *testing.T) {
	svc, _, blob := newTestService()

	payload := jpegPayload()
	payload.Size = 301 * 1024 * 1024

	_, err := svc.Submit(context.Background(), validSubmission(), payload)

	var rejected *services.RejectedError
	require.ErrorAs(t, err, &rejected)
	assert.Equal(t, "File size exceeds 300MB limit", rejected.Reason)
	assert.Empty(t, blob.calls)
}

func TestSubmit_FileModeDisallowedMime(t *testing.T) {
	svc, _, blob := newTestService()

	payload := jpegPayload()
	payload.ContentType = "application/x-msdownload"

	_, err := svc.Submit(context.Background(), validSubmission(), payload)

	var rejected *services.RejectedError
	require.ErrorAs(t, err, &rejected)
	assert.Equal(t, "Invalid file type. Allowed: images, videos, PDFs, ZIP files", rejected.Reason)
	assert.Empty(t, blob.calls)
}

func TestSubmit_FileModeBlobFailure(t *testing.T) {
	svc, store, blob := newTestService()
	blob.failErr = errors.New("storage unavailable")

	_, err := svc.Submit(context.Background(), validSubmission(), jpegPayload())

	require.Error(t, err)
	var rejected *services.RejectedError
	assert.False(t, errors.As(err, &rejected), "upstream failures are not rejections")
	assert.Empty(t, store.works, "no record is written after a failed upload")
}

func TestSubmit_URLMode(t *testing.T) {
	tests := []struct {
		category string
		fileType string
	}{
		{"Website", "website"},
		{"Skit", "video"},
	}

	for _, tt := range tests {
		t.Run(tt.category, func(t *testing.T) {
			svc, _, blob := newTestService()

			in := validSubmission()
			in.Category = tt.category
			in.URL = "https://example.com/work"

			work, err := svc.Submit(context.Background(), in, nil)
			require.NoError(t, err)
			assert.Equal(t, "https://example.com/work", work.FileURL)
			assert.Equal(t, tt.fileType, work.FileType)
			assert.Empty(t, blob.calls, "URL submissions never touch the blob store")
		})
	}
}

func TestSubmit_URLModeMissingURL(t *testing.T) {
	svc, _, _ := newTestService()

	in := validSubmission()
	in.Category = "Website"

	_, err := svc.Submit(context.Background(), in, nil)

	var rejected *services.RejectedError
	require.ErrorAs(t, err, &rejected)
	assert.Equal(t, "Website URL is required", rejected.Reason)
}

func TestSubmit_URLModeInvalidURL(t *testing.T) {
	for _, raw := range []string{"not-a-url", "/relative/path", "http://"} {
		t.Run(raw, func(t *testing.T) {
			svc, _, blob := newTestService()

			in := validSubmission()
			in.Category = "Website"
			in.URL = raw

			_, err := svc.Submit(context.Background(), in, nil)

			var rejected *services.RejectedError
			require.ErrorAs(t, err, &rejected)
			assert.Equal(t, "Invalid URL format", rejected.Reason)
			assert.Empty(t, blob.calls)
		})
	}
}

func TestSubmit_URLModeIgnoresStrayPayload(t *testing.T) {
	svc, _, blob := newTestService()

	in := validSubmission()
	in.Category = "Skit"
	in.URL = "https://youtu.be/abc123"

	work, err := svc.Submit(context.Background(), in, jpegPayload())
	require.NoError(t, err)
	assert.Equal(t, "video", work.FileType)
	assert.Empty(t, blob.calls)
}

func TestFileKindFromMime(t *testing.T) {
	assert.Equal(t, "image", services.FileKindFromMime("image/webp"))
	assert.Equal(t, "video", services.FileKindFromMime("video/quicktime"))
	assert.Equal(t, "pdf", services.FileKindFromMime("application/pdf"))
	assert.Equal(t, "zip", services.FileKindFromMime("application/x-zip-compressed"))
	assert.Equal(t, "other", services.FileKindFromMime("text/plain"))
}
