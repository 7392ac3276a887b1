package storage

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinioConfig holds connection settings for an S3-compatible blob store.
type MinioConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
	// PublicURL is the base URL objects are served from. Falls back to the
	// endpoint when empty.
	PublicURL string
}

// MinioStore implements BlobStore on top of an S3-compatible service.
type MinioStore struct {
	client *minio.Client
	cfg    MinioConfig
}

// NewMinioStore connects to the configured S3-compatible endpoint.
func NewMinioStore(cfg MinioConfig) (*MinioStore, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("connect to blob storage: %w", err)
	}

	if cfg.PublicURL == "" {
		scheme := "http"
		if cfg.UseSSL {
			scheme = "https"
		}
		cfg.PublicURL = fmt.Sprintf("%s://%s", scheme, cfg.Endpoint)
	}

	return &MinioStore{client: client, cfg: cfg}, nil
}

// Upload stores the payload under a unique object key and returns the durable
// URL. Provider errors are returned unmodified; there is no retry.
func (s *MinioStore) Upload(ctx context.Context, data []byte, opts UploadOptions) (*UploadResult, error) {
	objectKey := buildObjectKey(opts.Folder, opts.Filename)

	info, err := s.client.PutObject(ctx,
		s.cfg.Bucket,
		objectKey,
		bytes.NewReader(data),
		int64(len(data)),
		minio.PutObjectOptions{
			ContentType: opts.ContentType,
		},
	)
	if err != nil {
		return nil, err
	}

	return &UploadResult{
		URL:          fmt.Sprintf("%s/%s/%s", strings.TrimSuffix(s.cfg.PublicURL, "/"), s.cfg.Bucket, objectKey),
		PublicID:     objectKey,
		ResourceKind: ResolveResourceKind(opts.ResourceKind, opts.ContentType),
		Format:       strings.TrimPrefix(path.Ext(opts.Filename), "."),
		Bytes:        info.Size,
	}, nil
}

// buildObjectKey keeps the original filename recognizable while guaranteeing
// uniqueness within the folder.
func buildObjectKey(folder, filename string) string {
	base := strings.TrimSuffix(path.Base(filename), path.Ext(filename))
	if base == "" || base == "." {
		base = "upload"
	}

	key := fmt.Sprintf("%s-%s%s", base, uuid.New().String(), path.Ext(filename))
	if folder == "" {
		return key
	}
	return fmt.Sprintf("%s/%s", strings.TrimSuffix(folder, "/"), key)
}
