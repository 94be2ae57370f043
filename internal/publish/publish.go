// Package publish uploads rendered cards to S3-compatible object storage
// so they can be embedded from a static URL instead of the live API.
package publish

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/albapepper/readme-svg/internal/config"
)

// ErrNotConfigured is returned when no endpoint or bucket is set.
var ErrNotConfigured = errors.New("object storage is not configured (set S3_ENDPOINT and S3_BUCKET)")

// Store is the upload surface the CLI needs.
type Store interface {
	Store(ctx context.Context, data []byte, key, contentType string) (string, error)
}

// S3Store writes to one bucket on an S3-compatible endpoint.
type S3Store struct {
	client         *minio.Client
	bucket         string
	region         string
	publicEndpoint string
	useSSL         bool
}

// New connects to the configured endpoint. The client is lazy; no request
// is made until the first upload.
func New(cfg config.S3Config) (*S3Store, error) {
	if !cfg.Enabled() {
		return nil, ErrNotConfigured
	}
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create S3-compatible client: %w", err)
	}
	public := cfg.PublicEndpoint
	if public == "" {
		public = cfg.Endpoint
	}
	return &S3Store{
		client:         client,
		bucket:         cfg.Bucket,
		region:         cfg.Region,
		publicEndpoint: public,
		useSSL:         cfg.UseSSL,
	}, nil
}

// Store uploads data under key, creating the bucket with a public-read
// policy on first use, and returns the object's public URL.
func (s *S3Store) Store(ctx context.Context, data []byte, key, contentType string) (string, error) {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return "", fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{Region: s.region}); err != nil {
			return "", fmt.Errorf("failed to create bucket: %w", err)
		}
		if err := s.client.SetBucketPolicy(ctx, s.bucket, publicReadPolicy(s.bucket)); err != nil {
			return "", fmt.Errorf("failed to set bucket policy: %w", err)
		}
	}

	_, err = s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType:  contentType,
		CacheControl: "public, max-age=1800",
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", key, err)
	}
	return s.URL(key), nil
}

// URL returns the public URL for key.
func (s *S3Store) URL(key string) string {
	scheme := "http"
	if s.useSSL {
		scheme = "https"
	}
	return scheme + "://" + strings.TrimSuffix(s.publicEndpoint, "/") + "/" + s.bucket + "/" + key
}

// Key builds the object key for one card: "<owner>/<kind>.svg". owner is
// lowercased, with separators and spaces replaced by '-'.
func Key(owner, kind string) string {
	owner = strings.ToLower(strings.TrimSpace(owner))
	owner = strings.NewReplacer("/", "-", "\\", "-", " ", "-").Replace(owner)
	if owner == "" {
		owner = "_"
	}
	return path.Join(owner, kind+".svg")
}

func publicReadPolicy(bucket string) string {
	return fmt.Sprintf(`{
	"Version": "2012-10-17",
	"Statement": [
		{
			"Effect": "Allow",
			"Principal": {"AWS": ["*"]},
			"Action": ["s3:GetObject"],
			"Resource": ["arn:aws:s3:::%s/*"]
		}
	]
}`, bucket)
}
