package service

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// BlobStore accepts file bytes and an original name and returns a stable,
// fetchable URL. The rest of the system treats the URL as opaque.
type BlobStore interface {
	Save(ctx context.Context, data []byte, originalName string) (string, error)
}

// LocalBlobStore writes uploads to a directory served under /uploads.
type LocalBlobStore struct {
	dir string
}

func NewLocalBlobStore(dir string) (*LocalBlobStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &LocalBlobStore{dir: dir}, nil
}

// Dir returns the directory uploads are written to.
func (s *LocalBlobStore) Dir() string {
	return s.dir
}

func (s *LocalBlobStore) Save(ctx context.Context, data []byte, originalName string) (string, error) {
	name := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), sanitizeName(originalName))
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return "", fmt.Errorf("write upload: %w", err)
	}
	return "/uploads/" + name, nil
}

// sanitizeName strips path components and characters that would break a URL.
func sanitizeName(name string) string {
	name = filepath.Base(name)
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.' || r == '-' || r == '_':
			return r
		default:
			return '_'
		}
	}, name)
}

// S3BlobStore uploads to an S3 bucket and returns the public object URL.
type S3BlobStore struct {
	client *s3.Client
	bucket string
}

func NewS3BlobStore(ctx context.Context, bucket, region string) (*S3BlobStore, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return &S3BlobStore{
		client: s3.NewFromConfig(cfg),
		bucket: bucket,
	}, nil
}

func (s *S3BlobStore) Save(ctx context.Context, data []byte, originalName string) (string, error) {
	key := fmt.Sprintf("uploads/%d-%s", time.Now().UnixMilli(), sanitizeName(originalName))
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
		Body:   bytes.NewReader(data),
	})
	if err != nil {
		return "", fmt.Errorf("upload to s3: %w", err)
	}
	return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.bucket, key), nil
}
