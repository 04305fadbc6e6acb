package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/sirupsen/logrus"
)

// MinioStorage stores resume files in an S3-compatible bucket. The bucket is
// provisioned lazily on first upload so the process can start without the
// storage backend being reachable.
type MinioStorage struct {
	client *minio.Client
	bucket string
	secure bool

	mu          sync.Mutex
	initialized bool
}

type Options struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	Secure    bool
}

func NewMinioStorage(opts Options) (*MinioStorage, error) {
	client, err := minio.New(opts.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(opts.AccessKey, opts.SecretKey, ""),
		Secure: opts.Secure,
	})
	if err != nil {
		return nil, fmt.Errorf("minio client: %w", err)
	}

	return &MinioStorage{
		client: client,
		bucket: opts.Bucket,
		secure: opts.Secure,
	}, nil
}

func (s *MinioStorage) ensureBucket(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}

	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("check bucket: %w", err)
	}
	if !exists {
		if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("create bucket: %w", err)
		}
		logrus.WithField("bucket", s.bucket).Info("created storage bucket")
	}

	s.initialized = true
	return nil
}

// Upload writes the stream under key and returns the retrieval URL. The
// stream's length is measured here; callers never pre-compute it.
func (s *MinioStorage) Upload(ctx context.Context, r io.Reader, key string) (string, error) {
	if err := s.ensureBucket(ctx); err != nil {
		return "", err
	}

	var buf bytes.Buffer
	size, err := io.Copy(&buf, r)
	if err != nil {
		return "", fmt.Errorf("read upload stream: %w", err)
	}

	_, err = s.client.PutObject(ctx, s.bucket, key, &buf, size, minio.PutObjectOptions{})
	if err != nil {
		return "", fmt.Errorf("put object: %w", err)
	}

	return s.FileURL(key), nil
}

// FileURL derives the retrieval URL for a key. Pure string work, no I/O.
func (s *MinioStorage) FileURL(key string) string {
	scheme := "http"
	if s.secure {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, s.client.EndpointURL().Host, s.bucket, key)
}

// Delete removes an object. Best-effort: failure is logged and reported as
// false, never as an error.
func (s *MinioStorage) Delete(ctx context.Context, key string) bool {
	err := s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{})
	if err != nil {
		logrus.WithField("key", key).WithError(err).Warn("failed to delete object")
		return false
	}
	return true
}
