package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinioStorage implements Storage using a MinIO (or any S3-compatible) backend.
// The bucket is expected to exist and to be private; reads go through signed
// URLs, writes optionally request a public-read ACL.
type MinioStorage struct {
	client *minio.Client
	bucket string
	useSSL bool
}

// NewMinioStorage creates a MinIO client and verifies the bucket is reachable.
func NewMinioStorage(endpoint, accessKey, secretKey, bucket string, useSSL bool) (*MinioStorage, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("create minio client: %w", err)
	}

	if _, err := client.BucketExists(context.Background(), bucket); err != nil {
		return nil, fmt.Errorf("check bucket %q: %w", bucket, err)
	}

	return &MinioStorage{client: client, bucket: bucket, useSSL: useSSL}, nil
}

// Put streams reader to the store under key. When opts.PublicRead is set the
// write carries an x-amz-acl: public-read header, which providers without ACL
// support reject with an access error.
func (s *MinioStorage) Put(ctx context.Context, key string, reader io.Reader, size int64, opts PutOptions) error {
	putOpts := minio.PutObjectOptions{ContentType: opts.ContentType}
	if opts.PublicRead {
		putOpts.UserMetadata = map[string]string{"x-amz-acl": "public-read"}
	}
	if _, err := s.client.PutObject(ctx, s.bucket, key, reader, size, putOpts); err != nil {
		return fmt.Errorf("put object %q: %w", key, err)
	}
	return nil
}

// Get returns a reader over the object at key.
func (s *MinioStorage) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("get object %q: %w", key, err)
	}
	return obj, nil
}

// PresignGet returns a signed GET URL valid for the given expiry.
func (s *MinioStorage) PresignGet(ctx context.Context, key string, expiry time.Duration) (string, error) {
	u, err := s.client.PresignedGetObject(ctx, s.bucket, key, expiry, nil)
	if err != nil {
		return "", fmt.Errorf("presign object %q: %w", key, err)
	}
	return u.String(), nil
}

// PublicURL returns the direct endpoint/bucket/key URL for the given key.
func (s *MinioStorage) PublicURL(key string) string {
	scheme := "http"
	if s.useSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, s.client.EndpointURL().Host, s.bucket, key)
}

// IsAccessDenied reports whether err looks like a permission or ACL rejection,
// the class of failure worth retrying without a public-read ACL. It matches
// the well-known S3 error codes and falls back to message inspection for
// providers that return nonstandard errors.
func IsAccessDenied(err error) bool {
	if err == nil {
		return false
	}

	var resp minio.ErrorResponse
	if errors.As(err, &resp) {
		switch resp.Code {
		case "AccessDenied", "AccessControlListNotSupported", "NotImplemented", "InvalidRequest":
			return true
		}
	}

	msg := err.Error()
	return strings.Contains(msg, "ACL") || strings.Contains(strings.ToLower(msg), "access")
}
