// Package storage defines the interface for object storage operations.
// Swap implementations by changing the concrete type injected at startup —
// the MinIO implementation works with any S3-compatible provider (MinIO,
// IDrive E2, ArvanCloud, AWS S3).
package storage

import (
	"context"
	"io"
	"time"
)

// PutOptions controls a single object write.
type PutOptions struct {
	ContentType string
	// PublicRead asks the backend to attach a public-read ACL. Some
	// S3-compatible providers reject ACL operations entirely; callers are
	// expected to retry without it when IsAccessDenied reports true.
	PublicRead bool
}

// Storage is the interface for uploading and retrieving objects.
type Storage interface {
	// Put streams data to the store under the given key. size must be the
	// exact byte count.
	Put(ctx context.Context, key string, reader io.Reader, size int64, opts PutOptions) error
	// Get returns a reader over the object at key. The caller must close it.
	Get(ctx context.Context, key string) (io.ReadCloser, error)
	// PresignGet returns a time-limited signed GET URL for the object at key.
	PresignGet(ctx context.Context, key string, expiry time.Duration) (string, error)
	// PublicURL constructs the direct endpoint/bucket/key URL for a given key.
	// It is informational; private objects are served through signed URLs.
	PublicURL(key string) string
}
