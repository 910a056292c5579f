package media

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/devfolio/service/internal/storage"
)

// presignExpiry is the fixed validity window of signed media URLs.
const presignExpiry = time.Hour

// ErrMissingKey is returned when a proxy request carries no key.
var ErrMissingKey = errors.New("missing required parameter: key")

// ErrInvalidKey is returned when a key falls outside the uploads/ allow-list.
var ErrInvalidKey = errors.New("invalid key format")

// Service orchestrates media uploads and signed-URL resolution.
type Service struct {
	store storage.Storage
	log   *zap.SugaredLogger
}

// NewService creates a new media Service.
func NewService(store storage.Storage, log *zap.SugaredLogger) *Service {
	return &Service{store: store, log: log}
}

// UploadResult describes a completed upload. URL is the direct
// endpoint/bucket/key URL and is informational; private buckets are served
// through SignedURL.
type UploadResult struct {
	Key  string `json:"key"`
	URL  string `json:"url"`
	Type Type   `json:"type"`
}

// Upload validates the file, builds its storage key, and writes it to the
// object store. The write first requests a public-read ACL; if the backend
// rejects that with a permission error (providers like IDrive E2 do not
// support ACL operations) the identical write is retried once without it.
// Any other failure, or failure of the retry, is surfaced as a store error.
func (s *Service) Upload(ctx context.Context, entityType EntityType, fileName, contentType string, data []byte) (*UploadResult, error) {
	if err := ValidateFile(contentType, int64(len(data))); err != nil {
		return nil, err
	}

	mediaType := TypeFromContentType(contentType)
	key := buildKey(entityType, mediaType, UniqueFileName(fileName, "bin"))

	err := s.put(ctx, key, contentType, data, true)
	if err != nil && storage.IsAccessDenied(err) {
		s.log.Warnw("public-read upload rejected, retrying without ACL", "key", key, "error", err)
		err = s.put(ctx, key, contentType, data, false)
	}
	if err != nil {
		return nil, fmt.Errorf("upload file to store: %w", err)
	}

	return &UploadResult{
		Key:  key,
		URL:  s.store.PublicURL(key),
		Type: mediaType,
	}, nil
}

func (s *Service) put(ctx context.Context, key, contentType string, data []byte, publicRead bool) error {
	return s.store.Put(ctx, key, bytes.NewReader(data), int64(len(data)), storage.PutOptions{
		ContentType: contentType,
		PublicRead:  publicRead,
	})
}

// SignedURL turns a stored key into a time-limited signed URL. The only
// server-side check is the uploads/ prefix allow-list; ownership of the key
// is not verified.
func (s *Service) SignedURL(ctx context.Context, key string) (string, error) {
	if key == "" {
		return "", ErrMissingKey
	}
	if !strings.HasPrefix(key, KeyPrefix) {
		return "", ErrInvalidKey
	}

	url, err := s.store.PresignGet(ctx, key, presignExpiry)
	if err != nil {
		return "", fmt.Errorf("sign media url: %w", err)
	}
	return url, nil
}
