// Package resume manages the single "current resume" document: a PDF in the
// object store plus a metadata singleton at a fixed key, overwritten wholesale
// on every upload.
package resume

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/devfolio/service/internal/media"
	"github.com/devfolio/service/internal/storage"
)

const (
	// metadataKey is the well-known key of the metadata singleton. There is
	// exactly one logical current resume; the last writer wins.
	metadataKey = "uploads/resumes/metadata.json"

	keyPrefix      = "uploads/resumes/"
	maxResumeBytes = 5 << 20 // 5 MiB
	downloadExpiry = time.Hour
)

// Info describes the current resume. UploadedAt marshals as RFC 3339.
type Info struct {
	Key        string    `json:"key"`
	URL        string    `json:"url"`
	Filename   string    `json:"filename"`
	UploadedAt time.Time `json:"uploadedAt"`
	Size       int64     `json:"size"`
}

// Service implements resume upload, retrieval, and signed download URLs.
type Service struct {
	store storage.Storage
	log   *zap.SugaredLogger
}

// NewService creates a new resume Service.
func NewService(store storage.Storage, log *zap.SugaredLogger) *Service {
	return &Service{store: store, log: log}
}

// Upload validates the PDF, writes it under a fresh key, and overwrites the
// metadata singleton with the new Info. Two concurrent uploads race on the
// singleton; last-writer-wins is accepted, there is no version check.
func (s *Service) Upload(ctx context.Context, fileName, contentType string, data []byte) (*Info, error) {
	if !strings.Contains(contentType, "pdf") {
		return nil, media.NewValidationError("Only PDF files are allowed for resumes")
	}
	if int64(len(data)) > maxResumeBytes {
		return nil, media.NewValidationError("Resume file size must be less than 5MB")
	}

	name := media.UniqueFileName(fileName, "pdf")
	key := keyPrefix + name

	err := s.store.Put(ctx, key, bytes.NewReader(data), int64(len(data)), storage.PutOptions{
		ContentType: contentType,
	})
	if err != nil {
		return nil, fmt.Errorf("upload resume to store: %w", err)
	}

	info := &Info{
		Key:        key,
		URL:        s.store.PublicURL(key),
		Filename:   name,
		UploadedAt: time.Now().UTC(),
		Size:       int64(len(data)),
	}

	if err := s.saveMetadata(ctx, info); err != nil {
		return nil, fmt.Errorf("save resume metadata: %w", err)
	}
	return info, nil
}

// Current returns the current resume, or nil when there is none. Read
// failures are deliberately collapsed into "no resume yet": an absent
// metadata object is a normal state, not an error. The distinction survives
// only in the logs.
func (s *Service) Current(ctx context.Context) *Info {
	info, err := s.loadMetadata(ctx)
	if err != nil {
		s.log.Warnw("load resume metadata", "error", err)
		return nil
	}
	return info
}

// DownloadURL mints a signed URL for the given resume key, returned to the
// client as JSON so it can drive a programmatic download.
func (s *Service) DownloadURL(ctx context.Context, key string) (string, error) {
	url, err := s.store.PresignGet(ctx, key, downloadExpiry)
	if err != nil {
		return "", fmt.Errorf("sign resume download url: %w", err)
	}
	return url, nil
}

// Delete is an acknowledged no-op: old resume objects and the metadata
// singleton are never removed. TODO: delete the stored object and metadata
// once an orphan-cleanup policy exists.
func (s *Service) Delete(_ context.Context) error {
	s.log.Info("resume deletion requested but not implemented")
	return nil
}

func (s *Service) saveMetadata(ctx context.Context, info *Info) error {
	payload, err := json.MarshalIndent(info, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal metadata: %w", err)
	}
	return s.store.Put(ctx, metadataKey, bytes.NewReader(payload), int64(len(payload)), storage.PutOptions{
		ContentType: "application/json",
	})
}

func (s *Service) loadMetadata(ctx context.Context) (*Info, error) {
	rc, err := s.store.Get(ctx, metadataKey)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	payload, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("read metadata: %w", err)
	}

	info := &Info{}
	if err := json.Unmarshal(payload, info); err != nil {
		return nil, fmt.Errorf("decode metadata: %w", err)
	}
	return info, nil
}
