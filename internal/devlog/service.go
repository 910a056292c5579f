package devlog

import (
	"context"
	"errors"

	"github.com/devfolio/service/internal/media"
)

// Service contains business logic for development log management.
type Service struct {
	repo *Repository
}

// NewService creates a new devlog Service.
func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

// Create validates and stores a new entry for the given project.
func (s *Service) Create(ctx context.Context, projectID string, e *Entry) (string, error) {
	if e.Title == "" {
		return "", media.NewValidationError("title is required")
	}
	if e.Type == "" {
		e.Type = TypeFeature
	}
	if !ValidLogType(e.Type) {
		return "", media.NewValidationError("invalid log type: must be milestone, feature, bug-fix, optimization, or learning")
	}
	e.ProjectID = projectID
	return s.repo.Create(ctx, e)
}

// ListByProject returns all entries for a project, newest date first.
func (s *Service) ListByProject(ctx context.Context, projectID string) ([]Entry, error) {
	return s.repo.ListByProject(ctx, projectID)
}

// GetByID returns an entry by its ID.
func (s *Service) GetByID(ctx context.Context, id string) (*Entry, error) {
	return s.repo.GetByID(ctx, id)
}

// Update overwrites an entry's mutable fields.
func (s *Service) Update(ctx context.Context, id string, e *Entry) error {
	if e.Title == "" {
		return media.NewValidationError("title is required")
	}
	if e.Type != "" && !ValidLogType(e.Type) {
		return media.NewValidationError("invalid log type: must be milestone, feature, bug-fix, optimization, or learning")
	}
	return s.repo.Update(ctx, id, e)
}

// Delete removes an entry.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// IsNotFound returns true when the error indicates an entry was not found.
func (s *Service) IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
