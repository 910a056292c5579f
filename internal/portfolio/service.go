package portfolio

import (
	"context"
	"errors"

	"github.com/devfolio/service/internal/media"
)

// Service contains business logic for portfolio management.
type Service struct {
	repo *Repository
}

// NewService creates a new portfolio Service.
func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

// Create validates and stores a new project.
func (s *Service) Create(ctx context.Context, p *Project) (string, error) {
	if p.Title == "" {
		return "", media.NewValidationError("title is required")
	}
	return s.repo.Create(ctx, p)
}

// List returns all projects, newest first.
func (s *Service) List(ctx context.Context) ([]Project, error) {
	return s.repo.List(ctx)
}

// GetByID returns a project by its ID.
func (s *Service) GetByID(ctx context.Context, id string) (*Project, error) {
	return s.repo.GetByID(ctx, id)
}

// Update overwrites a project's mutable fields.
func (s *Service) Update(ctx context.Context, id string, p *Project) error {
	if p.Title == "" {
		return media.NewValidationError("title is required")
	}
	return s.repo.Update(ctx, id, p)
}

// Delete removes a project.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// IsNotFound returns true when the error indicates a project was not found.
func (s *Service) IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
