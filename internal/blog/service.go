package blog

import (
	"context"
	"errors"

	"github.com/devfolio/service/internal/media"
)

// unlinkedProjectID is the sentinel some clients send for a post with no
// project link; it is normalized to empty before persisting.
const unlinkedProjectID = "unlinked"

// Service contains business logic for blog management.
type Service struct {
	repo *Repository
}

// NewService creates a new blog Service.
func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

// Create validates and stores a new post.
func (s *Service) Create(ctx context.Context, p *Post) (string, error) {
	if p.Title == "" {
		return "", media.NewValidationError("title is required")
	}
	normalize(p)
	return s.repo.Create(ctx, p)
}

// List returns all posts, newest first.
func (s *Service) List(ctx context.Context) ([]Post, error) {
	return s.repo.List(ctx)
}

// GetByID returns a post by its ID.
func (s *Service) GetByID(ctx context.Context, id string) (*Post, error) {
	return s.repo.GetByID(ctx, id)
}

// Update overwrites a post's mutable fields.
func (s *Service) Update(ctx context.Context, id string, p *Post) error {
	if p.Title == "" {
		return media.NewValidationError("title is required")
	}
	normalize(p)
	return s.repo.Update(ctx, id, p)
}

// Delete removes a post.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// IsNotFound returns true when the error indicates a post was not found.
func (s *Service) IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func normalize(p *Post) {
	if p.ProjectID == unlinkedProjectID {
		p.ProjectID = ""
	}
}
