// Package portfolio manages portfolio projects and their persistence.
package portfolio

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/devfolio/service/internal/media"
)

// Project is a portfolio project document. It owns the media items embedded
// in it; deleting a project does not remove the referenced objects from the
// store.
type Project struct {
	ID           string       `bson:"_id,omitempty" json:"id"`
	Title        string       `bson:"title" json:"title"`
	Description  string       `bson:"description" json:"description"`
	Content      string       `bson:"content" json:"content"`
	Technologies []string     `bson:"technologies" json:"technologies"`
	GithubLink   string       `bson:"githubLink,omitempty" json:"githubLink,omitempty"`
	LiveLink     string       `bson:"liveLink,omitempty" json:"liveLink,omitempty"`
	Featured     bool         `bson:"featured" json:"featured"`
	Published    bool         `bson:"published" json:"published"`
	Media        []media.Item `bson:"media" json:"media"`
	CreatedAt    time.Time    `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time    `bson:"updatedAt" json:"updatedAt"`
}

// ErrNotFound is returned when a project does not exist.
var ErrNotFound = errors.New("project not found")

// Repository handles all portfolio database operations.
type Repository struct {
	col *mongo.Collection
}

// NewRepository creates a new Repository backed by the given collection.
func NewRepository(col *mongo.Collection) *Repository {
	return &Repository{col: col}
}

// Create inserts a new project and returns its generated ID.
func (r *Repository) Create(ctx context.Context, p *Project) (string, error) {
	now := time.Now().UTC()
	p.ID = uuid.NewString()
	p.CreatedAt = now
	p.UpdatedAt = now
	if p.Media == nil {
		p.Media = []media.Item{}
	}
	if p.Technologies == nil {
		p.Technologies = []string{}
	}

	if _, err := r.col.InsertOne(ctx, p); err != nil {
		return "", fmt.Errorf("insert project: %w", err)
	}
	return p.ID, nil
}

// List returns all projects, newest first.
func (r *Repository) List(ctx context.Context) ([]Project, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.col.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer cursor.Close(ctx)

	projects := []Project{}
	if err := cursor.All(ctx, &projects); err != nil {
		return nil, fmt.Errorf("decode projects: %w", err)
	}
	return projects, nil
}

// GetByID fetches a project by its ID.
func (r *Repository) GetByID(ctx context.Context, id string) (*Project, error) {
	p := &Project{}
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get project by id: %w", err)
	}
	return p, nil
}

// Update overwrites the mutable fields of a project.
func (r *Repository) Update(ctx context.Context, id string, p *Project) error {
	update := bson.M{"$set": bson.M{
		"title":        p.Title,
		"description":  p.Description,
		"content":      p.Content,
		"technologies": p.Technologies,
		"githubLink":   p.GithubLink,
		"liveLink":     p.LiveLink,
		"featured":     p.Featured,
		"published":    p.Published,
		"media":        p.Media,
		"updatedAt":    time.Now().UTC(),
	}}

	result, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return fmt.Errorf("update project: %w", err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a project document. The media objects it referenced stay in
// the object store.
func (r *Repository) Delete(ctx context.Context, id string) error {
	result, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
