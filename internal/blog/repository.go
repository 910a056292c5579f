// Package blog manages blog posts and their persistence.
package blog

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

// Post is a blog post document. ProjectID optionally links the post to a
// portfolio project; empty means unlinked.
type Post struct {
	ID        string       `bson:"_id,omitempty" json:"id"`
	Title     string       `bson:"title" json:"title"`
	Summary   string       `bson:"summary" json:"summary"`
	Content   string       `bson:"content" json:"content"`
	Tags      []string     `bson:"tags" json:"tags"`
	ProjectID string       `bson:"projectId,omitempty" json:"projectId,omitempty"`
	Published bool         `bson:"published" json:"published"`
	Media     []media.Item `bson:"media" json:"media"`
	CreatedAt time.Time    `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time    `bson:"updatedAt" json:"updatedAt"`
}

// ErrNotFound is returned when a post does not exist.
var ErrNotFound = errors.New("post not found")

// Repository handles all blog database operations.
type Repository struct {
	col *mongo.Collection
}

// NewRepository creates a new Repository backed by the given collection.
func NewRepository(col *mongo.Collection) *Repository {
	return &Repository{col: col}
}

// Create inserts a new post and returns its generated ID.
func (r *Repository) Create(ctx context.Context, p *Post) (string, error) {
	now := time.Now().UTC()
	p.ID = uuid.NewString()
	p.CreatedAt = now
	p.UpdatedAt = now
	if p.Media == nil {
		p.Media = []media.Item{}
	}
	if p.Tags == nil {
		p.Tags = []string{}
	}

	if _, err := r.col.InsertOne(ctx, p); err != nil {
		return "", fmt.Errorf("insert post: %w", err)
	}
	return p.ID, nil
}

// List returns all posts, newest first.
func (r *Repository) List(ctx context.Context) ([]Post, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.col.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	defer cursor.Close(ctx)

	posts := []Post{}
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, fmt.Errorf("decode posts: %w", err)
	}
	return posts, nil
}

// GetByID fetches a post by its ID.
func (r *Repository) GetByID(ctx context.Context, id string) (*Post, error) {
	p := &Post{}
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get post by id: %w", err)
	}
	return p, nil
}

// Update overwrites the mutable fields of a post.
func (r *Repository) Update(ctx context.Context, id string, p *Post) error {
	update := bson.M{"$set": bson.M{
		"title":     p.Title,
		"summary":   p.Summary,
		"content":   p.Content,
		"tags":      p.Tags,
		"projectId": p.ProjectID,
		"published": p.Published,
		"media":     p.Media,
		"updatedAt": time.Now().UTC(),
	}}

	result, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return fmt.Errorf("update post: %w", err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a post document.
func (r *Repository) Delete(ctx context.Context, id string) error {
	result, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
