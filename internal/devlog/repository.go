// Package devlog manages per-project development log entries.
package devlog

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

// LogType categorizes a development log entry.
type LogType string

const (
	TypeMilestone    LogType = "milestone"
	TypeFeature      LogType = "feature"
	TypeBugFix       LogType = "bug-fix"
	TypeOptimization LogType = "optimization"
	TypeLearning     LogType = "learning"
)

var logTypes = map[LogType]bool{
	TypeMilestone:    true,
	TypeFeature:      true,
	TypeBugFix:       true,
	TypeOptimization: true,
	TypeLearning:     true,
}

// Entry is a development log document, always attached to a portfolio project.
type Entry struct {
	ID        string       `bson:"_id,omitempty" json:"id"`
	ProjectID string       `bson:"projectId" json:"projectId"`
	Title     string       `bson:"title" json:"title"`
	Content   string       `bson:"content" json:"content"`
	Type      LogType      `bson:"type" json:"type"`
	Date      string       `bson:"date" json:"date"`
	Tags      []string     `bson:"tags" json:"tags"`
	Published bool         `bson:"published" json:"published"`
	Media     []media.Item `bson:"media" json:"media"`
	CreatedAt time.Time    `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time    `bson:"updatedAt" json:"updatedAt"`
}

// ErrNotFound is returned when a log entry does not exist.
var ErrNotFound = errors.New("log entry not found")

// ValidLogType reports whether t is one of the known entry types.
func ValidLogType(t LogType) bool {
	return logTypes[t]
}

// Repository handles all development log database operations.
type Repository struct {
	col *mongo.Collection
}

// NewRepository creates a new Repository backed by the given collection.
func NewRepository(col *mongo.Collection) *Repository {
	return &Repository{col: col}
}

// Create inserts a new entry and returns its generated ID.
func (r *Repository) Create(ctx context.Context, e *Entry) (string, error) {
	now := time.Now().UTC()
	e.ID = uuid.NewString()
	e.CreatedAt = now
	e.UpdatedAt = now
	if e.Media == nil {
		e.Media = []media.Item{}
	}
	if e.Tags == nil {
		e.Tags = []string{}
	}

	if _, err := r.col.InsertOne(ctx, e); err != nil {
		return "", fmt.Errorf("insert log entry: %w", err)
	}
	return e.ID, nil
}

// ListByProject returns all entries for a project, newest date first.
func (r *Repository) ListByProject(ctx context.Context, projectID string) ([]Entry, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cursor, err := r.col.Find(ctx, bson.M{"projectId": projectID}, opts)
	if err != nil {
		return nil, fmt.Errorf("list log entries: %w", err)
	}
	defer cursor.Close(ctx)

	entries := []Entry{}
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, fmt.Errorf("decode log entries: %w", err)
	}
	return entries, nil
}

// GetByID fetches an entry by its ID.
func (r *Repository) GetByID(ctx context.Context, id string) (*Entry, error) {
	e := &Entry{}
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(e)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get log entry by id: %w", err)
	}
	return e, nil
}

// Update overwrites the mutable fields of an entry.
func (r *Repository) Update(ctx context.Context, id string, e *Entry) error {
	update := bson.M{"$set": bson.M{
		"title":     e.Title,
		"content":   e.Content,
		"type":      e.Type,
		"date":      e.Date,
		"tags":      e.Tags,
		"published": e.Published,
		"media":     e.Media,
		"updatedAt": time.Now().UTC(),
	}}

	result, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return fmt.Errorf("update log entry: %w", err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a log entry document.
func (r *Repository) Delete(ctx context.Context, id string) error {
	result, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete log entry: %w", err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
