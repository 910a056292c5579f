// Package db provides document database connection and index utilities.
package db

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Collection names used by the content services.
const (
	CollectionPortfolio = "portfolio"
	CollectionBlogPosts = "blog_posts"
	CollectionDevLogs   = "dev_logs"
)

// Connect creates and validates a MongoDB client.
func Connect(uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("ping mongo: %w", err)
	}
	return client, nil
}

// EnsureIndexes creates the indexes the content queries rely on. Collections
// themselves are created lazily on first insert.
func EnsureIndexes(ctx context.Context, database *mongo.Database) error {
	indexes := map[string][]mongo.IndexModel{
		CollectionPortfolio: {
			{Keys: bson.D{{Key: "createdAt", Value: -1}}},
		},
		CollectionBlogPosts: {
			{Keys: bson.D{{Key: "createdAt", Value: -1}}},
			{Keys: bson.D{{Key: "projectId", Value: 1}}},
		},
		CollectionDevLogs: {
			{Keys: bson.D{{Key: "projectId", Value: 1}, {Key: "date", Value: -1}}},
		},
	}

	for name, models := range indexes {
		if _, err := database.Collection(name).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("create indexes for %s: %w", name, err)
		}
	}
	return nil
}
