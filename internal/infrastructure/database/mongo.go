package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoDBClient wraps the MongoDB client connection.
type MongoDBClient struct {
	Client *mongo.Client
}

// NewMongoDBClient connects to MongoDB and verifies the connection with a
// ping.
func NewMongoDBClient(uri string, timeout time.Duration) (*MongoDBClient, error) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}
	return &MongoDBClient{Client: client}, nil
}

// Disconnect closes the MongoDB connection.
func (c *MongoDBClient) Disconnect() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = c.Client.Disconnect(ctx)
}

// EnsureIndexes creates the unique indexes the catalog relies on. The indexes
// are the final authority on uniqueness: a write that slips past the
// usecase pre-checks is rejected here with a duplicate-key error.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	unique := options.Index().SetUnique(true)

	indexes := map[string]mongo.IndexModel{
		"media_serial":     {Keys: bson.D{{Key: "serial", Value: 1}}, Options: unique},
		"media_url":        {Keys: bson.D{{Key: "url", Value: 1}}, Options: unique},
		"genres_name":      {Keys: bson.D{{Key: "name", Value: 1}}, Options: unique},
		"producers_name":   {Keys: bson.D{{Key: "name", Value: 1}}, Options: unique},
		"media_types_name": {Keys: bson.D{{Key: "name", Value: 1}}, Options: unique},
	}

	collections := map[string][]string{
		"media":       {"media_serial", "media_url"},
		"genres":      {"genres_name"},
		"producers":   {"producers_name"},
		"media_types": {"media_types_name"},
	}

	for coll, names := range collections {
		models := make([]mongo.IndexModel, 0, len(names))
		for _, name := range names {
			models = append(models, indexes[name])
		}
		if _, err := db.Collection(coll).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("failed to create indexes for %s: %w", coll, err)
		}
	}
	return nil
}
