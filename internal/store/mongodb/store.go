// Package mongodb implements the store interfaces on top of the MongoDB Go
// driver. Referential integrity between collections is intentionally not
// enforced here; the service layer re-derives authorization from the parent
// project on every request.
package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store bundles the collection-backed implementations plus the owning client
// so main can close the connection on shutdown.
type Store struct {
	client *mongo.Client

	Users    *UserStore
	Projects *ProjectStore
	Tasks    *TaskStore
}

// Connect dials MongoDB, verifies the connection and prepares the unique
// email index backing the duplicate-registration check.
func Connect(ctx context.Context, uri, dbName string) (*Store, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongodb: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}

	db := client.Database(dbName)

	users := db.Collection("users")
	_, err = users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return nil, fmt.Errorf("create email index: %w", err)
	}

	return &Store{
		client:   client,
		Users:    &UserStore{col: users},
		Projects: &ProjectStore{col: db.Collection("projects")},
		Tasks:    &TaskStore{col: db.Collection("tasks")},
	}, nil
}

// Close disconnects the underlying client.
func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
