// Package mongodb implements the store interfaces on top of MongoDB
// using the official Go driver.
package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/placez/placez-api/internal/config"
)

const (
	usersCollection  = "users"
	placesCollection = "places"

	connectTimeout = 10 * time.Second
)

// DB bundles the Mongo client and the application database handle.
type DB struct {
	client   *mongo.Client
	database *mongo.Database
}

// Connect establishes a MongoDB connection, verifies it with a ping, and
// ensures the indexes the stores rely on.
func Connect(ctx context.Context, cfg config.DatabaseConfig) (*DB, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	db := &DB{
		client:   client,
		database: client.Database(cfg.Name),
	}

	if err := db.ensureIndexes(ctx); err != nil {
		return nil, err
	}

	return db, nil
}

// ensureIndexes creates the unique email index that backs the
// duplicate-user check. CreateOne is idempotent for an identical index.
func (db *DB) ensureIndexes(ctx context.Context) error {
	_, err := db.database.Collection(usersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create email index: %w", err)
	}
	return nil
}

// Close disconnects the underlying client.
func (db *DB) Close(ctx context.Context) error {
	return db.client.Disconnect(ctx)
}
