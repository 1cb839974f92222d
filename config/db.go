package config

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ConnectDB establishes the MongoDB connection and returns the client and
// database handle. The caller owns the client and is responsible for
// disconnecting it on shutdown.
func ConnectDB(ctx context.Context, cfg *Config) (*mongo.Client, *mongo.Database, error) {
	cctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(cctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := client.Ping(cctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("mongo ping: %w", err)
	}

	return client, client.Database(cfg.MongoDB), nil
}

// EnsureIndexes creates the secondary indexes the query paths rely on. The
// unique index on users.email is the authoritative uniqueness guarantee for
// registration; the handler does not pre-check existence.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	ictx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	_, err := db.Collection("reports").Indexes().CreateMany(ictx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "timestamp", Value: -1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "disasterType", Value: 1}}},
	})
	if err != nil {
		return fmt.Errorf("reports indexes: %w", err)
	}

	_, err = db.Collection("contacts").Indexes().CreateMany(ictx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "timestamp", Value: -1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
	})
	if err != nil {
		return fmt.Errorf("contacts indexes: %w", err)
	}

	_, err = db.Collection("users").Indexes().CreateMany(ictx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "createdAt", Value: -1}}},
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	})
	if err != nil {
		return fmt.Errorf("users indexes: %w", err)
	}

	return nil
}
