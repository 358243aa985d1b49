package db

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Aaron23010705/vehicle-service-api/internal/config"
)

func NewDB(cfg *config.Config) *mongo.Database {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().
		ApplyURI(cfg.MongoURI).
		SetMaxPoolSize(10).
		SetMaxConnIdleTime(10*time.Minute))
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		log.Fatalf("failed to ping database: %v", err)
	}

	db := client.Database(cfg.MongoDatabase)

	// Emails are stored lowercased, so a plain unique index closes the
	// check-then-insert race at the store.
	_, err = db.Collection("clients").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		log.Fatalf("failed to ensure email index: %v", err)
	}

	return db
}
