package database

import (
	"context"
	"fmt"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"

	"scholar-duty-backend/src/config"
)

var (
	client     *mongo.Client
	once       sync.Once
	connectErr error

	ScholarCollection    *mongo.Collection
	DutyCollection       *mongo.Collection
	AttendanceCollection *mongo.Collection
)

// ConnectMongoDB connects once and wires the collections.
func ConnectMongoDB(cfg config.MongoConfig) error {
	once.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
		defer cancel()

		client, connectErr = mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
		if connectErr != nil {
			connectErr = fmt.Errorf("connect mongo: %w", connectErr)
			return
		}
		if connectErr = client.Ping(ctx, readpref.Primary()); connectErr != nil {
			connectErr = fmt.Errorf("ping mongo: %w", connectErr)
			return
		}

		db := client.Database(cfg.Database)
		ScholarCollection = db.Collection("scholars")
		DutyCollection = db.Collection("duties")
		AttendanceCollection = db.Collection("attendances")

		zap.L().Info("✅ MongoDB connected", zap.String("database", cfg.Database))
		connectErr = ensureIndexes(ctx)
	})
	return connectErr
}

// ensureIndexes creates the indexes the snapshot and check-in queries rely on.
func ensureIndexes(ctx context.Context) error {
	_, err := ScholarCollection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("scholar index: %w", err)
	}
	_, err = DutyCollection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "id", Value: 1}, {Key: "day", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("duty index: %w", err)
	}
	_, err = AttendanceCollection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "studentId", Value: 1}, {Key: "checkInTime", Value: -1}},
	})
	if err != nil {
		return fmt.Errorf("attendance index: %w", err)
	}
	return nil
}

// Disconnect closes the Mongo client.
func Disconnect(ctx context.Context) error {
	if client == nil {
		return nil
	}
	return client.Disconnect(ctx)
}
