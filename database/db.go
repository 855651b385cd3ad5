package database

import (
	"context"
	"fmt"
	"time"

	"apptchat/config"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// Connect builds the MongoDB client and pings it once. An unreachable server
// is only logged: the client is still returned and later operations surface
// the driver error. Only an unusable connection string is returned as an error.
func Connect(cfg config.Config, logger *zap.Logger) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	clientOptions := options.Client().ApplyURI(cfg.MongoConnStr)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("connect to MongoDB: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		logger.Error("Error connecting to MongoDB", zap.Error(err))
		return client, nil
	}
	logger.Info("Connected to MongoDB successfully.")
	return client, nil
}

// Disconnect closes the client, bounded by a short timeout.
func Disconnect(client *mongo.Client, logger *zap.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Disconnect(ctx); err != nil {
		logger.Warn("Failed to disconnect from MongoDB", zap.Error(err))
	}
}
