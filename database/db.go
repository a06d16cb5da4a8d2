package database

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"housemate/config"
	"housemate/utils"
)

// MongoClient is the shared MongoDB client, set by InitDB.
var MongoClient *mongo.Client

// InitDB connects to MongoDB and verifies the connection. The process
// cannot serve anything without a database, so failure here is fatal.
func InitDB() {
	logger := utils.GetLogger()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(config.AppConfig.DatabaseURL))
	if err != nil {
		logger.Fatal("failed to connect to MongoDB", zap.Error(err))
	}
	if err := client.Ping(ctx, nil); err != nil {
		logger.Fatal("failed to ping MongoDB", zap.Error(err))
	}

	MongoClient = client
	logger.Info("Connected to MongoDB", zap.String("database", config.AppConfig.DatabaseName))
}

// Collection returns a handle to the named collection in the configured
// database.
func Collection(name string) *mongo.Collection {
	return MongoClient.Database(config.AppConfig.DatabaseName).Collection(name)
}
