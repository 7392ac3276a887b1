package database

import (
	"context"
	"time"

	"github.com/kerimovok/go-pkg-utils/config"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

var (
	client *mongo.Client

	// DB is the application database handle.
	DB *mongo.Database
)

const connectTimeout = 30 * time.Second

// ConnectDB connects to MongoDB and pings it so startup fails fast on a bad
// connection string.
func ConnectDB() error {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	opts := options.Client().
		ApplyURI(config.GetEnv("MONGO_URI")).
		SetServerSelectionTimeout(connectTimeout).
		SetRetryReads(true).
		SetRetryWrites(true).
		SetMaxPoolSize(100)

	c, err := mongo.Connect(ctx, opts)
	if err != nil {
		return err
	}

	if err := c.Ping(ctx, readpref.Primary()); err != nil {
		_ = c.Disconnect(context.Background())
		return err
	}

	client = c
	DB = c.Database(config.GetEnv("MONGO_DB"))
	return nil
}

// Disconnect closes the underlying client.
func Disconnect(ctx context.Context) error {
	if client == nil {
		return nil
	}
	return client.Disconnect(ctx)
}
