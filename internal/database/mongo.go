package database

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

const connectTimeout = 10 * time.Second

// Connect opens the shared client pool and checks the primary is reachable.
// The caller owns the client and must Disconnect it on shutdown.
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		zap.S().Errorf("Connect: client error: %v", err)
		return nil, errors.Wrap(err, "mongo connect")
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		zap.S().Errorf("Connect: ping error: %v", err)
		_ = client.Disconnect(context.Background())
		return nil, errors.Wrap(err, "mongo ping")
	}

	zap.S().Info("DB connected")
	return client, nil
}
