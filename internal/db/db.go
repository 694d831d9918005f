package db

import (
	"context"
	"fmt"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/taodash/subnet-indexer/internal/config"
)

const (
	connectAttempts      = 5
	connectRetryInterval = time.Second
)

type Database struct {
	dbName string
	client *mongo.Client
}

// New connects to mongo and makes sure the server answers before returning.
// The first ping is retried a few times since the database container usually
// starts together with the indexer.
func New(ctx context.Context, cfg config.DbConfig) (*Database, error) {
	credential := options.Credential{
		Username: cfg.Username,
		Password: cfg.Password,
	}
	clientOps := options.Client().ApplyURI(cfg.Address).SetAuth(credential)
	client, err := mongo.Connect(ctx, clientOps)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}

	err = retry.Do(
		func() error {
			return client.Ping(ctx, nil)
		},
		retry.Context(ctx),
		retry.Attempts(connectAttempts),
		retry.Delay(connectRetryInterval),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			log.Ctx(ctx).Warn().
				Uint("attempt", n+1).
				Uint("max_attempts", connectAttempts).
				Err(err).
				Msg("mongo is not reachable yet")
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to ping mongo: %w", err)
	}

	return &Database{
		dbName: cfg.DbName,
		client: client,
	}, nil
}

func (db *Database) Ping(ctx context.Context) error {
	return db.client.Ping(ctx, nil)
}

func (db *Database) Close(ctx context.Context) error {
	return db.client.Disconnect(ctx)
}

func (db *Database) collection(name string) *mongo.Collection {
	return db.client.Database(db.dbName).Collection(name)
}
