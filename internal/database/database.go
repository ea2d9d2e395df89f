package database

import (
	"context"
	"fmt"
	"sync/atomic"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/chachabrian/profast-backend/internal/config"
	"github.com/chachabrian/profast-backend/internal/logger"
)

const (
	ParcelsCollection  = "parcels"
	UsersCollection    = "users"
	RidersCollection   = "riders"
	PaymentsCollection = "payments"
	TrackingCollection = "tracking"
)

// Gateway owns the mongo client. The client is created eagerly but the
// server is only contacted by Connect; until that succeeds Ready is false.
type Gateway struct {
	client *mongo.Client
	db     *mongo.Database
	ready  atomic.Bool
	log    *logger.Logger
}

func New(cfg config.Mongo, log *logger.Logger) (*Gateway, error) {
	serverAPI := options.ServerAPI(options.ServerAPIVersion1).
		SetStrict(true).
		SetDeprecationErrors(true)

	opts := options.Client().
		ApplyURI(cfg.URI).
		SetServerAPIOptions(serverAPI).
		SetServerSelectionTimeout(cfg.SelectTimeout)

	client, err := mongo.Connect(context.Background(), opts)
	if err != nil {
		return nil, fmt.Errorf("create mongo client: %w", err)
	}

	return &Gateway{
		client: client,
		db:     client.Database(cfg.Database),
		log:    log,
	}, nil
}

// Connect pings the deployment and ensures indexes. It is meant to run once,
// in the background, at process start.
func (g *Gateway) Connect(ctx context.Context) error {
	if err := g.client.Ping(ctx, readpref.Primary()); err != nil {
		g.log.Error().Err(err).Msg("mongo ping failed, data routes stay unavailable")
		return fmt.Errorf("ping mongo: %w", err)
	}

	if err := EnsureIndexes(ctx, g.db); err != nil {
		g.log.Error().Err(err).Msg("ensure indexes failed, data routes stay unavailable")
		return err
	}

	g.ready.Store(true)
	g.log.Info().Str("database", g.db.Name()).Msg("connected to mongo")
	return nil
}

func (g *Gateway) Ready() bool {
	return g.ready.Load()
}

func (g *Gateway) Collection(name string) *mongo.Collection {
	return g.db.Collection(name)
}

func (g *Gateway) Disconnect(ctx context.Context) error {
	g.ready.Store(false)
	if err := g.client.Disconnect(ctx); err != nil {
		return fmt.Errorf("disconnect mongo: %w", err)
	}
	return nil
}
