package database

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/varoOP/tvseriesdb/internal/domain"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

// MongoConnector opens a client against a fixed MongoDB endpoint
type MongoConnector struct {
	log        zerolog.Logger
	uri        string
	database   string
	collection string
	timeout    time.Duration
}

// NewMongoConnector creates a connector for database.collection at uri
func NewMongoConnector(log zerolog.Logger, uri, database, collection string, timeout time.Duration) *MongoConnector {
	return &MongoConnector{
		log:        log.With().Str("module", "database").Str("driver", "mongodb").Logger(),
		uri:        uri,
		database:   database,
		collection: collection,
		timeout:    timeout,
	}
}

var _ domain.Connector = (*MongoConnector)(nil)

// Connect creates a client and pings the primary so unreachable servers fail here
func (c *MongoConnector) Connect(ctx context.Context) (domain.Store, error) {
	opts := options.Client().ApplyURI(c.uri)
	if c.timeout > 0 {
		opts.SetServerSelectionTimeout(c.timeout)
	}

	client, err := mongo.Connect(opts)
	if err != nil {
		return nil, errors.Wrap(err, "unable to connect to database")
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		client.Disconnect(context.WithoutCancel(ctx))
		return nil, errors.Wrap(err, "unable to connect to database")
	}

	c.log.Trace().Str("database", c.database).Str("collection", c.collection).Msg("connected")

	db := client.Database(c.database)
	return &MongoDB{
		client:     client,
		db:         db,
		collection: db.Collection(c.collection),
		name:       c.collection,
		log:        c.log,
	}, nil
}

// MongoDB is one connected client bound to the series collection
type MongoDB struct {
	client     *mongo.Client
	db         *mongo.Database
	collection *mongo.Collection
	name       string
	log        zerolog.Logger
}

var _ domain.Store = (*MongoDB)(nil)

// Close disconnects the client
func (m *MongoDB) Close(ctx context.Context) error {
	if err := m.client.Disconnect(ctx); err != nil {
		return errors.Wrap(err, "unable to disconnect from database")
	}

	return nil
}
