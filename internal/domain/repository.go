package domain

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// SeriesRepository defines the record operations against the series collection
type SeriesRepository interface {
	InsertMany(ctx context.Context, series []Series) (int, error)
	FindByTitle(ctx context.Context, substring string) ([]Series, error)
	FindAll(ctx context.Context) ([]Series, error)
	// FindByID returns ErrNotFound when no series has the id
	FindByID(ctx context.Context, id bson.ObjectID) (*Series, error)
	DeleteByID(ctx context.Context, id bson.ObjectID) (int64, error)
}

// SchemaRepository prepares the collection, its validation rules and indexes
type SchemaRepository interface {
	// EnsureCollection reports whether the collection had to be created
	EnsureCollection(ctx context.Context) (bool, error)
}

// Store is a single open connection to the series database
type Store interface {
	SeriesRepository
	SchemaRepository
	Close(ctx context.Context) error
}

// Connector opens a fresh Store for every operation
type Connector interface {
	Connect(ctx context.Context) (Store, error)
}

// ImportRepository reads series records from an import file
type ImportRepository interface {
	Get(ctx context.Context, path string) ([]ImportRecord, error)
}
