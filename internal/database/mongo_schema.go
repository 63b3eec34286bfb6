package database

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// RequiredFields must be present on every series document
var RequiredFields = []string{"title", "country", "genre", "ageLimits", "releaseDate", "rating"}

// fieldTypes maps every series field to its BSON type
var fieldTypes = map[string]string{
	"title":       "string",
	"lastTitle":   "string",
	"country":     "string",
	"genre":       "string",
	"ageLimits":   "int",
	"startDate":   "date",
	"releaseDate": "date",
	"rating":      "double",
	"trailer":     "string",
	"cover":       "string",
	"studio":      "int",
}

func seriesValidator() bson.M {
	properties := bson.M{}
	for field, bsonType := range fieldTypes {
		properties[field] = bson.M{"bsonType": bsonType}
	}

	return bson.M{
		"$jsonSchema": bson.M{
			"bsonType":   "object",
			"required":   RequiredFields,
			"properties": properties,
		},
	}
}

func seriesIndexes() []mongo.IndexModel {
	return []mongo.IndexModel{
		{Keys: bson.D{{Key: "title", Value: "text"}}},
		{Keys: bson.D{{Key: "releaseDate", Value: 1}}},
		{Keys: bson.D{{Key: "rating", Value: -1}}},
	}
}

// EnsureCollection creates the validated collection and its indexes unless it already exists
func (m *MongoDB) EnsureCollection(ctx context.Context) (bool, error) {
	names, err := m.db.ListCollectionNames(ctx, bson.D{{Key: "name", Value: m.name}})
	if err != nil {
		return false, errors.Wrap(err, "error listing collections")
	}

	if len(names) > 0 {
		return false, nil
	}

	m.log.Info().Str("collection", m.name).Msg("Creating series collection")

	opts := options.CreateCollection().SetValidator(seriesValidator())
	if err := m.db.CreateCollection(ctx, m.name, opts); err != nil {
		return false, errors.Wrap(err, "error creating collection")
	}

	indexes, err := m.collection.Indexes().CreateMany(ctx, seriesIndexes())
	if err != nil {
		return false, errors.Wrap(err, "error creating indexes")
	}

	m.log.Debug().Strs("indexes", indexes).Msg("Created indexes")

	return true, nil
}
