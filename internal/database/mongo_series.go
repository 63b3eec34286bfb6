package database

import (
	"context"
	"regexp"

	"github.com/pkg/errors"
	"github.com/varoOP/tvseriesdb/internal/domain"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// titleFilter matches substring anywhere in the title, ignoring case; regex metacharacters are taken literally
func titleFilter(substring string) bson.D {
	return bson.D{{Key: "title", Value: bson.D{
		{Key: "$regex", Value: regexp.QuoteMeta(substring)},
		{Key: "$options", Value: "i"},
	}}}
}

func idFilter(id bson.ObjectID) bson.D {
	return bson.D{{Key: "_id", Value: id}}
}

// InsertMany inserts all series in a single batch
func (m *MongoDB) InsertMany(ctx context.Context, series []domain.Series) (int, error) {
	m.log.Trace().Int("count", len(series)).Msg("InsertMany")

	res, err := m.collection.InsertMany(ctx, series)
	if err != nil {
		return 0, errors.Wrap(err, "error inserting series")
	}

	return len(res.InsertedIDs), nil
}

// FindByTitle returns series whose title contains substring, ignoring case
func (m *MongoDB) FindByTitle(ctx context.Context, substring string) ([]domain.Series, error) {
	filter := titleFilter(substring)

	m.log.Trace().Interface("filter", filter).Msg("FindByTitle")

	return m.find(ctx, filter)
}

// FindAll returns every series
func (m *MongoDB) FindAll(ctx context.Context) ([]domain.Series, error) {
	m.log.Trace().Msg("FindAll")

	return m.find(ctx, bson.D{})
}

// FindByID returns the series with id or domain.ErrNotFound
func (m *MongoDB) FindByID(ctx context.Context, id bson.ObjectID) (*domain.Series, error) {
	m.log.Trace().Str("id", id.Hex()).Msg("FindByID")

	var s domain.Series
	if err := m.collection.FindOne(ctx, idFilter(id)).Decode(&s); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, errors.Wrap(err, "error finding series")
	}

	return &s, nil
}

// DeleteByID deletes the series with id and reports how many documents went away
func (m *MongoDB) DeleteByID(ctx context.Context, id bson.ObjectID) (int64, error) {
	m.log.Trace().Str("id", id.Hex()).Msg("DeleteByID")

	res, err := m.collection.DeleteOne(ctx, idFilter(id))
	if err != nil {
		return 0, errors.Wrap(err, "error deleting series")
	}

	return res.DeletedCount, nil
}

func (m *MongoDB) find(ctx context.Context, filter bson.D) ([]domain.Series, error) {
	cursor, err := m.collection.Find(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "error executing query")
	}
	defer cursor.Close(ctx)

	result := []domain.Series{}
	if err := cursor.All(ctx, &result); err != nil {
		return nil, errors.Wrap(err, "error decoding series")
	}

	return result, nil
}
