package database

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/varoOP/tvseriesdb/internal/domain"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func TestSeriesValidator(t *testing.T) {
	v := seriesValidator()

	schema, ok := v["$jsonSchema"].(bson.M)
	require.True(t, ok)
	assert.Equal(t, "object", schema["bsonType"])
	assert.ElementsMatch(t, []string{"title", "country", "genre", "ageLimits", "releaseDate", "rating"}, schema["required"])

	properties, ok := schema["properties"].(bson.M)
	require.True(t, ok)
	assert.Len(t, properties, 11)
	assert.Equal(t, bson.M{"bsonType": "int"}, properties["ageLimits"])
	assert.Equal(t, bson.M{"bsonType": "date"}, properties["releaseDate"])
	assert.Equal(t, bson.M{"bsonType": "double"}, properties["rating"])
	assert.Equal(t, bson.M{"bsonType": "string"}, properties["title"])
}

func TestSeriesIndexes(t *testing.T) {
	indexes := seriesIndexes()
	require.Len(t, indexes, 3)

	assert.Equal(t, bson.D{{Key: "title", Value: "text"}}, indexes[0].Keys)
	assert.Equal(t, bson.D{{Key: "releaseDate", Value: 1}}, indexes[1].Keys)
	assert.Equal(t, bson.D{{Key: "rating", Value: -1}}, indexes[2].Keys)
}

func TestTitleFilter_QuotesPattern(t *testing.T) {
	filter := titleFilter("Dr. House (US)")

	require.Len(t, filter, 1)
	assert.Equal(t, "title", filter[0].Key)
	assert.Equal(t, bson.D{
		{Key: "$regex", Value: `Dr\. House \(US\)`},
		{Key: "$options", Value: "i"},
	}, filter[0].Value)
}

func TestSeries_BSONShape(t *testing.T) {
	s := testSeries("Dark")
	s.StartDate = nil

	raw, err := bson.Marshal(s)
	require.NoError(t, err)

	var doc bson.M
	require.NoError(t, bson.Unmarshal(raw, &doc))

	assert.NotContains(t, doc, "_id", "zero id is left for the driver to assign")
	assert.NotContains(t, doc, "startDate")
	assert.NotContains(t, doc, "lastTitle")
	assert.IsType(t, int32(0), doc["ageLimits"])
	assert.IsType(t, int32(0), doc["studio"])
	assert.IsType(t, float64(0), doc["rating"])
	assert.IsType(t, bson.DateTime(0), doc["releaseDate"])
}

// newMongoConnector returns a connector against TVSERIESDB_TEST_MONGO_URI using a throwaway database
func newMongoConnector(t *testing.T) *MongoConnector {
	t.Helper()

	uri := os.Getenv("TVSERIESDB_TEST_MONGO_URI")
	if uri == "" {
		t.Skip("TVSERIESDB_TEST_MONGO_URI not set")
	}

	database := fmt.Sprintf("tvseriesdb_test_%d", time.Now().UnixNano())
	c := NewMongoConnector(testLogger(), uri, database, "tvseries", 5*time.Second)

	t.Cleanup(func() {
		ctx := context.Background()
		store, err := c.Connect(ctx)
		if err != nil {
			return
		}
		defer store.Close(ctx)
		store.(*MongoDB).db.Drop(ctx)
	})

	return c
}

func TestMongo_EnsureCollection_Idempotent(t *testing.T) {
	ctx := context.Background()
	c := newMongoConnector(t)

	store, err := c.Connect(ctx)
	require.NoError(t, err)
	defer store.Close(ctx)

	created, err := store.EnsureCollection(ctx)
	require.NoError(t, err)
	assert.True(t, created)

	created, err = store.EnsureCollection(ctx)
	require.NoError(t, err)
	assert.False(t, created)

	specs, err := store.(*MongoDB).collection.Indexes().ListSpecifications(ctx)
	require.NoError(t, err)
	assert.Len(t, specs, 4, "_id plus three series indexes")
}

func TestMongo_Lifecycle(t *testing.T) {
	ctx := context.Background()
	store := openStore(t, newMongoConnector(t))

	n, err := store.InsertMany(ctx, []domain.Series{testSeries("Dark")})
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	found, err := store.FindByTitle(ctx, "dark")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Dark", found[0].Title)

	none, err := store.FindByTitle(ctx, "missing")
	require.NoError(t, err)
	assert.Empty(t, none)

	deleted, err := store.DeleteByID(ctx, found[0].ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	_, err = store.FindByID(ctx, found[0].ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	all, err := store.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestMongo_SchemaRejectsMissingFields(t *testing.T) {
	ctx := context.Background()
	store := openStore(t, newMongoConnector(t)).(*MongoDB)

	_, err := store.collection.InsertOne(ctx, bson.M{"title": "Dark"})
	assert.Error(t, err)
}
