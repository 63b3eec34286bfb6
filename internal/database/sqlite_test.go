package database

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/varoOP/tvseriesdb/internal/domain"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func newSQLiteConnector(t *testing.T) *SQLiteConnector {
	t.Helper()
	return NewSQLiteConnector(testLogger(), filepath.Join(t.TempDir(), "tvseriesdb.db"), "tvseries")
}

func TestSQLite_EnsureCollection_Idempotent(t *testing.T) {
	ctx := context.Background()
	c := newSQLiteConnector(t)

	store, err := c.Connect(ctx)
	require.NoError(t, err)
	created, err := store.EnsureCollection(ctx)
	require.NoError(t, err)
	assert.True(t, created)
	require.NoError(t, store.Close(ctx))

	store, err = c.Connect(ctx)
	require.NoError(t, err)
	defer store.Close(ctx)

	created, err = store.EnsureCollection(ctx)
	require.NoError(t, err)
	assert.False(t, created, "second run should find the existing table")

	db := store.(*SQLiteDB)
	rows, err := db.handler.QueryContext(ctx, `SELECT name FROM sqlite_master WHERE type = 'index' AND tbl_name = 'tvseries' AND name LIKE 'idx_%' ORDER BY name`)
	require.NoError(t, err)
	defer rows.Close()

	var indexes []string
	for rows.Next() {
		var name string
		require.NoError(t, rows.Scan(&name))
		indexes = append(indexes, name)
	}
	require.NoError(t, rows.Err())
	assert.Equal(t, []string{"idx_tvseries_rating", "idx_tvseries_release_date", "idx_tvseries_title_fold"}, indexes)

	var version int
	require.NoError(t, db.handler.QueryRowContext(ctx, "PRAGMA user_version").Scan(&version))
	assert.Equal(t, schemaVersion, version)
}

func TestSQLite_InsertAndFind(t *testing.T) {
	ctx := context.Background()
	store := openStore(t, newSQLiteConnector(t))

	dark := testSeries("Dark")
	dark.LastTitle = "Dark (2017)"
	dark.Trailer = "https://example.com/dark"
	slovo := testSeries("Слово пацана. Кровь на асфальте")
	slovo.StartDate = nil
	slovo.Country = "Russia"

	n, err := store.InsertMany(ctx, []domain.Series{dark, slovo})
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	all, err := store.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.False(t, all[0].ID.IsZero())
	assert.NotEqual(t, all[0].ID, all[1].ID)

	got := all[0]
	assert.Equal(t, "Dark", got.Title)
	assert.Equal(t, "Dark (2017)", got.LastTitle)
	assert.Equal(t, "https://example.com/dark", got.Trailer)
	assert.Empty(t, got.Cover)
	assert.Equal(t, int32(16), got.AgeLimits)
	assert.Equal(t, 8.7, got.Rating)
	assert.True(t, dark.ReleaseDate.Equal(got.ReleaseDate))
	require.NotNil(t, got.StartDate)
	assert.True(t, dark.StartDate.Equal(*got.StartDate))
	assert.Nil(t, all[1].StartDate)

	byID, err := store.FindByID(ctx, got.ID)
	require.NoError(t, err)
	assert.Equal(t, got, *byID)
}

func TestSQLite_FindByTitle(t *testing.T) {
	ctx := context.Background()
	store := openStore(t, newSQLiteConnector(t))

	_, err := store.InsertMany(ctx, []domain.Series{
		testSeries("Word of Honor"),
		testSeries("Слово пацана"),
		testSeries("Dr. House"),
		testSeries("Dark"),
	})
	require.NoError(t, err)

	tests := []struct {
		query string
		want  []string
	}{
		{"word", []string{"Word of Honor"}},
		{"WORD", []string{"Word of Honor"}},
		{"слово", []string{"Слово пацана"}},
		{"dr.", []string{"Dr. House"}},
		{"d", []string{"Word of Honor", "Dr. House", "Dark"}},
		{"r.*e", nil},
		{"missing", nil},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			found, err := store.FindByTitle(ctx, tt.query)
			require.NoError(t, err)
			assert.NotNil(t, found)

			var titles []string
			for _, s := range found {
				titles = append(titles, s.Title)
			}
			assert.Equal(t, tt.want, titles)
		})
	}
}

func TestSQLite_FindByID_NotFound(t *testing.T) {
	store := openStore(t, newSQLiteConnector(t))

	_, err := store.FindByID(context.Background(), bson.NewObjectID())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSQLite_DeleteByID(t *testing.T) {
	ctx := context.Background()
	store := openStore(t, newSQLiteConnector(t))

	_, err := store.InsertMany(ctx, []domain.Series{testSeries("Dark"), testSeries("Lost")})
	require.NoError(t, err)

	all, err := store.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)

	n, err := store.DeleteByID(ctx, all[0].ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	n, err = store.DeleteByID(ctx, all[0].ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)

	rest, err := store.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, rest, 1)
	assert.Equal(t, "Lost", rest[0].Title)
}

func TestSQLite_InsertMany_RollsBackBatch(t *testing.T) {
	ctx := context.Background()
	store := openStore(t, newSQLiteConnector(t))

	dup := testSeries("Dark")
	dup.ID = bson.NewObjectID()

	_, err := store.InsertMany(ctx, []domain.Series{dup, testSeries("Lost"), dup})
	require.Error(t, err)

	all, err := store.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestSQLite_SchemaRejectsWrongTypes(t *testing.T) {
	ctx := context.Background()
	db := openStore(t, newSQLiteConnector(t)).(*SQLiteDB)

	_, err := db.handler.ExecContext(ctx, `INSERT INTO tvseries
		(id, title, title_fold, country, genre, age_limits, release_date, rating, studio)
		VALUES ('1', 'Dark', 'dark', 'Germany', 'Sci-Fi', 'sixteen', '2017-12-01T00:00:00Z', 8.7, 1)`)
	assert.Error(t, err, "age_limits must be an integer")

	_, err = db.handler.ExecContext(ctx, `INSERT INTO tvseries
		(id, title, title_fold, country, genre, age_limits, release_date, rating, studio)
		VALUES ('2', 'Dark', 'dark', NULL, 'Sci-Fi', 16, '2017-12-01T00:00:00Z', 8.7, 1)`)
	assert.Error(t, err, "country is required")
}

func TestSQLite_Connect_Fails(t *testing.T) {
	c := NewSQLiteConnector(testLogger(), filepath.Join(t.TempDir(), "missing", "dir", "db.sqlite"), "tvseries")

	_, err := c.Connect(context.Background())
	assert.Error(t, err)
}

func TestNewConnector(t *testing.T) {
	c, err := NewConnector(&domain.Config{Driver: domain.DriverSQLite, SQLitePath: "x.db", Collection: "tvseries"}, testLogger())
	require.NoError(t, err)
	assert.IsType(t, &SQLiteConnector{}, c)

	c, err = NewConnector(&domain.Config{Driver: domain.DriverMongo, MongoURI: "mongodb://localhost:27017"}, testLogger())
	require.NoError(t, err)
	assert.IsType(t, &MongoConnector{}, c)

	_, err = NewConnector(&domain.Config{Driver: "postgres"}, testLogger())
	assert.ErrorContains(t, err, "unsupported storage driver")
}
