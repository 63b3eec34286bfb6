package database

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"github.com/varoOP/tvseriesdb/internal/domain"
)

func testSeries(title string) domain.Series {
	start := time.Date(2017, 11, 1, 0, 0, 0, 0, time.UTC)
	return domain.Series{
		Title:       title,
		Country:     "Germany",
		Genre:       "Sci-Fi",
		AgeLimits:   16,
		StartDate:   &start,
		ReleaseDate: time.Date(2017, 12, 1, 0, 0, 0, 0, time.UTC),
		Rating:      8.7,
		Studio:      1,
	}
}

// openStore connects with c, ensures the collection and closes the store on cleanup
func openStore(t *testing.T, c domain.Connector) domain.Store {
	t.Helper()

	ctx := context.Background()
	store, err := c.Connect(ctx)
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := store.Close(ctx); err != nil {
			t.Logf("Failed to close store: %v", err)
		}
	})

	_, err = store.EnsureCollection(ctx)
	require.NoError(t, err)

	return store
}

func testLogger() zerolog.Logger {
	return zerolog.Nop()
}
