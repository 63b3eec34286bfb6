package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/varoOP/tvseriesdb/internal/domain"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644), "failed to write test file")
	return path
}

func TestFileRepository_Get_JSON(t *testing.T) {
	path := writeFile(t, "tvseries.json", `[
  {"title":"Dark","country":"Germany","genre":"Sci-Fi","ageLimits":16,"releaseDate":"2017-12-01","rating":8.7,"studio":1},
  {"title":"Слово пацана","lastTitle":"The Boy's Word","country":"Russia","genre":"Drama","ageLimits":18,
   "startDate":"2023-11-09","releaseDate":"2023-11-09","rating":8.2,"trailer":"https://example.com/t","cover":"covers/slovo.jpg","studio":2}
]`)

	records, err := NewFileRepository(zerolog.Nop()).Get(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "Dark", records[0].Title)
	require.NotNil(t, records[0].AgeLimits)
	assert.Equal(t, int32(16), *records[0].AgeLimits)
	assert.Empty(t, records[0].StartDate)
	assert.Equal(t, "2017-12-01", records[0].ReleaseDate)

	assert.Equal(t, "The Boy's Word", records[1].LastTitle)
	assert.Equal(t, "2023-11-09", records[1].StartDate)
	assert.Equal(t, "covers/slovo.jpg", records[1].Cover)
	require.NotNil(t, records[1].Rating)
	assert.Equal(t, 8.2, *records[1].Rating)
}

func TestFileRepository_Get_YAML(t *testing.T) {
	path := writeFile(t, "tvseries.yaml", `- title: Dark
  country: Germany
  genre: Sci-Fi
  ageLimits: 16
  releaseDate: "2017-12-01"
  rating: 8.7
  studio: 1
`)

	records, err := NewFileRepository(zerolog.Nop()).Get(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Dark", records[0].Title)
	assert.Equal(t, "2017-12-01", records[0].ReleaseDate)
	require.NotNil(t, records[0].Studio)
	assert.Equal(t, int32(1), *records[0].Studio)
}

func TestFileRepository_Get_MissingNumbersStayNil(t *testing.T) {
	path := writeFile(t, "tvseries.json", `[{"title":"Dark"}]`)

	records, err := NewFileRepository(zerolog.Nop()).Get(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Nil(t, records[0].AgeLimits)
	assert.Nil(t, records[0].Rating)
	assert.Nil(t, records[0].Studio)
}

func TestFileRepository_Get_EmptyArray(t *testing.T) {
	path := writeFile(t, "tvseries.json", `[]`)

	records, err := NewFileRepository(zerolog.Nop()).Get(context.Background(), path)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestFileRepository_Get_NotFound(t *testing.T) {
	_, err := NewFileRepository(zerolog.Nop()).Get(context.Background(), filepath.Join(t.TempDir(), "tvseries.json"))
	assert.ErrorIs(t, err, domain.ErrImportFileNotFound)
}

func TestFileRepository_Get_Directory(t *testing.T) {
	_, err := NewFileRepository(zerolog.Nop()).Get(context.Background(), t.TempDir())
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrImportFileNotFound)
	assert.Contains(t, err.Error(), "directory")
}

func TestFileRepository_Get_Malformed(t *testing.T) {
	tests := map[string]string{
		"tvseries.json": `{"title":"Dark"}`,
		"broken.json":   `[{"title":`,
		"tvseries.yml":  "title: [unclosed",
	}

	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := NewFileRepository(zerolog.Nop()).Get(context.Background(), writeFile(t, name, content))
			require.Error(t, err)
			assert.NotErrorIs(t, err, domain.ErrImportFileNotFound)
		})
	}
}
