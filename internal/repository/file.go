package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/varoOP/tvseriesdb/internal/domain"
	"gopkg.in/yaml.v3"
)

// FileRepository implements domain.ImportRepository using JSON or YAML files
type FileRepository struct {
	log zerolog.Logger
}

// NewFileRepository creates a new file-based import repository
func NewFileRepository(log zerolog.Logger) *FileRepository {
	return &FileRepository{
		log: log.With().Str("module", "repository").Logger(),
	}
}

var _ domain.ImportRepository = (*FileRepository)(nil)

// Get reads the array of series records stored at path.
// Files ending in .yaml or .yml are decoded as YAML, anything else as JSON.
func (r *FileRepository) Get(ctx context.Context, path string) ([]domain.ImportRecord, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", domain.ErrImportFileNotFound, path)
		}
		return nil, fmt.Errorf("failed to stat file %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("path is a directory, not a file: %s", path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file %s: %w", path, err)
	}
	defer f.Close()

	body, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}

	records := []domain.ImportRecord{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(body, &records); err != nil {
			return nil, fmt.Errorf("failed to unmarshal yaml from %s: %w", path, err)
		}
	default:
		if err := json.Unmarshal(body, &records); err != nil {
			return nil, fmt.Errorf("failed to unmarshal json from %s: %w", path, err)
		}
	}

	r.log.Debug().Str("path", path).Int("count", len(records)).Msg("read import file")
	return records, nil
}
