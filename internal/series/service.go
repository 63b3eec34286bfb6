package series

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/varoOP/tvseriesdb/internal/domain"
)

//go:generate mockgen -source=service.go -destination=mocks/mock_service.go -package=mocks

// Service is the catalog's record repository. Every call opens its own
// connection and closes it before returning.
type Service interface {
	// Init creates the collection with validation rules and indexes; false means it already existed
	Init(ctx context.Context) (bool, error)
	// Import inserts every record of the file at path in one batch and returns the inserted count
	Import(ctx context.Context, path string) (int, error)
	// Search returns series whose title contains title, ignoring case
	Search(ctx context.Context, title string) ([]domain.Series, error)
	// List returns every series
	List(ctx context.Context) ([]domain.Series, error)
	// Delete removes the series with the hex id and returns it
	Delete(ctx context.Context, id string) (*domain.Series, error)
}

type service struct {
	log        zerolog.Logger
	connector  domain.Connector
	importRepo domain.ImportRepository
	notifier   domain.NotificationService
	validate   *validator.Validate
}

func NewService(log zerolog.Logger, connector domain.Connector, importRepo domain.ImportRepository, notifier domain.NotificationService) Service {
	return &service{
		log:        log.With().Str("module", "series").Logger(),
		connector:  connector,
		importRepo: importRepo,
		notifier:   notifier,
		validate:   NewValidator(),
	}
}

// withStore runs fn against a fresh connection, closing it on every exit path
func (s *service) withStore(ctx context.Context, fn func(store domain.Store) error) error {
	store, err := s.connector.Connect(ctx)
	if err != nil {
		return fmt.Errorf("failed to connect: %w", err)
	}

	defer func() {
		if err := store.Close(context.WithoutCancel(ctx)); err != nil {
			s.log.Warn().Err(err).Msg("Failed to close connection")
		}
	}()

	return fn(store)
}

func (s *service) Init(ctx context.Context) (bool, error) {
	var created bool
	err := s.withStore(ctx, func(store domain.Store) error {
		var err error
		created, err = store.EnsureCollection(ctx)
		return err
	})
	if err != nil {
		return false, fmt.Errorf("failed to initialize collection: %w", err)
	}

	s.log.Debug().Bool("created", created).Msg("Collection ready")
	return created, nil
}

func (s *service) Import(ctx context.Context, path string) (int, error) {
	records, err := s.importRepo.Get(ctx, path)
	if err != nil {
		return 0, err
	}

	series := make([]domain.Series, 0, len(records))
	for i, r := range records {
		if err := validateRecord(s.validate, i, r); err != nil {
			return 0, err
		}

		sr, err := r.ToSeries()
		if err != nil {
			return 0, &domain.ValidationError{Index: i, Err: err}
		}
		series = append(series, sr)
	}

	if len(series) == 0 {
		s.log.Info().Str("path", path).Msg("Import file has no records")
		return 0, nil
	}

	var inserted int
	err = s.withStore(ctx, func(store domain.Store) error {
		var err error
		inserted, err = store.InsertMany(ctx, series)
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("failed to insert series: %w", err)
	}

	s.log.Info().Str("path", path).Int("count", inserted).Msg("Imported series")

	if err := s.notifier.SendImported(ctx, inserted, path); err != nil {
		s.log.Warn().Err(err).Msg("Failed to send import notification")
	}

	return inserted, nil
}

func (s *service) Search(ctx context.Context, title string) ([]domain.Series, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, fmt.Errorf("search title is required")
	}

	var found []domain.Series
	err := s.withStore(ctx, func(store domain.Store) error {
		var err error
		found, err = store.FindByTitle(ctx, title)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to search series: %w", err)
	}

	s.log.Debug().Str("title", title).Int("count", len(found)).Msg("Search complete")
	return found, nil
}

func (s *service) List(ctx context.Context) ([]domain.Series, error) {
	var all []domain.Series
	err := s.withStore(ctx, func(store domain.Store) error {
		var err error
		all, err = store.FindAll(ctx)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list series: %w", err)
	}

	return all, nil
}

// Delete looks the series up before deleting it. The two steps are not
// atomic: if another client removes it in between, ErrNotDeleted is returned.
func (s *service) Delete(ctx context.Context, id string) (*domain.Series, error) {
	oid, err := domain.ParseID(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", err, id)
	}

	var deleted *domain.Series
	err = s.withStore(ctx, func(store domain.Store) error {
		found, err := store.FindByID(ctx, oid)
		if err != nil {
			return err
		}

		n, err := store.DeleteByID(ctx, oid)
		if err != nil {
			return err
		}
		if n == 0 {
			return domain.ErrNotDeleted
		}

		deleted = found
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to delete series %s: %w", id, err)
	}

	s.log.Info().Str("id", id).Str("title", deleted.Title).Msg("Deleted series")

	if err := s.notifier.SendDeleted(ctx, *deleted); err != nil {
		s.log.Warn().Err(err).Msg("Failed to send delete notification")
	}

	return deleted, nil
}
