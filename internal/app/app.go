package app

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/varoOP/tvseriesdb/internal/database"
	"github.com/varoOP/tvseriesdb/internal/domain"
	"github.com/varoOP/tvseriesdb/internal/format"
	"github.com/varoOP/tvseriesdb/internal/logger"
	"github.com/varoOP/tvseriesdb/internal/notification"
	"github.com/varoOP/tvseriesdb/internal/repository"
	"github.com/varoOP/tvseriesdb/internal/series"
	"github.com/varoOP/tvseriesdb/internal/shell"
)

// App represents the main application with all dependencies initialized
type App struct {
	log     zerolog.Logger
	config  *domain.Config
	service series.Service
	printer *format.Printer
}

// NewApp creates a new application instance writing user output to out
// and logs to stderr
func NewApp(cfg *domain.Config, out io.Writer) (*App, error) {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	return NewAppWithLogger(cfg, out, logger.NewLoggerWithLevel(level))
}

// NewAppWithLogger is NewApp with a caller supplied logger
func NewAppWithLogger(cfg *domain.Config, out io.Writer, log zerolog.Logger) (*App, error) {
	connector, err := database.NewConnector(cfg, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create connector: %w", err)
	}

	importRepo := repository.NewFileRepository(log)
	notificationService := notification.NewService(log, cfg.DiscordWebhookURL)

	return &App{
		log:     log,
		config:  cfg,
		service: series.NewService(log, connector, importRepo, notificationService),
		printer: format.NewPrinter(out, cfg.ImportFile),
	}, nil
}

// Config returns the validated configuration the app was built from
func (a *App) Config() *domain.Config {
	return a.config
}

// Init creates the collection, its validation rules and indexes if missing
func (a *App) Init(ctx context.Context) error {
	created, err := a.service.Init(ctx)
	if err != nil {
		return err
	}

	a.printer.Initialized(created)
	return nil
}

// RunShell initializes the collection and then serves commands from reader
// until the user quits. The collection must be ready before the first prompt.
func (a *App) RunShell(ctx context.Context, reader shell.LineReader) error {
	if err := a.Init(ctx); err != nil {
		reader.Close()
		return err
	}

	a.log.Debug().
		Str("driver", string(a.config.Driver)).
		Str("collection", a.config.Collection).
		Msg("Starting shell")

	return shell.New(a.log, a.service, a.printer, reader, a.config.ImportFile).Run(ctx)
}

// Import loads path, or the configured import file when path is empty
func (a *App) Import(ctx context.Context, path string) error {
	if path == "" {
		path = a.config.ImportFile
	}

	n, err := a.service.Import(ctx, path)
	if err != nil {
		return err
	}

	a.printer.Imported(n)
	return nil
}

func (a *App) Search(ctx context.Context, title string) error {
	found, err := a.service.Search(ctx, title)
	if err != nil {
		return err
	}

	a.printer.SearchResults(found)
	return nil
}

func (a *App) List(ctx context.Context) error {
	all, err := a.service.List(ctx)
	if err != nil {
		return err
	}

	a.printer.List(all)
	return nil
}

// Delete removes the series with id. A malformed or unknown id is reported
// to the user and is not an error.
func (a *App) Delete(ctx context.Context, id string) error {
	deleted, err := a.service.Delete(ctx, id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidID):
			a.printer.InvalidID()
		case errors.Is(err, domain.ErrNotFound):
			a.printer.NotFound()
		case errors.Is(err, domain.ErrNotDeleted):
			a.printer.DeleteFailed()
		default:
			return err
		}
		return nil
	}

	a.printer.Deleted(*deleted)
	return nil
}
