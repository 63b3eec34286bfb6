package shell

import (
	"context"
	"errors"
	"io"

	"github.com/chzyer/readline"
	"github.com/rs/zerolog"
	"github.com/varoOP/tvseriesdb/internal/domain"
	"github.com/varoOP/tvseriesdb/internal/format"
	"github.com/varoOP/tvseriesdb/internal/series"
)

// LineReader yields one line of user input per call
type LineReader interface {
	Readline() (string, error)
	Close() error
}

// Shell is the interactive command loop
type Shell struct {
	log        zerolog.Logger
	svc        series.Service
	printer    *format.Printer
	reader     LineReader
	importFile string
}

func New(log zerolog.Logger, svc series.Service, printer *format.Printer, reader LineReader, importFile string) *Shell {
	return &Shell{
		log:        log.With().Str("module", "shell").Logger(),
		svc:        svc,
		printer:    printer,
		reader:     reader,
		importFile: importFile,
	}
}

// NewReadline creates a terminal line reader with the "> " prompt.
// History is kept in historyFile when it is not empty.
func NewReadline(historyFile string) (*readline.Instance, error) {
	return readline.NewEx(&readline.Config{
		Prompt:          "> ",
		HistoryFile:     historyFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "q",
	})
}

// Run prompts for commands until the user quits or input ends
func (s *Shell) Run(ctx context.Context) error {
	defer s.reader.Close()

	s.printer.Welcome()
	s.printer.Menu()

	for {
		line, err := s.reader.Readline()
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, readline.ErrInterrupt) {
				s.printer.Goodbye()
				return nil
			}
			return err
		}

		if quit := s.Dispatch(ctx, ParseCommand(line)); quit {
			return nil
		}
	}
}

// Dispatch runs cmd to completion and reports whether the session should end.
// Errors are reported here and never returned.
func (s *Shell) Dispatch(ctx context.Context, cmd Command) bool {
	switch c := cmd.(type) {
	case ImportCommand:
		s.importSeries(ctx)
	case SearchCommand:
		s.search(ctx, c.Title)
	case ListCommand:
		s.list(ctx)
	case DeleteCommand:
		s.deleteSeries(ctx, c.ID)
	case QuitCommand:
		s.printer.Goodbye()
		return true
	case UsageCommand:
		s.printer.Usage(c.Usage)
	case InvalidCommand:
		s.printer.InvalidCommand()
		s.printer.Menu()
	default:
		s.log.Error().Msgf("unhandled command %T", cmd)
	}

	return false
}

func (s *Shell) importSeries(ctx context.Context) {
	n, err := s.svc.Import(ctx, s.importFile)
	if err != nil {
		var verr *domain.ValidationError
		switch {
		case errors.Is(err, domain.ErrImportFileNotFound):
			s.printer.ImportFileNotFound(s.importFile)
		case errors.As(err, &verr):
			s.printer.InvalidImport(verr)
		default:
			s.log.Error().Err(err).Msg("Error importing series")
		}
		return
	}

	s.printer.Imported(n)
}

func (s *Shell) search(ctx context.Context, title string) {
	found, err := s.svc.Search(ctx, title)
	if err != nil {
		s.log.Error().Err(err).Msg("Error searching series")
		return
	}

	s.printer.SearchResults(found)
}

func (s *Shell) list(ctx context.Context) {
	all, err := s.svc.List(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("Error listing series")
		return
	}

	s.printer.List(all)
}

func (s *Shell) deleteSeries(ctx context.Context, id string) {
	deleted, err := s.svc.Delete(ctx, id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidID):
			s.printer.InvalidID()
		case errors.Is(err, domain.ErrNotFound):
			s.printer.NotFound()
		case errors.Is(err, domain.ErrNotDeleted):
			s.printer.DeleteFailed()
		default:
			s.log.Error().Err(err).Msg("Error deleting series")
		}
		return
	}

	s.printer.Deleted(*deleted)
}
