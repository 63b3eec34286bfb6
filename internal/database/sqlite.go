package database

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/varoOP/tvseriesdb/internal/domain"
	_ "modernc.org/sqlite"
)

// SQLiteConnector opens the local single-file catalog
type SQLiteConnector struct {
	log   zerolog.Logger
	path  string
	table string
}

// NewSQLiteConnector creates a connector for the database file at path
func NewSQLiteConnector(log zerolog.Logger, path, table string) *SQLiteConnector {
	return &SQLiteConnector{
		log:   log.With().Str("module", "database").Str("driver", "sqlite").Logger(),
		path:  path,
		table: table,
	}
}

var _ domain.Connector = (*SQLiteConnector)(nil)

// Connect opens the database file and checks the connection is usable
func (c *SQLiteConnector) Connect(ctx context.Context) (domain.Store, error) {
	db := &SQLiteDB{
		log:      c.log,
		table:    c.table,
		squirrel: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}

	var (
		err error
		DSN = c.path + "?_pragma=busy_timeout%3d1000&_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)"
	)

	db.handler, err = sql.Open("sqlite", DSN)
	if err != nil {
		return nil, errors.Wrap(err, "unable to connect to database")
	}

	if err := db.handler.PingContext(ctx); err != nil {
		db.handler.Close()
		return nil, errors.Wrap(err, "unable to connect to database")
	}

	c.log.Trace().Str("path", c.path).Msg("connected")

	return db, nil
}

// SQLiteDB is one open connection to the catalog file
type SQLiteDB struct {
	handler  *sql.DB
	log      zerolog.Logger
	table    string
	squirrel sq.StatementBuilderType
}

var _ domain.Store = (*SQLiteDB)(nil)

// Close closes the database connection
func (db *SQLiteDB) Close(ctx context.Context) error {
	if _, err := db.handler.ExecContext(ctx, `PRAGMA optimize;`); err != nil {
		db.handler.Close()
		return errors.Wrap(err, "query planner optimization")
	}

	return db.handler.Close()
}

// EnsureCollection creates the series table and its indexes unless the table already exists
func (db *SQLiteDB) EnsureCollection(ctx context.Context) (bool, error) {
	query, args, err := db.squirrel.
		Select("name").
		From("sqlite_master").
		Where(sq.Eq{"type": "table", "name": db.table}).
		ToSql()
	if err != nil {
		return false, errors.Wrap(err, "error building query")
	}

	db.log.Trace().Str("query", query).Interface("args", args).Msg("EnsureCollection")

	var name string
	err = db.handler.QueryRowContext(ctx, query, args...).Scan(&name)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return false, errors.Wrap(err, "error executing query")
	}

	db.log.Info().Str("table", db.table).Msg("Creating series table")

	tx, err := db.handler.BeginTx(ctx, nil)
	if err != nil {
		return false, errors.Wrap(err, "failed to begin transaction")
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, seriesSchema(db.table)); err != nil {
		return false, errors.Wrap(err, "failed to initialize schema")
	}

	if _, err := tx.ExecContext(ctx, schemaVersionPragma); err != nil {
		return false, errors.Wrap(err, "failed to bump schema version")
	}

	if err := tx.Commit(); err != nil {
		return false, errors.Wrap(err, "failed to commit schema")
	}

	return true, nil
}
