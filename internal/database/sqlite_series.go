package database

import (
	"context"
	"database/sql"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/varoOP/tvseriesdb/internal/domain"
	"go.mongodb.org/mongo-driver/v2/bson"
	"golang.org/x/text/cases"
)

var seriesColumns = []string{
	"id", "title", "last_title", "country", "genre", "age_limits",
	"start_date", "release_date", "rating", "trailer", "cover", "studio",
}

var insertColumns = append(append([]string{}, seriesColumns...), "title_fold")

// foldTitle case-folds s so titles in any script compare case-insensitively
func foldTitle(s string) string {
	return cases.Fold().String(s)
}

// InsertMany inserts all series in one transaction
func (db *SQLiteDB) InsertMany(ctx context.Context, series []domain.Series) (int, error) {
	tx, err := db.handler.BeginTx(ctx, nil)
	if err != nil {
		return 0, errors.Wrap(err, "failed to begin transaction")
	}
	defer tx.Rollback()

	for i, s := range series {
		id := s.ID
		if id.IsZero() {
			id = bson.NewObjectID()
		}

		var startDate sql.NullString
		if s.StartDate != nil {
			startDate = sql.NullString{String: s.StartDate.UTC().Format(time.RFC3339), Valid: true}
		}

		query, args, err := db.squirrel.
			Insert(db.table).
			Columns(insertColumns...).
			Values(
				id.Hex(), s.Title, nullString(s.LastTitle), s.Country, s.Genre, s.AgeLimits,
				startDate, s.ReleaseDate.UTC().Format(time.RFC3339), s.Rating,
				nullString(s.Trailer), nullString(s.Cover), s.Studio, foldTitle(s.Title),
			).
			ToSql()
		if err != nil {
			return 0, errors.Wrap(err, "error building query")
		}

		db.log.Trace().Str("query", query).Interface("args", args).Msg("InsertMany")

		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return 0, errors.Wrapf(err, "error inserting series #%d", i)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, errors.Wrap(err, "failed to commit transaction")
	}

	return len(series), nil
}

// FindByTitle returns series whose title contains substring, ignoring case
func (db *SQLiteDB) FindByTitle(ctx context.Context, substring string) ([]domain.Series, error) {
	queryBuilder := db.squirrel.
		Select(seriesColumns...).
		From(db.table).
		Where(sq.Expr("instr(title_fold, ?) > 0", foldTitle(substring)))

	return db.query(ctx, "FindByTitle", queryBuilder)
}

// FindAll returns every series
func (db *SQLiteDB) FindAll(ctx context.Context) ([]domain.Series, error) {
	queryBuilder := db.squirrel.
		Select(seriesColumns...).
		From(db.table)

	return db.query(ctx, "FindAll", queryBuilder)
}

// FindByID returns the series with id or domain.ErrNotFound
func (db *SQLiteDB) FindByID(ctx context.Context, id bson.ObjectID) (*domain.Series, error) {
	query, args, err := db.squirrel.
		Select(seriesColumns...).
		From(db.table).
		Where(sq.Eq{"id": id.Hex()}).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "error building query")
	}

	db.log.Trace().Str("query", query).Interface("args", args).Msg("FindByID")

	s, err := scanSeries(db.handler.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, errors.Wrap(err, "error scanning row")
	}

	return s, nil
}

// DeleteByID deletes the series with id and reports how many rows went away
func (db *SQLiteDB) DeleteByID(ctx context.Context, id bson.ObjectID) (int64, error) {
	query, args, err := db.squirrel.
		Delete(db.table).
		Where(sq.Eq{"id": id.Hex()}).
		ToSql()
	if err != nil {
		return 0, errors.Wrap(err, "error building delete query")
	}

	db.log.Trace().Str("query", query).Interface("args", args).Msg("DeleteByID")

	res, err := db.handler.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, errors.Wrap(err, "error executing delete query")
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, errors.Wrap(err, "error reading rows affected")
	}

	return n, nil
}

func (db *SQLiteDB) query(ctx context.Context, name string, queryBuilder sq.SelectBuilder) ([]domain.Series, error) {
	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "error building query")
	}

	db.log.Trace().Str("query", query).Interface("args", args).Msg(name)

	rows, err := db.handler.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "error executing query")
	}
	defer rows.Close()

	result := []domain.Series{}
	for rows.Next() {
		s, err := scanSeries(rows)
		if err != nil {
			return nil, errors.Wrap(err, "error scanning row")
		}
		result = append(result, *s)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "error iterating rows")
	}

	return result, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSeries(row rowScanner) (*domain.Series, error) {
	var (
		s                         domain.Series
		id, releaseDate           string
		lastTitle, trailer, cover sql.NullString
		startDate                 sql.NullString
	)

	if err := row.Scan(&id, &s.Title, &lastTitle, &s.Country, &s.Genre, &s.AgeLimits,
		&startDate, &releaseDate, &s.Rating, &trailer, &cover, &s.Studio); err != nil {
		return nil, err
	}

	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid id %q", id)
	}
	s.ID = oid

	s.ReleaseDate, err = time.Parse(time.RFC3339, releaseDate)
	if err != nil {
		return nil, errors.Wrap(err, "invalid release_date")
	}

	if startDate.Valid {
		t, err := time.Parse(time.RFC3339, startDate.String)
		if err != nil {
			return nil, errors.Wrap(err, "invalid start_date")
		}
		s.StartDate = &t
	}

	s.LastTitle = lastTitle.String
	s.Trailer = trailer.String
	s.Cover = cover.String

	return &s, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
