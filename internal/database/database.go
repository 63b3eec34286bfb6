package database

import (
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/varoOP/tvseriesdb/internal/domain"
)

// NewConnector returns the connector for the configured storage driver
func NewConnector(cfg *domain.Config, log zerolog.Logger) (domain.Connector, error) {
	switch cfg.Driver {
	case domain.DriverMongo:
		return NewMongoConnector(log, cfg.MongoURI, cfg.Database, cfg.Collection, cfg.ConnectTimeout), nil
	case domain.DriverSQLite:
		return NewSQLiteConnector(log, cfg.SQLitePath, cfg.Collection), nil
	default:
		return nil, errors.Errorf("unsupported storage driver: %s", cfg.Driver)
	}
}
