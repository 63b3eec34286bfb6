package config

import (
	"fmt"
	"regexp"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	"github.com/varoOP/tvseriesdb/internal/domain"
)

const (
	DefaultDriver         = string(domain.DriverMongo)
	DefaultMongoURI       = "mongodb://localhost:27017"
	DefaultDatabase       = "tvseriesdb"
	DefaultCollection     = "tvseries"
	DefaultSQLitePath     = "tvseriesdb.db"
	DefaultImportFile     = "tvseries.json"
	DefaultConnectTimeout = 30 * time.Second
	DefaultLogLevel       = "info"
)

var identifier = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// SetDefaults registers the default value of every config key
func SetDefaults(v *viper.Viper) {
	v.SetDefault("driver", DefaultDriver)
	v.SetDefault("mongo_uri", DefaultMongoURI)
	v.SetDefault("database", DefaultDatabase)
	v.SetDefault("collection", DefaultCollection)
	v.SetDefault("sqlite_path", DefaultSQLitePath)
	v.SetDefault("connect_timeout", DefaultConnectTimeout)
	v.SetDefault("import_file", DefaultImportFile)
	v.SetDefault("log_level", DefaultLogLevel)
}

// Load loads configuration from multiple sources:
// 1. Config file (config.yaml, optional)
// 2. Environment variables (TVSERIESDB_*)
// 3. Command line flags bound in cmd/tvseriesdb
func Load() (*domain.Config, error) {
	return LoadFrom(viper.GetViper())
}

// LoadFrom builds and validates the configuration held by v
func LoadFrom(v *viper.Viper) (*domain.Config, error) {
	cfg := &domain.Config{
		Driver:            domain.StorageDriver(v.GetString("driver")),
		MongoURI:          v.GetString("mongo_uri"),
		Database:          v.GetString("database"),
		Collection:        v.GetString("collection"),
		SQLitePath:        v.GetString("sqlite_path"),
		ConnectTimeout:    v.GetDuration("connect_timeout"),
		ImportFile:        v.GetString("import_file"),
		HistoryFile:       v.GetString("history_file"),
		LogLevel:          v.GetString("log_level"),
		DiscordWebhookURL: v.GetString("discord_webhook_url"),
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the values that cannot be fixed up with a default
func Validate(cfg *domain.Config) error {
	switch cfg.Driver {
	case domain.DriverMongo:
		if cfg.MongoURI == "" {
			return fmt.Errorf("mongo_uri is required (set via config.yaml or TVSERIESDB_MONGO_URI environment variable)")
		}
		if cfg.Database == "" {
			return fmt.Errorf("database is required when driver is %q", cfg.Driver)
		}
	case domain.DriverSQLite:
		if cfg.SQLitePath == "" {
			return fmt.Errorf("sqlite_path is required (set via config.yaml or TVSERIESDB_SQLITE_PATH environment variable)")
		}
		if !identifier.MatchString(cfg.Collection) {
			return fmt.Errorf("invalid collection: %q (must be a plain identifier when driver is sqlite)", cfg.Collection)
		}
	default:
		return fmt.Errorf("invalid driver: %s (must be 'mongodb' or 'sqlite')", cfg.Driver)
	}

	if cfg.Collection == "" {
		return fmt.Errorf("collection is required")
	}
	if cfg.ImportFile == "" {
		return fmt.Errorf("import_file is required")
	}
	if cfg.ConnectTimeout < 0 {
		return fmt.Errorf("invalid connect_timeout: %s", cfg.ConnectTimeout)
	}
	if _, err := zerolog.ParseLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("invalid log_level: %q", cfg.LogLevel)
	}

	return nil
}
