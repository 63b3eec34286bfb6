package domain

import "time"

// StorageDriver selects the database backing the catalog
type StorageDriver string

const (
	// DriverMongo - MongoDB collection with $jsonSchema validation (default)
	DriverMongo StorageDriver = "mongodb"
	// DriverSQLite - local single-file SQLite database
	DriverSQLite StorageDriver = "sqlite"
)

type Config struct {
	Driver            StorageDriver `mapstructure:"driver"`
	MongoURI          string        `mapstructure:"mongo_uri"`
	Database          string        `mapstructure:"database"`
	Collection        string        `mapstructure:"collection"`
	SQLitePath        string        `mapstructure:"sqlite_path"`
	ConnectTimeout    time.Duration `mapstructure:"connect_timeout"`
	ImportFile        string        `mapstructure:"import_file"`
	HistoryFile       string        `mapstructure:"history_file"`
	LogLevel          string        `mapstructure:"log_level"`
	DiscordWebhookURL string        `mapstructure:"discord_webhook_url"`
}
