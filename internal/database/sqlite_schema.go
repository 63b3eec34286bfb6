package database

import "fmt"

const seriesSchemaTemplate = `
CREATE TABLE %[1]s (
	id TEXT PRIMARY KEY,
	title TEXT NOT NULL CHECK (typeof(title) = 'text'),
	title_fold TEXT NOT NULL,
	last_title TEXT CHECK (last_title IS NULL OR typeof(last_title) = 'text'),
	country TEXT NOT NULL CHECK (typeof(country) = 'text'),
	genre TEXT NOT NULL CHECK (typeof(genre) = 'text'),
	age_limits INTEGER NOT NULL CHECK (typeof(age_limits) = 'integer'),
	start_date TEXT,
	release_date TEXT NOT NULL,
	rating REAL NOT NULL CHECK (typeof(rating) = 'real'),
	trailer TEXT,
	cover TEXT,
	studio INTEGER NOT NULL CHECK (typeof(studio) = 'integer'),
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX idx_%[1]s_title_fold ON %[1]s(title_fold);
CREATE INDEX idx_%[1]s_release_date ON %[1]s(release_date ASC);
CREATE INDEX idx_%[1]s_rating ON %[1]s(rating DESC);
`

// schemaVersion is stored in user_version when the table is created
const schemaVersion = 1

var schemaVersionPragma = fmt.Sprintf("PRAGMA user_version = %d", schemaVersion)

// seriesSchema renders the table definition for table, which config validation restricts to a plain identifier
func seriesSchema(table string) string {
	return fmt.Sprintf(seriesSchemaTemplate, table)
}
