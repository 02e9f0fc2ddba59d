package flightdb

import (
	"database/sql"
	"fmt"

	"delaycast.arrivals.org/internal/appconf"
)

// InitDB creates a new SQLite database with the flights table
func InitDB(config Config) (*sql.DB, error) {
	if config.Env == appconf.Test && config.DBPath != ":memory:" {
		return nil, fmt.Errorf("test database must be in-memory, got %s", config.DBPath)
	}

	db, err := sql.Open("sqlite", config.DBPath)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return nil, fmt.Errorf("error starting transaction: %w", err)
	}

	_, err = tx.Exec(`
		CREATE TABLE IF NOT EXISTS flights (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			year INTEGER NOT NULL,
			month INTEGER NOT NULL,
			day_of_month INTEGER NOT NULL,
			day_of_week INTEGER NOT NULL,
			dep_time INTEGER,
			arr_time INTEGER,
			arr_delay REAL,
			cancelled INTEGER NOT NULL DEFAULT 0,
			origin TEXT NOT NULL,
			dest TEXT NOT NULL,
			carrier TEXT NOT NULL,
			distance REAL
		);
	`)
	if err != nil {
		tx.Rollback() // nolint:errcheck
		return nil, fmt.Errorf("error creating flights table: %w", err)
	}

	_, err = tx.Exec(`
		CREATE INDEX IF NOT EXISTS idx_flights_origin ON flights(origin);
		CREATE INDEX IF NOT EXISTS idx_flights_carrier ON flights(carrier);
	`)
	if err != nil {
		tx.Rollback() // nolint:errcheck
		return nil, fmt.Errorf("error creating indexes: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("error committing transaction: %w", err)
	}

	return db, nil
}
