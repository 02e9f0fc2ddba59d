// Package flightdb stores historical flight records in SQLite. It is the
// relational source the batch feature-preparation path reads from.
package flightdb

import "delaycast.arrivals.org/internal/appconf"

// Config holds configuration options for the Client
type Config struct {
	DBPath  string // Path to SQLite database file
	Env     appconf.Environment
	verbose bool // Verbose logging
}

func NewConfig(dbPath string, env appconf.Environment, verbose bool) Config {
	return Config{
		DBPath:  dbPath,
		Env:     env,
		verbose: verbose,
	}
}
