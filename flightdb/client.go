package flightdb

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Client is the main entry point for the library
type Client struct {
	config  Config
	DB      *sql.DB
	Queries *Queries
}

// NewClient creates a new Client with the provided configuration
func NewClient(config Config) (*Client, error) {
	db, err := InitDB(config)
	if err != nil {
		return nil, fmt.Errorf("unable to create flights DB: %w", err)
	}

	return &Client{
		config:  config,
		DB:      db,
		Queries: New(db),
	}, nil
}

func (c *Client) Close() error {
	return c.DB.Close()
}
