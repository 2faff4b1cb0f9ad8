// Package titanicdb mirrors the parsed passenger manifest into SQLite and
// serves the keyed and paged lookups for the REST layer.
package titanicdb

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"log"
	"strings"

	"steerage.maritimedata.org/internal/appconf"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

//go:embed schema.sql
var ddl string

// Client is the main entry point for the storage layer
type Client struct {
	config  Config
	DB      *sql.DB
	Queries *Queries
}

// NewClient creates a new Client with the provided configuration
func NewClient(config Config) (*Client, error) {
	db, err := createDB(config)
	if err != nil {
		return nil, fmt.Errorf("unable to create passengers database: %w", err)
	}

	if config.verbose {
		log.Println("Successfully created tables")
	}

	client := &Client{
		config:  config,
		DB:      db,
		Queries: New(db),
	}
	return client, nil
}

func (c *Client) Close() error {
	return c.DB.Close()
}

// createDB creates a new SQLite database with the passengers table
func createDB(config Config) (*sql.DB, error) {
	if config.Env == appconf.Test && config.DBPath != ":memory:" {
		log.Fatal("DB is being created in a file.", config.DBPath)
	}

	db, err := sql.Open("sqlite", config.DBPath)
	if err != nil {
		return nil, err
	}

	ctx := context.Background()
	err = performDatabaseMigration(ctx, db)
	if err != nil {
		return nil, fmt.Errorf("error performing database migration: %w", err)
	}

	return db, nil
}

func performDatabaseMigration(ctx context.Context, db *sql.DB) error {
	statements := strings.Split(ddl, "-- migrate") // Split DDL into individual statements
	for _, stmt := range statements {
		trimmedStmt := strings.TrimSpace(stmt)
		if trimmedStmt == "" {
			continue // Skip empty statements
		}
		if _, err := db.ExecContext(ctx, trimmedStmt); err != nil {
			return fmt.Errorf("error executing DDL statement [%s]: %w", trimmedStmt, err)
		}
	}
	return nil
}
