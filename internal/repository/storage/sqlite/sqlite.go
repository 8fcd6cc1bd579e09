package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	// import the SQLite driver to register it with the database/sql package.
	_ "github.com/mattn/go-sqlite3"
)

type Storage struct {
	Connection *sql.DB
}

func New(path string) (*Storage, error) {
	conn, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("can't open database: %w", err)
	}

	if err = conn.Ping(); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("can't connect to database: %w", err)
	}

	return &Storage{Connection: conn}, nil
}

// Init creates the tables used by the repositories.
func (that *Storage) Init(ctx context.Context) error {
	query := `
	CREATE TABLE IF NOT EXISTS results (
		round_id    TEXT PRIMARY KEY,
		player_x    TEXT NOT NULL,
		player_o    TEXT NOT NULL,
		winner      TEXT NOT NULL DEFAULT '',
		moves       INTEGER NOT NULL,
		finished_at TIMESTAMP NOT NULL
	)`

	if _, err := that.Connection.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("can't create table: %w", err)
	}

	return nil
}

func (that *Storage) Close() error {
	return that.Connection.Close()
}
