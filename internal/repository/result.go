package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-core/internal/entity"
)

const DefaultResultsLimit = 10

type ResultRepository interface {
	Save(ctx context.Context, result *entity.Result) error
	ListRecent(ctx context.Context, limit int) ([]entity.Result, error)
}

type resultRepository struct {
	conn *sql.DB
}

// NewResultRepository expects the results table created by sqlite.Storage.Init.
func NewResultRepository(conn *sql.DB) ResultRepository {
	return &resultRepository{
		conn: conn,
	}
}

func (that *resultRepository) Save(ctx context.Context, result *entity.Result) error {
	query := `
	INSERT OR REPLACE INTO results (round_id, player_x, player_o, winner, moves, finished_at)
	VALUES (?, ?, ?, ?, ?, ?)`

	_, err := that.conn.ExecContext(ctx, query,
		result.RoundID, result.PlayerX, result.PlayerO, result.Winner, result.Moves, result.FinishedAt.UTC())
	if err != nil {
		return fmt.Errorf("can't save result: %w", err)
	}

	return nil
}

// ListRecent returns the latest results, newest first.
func (that *resultRepository) ListRecent(ctx context.Context, limit int) ([]entity.Result, error) {
	if limit <= 0 {
		limit = DefaultResultsLimit
	}

	query := `
	SELECT round_id, player_x, player_o, winner, moves, finished_at
	FROM results
	ORDER BY finished_at DESC, rowid DESC
	LIMIT ?`

	rows, err := that.conn.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("can't list results: %w", err)
	}
	defer rows.Close()

	results := make([]entity.Result, 0, limit)
	for rows.Next() {
		var result entity.Result
		if err = rows.Scan(&result.RoundID, &result.PlayerX, &result.PlayerO,
			&result.Winner, &result.Moves, &result.FinishedAt); err != nil {
			return nil, fmt.Errorf("can't scan result: %w", err)
		}

		results = append(results, result)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("can't read results: %w", err)
	}

	return results, nil
}
