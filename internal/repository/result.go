package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
)

const defaultResultsLimit = 20

type ResultRepository interface {
	Save(ctx context.Context, result *entity.Result) error
	ListRecent(ctx context.Context, limit int) ([]entity.Result, error)
}

type resultRepository struct {
	conn *sql.DB
}

func NewResultRepository(conn *sql.DB) ResultRepository {
	return &resultRepository{
		conn: conn,
	}
}

func (that *resultRepository) Save(ctx context.Context, result *entity.Result) error {
	query := `INSERT INTO results (id, game_id, winner, piece, moves, board_rows, board_cols, finished_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := that.conn.ExecContext(ctx, query,
		result.ID,
		result.GameID,
		result.Winner,
		result.Piece.String(),
		result.Moves,
		result.Rows,
		result.Cols,
		result.FinishedAt,
	)
	if err != nil {
		return fmt.Errorf("can't save result: %w", err)
	}

	return nil
}

func (that *resultRepository) ListRecent(ctx context.Context, limit int) ([]entity.Result, error) {
	if limit <= 0 {
		limit = defaultResultsLimit
	}

	query := `SELECT id, game_id, winner, piece, moves, board_rows, board_cols, finished_at
		FROM results ORDER BY finished_at DESC LIMIT $1`

	rows, err := that.conn.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("can't list results: %w", err)
	}
	defer rows.Close()

	results := make([]entity.Result, 0, limit)
	for rows.Next() {
		var (
			result entity.Result
			piece  string
		)

		if err = rows.Scan(
			&result.ID,
			&result.GameID,
			&result.Winner,
			&piece,
			&result.Moves,
			&result.Rows,
			&result.Cols,
			&result.FinishedAt,
		); err != nil {
			return nil, fmt.Errorf("can't scan result: %w", err)
		}

		if err = result.Piece.UnmarshalText([]byte(piece)); err != nil {
			return nil, fmt.Errorf("can't decode piece: %w", err)
		}

		results = append(results, result)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("can't iterate results: %w", err)
	}

	return results, nil
}
