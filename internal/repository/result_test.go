package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
)

var errConnDone = errors.New("connection is already closed")

var resultColumns = []string{"id", "game_id", "winner", "piece", "moves", "board_rows", "board_cols", "finished_at"}

func newResultRepo(t *testing.T) (ResultRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	t.Cleanup(func() {
		db.Close()
	})

	return NewResultRepository(db), mock
}

func TestResultRepository_Save(t *testing.T) {
	ctx := context.Background()
	finishedAt := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

	result := &entity.Result{
		ID:         "7f1b7a52-6a0b-4c39-9f0e-0f1f5e2a9a10",
		GameID:     "game-1",
		Winner:     "Black",
		Piece:      entity.Black,
		Moves:      9,
		Rows:       15,
		Cols:       15,
		FinishedAt: finishedAt,
	}

	t.Run("Inserts the result", func(t *testing.T) {
		repo, mock := newResultRepo(t)

		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO results")).
			WithArgs(result.ID, "game-1", "Black", "black", 9, 15, 15, finishedAt).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Save(ctx, result)

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Wraps database errors", func(t *testing.T) {
		repo, mock := newResultRepo(t)

		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO results")).WillReturnError(errConnDone)

		err := repo.Save(ctx, result)

		require.ErrorIs(t, err, errConnDone)
		assert.Contains(t, err.Error(), "can't save result")
	})
}

func TestResultRepository_ListRecent(t *testing.T) {
	ctx := context.Background()
	finishedAt := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

	t.Run("Returns decoded rows", func(t *testing.T) {
		repo, mock := newResultRepo(t)

		rows := sqlmock.NewRows(resultColumns).
			AddRow("r1", "g1", "White", "white", 10, 15, 15, finishedAt).
			AddRow("r2", "g2", entity.PlayerTie, "empty", 225, 15, 15, finishedAt.Add(-time.Hour))

		mock.ExpectQuery(regexp.QuoteMeta("SELECT id, game_id")).WithArgs(5).WillReturnRows(rows)

		results, err := repo.ListRecent(ctx, 5)

		require.NoError(t, err)
		require.Len(t, results, 2)
		assert.Equal(t, entity.White, results[0].Piece)
		assert.Equal(t, "White", results[0].Winner)
		assert.Equal(t, entity.Empty, results[1].Piece)
		assert.Equal(t, 225, results[1].Moves)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Non-positive limit falls back to the default", func(t *testing.T) {
		repo, mock := newResultRepo(t)

		mock.ExpectQuery(regexp.QuoteMeta("SELECT id, game_id")).
			WithArgs(defaultResultsLimit).
			WillReturnRows(sqlmock.NewRows(resultColumns))

		results, err := repo.ListRecent(ctx, 0)

		require.NoError(t, err)
		assert.Empty(t, results)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Unknown piece is an error", func(t *testing.T) {
		repo, mock := newResultRepo(t)

		rows := sqlmock.NewRows(resultColumns).AddRow("r1", "g1", "Red", "red", 10, 15, 15, finishedAt)
		mock.ExpectQuery(regexp.QuoteMeta("SELECT id, game_id")).WithArgs(3).WillReturnRows(rows)

		_, err := repo.ListRecent(ctx, 3)

		assert.ErrorIs(t, err, entity.ErrUnknownCell)
	})
}
