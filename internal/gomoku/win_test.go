package gomoku

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
)

func boardWith(t *testing.T, settings Settings, piece entity.Cell, positions ...Position) *Board {
	t.Helper()

	board := NewBoard(settings)
	for _, pos := range positions {
		require.NoError(t, board.PlacePiece(pos.Row, pos.Col, piece))
	}

	return board
}

func TestEvaluator_IsWon(t *testing.T) {
	evaluator := NewEvaluator(DefaultSettings())

	t.Run("Horizontal win", func(t *testing.T) {
		// Given: black at (0,0)..(0,4)
		board := boardWith(t, DefaultSettings(), entity.Black,
			Position{0, 0}, Position{0, 1}, Position{0, 2}, Position{0, 3}, Position{0, 4})

		// Then: black wins and white does not
		assert.True(t, evaluator.IsWon(board, entity.Black))
		assert.False(t, evaluator.IsWon(board, entity.White))
	})

	t.Run("Vertical win", func(t *testing.T) {
		// Given: white at (0,3)..(4,3)
		board := boardWith(t, DefaultSettings(), entity.White,
			Position{0, 3}, Position{1, 3}, Position{2, 3}, Position{3, 3}, Position{4, 3})

		// Then: white wins
		assert.True(t, evaluator.IsWon(board, entity.White))
		assert.False(t, evaluator.IsWon(board, entity.Black))
	})

	t.Run("Right diagonal win", func(t *testing.T) {
		// Given: black going up-right from (4,0)
		board := boardWith(t, DefaultSettings(), entity.Black,
			Position{4, 0}, Position{3, 1}, Position{2, 2}, Position{1, 3}, Position{0, 4})

		// Then: black wins
		assert.True(t, evaluator.IsWon(board, entity.Black))
	})

	t.Run("Left diagonal win", func(t *testing.T) {
		// Given: white going down-right from (0,0)
		board := boardWith(t, DefaultSettings(), entity.White,
			Position{0, 0}, Position{1, 1}, Position{2, 2}, Position{3, 3}, Position{4, 4})

		// Then: white wins
		assert.True(t, evaluator.IsWon(board, entity.White))
	})

	t.Run("Runs touching the far edges", func(t *testing.T) {
		horizontal := boardWith(t, DefaultSettings(), entity.Black,
			Position{14, 10}, Position{14, 11}, Position{14, 12}, Position{14, 13}, Position{14, 14})
		vertical := boardWith(t, DefaultSettings(), entity.Black,
			Position{10, 14}, Position{11, 14}, Position{12, 14}, Position{13, 14}, Position{14, 14})
		rightDiagonal := boardWith(t, DefaultSettings(), entity.Black,
			Position{14, 10}, Position{13, 11}, Position{12, 12}, Position{11, 13}, Position{10, 14})
		leftDiagonal := boardWith(t, DefaultSettings(), entity.Black,
			Position{10, 10}, Position{11, 11}, Position{12, 12}, Position{13, 13}, Position{14, 14})

		for _, board := range []*Board{horizontal, vertical, rightDiagonal, leftDiagonal} {
			assert.True(t, evaluator.IsWon(board, entity.Black))
		}
	})

	t.Run("No false positive on an empty board", func(t *testing.T) {
		board := NewBoard(DefaultSettings())

		assert.False(t, evaluator.IsWon(board, entity.Black))
		assert.False(t, evaluator.IsWon(board, entity.White))
	})

	t.Run("No false positive on four in a row", func(t *testing.T) {
		// Given: four black pieces in every direction
		boards := []*Board{
			boardWith(t, DefaultSettings(), entity.Black, Position{0, 0}, Position{0, 1}, Position{0, 2}, Position{0, 3}),
			boardWith(t, DefaultSettings(), entity.Black, Position{0, 0}, Position{1, 0}, Position{2, 0}, Position{3, 0}),
			boardWith(t, DefaultSettings(), entity.Black, Position{4, 0}, Position{3, 1}, Position{2, 2}, Position{1, 3}),
			boardWith(t, DefaultSettings(), entity.Black, Position{0, 0}, Position{1, 1}, Position{2, 2}, Position{3, 3}),
		}

		// Then: nobody wins
		for _, board := range boards {
			assert.False(t, evaluator.IsWon(board, entity.Black))
			assert.False(t, evaluator.IsWon(board, entity.White))
		}
	})

	t.Run("Broken run does not win", func(t *testing.T) {
		// Given: five black cells with a white one in the middle of the run
		board := boardWith(t, DefaultSettings(), entity.Black,
			Position{2, 0}, Position{2, 1}, Position{2, 3}, Position{2, 4}, Position{2, 5})
		require.NoError(t, board.PlacePiece(2, 2, entity.White))

		assert.False(t, evaluator.IsWon(board, entity.Black))
	})

	t.Run("Blocked and empty never win", func(t *testing.T) {
		// Given: a frozen board full of blocked cells
		board := NewBoard(DefaultSettings())
		board.InvalidateRemaining()

		assert.False(t, evaluator.IsWon(board, entity.Blocked))
		assert.False(t, evaluator.IsWon(board, entity.Empty))
	})

	t.Run("Grid smaller than five never wins", func(t *testing.T) {
		small := Settings{Rows: 4, Cols: 4}
		board := boardWith(t, small, entity.Black, Position{0, 0}, Position{0, 1}, Position{0, 2}, Position{0, 3})

		assert.False(t, NewEvaluator(small).IsWon(board, entity.Black))
	})
}

func TestEvaluator_WinningLine(t *testing.T) {
	// Given: white on the down-right diagonal starting at (2,3)
	board := boardWith(t, DefaultSettings(), entity.White,
		Position{2, 3}, Position{3, 4}, Position{4, 5}, Position{5, 6}, Position{6, 7})

	// When: asking for the winning line
	line, ok := NewEvaluator(DefaultSettings()).WinningLine(board, entity.White)

	// Then: the five positions are returned in order
	require.True(t, ok)
	assert.Equal(t, Line{{2, 3}, {3, 4}, {4, 5}, {5, 6}, {6, 7}}, line)
}
