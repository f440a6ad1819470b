package service

import (
	"errors"
	"math/rand"

	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
	"github.com/rocketscienceinc/gomoku-backend/internal/gomoku"
)

var (
	ErrNoAvailableMoves = errors.New("no available moves")
	ErrGameNotOngoing   = errors.New("game is not ongoing")
)

type BotService interface {
	ChooseMove(game *gomoku.Game) (gomoku.Position, error)
}

type botService struct {
	rand *rand.Rand
}

func NewBotService(source rand.Source) BotService {
	return &botService{
		rand: rand.New(source), //nolint: gosec // it's ok
	}
}

// ChooseMove takes a winning cell, otherwise blocks the opponent's win,
// otherwise picks a random empty cell next to an existing piece.
func (that *botService) ChooseMove(game *gomoku.Game) (gomoku.Position, error) {
	if game.IsOver() {
		return gomoku.Position{}, ErrGameNotOngoing
	}

	board := game.Board()
	evaluator := gomoku.NewEvaluator(game.Settings())
	piece := game.Turn()

	available := availableCells(board)
	if len(available) == 0 {
		return gomoku.Position{}, ErrNoAvailableMoves
	}

	for _, candidate := range []entity.Cell{piece, piece.Opponent()} {
		for _, pos := range available {
			if evaluator.IsWon(withPiece{Grid: board, pos: pos, piece: candidate}, candidate) {
				return pos, nil
			}
		}
	}

	if board.Occupied() == 0 {
		return gomoku.Position{Row: board.Rows() / 2, Col: board.Cols() / 2}, nil
	}

	near := make([]gomoku.Position, 0, len(available))
	for _, pos := range available {
		if hasNeighbour(board, pos) {
			near = append(near, pos)
		}
	}

	if len(near) == 0 {
		near = available
	}

	return near[that.rand.Intn(len(near))], nil
}

func availableCells(board *gomoku.Board) []gomoku.Position {
	cells := make([]gomoku.Position, 0, board.Rows()*board.Cols())
	for row := 0; row < board.Rows(); row++ {
		for col := 0; col < board.Cols(); col++ {
			if board.IsValidLocation(row, col) {
				cells = append(cells, gomoku.Position{Row: row, Col: col})
			}
		}
	}

	return cells
}

func hasNeighbour(board *gomoku.Board, pos gomoku.Position) bool {
	for dRow := -1; dRow <= 1; dRow++ {
		for dCol := -1; dCol <= 1; dCol++ {
			if (dRow != 0 || dCol != 0) && board.Cell(pos.Row+dRow, pos.Col+dCol).IsPiece() {
				return true
			}
		}
	}

	return false
}

// withPiece is a grid with one extra piece, used to try a move without placing it.
type withPiece struct {
	gomoku.Grid
	pos   gomoku.Position
	piece entity.Cell
}

func (that withPiece) Cell(row, col int) entity.Cell {
	if row == that.pos.Row && col == that.pos.Col {
		return that.piece
	}

	return that.Grid.Cell(row, col)
}
