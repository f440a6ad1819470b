package gomoku

import (
	"fmt"

	"github.com/rocketscienceinc/gomoku-backend/internal/apperror"
	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
)

// Grid is read access to a fixed-size grid of cells.
type Grid interface {
	Rows() int
	Cols() int
	Cell(row, col int) entity.Cell
}

// Board owns the grid of a single game.
type Board struct {
	rows   int
	cols   int
	cells  [][]entity.Cell
	frozen bool
}

func NewBoard(settings Settings) *Board {
	cells := make([][]entity.Cell, settings.Rows)
	for row := range cells {
		cells[row] = make([]entity.Cell, settings.Cols)
	}

	return &Board{
		rows:  settings.Rows,
		cols:  settings.Cols,
		cells: cells,
	}
}

func (that *Board) Rows() int {
	return that.rows
}

func (that *Board) Cols() int {
	return that.cols
}

func (that *Board) InBounds(row, col int) bool {
	return row >= 0 && row < that.rows && col >= 0 && col < that.cols
}

// Cell returns the state at (row, col); out of bounds reads as Blocked.
func (that *Board) Cell(row, col int) entity.Cell {
	if !that.InBounds(row, col) {
		return entity.Blocked
	}

	return that.cells[row][col]
}

// Cells returns a copy of the grid.
func (that *Board) Cells() [][]entity.Cell {
	cells := make([][]entity.Cell, that.rows)
	for row := range that.cells {
		cells[row] = append([]entity.Cell(nil), that.cells[row]...)
	}

	return cells
}

func (that *Board) IsFrozen() bool {
	return that.frozen
}

func (that *Board) IsValidLocation(row, col int) bool {
	return !that.frozen && that.InBounds(row, col) && that.cells[row][col] == entity.Empty
}

func (that *Board) PlacePiece(row, col int, piece entity.Cell) error {
	if !piece.IsPiece() {
		return fmt.Errorf("%w: %s", apperror.ErrInvalidPiece, piece)
	}

	if !that.InBounds(row, col) {
		return fmt.Errorf("%w: (%d, %d)", apperror.ErrOutOfBounds, row, col)
	}

	if that.frozen {
		return apperror.ErrBoardFrozen
	}

	if that.cells[row][col] != entity.Empty {
		return fmt.Errorf("%w: (%d, %d)", apperror.ErrCellOccupied, row, col)
	}

	that.cells[row][col] = piece

	return nil
}

// ClearBoard resets every cell to Empty and unfreezes the board.
func (that *Board) ClearBoard() {
	for row := range that.cells {
		for col := range that.cells[row] {
			that.cells[row][col] = entity.Empty
		}
	}

	that.frozen = false
}

// InvalidateRemaining freezes the board: empty cells become Blocked, placed pieces stay.
func (that *Board) InvalidateRemaining() {
	for row := range that.cells {
		for col := range that.cells[row] {
			if that.cells[row][col] == entity.Empty {
				that.cells[row][col] = entity.Blocked
			}
		}
	}

	that.frozen = true
}

func (that *Board) IsFull() bool {
	for row := range that.cells {
		for _, cell := range that.cells[row] {
			if cell == entity.Empty {
				return false
			}
		}
	}

	return true
}

// Occupied counts the cells holding a piece.
func (that *Board) Occupied() int {
	count := 0
	for row := range that.cells {
		for _, cell := range that.cells[row] {
			if cell.IsPiece() {
				count++
			}
		}
	}

	return count
}
