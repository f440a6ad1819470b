package gomoku

import "github.com/rocketscienceinc/gomoku-backend/internal/entity"

// Position is a (row, col) pair on the board.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Line is a run of WinLength positions.
type Line [WinLength]Position

// direction is a scan: the start ranges and the step from one cell to the next.
type direction struct {
	rowStart func(rows int) int
	rowEnd   func(rows int) int
	colEnd   func(cols int) int
	dRow     int
	dCol     int
}

// scan order: horizontal, vertical, right diagonal (up-right), left diagonal (down-right).
var directions = []direction{
	{
		rowStart: func(int) int { return 0 },
		rowEnd:   func(rows int) int { return rows },
		colEnd:   func(cols int) int { return cols - WinLength + 1 },
		dRow:     0,
		dCol:     1,
	},
	{
		rowStart: func(int) int { return 0 },
		rowEnd:   func(rows int) int { return rows - WinLength + 1 },
		colEnd:   func(cols int) int { return cols },
		dRow:     1,
		dCol:     0,
	},
	{
		rowStart: func(int) int { return WinLength - 1 },
		rowEnd:   func(rows int) int { return rows },
		colEnd:   func(cols int) int { return cols - WinLength + 1 },
		dRow:     -1,
		dCol:     1,
	},
	{
		rowStart: func(int) int { return 0 },
		rowEnd:   func(rows int) int { return rows - WinLength + 1 },
		colEnd:   func(cols int) int { return cols - WinLength + 1 },
		dRow:     1,
		dCol:     1,
	},
}

// Evaluator detects five in a row on grids of a fixed size.
type Evaluator struct {
	rows int
	cols int
}

func NewEvaluator(settings Settings) *Evaluator {
	return &Evaluator{
		rows: settings.Rows,
		cols: settings.Cols,
	}
}

// IsWon reports whether piece has five consecutive cells in any direction.
func (that *Evaluator) IsWon(grid Grid, piece entity.Cell) bool {
	_, ok := that.WinningLine(grid, piece)
	return ok
}

// WinningLine returns the first run found in scan order.
func (that *Evaluator) WinningLine(grid Grid, piece entity.Cell) (Line, bool) {
	if !piece.IsPiece() {
		return Line{}, false
	}

	for _, dir := range directions {
		if line, ok := that.scan(grid, piece, dir); ok {
			return line, true
		}
	}

	return Line{}, false
}

func (that *Evaluator) scan(grid Grid, piece entity.Cell, dir direction) (Line, bool) {
	for col := 0; col < dir.colEnd(that.cols); col++ {
		for row := dir.rowStart(that.rows); row < dir.rowEnd(that.rows); row++ {
			if line, ok := that.runFrom(grid, piece, row, col, dir); ok {
				return line, true
			}
		}
	}

	return Line{}, false
}

func (that *Evaluator) runFrom(grid Grid, piece entity.Cell, row, col int, dir direction) (Line, bool) {
	var line Line
	for i := range line {
		r, c := row+i*dir.dRow, col+i*dir.dCol
		if grid.Cell(r, c) != piece {
			return Line{}, false
		}

		line[i] = Position{Row: r, Col: c}
	}

	return line, true
}
