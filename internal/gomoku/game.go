package gomoku

import (
	"errors"
	"fmt"
	"time"

	"github.com/rocketscienceinc/gomoku-backend/internal/apperror"
	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
)

var (
	ErrSnapshotMismatch = errors.New("snapshot does not match board settings")
	ErrGameOngoing      = errors.New("game is still ongoing")
)

// Outcome describes an accepted placement.
type Outcome struct {
	Row   int         `json:"row"`
	Col   int         `json:"col"`
	Piece entity.Cell `json:"piece"`
	Won   bool        `json:"won"`
	Draw  bool        `json:"draw"`
	Line  Line        `json:"line"`
}

// Game ties the board, the win evaluator and the turn cycle together.
type Game struct {
	settings  Settings
	board     *Board
	evaluator *Evaluator
	turns     *TurnManager

	status string
	winner entity.Cell
	line   Line
	moves  int
}

func NewGame(settings Settings) (*Game, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	return &Game{
		settings:  settings,
		board:     NewBoard(settings),
		evaluator: NewEvaluator(settings),
		turns:     NewTurnManager(),
		status:    entity.StatusOngoing,
	}, nil
}

func (that *Game) Settings() Settings {
	return that.settings
}

func (that *Game) Board() *Board {
	return that.board
}

func (that *Game) Turn() entity.Cell {
	return that.turns.Current()
}

func (that *Game) Status() string {
	return that.status
}

func (that *Game) Winner() entity.Cell {
	return that.winner
}

// WinningLine is only meaningful once the game is won.
func (that *Game) WinningLine() (Line, bool) {
	return that.line, that.status == entity.StatusFinished
}

func (that *Game) Moves() int {
	return that.moves
}

func (that *Game) IsOver() bool {
	return that.status != entity.StatusOngoing
}

func (that *Game) WinnerName() string {
	return that.settings.PlayerName(that.winner)
}

func (that *Game) IsWon(piece entity.Cell) bool {
	return that.evaluator.IsWon(that.board, piece)
}

// Place puts the current player's piece on (row, col) and advances the game.
func (that *Game) Place(row, col int) (Outcome, error) {
	if that.IsOver() {
		return Outcome{}, apperror.ErrGameFinished
	}

	piece := that.turns.Current()
	if err := that.board.PlacePiece(row, col, piece); err != nil {
		return Outcome{}, fmt.Errorf("invalid placement: %w", err)
	}

	that.moves++
	outcome := Outcome{Row: row, Col: col, Piece: piece}

	if line, won := that.evaluator.WinningLine(that.board, piece); won {
		that.status = entity.StatusFinished
		that.winner = piece
		that.line = line
		that.board.InvalidateRemaining()

		outcome.Won = true
		outcome.Line = line

		return outcome, nil
	}

	if that.board.IsFull() {
		that.status = entity.StatusDraw
		that.board.InvalidateRemaining()

		outcome.Draw = true

		return outcome, nil
	}

	that.turns.Advance()

	return outcome, nil
}

// Restart clears the board and hands the first move back to Black.
func (that *Game) Restart() {
	that.board.ClearBoard()
	that.turns.Reset()

	that.status = entity.StatusOngoing
	that.winner = entity.Empty
	that.line = Line{}
	that.moves = 0
}

func (that *Game) Snapshot(id string) *entity.Game {
	return &entity.Game{
		ID:        id,
		Rows:      that.board.Rows(),
		Cols:      that.board.Cols(),
		Cells:     that.board.Cells(),
		Turn:      that.turns.Current(),
		Status:    that.status,
		Winner:    that.winner,
		Moves:     that.moves,
		UpdatedAt: time.Now().UTC(),
	}
}

// Restore loads a snapshot taken from a game with the same dimensions.
// The game is left untouched when the snapshot is rejected.
func (that *Game) Restore(snapshot *entity.Game) error {
	if snapshot.Rows != that.board.Rows() || snapshot.Cols != that.board.Cols() || len(snapshot.Cells) != snapshot.Rows {
		return fmt.Errorf("%w: %dx%d", ErrSnapshotMismatch, snapshot.Rows, snapshot.Cols)
	}

	if !snapshot.Turn.IsPiece() {
		return fmt.Errorf("%w: turn %s", ErrSnapshotMismatch, snapshot.Turn)
	}

	scratch := NewBoard(that.settings)

	for row, cells := range snapshot.Cells {
		if len(cells) != snapshot.Cols {
			return fmt.Errorf("%w: row length %d", ErrSnapshotMismatch, len(cells))
		}

		for col, cell := range cells {
			switch {
			case cell == entity.Blocked && snapshot.Status == entity.StatusOngoing:
				return fmt.Errorf("%w: blocked cell (%d, %d) in an ongoing game", ErrSnapshotMismatch, row, col)
			case cell > entity.Blocked:
				return fmt.Errorf("%w: cell (%d, %d): %w", ErrSnapshotMismatch, row, col, entity.ErrUnknownCell)
			}

			scratch.cells[row][col] = cell
		}
	}

	var line Line

	switch snapshot.Status {
	case entity.StatusOngoing:
	case entity.StatusFinished:
		winning, ok := that.evaluator.WinningLine(scratch, snapshot.Winner)
		if !ok {
			return fmt.Errorf("%w: no winning line for %s", ErrSnapshotMismatch, snapshot.Winner)
		}

		line = winning
	case entity.StatusDraw:
		if !scratch.IsFull() {
			return fmt.Errorf("%w: draw on a board with empty cells", ErrSnapshotMismatch)
		}
	default:
		return fmt.Errorf("%w: status %q", ErrSnapshotMismatch, snapshot.Status)
	}

	that.Restart()
	for row := range scratch.cells {
		copy(that.board.cells[row], scratch.cells[row])
	}

	that.turns.Set(snapshot.Turn)
	that.moves = snapshot.Moves
	that.status = snapshot.Status

	if snapshot.Status == entity.StatusFinished {
		that.winner = snapshot.Winner
		that.line = line
	}

	if snapshot.Status != entity.StatusOngoing {
		that.board.InvalidateRemaining()
	}

	return nil
}
