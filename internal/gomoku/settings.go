package gomoku

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
)

const (
	DefaultRows = 15
	DefaultCols = 15

	// WinLength is the number of consecutive pieces that wins the game.
	WinLength = 5
)

var ErrInvalidSettings = errors.New("invalid game settings")

// Settings is the immutable configuration of a game instance.
type Settings struct {
	Rows      int
	Cols      int
	BlackName string
	WhiteName string
}

func DefaultSettings() Settings {
	return Settings{
		Rows:      DefaultRows,
		Cols:      DefaultCols,
		BlackName: "Black",
		WhiteName: "White",
	}
}

func (that Settings) Validate() error {
	if that.Rows < 1 || that.Cols < 1 {
		return fmt.Errorf("%w: board %dx%d", ErrInvalidSettings, that.Rows, that.Cols)
	}

	return nil
}

// PlayerName resolves a piece to its display name.
func (that Settings) PlayerName(piece entity.Cell) string {
	switch piece {
	case entity.Black:
		return that.BlackName
	case entity.White:
		return that.WhiteName
	default:
		return ""
	}
}

func (that Settings) Players() []entity.Player {
	return []entity.Player{
		{Name: that.BlackName, Piece: entity.Black},
		{Name: that.WhiteName, Piece: entity.White},
	}
}
