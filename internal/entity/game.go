package entity

import (
	"time"
)

const (
	StatusOngoing  = "ongoing"
	StatusFinished = "finished"
	StatusDraw     = "draw"
)

const (
	ModeLocal = "local"
	ModeBot   = "bot"
)

// Game is a persisted snapshot of a running gomoku game.
type Game struct {
	ID        string    `json:"id"`
	Rows      int       `json:"rows"`
	Cols      int       `json:"cols"`
	Cells     [][]Cell  `json:"cells"`
	Turn      Cell      `json:"turn"`
	Status    string    `json:"status"`
	Winner    Cell      `json:"winner"`
	Moves     int       `json:"moves"`
	Mode      string    `json:"mode,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished || that.Status == StatusDraw
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) IsWithBot() bool {
	return that.Mode == ModeBot
}
