package entity

import "time"

// PlayerTie is the winner name recorded for a drawn game.
const PlayerTie = "-"

// Result is the outcome of a finished game.
type Result struct {
	ID         string    `json:"id"`
	GameID     string    `json:"game_id"`
	Winner     string    `json:"winner"`
	Piece      Cell      `json:"piece"`
	Moves      int       `json:"moves"`
	Rows       int       `json:"rows"`
	Cols       int       `json:"cols"`
	FinishedAt time.Time `json:"finished_at"`
}
