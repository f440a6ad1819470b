package gomoku

import "github.com/rocketscienceinc/gomoku-backend/internal/entity"

var turnCycle = [2]entity.Cell{entity.Black, entity.White}

// TurnManager alternates between the two piece kinds.
type TurnManager struct {
	index int
}

func NewTurnManager() *TurnManager {
	return &TurnManager{}
}

func (that *TurnManager) Current() entity.Cell {
	return turnCycle[that.index]
}

func (that *TurnManager) Advance() entity.Cell {
	that.index = (that.index + 1) % len(turnCycle)
	return that.Current()
}

func (that *TurnManager) Reset() {
	that.index = 0
}

// Set moves the cycle to piece; anything but a piece kind is ignored.
func (that *TurnManager) Set(piece entity.Cell) bool {
	for i, cell := range turnCycle {
		if cell == piece {
			that.index = i
			return true
		}
	}

	return false
}
