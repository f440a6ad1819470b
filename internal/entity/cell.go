package entity

import (
	"errors"
	"fmt"
)

// Cell is the state of a single board cell.
type Cell uint8

const (
	Empty Cell = iota
	Black
	White
	Blocked
)

var ErrUnknownCell = errors.New("unknown cell state")

var cellNames = map[Cell]string{
	Empty:   "empty",
	Black:   "black",
	White:   "white",
	Blocked: "blocked",
}

func (that Cell) String() string {
	if name, ok := cellNames[that]; ok {
		return name
	}

	return fmt.Sprintf("cell(%d)", uint8(that))
}

// IsPiece reports whether the cell holds a player's piece.
func (that Cell) IsPiece() bool {
	return that == Black || that == White
}

// Opponent returns the other piece kind. Non-piece cells are returned unchanged.
func (that Cell) Opponent() Cell {
	switch that {
	case Black:
		return White
	case White:
		return Black
	default:
		return that
	}
}

func (that Cell) MarshalText() ([]byte, error) {
	name, ok := cellNames[that]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownCell, uint8(that))
	}

	return []byte(name), nil
}

func (that *Cell) UnmarshalText(text []byte) error {
	for cell, name := range cellNames {
		if name == string(text) {
			*that = cell
			return nil
		}
	}

	return fmt.Errorf("%w: %q", ErrUnknownCell, text)
}
