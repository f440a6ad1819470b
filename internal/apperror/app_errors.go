package apperror

import "errors"

var (
	ErrGameFinished = errors.New("game is already finished")
	ErrCellOccupied = errors.New("cell is already occupied")
	ErrOutOfBounds  = errors.New("cell is out of bounds")
	ErrBoardFrozen  = errors.New("board is frozen")
	ErrInvalidPiece = errors.New("invalid piece")
)
