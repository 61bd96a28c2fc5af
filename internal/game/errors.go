package game

import "errors"

// Engine error kinds. Every validation failure is reported through one of
// these before any mutation happens, so callers can match with errors.Is
// and map them to transport-level codes.
var (
	ErrInvalidMove           = errors.New("invalid move")
	ErrGameNotFound          = errors.New("game not found")
	ErrNotYourTurn           = errors.New("not your turn")
	ErrOutOfBounds           = errors.New("coordinates out of bounds")
	ErrCellOccupied          = errors.New("cell already occupied")
	ErrCellEmpty             = errors.New("cell is empty")
	ErrInvalidCardAttributes = errors.New("card rank out of range")
)
