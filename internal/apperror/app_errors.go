package apperror

import "errors"

var (
	ErrIndexOutOfRange  = errors.New("cell index out of range")
	ErrCellOccupied     = errors.New("cell is already occupied")
	ErrInvalidMarker    = errors.New("invalid marker")
	ErrNoLegalMoves     = errors.New("no legal moves")
	ErrOutOfBounds      = errors.New("cursor move out of bounds")
	ErrGameFinished     = errors.New("game is already finished")
	ErrGameNotFinished  = errors.New("game is not finished")
	ErrCanceled         = errors.New("game canceled")
	ErrUnknownDirection = errors.New("unknown direction")
)
