package apperror

import "errors"

var (
	ErrGameFinished     = errors.New("game is already finished")
	ErrGameIsNotStarted = errors.New("game is not started")
	ErrCellOccupied     = errors.New("cell is already occupied")
	ErrOutOfBounds      = errors.New("cell is out of bounds")
	ErrInvalidSetup     = errors.New("invalid game setup")
	ErrProtocol         = errors.New("unexpected intent for current state")
	ErrNotFound         = errors.New("not found")
)
