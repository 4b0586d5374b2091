package apperror

import "errors"

var (
	ErrInvalidDimension = errors.New("invalid board dimension")
	ErrInvalidSequence  = errors.New("invalid sequence length")
	ErrInvalidColumn    = errors.New("invalid column index")
	ErrColumnFull       = errors.New("column is already full")
	ErrInvalidMark      = errors.New("mark does not belong to a player")
	ErrGameFinished     = errors.New("game is already finished")
	ErrNoActiveGame     = errors.New("no active game")
)
