package apperror

import "errors"

var (
	ErrOutOfRange           = errors.New("cell index out of range")
	ErrMalformedBoard       = errors.New("malformed board")
	ErrInvalidMarker        = errors.New("invalid marker")
	ErrNoLegalMove          = errors.New("no legal move")
	ErrPreconditionViolated = errors.New("cell is already occupied")

	ErrGameFinished = errors.New("game is already finished")
	ErrNotFound     = errors.New("not found")
)
