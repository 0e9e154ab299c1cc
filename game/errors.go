package game

import "github.com/pkg/errors"

// Rule violations. They are returned wrapped with context, match with errors.Is.
var (
	ErrOutOfBounds           = errors.New("position out of bounds")
	ErrInvalidLevel          = errors.New("invalid piece level")
	ErrTypeMismatch          = errors.New("piece type does not match level")
	ErrPieceNotFound         = errors.New("piece not found")
	ErrDuplicatePiece        = errors.New("duplicate piece id")
	ErrUnknownPlayer         = errors.New("unknown player")
	ErrNotOwner              = errors.New("not your piece")
	ErrPositionMismatch      = errors.New("piece is not at specified position")
	ErrIllegalDestination    = errors.New("invalid move for this piece type")
	ErrCapturedPieceNotFound = errors.New("captured piece not found")
	ErrPositionOccupied      = errors.New("position is not empty")
	ErrInvestorNotFound      = errors.New("investor piece not found")
	ErrNotAllied             = errors.New("can only transform allied pieces")
	ErrNotAdjacent           = errors.New("target piece is not adjacent")
)
