package game

import (
	"github.com/pkg/errors"
	"golang.org/x/exp/slices"
)

// MoveRequest asks to move PieceID from From to To on behalf of ActorID.
type MoveRequest struct {
	PieceID string
	From    Position
	To      Position
	ActorID string
}

// ValidateMove checks a move request against the board. It never mutates the
// board: the range query runs on a copy of the piece.
func ValidateMove(b *Board, req MoveRequest) error {
	p := b.ActivePiece(req.PieceID)
	if p == nil {
		return errors.Wrapf(ErrPieceNotFound, "piece %s", req.PieceID)
	}
	if p.OwnerID != req.ActorID {
		return errors.Wrapf(ErrNotOwner, "piece %s belongs to %s", p.ID, p.OwnerID)
	}
	if p.Position != req.From {
		return errors.Wrapf(ErrPositionMismatch, "piece %s is at %s, not %s", p.ID, p.Position, req.From)
	}
	if !slices.Contains(PreviewDestinations(b, p), req.To) {
		return errors.Wrapf(ErrIllegalDestination, "%s cannot reach %s", p, req.To)
	}
	return nil
}
