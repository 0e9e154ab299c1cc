package game

import "github.com/pkg/errors"

// PlaceCapturedPiece puts a captured piece back on an empty square. It is the
// follow-up to a StrategistPlacementReady event and is not a move.
func PlaceCapturedPiece(b *Board, pieceID string, at Position) Result {
	p := b.CapturedPiece(pieceID)
	if p == nil {
		return failure(errors.Wrapf(ErrCapturedPieceNotFound, "piece %s", pieceID))
	}
	if !at.Valid() {
		return failure(errors.Wrapf(ErrOutOfBounds, "position %s", at))
	}
	if occupant := b.PieceAt(at); occupant != nil {
		return failure(errors.Wrapf(ErrPositionOccupied, "%s holds %s", at, occupant.ID))
	}

	b.reactivate(p, at)
	res := Result{Success: true}
	res.emit(PiecePlaced{PieceID: p.ID, Position: at, Level: p.Level, Type: p.Type})
	res.changed(at, p)
	return res
}

// InvestorTransformAdjacent lets an Investor push an adjacent allied piece
// toward its next level, exactly as a capture involvement would.
func InvestorTransformAdjacent(b *Board, investorID, targetID, actorID string) Result {
	investor := b.ActivePiece(investorID)
	if investor == nil || investor.Type != Investor {
		return failure(errors.Wrapf(ErrInvestorNotFound, "piece %s", investorID))
	}
	if investor.OwnerID != actorID {
		return failure(errors.Wrapf(ErrNotOwner, "piece %s belongs to %s", investor.ID, investor.OwnerID))
	}
	target := b.ActivePiece(targetID)
	if target == nil {
		return failure(errors.Wrapf(ErrPieceNotFound, "target %s", targetID))
	}
	if target.OwnerID != investor.OwnerID {
		return failure(errors.Wrapf(ErrNotAllied, "target %s belongs to %s", target.ID, target.OwnerID))
	}
	if d := investor.Position.Distance(target.Position); d > 1 {
		return failure(errors.Wrapf(ErrNotAdjacent, "target %s is %d squares away", target.ID, d))
	}

	res := Result{Success: true}
	advanceTransform(target, &res)
	return res
}
