package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateMove(t *testing.T) {
	talent := newPiece(t, "t", alice, 1, 4, 4)
	b := newBoard(t, talent)

	tests := []struct {
		name string
		req  MoveRequest
		want error
	}{
		{"legal", MoveRequest{PieceID: "t", From: Position{4, 4}, To: Position{4, 6}, ActorID: alice}, nil},
		{"unknown piece", MoveRequest{PieceID: "x", From: Position{4, 4}, To: Position{4, 6}, ActorID: alice}, ErrPieceNotFound},
		{"someone else's piece", MoveRequest{PieceID: "t", From: Position{4, 4}, To: Position{4, 6}, ActorID: bob}, ErrNotOwner},
		{"wrong origin", MoveRequest{PieceID: "t", From: Position{4, 3}, To: Position{4, 6}, ActorID: alice}, ErrPositionMismatch},
		{"too far", MoveRequest{PieceID: "t", From: Position{4, 4}, To: Position{4, 0}, ActorID: alice}, ErrIllegalDestination},
		{"not in line", MoveRequest{PieceID: "t", From: Position{4, 4}, To: Position{5, 5}, ActorID: alice}, ErrIllegalDestination},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := b.Snapshot()
			err := ValidateMove(b, tt.req)
			if tt.want == nil {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, tt.want)
			}
			require.Equal(t, before, b.Snapshot(), "validation should not mutate the board")
		})
	}
}
