package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPlaceCapturedPiece(t *testing.T) {
	setup := func(t *testing.T) (*Board, *Piece) {
		captured := newPiece(t, "c", bob, 2, 3, 3)
		b := newBoard(t, captured, newPiece(t, "blocker", alice, 1, 5, 5))
		b.deactivate(captured)
		return b, captured
	}

	t.Run("occupied square is rejected", func(t *testing.T) {
		b, captured := setup(t)
		before := b.Snapshot()

		res := PlaceCapturedPiece(b, "c", MustPosition(5, 5))

		require.False(t, res.Success)
		require.ErrorIs(t, res.Err, ErrPositionOccupied)
		require.Equal(t, before, b.Snapshot())
		require.False(t, captured.Active)
	})

	t.Run("empty square reactivates the piece", func(t *testing.T) {
		b, captured := setup(t)

		res := PlaceCapturedPiece(b, "c", MustPosition(0, 7))

		require.True(t, res.Success)
		require.True(t, captured.Active)
		require.Equal(t, Position{0, 7}, captured.Position)
		require.Same(t, captured, b.PieceAt(Position{0, 7}))
		require.Nil(t, b.CapturedPiece("c"))
		require.Equal(t, []Event{{
			Kind:    KindPiecePlaced,
			Payload: PiecePlaced{PieceID: "c", Position: Position{0, 7}, Level: 2, Type: Leader},
		}}, res.Events)
		require.Equal(t, []Delta{{Position: Position{0, 7}, PieceID: "c"}}, res.Deltas)
	})

	t.Run("only captured pieces can be placed", func(t *testing.T) {
		b, _ := setup(t)
		res := PlaceCapturedPiece(b, "blocker", MustPosition(0, 0))
		require.ErrorIs(t, res.Err, ErrCapturedPieceNotFound)
	})

	t.Run("off-board square is rejected", func(t *testing.T) {
		b, _ := setup(t)
		res := PlaceCapturedPiece(b, "c", Position{X: 9, Y: 0})
		require.ErrorIs(t, res.Err, ErrOutOfBounds)
	})
}

func TestInvestorTransformAdjacent(t *testing.T) {
	setup := func(t *testing.T) (*Board, *Piece) {
		target := newPiece(t, "target", alice, 1, 4, 4)
		b := newBoard(t,
			newPiece(t, "inv", alice, 4, 3, 3),
			target,
			newPiece(t, "far", alice, 1, 5, 5),
			newPiece(t, "enemy", bob, 1, 2, 2),
		)
		return b, target
	}

	t.Run("first nudge only counts", func(t *testing.T) {
		b, target := setup(t)
		res := InvestorTransformAdjacent(b, "inv", "target", alice)
		require.True(t, res.Success)
		require.Empty(t, res.Events)
		require.Equal(t, 1, target.TransformCount)
	})

	t.Run("reaching the threshold transforms", func(t *testing.T) {
		b, target := setup(t)
		target.TransformCount = 1

		res := InvestorTransformAdjacent(b, "inv", "target", alice)

		require.True(t, res.Success)
		require.Equal(t, []EventKind{KindPieceTransformed}, kinds(res))
		require.Equal(t, Leader, target.Type)
		require.Zero(t, target.TransformCount)
	})

	for _, tt := range []struct {
		name                    string
		investor, target, actor string
		want                    error
	}{
		{"investor missing", "nobody", "target", alice, ErrInvestorNotFound},
		{"not an investor", "far", "target", alice, ErrInvestorNotFound},
		{"someone else's investor", "inv", "target", bob, ErrNotOwner},
		{"target missing", "inv", "nobody", alice, ErrPieceNotFound},
		{"enemy target", "inv", "enemy", alice, ErrNotAllied},
		{"target too far", "inv", "far", alice, ErrNotAdjacent},
	} {
		t.Run(tt.name, func(t *testing.T) {
			b, _ := setup(t)
			before := b.Snapshot()
			res := InvestorTransformAdjacent(b, tt.investor, tt.target, tt.actor)
			require.False(t, res.Success)
			require.ErrorIs(t, res.Err, tt.want)
			require.Equal(t, before, b.Snapshot())
		})
	}
}
