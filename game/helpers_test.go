package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	alice = "alice"
	bob   = "bob"
)

func newPiece(t *testing.T, id, owner string, level, x, y int) *Piece {
	t.Helper()
	p, err := NewPiece(id, owner, level, MustPosition(x, y))
	require.NoError(t, err)
	return p
}

func newBoard(t *testing.T, pieces ...*Piece) *Board {
	t.Helper()
	b := NewBoard(alice, bob)
	for _, p := range pieces {
		require.NoError(t, b.Place(p))
	}
	return b
}

func kinds(res Result) []EventKind {
	out := make([]EventKind, 0, len(res.Events))
	for _, e := range res.Events {
		out = append(out, e.Kind)
	}
	return out
}
