package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTypeForLevel(t *testing.T) {
	for level, want := range map[int]PieceType{1: Talent, 2: Leader, 3: Strategist, 4: Investor} {
		got, err := TypeForLevel(level)
		require.NoError(t, err)
		require.Equal(t, want, got)
		require.Equal(t, level, got.Level(), "mapping should be bidirectional")
	}

	for _, level := range []int{0, 5, -1} {
		_, err := TypeForLevel(level)
		require.ErrorIs(t, err, ErrInvalidLevel)
	}
}

func TestNewPiece(t *testing.T) {
	p, err := NewPiece("p1", alice, 3, MustPosition(2, 5))
	require.NoError(t, err)
	require.Equal(t, Strategist, p.Type)
	require.True(t, p.Active)
	require.Zero(t, p.TransformCount)

	_, err = NewPiece("p2", alice, 5, MustPosition(0, 0))
	require.ErrorIs(t, err, ErrInvalidLevel)

	_, err = NewPiece("p3", alice, 1, Position{X: 8, Y: 0})
	require.ErrorIs(t, err, ErrOutOfBounds)
}

func TestTransform(t *testing.T) {
	t.Run("needs two involvements", func(t *testing.T) {
		p := newPiece(t, "p", alice, 1, 0, 0)
		p.TransformCount = 1
		require.False(t, p.CanTransform())
		p.TransformCount = 2
		require.True(t, p.CanTransform())

		p.Transform()
		require.Equal(t, 2, p.Level)
		require.Equal(t, Leader, p.Type)
		require.Zero(t, p.TransformCount)
	})

	t.Run("investors are the top tier", func(t *testing.T) {
		p := newPiece(t, "p", alice, 4, 0, 0)
		p.TransformCount = 5
		require.False(t, p.CanTransform())
	})
}
