package game

import (
	"fmt"

	"github.com/pkg/errors"
)

// Position is a square on the board. X is the column, Y the row, both in [0, BoardSize).
type Position struct {
	X int
	Y int
}

// NewPosition returns the square at (x, y) or ErrOutOfBounds.
func NewPosition(x, y int) (Position, error) {
	if !inBounds(x, y) {
		return Position{}, errors.Wrapf(ErrOutOfBounds, "position (%d, %d)", x, y)
	}
	return Position{X: x, Y: y}, nil
}

// MustPosition is like NewPosition but panics on invalid coordinates.
func MustPosition(x, y int) Position {
	p, err := NewPosition(x, y)
	if err != nil {
		panic(err)
	}
	return p
}

// Valid reports whether p lies on the board. Positions built as struct
// literals bypass NewPosition, so entry points check this.
func (p Position) Valid() bool {
	return inBounds(p.X, p.Y)
}

// Distance returns the Chebyshev distance between two squares.
func (p Position) Distance(other Position) int {
	return max(abs(p.X-other.X), abs(p.Y-other.Y))
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

func (p Position) offset(dx, dy int) (Position, bool) {
	x, y := p.X+dx, p.Y+dy
	if !inBounds(x, y) {
		return Position{}, false
	}
	return Position{X: x, Y: y}, true
}

// secondRing lists the on-board squares at exact distance 2, row by row.
func (p Position) secondRing() []Position {
	ring := make([]Position, 0, 16)
	for dy := -2; dy <= 2; dy++ {
		for dx := -2; dx <= 2; dx++ {
			if max(abs(dx), abs(dy)) != 2 {
				continue
			}
			if sq, ok := p.offset(dx, dy); ok {
				ring = append(ring, sq)
			}
		}
	}
	return ring
}

// aligned reports whether two squares share a row, column or diagonal.
func aligned(a, b Position) bool {
	dx := abs(a.X - b.X)
	dy := abs(a.Y - b.Y)
	return dx == 0 || dy == 0 || dx == dy
}

func inBounds(x, y int) bool {
	return x >= 0 && x < BoardSize && y >= 0 && y < BoardSize
}
