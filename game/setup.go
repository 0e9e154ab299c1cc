package game

import "github.com/google/uuid"

// Home rows for the opening position.
const (
	FirstHomeRow  = 1
	SecondHomeRow = BoardSize - 2
)

// NewGame returns the opening position: a row of Talents for each player.
func NewGame(first, second string) *Board {
	b := NewBoard(first, second)
	for _, side := range []struct {
		owner string
		row   int
	}{{first, FirstHomeRow}, {second, SecondHomeRow}} {
		for x := 0; x < BoardSize; x++ {
			p, err := NewPiece(uuid.NewString(), side.owner, Talent.Level(), MustPosition(x, side.row))
			if err != nil {
				panic(err)
			}
			if err := b.Place(p); err != nil {
				panic(err)
			}
		}
	}
	return b
}
