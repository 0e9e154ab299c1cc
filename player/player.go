package player

import (
	"tichess/game"

	"golang.org/x/exp/rand"
)

// RandomPlayer picks uniformly among the options it is offered.
type RandomPlayer struct {
	ID  string
	rng *rand.Rand
}

// NewRandomPlayer creates a player whose choices are reproducible for a given seed.
func NewRandomPlayer(id string, seed uint64) *RandomPlayer {
	return &RandomPlayer{
		ID:  id,
		rng: rand.New(rand.NewSource(seed)),
	}
}

// ChooseMove picks one of the legal moves. moves must not be empty.
func (p *RandomPlayer) ChooseMove(moves []game.MoveRequest) game.MoveRequest {
	return moves[p.rng.Intn(len(moves))]
}

// ChoosePlacement picks a square to put a captured piece back on.
func (p *RandomPlayer) ChoosePlacement(pieceID string, empty []game.Position) (game.Position, bool) {
	if len(empty) == 0 {
		return game.Position{}, false
	}
	return empty[p.rng.Intn(len(empty))], true
}
