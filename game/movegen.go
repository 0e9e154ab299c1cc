package game

import "fmt"

type direction struct {
	dx, dy int
}

var (
	orthogonal = []direction{{0, 1}, {0, -1}, {-1, 0}, {1, 0}}
	diagonal   = []direction{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	allAround  = []direction{{0, 1}, {0, -1}, {-1, 0}, {1, 0}, {1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
)

// reach returns the directions a piece slides in and its step cap.
// Reading a Talent's reach spends its ExtraRange buff.
func reach(p *Piece) ([]direction, int) {
	switch p.Type {
	case Talent:
		limit := TalentRange
		if p.Buffs.ExtraRange {
			limit += TalentBuffBonus
			p.Buffs.ExtraRange = false
		}
		return orthogonal, limit
	case Leader:
		return diagonal, LeaderRange
	case Strategist:
		return allAround, BoardSize - 1
	case Investor:
		return allAround, InvestorRange
	default:
		panic(fmt.Sprintf("unknown piece type %d", int(p.Type)))
	}
}

// Destinations returns the squares p can move to, in direction order. A
// pending ExtraRange buff on a Talent is consumed by this call.
//
// In each direction the piece steps outward until the board edge or its step
// cap. Friendly pieces block before their square, an enemy piece is a legal
// capture and ends the direction.
func Destinations(b *Board, p *Piece) []Position {
	if !p.Active {
		return nil
	}
	dirs, limit := reach(p)
	var moves []Position
	for _, d := range dirs {
		for step := 1; step <= limit; step++ {
			to, ok := p.Position.offset(d.dx*step, d.dy*step)
			if !ok {
				break
			}
			if other := b.PieceAt(to); other != nil {
				if other.OwnerID != p.OwnerID {
					moves = append(moves, to)
				}
				break
			}
			moves = append(moves, to)
		}
	}
	return moves
}

// PreviewDestinations is Destinations without spending any buff.
func PreviewDestinations(b *Board, p *Piece) []Position {
	return Destinations(b, p.clone())
}
