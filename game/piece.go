package game

import (
	"fmt"

	"github.com/pkg/errors"
)

// PieceType is one of the four tiers. Each tier maps to exactly one level.
type PieceType int

const (
	Talent PieceType = iota + 1
	Leader
	Strategist
	Investor
)

// TypeForLevel maps a level in [MinLevel, MaxLevel] to its tier.
func TypeForLevel(level int) (PieceType, error) {
	switch level {
	case 1:
		return Talent, nil
	case 2:
		return Leader, nil
	case 3:
		return Strategist, nil
	case 4:
		return Investor, nil
	default:
		return 0, errors.Wrapf(ErrInvalidLevel, "level %d", level)
	}
}

// Level is the inverse of TypeForLevel.
func (t PieceType) Level() int {
	switch t {
	case Talent:
		return 1
	case Leader:
		return 2
	case Strategist:
		return 3
	case Investor:
		return 4
	default:
		panic(fmt.Sprintf("unknown piece type %d", int(t)))
	}
}

func (t PieceType) String() string {
	switch t {
	case Talent:
		return "talent"
	case Leader:
		return "leader"
	case Strategist:
		return "strategist"
	case Investor:
		return "investor"
	default:
		return fmt.Sprintf("PieceType(%d)", int(t))
	}
}

// Buffs holds one-shot effects attached to a piece.
type Buffs struct {
	// ExtraRange adds TalentBuffBonus to a Talent's reach. It is cleared by
	// the first range query that reads it.
	ExtraRange bool
}

// Piece is one game piece. Captured pieces stay around inactive and keep their ID.
type Piece struct {
	ID             string
	OwnerID        string
	Type           PieceType
	Level          int
	Position       Position
	TransformCount int
	Buffs          Buffs
	Active         bool
}

// NewPiece creates an active piece whose type is derived from level.
func NewPiece(id, ownerID string, level int, pos Position) (*Piece, error) {
	t, err := TypeForLevel(level)
	if err != nil {
		return nil, err
	}
	if !pos.Valid() {
		return nil, errors.Wrapf(ErrOutOfBounds, "position %s", pos)
	}
	return &Piece{
		ID:       id,
		OwnerID:  ownerID,
		Type:     t,
		Level:    level,
		Position: pos,
		Active:   true,
	}, nil
}

// CanTransform reports whether the piece has been involved in enough captures to level up.
func (p *Piece) CanTransform() bool {
	return p.TransformCount >= TransformThreshold && p.Level < MaxLevel
}

// Transform raises the piece one level and resets its counter.
// Callers check CanTransform first.
func (p *Piece) Transform() {
	p.setLevel(p.Level + 1)
	p.TransformCount = 0
}

// setLevel is the only place Level changes, so Type always follows it.
func (p *Piece) setLevel(level int) {
	t, err := TypeForLevel(level)
	if err != nil {
		panic(err)
	}
	p.Level = level
	p.Type = t
}

func (p *Piece) clone() *Piece {
	c := *p
	return &c
}

func (p *Piece) String() string {
	return fmt.Sprintf("%s L%d %s at %s", p.ID, p.Level, p.Type, p.Position)
}
