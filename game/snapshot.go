package game

import (
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

// PieceState is the flat record of a piece exchanged with storage and
// transport layers. Type may be left zero, in which case it is derived from Level.
type PieceState struct {
	ID             string
	OwnerID        string
	Type           PieceType
	Level          int
	X              int
	Y              int
	TransformCount int
	ExtraRange     bool
	Active         bool
}

// Snapshot is a full game state: the players and every piece, captured ones included.
type Snapshot struct {
	Players []string
	Pieces  []PieceState
}

// LoadSnapshot builds a board from s. Every malformed record is reported, not
// just the first.
func LoadSnapshot(s Snapshot) (*Board, error) {
	var errs *multierror.Error
	seen := make(map[string]bool, len(s.Players))
	for _, id := range s.Players {
		if id == "" || seen[id] {
			errs = multierror.Append(errs, errors.Errorf("invalid or duplicate player id %q", id))
		}
		seen[id] = true
	}

	b := NewBoard(s.Players...)
	for i, ps := range s.Pieces {
		p, err := ps.piece()
		if err == nil {
			err = b.add(p)
		}
		if err != nil {
			errs = multierror.Append(errs, errors.Wrapf(err, "piece #%d %q", i, ps.ID))
		}
	}
	if err := errs.ErrorOrNil(); err != nil {
		return nil, err
	}
	return b, nil
}

func (ps PieceState) piece() (*Piece, error) {
	if ps.ID == "" {
		return nil, errors.New("empty piece id")
	}
	pos, err := NewPosition(ps.X, ps.Y)
	if err != nil {
		return nil, err
	}
	p, err := NewPiece(ps.ID, ps.OwnerID, ps.Level, pos)
	if err != nil {
		return nil, err
	}
	if ps.Type != 0 && ps.Type != p.Type {
		return nil, errors.Wrapf(ErrTypeMismatch, "%s at level %d", ps.Type, ps.Level)
	}
	if ps.TransformCount < 0 {
		return nil, errors.Errorf("negative transform count %d", ps.TransformCount)
	}
	p.TransformCount = ps.TransformCount
	p.Buffs.ExtraRange = ps.ExtraRange
	p.Active = ps.Active
	return p, nil
}

func (b *Board) add(p *Piece) error {
	if !b.hasPlayer(p.OwnerID) {
		return errors.Wrapf(ErrUnknownPlayer, "owner %q", p.OwnerID)
	}
	if p.Active {
		return b.Place(p)
	}
	if b.hasID(p.ID) {
		return errors.Wrapf(ErrDuplicatePiece, "piece %s", p.ID)
	}
	b.captured[p.ID] = p
	return nil
}

// Snapshot exports the board: active pieces in row-major order, then captured
// pieces sorted by ID.
func (b *Board) Snapshot() Snapshot {
	s := Snapshot{Players: b.Players()}
	for _, p := range append(b.Pieces(), b.CapturedPieces()...) {
		s.Pieces = append(s.Pieces, p.state())
	}
	return s
}

func (p *Piece) state() PieceState {
	return PieceState{
		ID:             p.ID,
		OwnerID:        p.OwnerID,
		Type:           p.Type,
		Level:          p.Level,
		X:              p.Position.X,
		Y:              p.Position.Y,
		TransformCount: p.TransformCount,
		ExtraRange:     p.Buffs.ExtraRange,
		Active:         p.Active,
	}
}
