package game

import (
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/exp/slices"
)

// Board holds active pieces keyed by square and captured pieces keyed by ID.
type Board struct {
	squares  map[Position]*Piece
	captured map[string]*Piece
	players  []string
}

// NewBoard creates an empty board for the given players.
func NewBoard(players ...string) *Board {
	return &Board{
		squares:  make(map[Position]*Piece),
		captured: make(map[string]*Piece),
		players:  slices.Clone(players),
	}
}

// Players returns the participating player ids in the order given at creation.
func (b *Board) Players() []string {
	return slices.Clone(b.players)
}

// Place puts an active piece on its square. An occupied square is rejected,
// never overwritten.
func (b *Board) Place(p *Piece) error {
	if !p.Active {
		return errors.Errorf("piece %s is not active", p.ID)
	}
	if !p.Position.Valid() {
		return errors.Wrapf(ErrOutOfBounds, "piece %s at %s", p.ID, p.Position)
	}
	if b.hasID(p.ID) {
		return errors.Wrapf(ErrDuplicatePiece, "piece %s", p.ID)
	}
	if occupant, ok := b.squares[p.Position]; ok {
		return errors.Wrapf(ErrPositionOccupied, "%s holds %s", p.Position, occupant.ID)
	}
	b.squares[p.Position] = p
	return nil
}

// PieceAt returns the active piece on pos, or nil.
func (b *Board) PieceAt(pos Position) *Piece {
	return b.squares[pos]
}

// ActivePiece looks up an active piece by ID.
func (b *Board) ActivePiece(id string) *Piece {
	for _, p := range b.squares {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// CapturedPiece looks up an inactive piece by ID.
func (b *Board) CapturedPiece(id string) *Piece {
	return b.captured[id]
}

// Pieces returns the active pieces in row-major order (y, then x).
func (b *Board) Pieces() []*Piece {
	pieces := make([]*Piece, 0, len(b.squares))
	for y := 0; y < BoardSize; y++ {
		for x := 0; x < BoardSize; x++ {
			if p, ok := b.squares[Position{X: x, Y: y}]; ok {
				pieces = append(pieces, p)
			}
		}
	}
	return pieces
}

// CapturedPieces returns the inactive pieces sorted by ID.
func (b *Board) CapturedPieces() []*Piece {
	pieces := make([]*Piece, 0, len(b.captured))
	for _, p := range b.captured {
		pieces = append(pieces, p)
	}
	slices.SortFunc(pieces, func(x, y *Piece) int {
		return strings.Compare(x.ID, y.ID)
	})
	return pieces
}

// EmptySquares returns every unoccupied square in row-major order.
func (b *Board) EmptySquares() []Position {
	empty := make([]Position, 0, BoardSize*BoardSize-len(b.squares))
	for y := 0; y < BoardSize; y++ {
		for x := 0; x < BoardSize; x++ {
			pos := Position{X: x, Y: y}
			if _, ok := b.squares[pos]; !ok {
				empty = append(empty, pos)
			}
		}
	}
	return empty
}

// Clone returns a deep copy. Actions run against a clone and are committed
// only when they succeed.
func (b *Board) Clone() *Board {
	c := &Board{
		squares:  make(map[Position]*Piece, len(b.squares)),
		captured: make(map[string]*Piece, len(b.captured)),
		players:  slices.Clone(b.players),
	}
	for pos, p := range b.squares {
		c.squares[pos] = p.clone()
	}
	for id, p := range b.captured {
		c.captured[id] = p.clone()
	}
	return c
}

func (b *Board) hasID(id string) bool {
	if _, ok := b.captured[id]; ok {
		return true
	}
	return b.ActivePiece(id) != nil
}

func (b *Board) hasPlayer(id string) bool {
	return slices.Contains(b.players, id)
}

func (b *Board) relocate(p *Piece, to Position) {
	delete(b.squares, p.Position)
	p.Position = to
	b.squares[to] = p
}

// deactivate takes p off the board. It keeps its last position and identity.
func (b *Board) deactivate(p *Piece) {
	delete(b.squares, p.Position)
	p.Active = false
	b.captured[p.ID] = p
}

func (b *Board) reactivate(p *Piece, at Position) {
	delete(b.captured, p.ID)
	p.Active = true
	p.Position = at
	b.squares[at] = p
}

// String renders the board with row 0 at the top. The first player's pieces
// are upper case, everyone else's lower case.
func (b *Board) String() string {
	var sb strings.Builder
	for y := 0; y < BoardSize; y++ {
		for x := 0; x < BoardSize; x++ {
			if x > 0 {
				sb.WriteByte(' ')
			}
			p, ok := b.squares[Position{X: x, Y: y}]
			if !ok {
				sb.WriteByte('.')
				continue
			}
			sb.WriteString(b.glyph(p))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (b *Board) glyph(p *Piece) string {
	var g string
	switch p.Type {
	case Talent:
		g = "t"
	case Leader:
		g = "l"
	case Strategist:
		g = "s"
	case Investor:
		g = "i"
	default:
		g = "?"
	}
	if len(b.players) > 0 && p.OwnerID == b.players[0] {
		return strings.ToUpper(g)
	}
	return g
}
