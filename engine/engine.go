// Package engine is the entry point for callers holding a game snapshot: it
// loads the snapshot, runs one action at a time against it and reports the
// outcome, including the winner once there is one.
package engine

import (
	"tichess/game"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

type Option func(e *Engine)

// WithLogger sets the logger for action outcomes. The default discards everything.
func WithLogger(logger zerolog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// Engine runs actions against one game. It is not safe for concurrent use;
// callers serialize actions per game.
type Engine struct {
	board  *game.Board
	logger zerolog.Logger
}

func New(options ...Option) *Engine {
	e := &Engine{
		board:  game.NewBoard(),
		logger: zerolog.Nop(),
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Load replaces the current state with s.
func (e *Engine) Load(s game.Snapshot) error {
	b, err := game.LoadSnapshot(s)
	if err != nil {
		e.logger.Warn().Err(err).Msg("rejected snapshot")
		return errors.WithMessage(err, "load snapshot")
	}
	e.board = b
	e.logger.Debug().Int("pieces", len(s.Pieces)).Strs("players", s.Players).Msg("loaded snapshot")
	return nil
}

// NewGame replaces the current state with the opening position.
func (e *Engine) NewGame(first, second string) {
	e.board = game.NewGame(first, second)
	e.logger.Debug().Str("first", first).Str("second", second).Msg("started new game")
}

// Snapshot returns the current state for storage.
func (e *Engine) Snapshot() game.Snapshot {
	return e.board.Snapshot()
}

func (e *Engine) Move(req game.MoveRequest) game.Result {
	return e.execute("move", func(b *game.Board) game.Result {
		return game.ApplyMove(b, req)
	})
}

// PlaceCaptured puts a captured piece back on an empty square.
func (e *Engine) PlaceCaptured(pieceID string, at game.Position) game.Result {
	return e.execute("place_captured", func(b *game.Board) game.Result {
		return game.PlaceCapturedPiece(b, pieceID, at)
	})
}

func (e *Engine) InvestorTransform(investorID, targetID, actorID string) game.Result {
	return e.execute("investor_transform", func(b *game.Board) game.Result {
		return game.InvestorTransformAdjacent(b, investorID, targetID, actorID)
	})
}

// Winner reports the winning player, if any.
func (e *Engine) Winner() (string, bool) {
	return game.Winner(e.board)
}

// ValidMoves previews the destinations of an active piece. It does not spend
// a pending range buff.
func (e *Engine) ValidMoves(pieceID string) ([]game.Position, error) {
	p := e.board.ActivePiece(pieceID)
	if p == nil {
		return nil, errors.Wrapf(game.ErrPieceNotFound, "piece %s", pieceID)
	}
	return game.PreviewDestinations(e.board, p), nil
}

// LegalMoves lists every legal move for a player's active pieces.
func (e *Engine) LegalMoves(playerID string) []game.MoveRequest {
	var moves []game.MoveRequest
	for _, p := range e.board.Pieces() {
		if p.OwnerID != playerID {
			continue
		}
		for _, to := range game.PreviewDestinations(e.board, p) {
			moves = append(moves, game.MoveRequest{PieceID: p.ID, From: p.Position, To: to, ActorID: playerID})
		}
	}
	return moves
}

// EmptySquares lists the squares a captured piece could be placed on.
func (e *Engine) EmptySquares() []game.Position {
	return e.board.EmptySquares()
}

// Board renders the current position.
func (e *Engine) Board() string {
	return e.board.String()
}

// execute runs an action on a copy of the board and keeps the copy only if
// the action succeeded.
func (e *Engine) execute(action string, apply func(*game.Board) game.Result) game.Result {
	next := e.board.Clone()
	res := apply(next)
	if !res.Success {
		e.logger.Debug().Str("action", action).Err(res.Err).Msg("action rejected")
		return res
	}
	e.board = next

	if winner, ok := game.Winner(e.board); ok {
		res.Winner = winner
		e.logger.Info().Str("winner", winner).Msg("game won")
	}
	e.logger.Debug().
		Str("action", action).
		Int("events", len(res.Events)).
		Int("deltas", len(res.Deltas)).
		Msg("action applied")
	return res
}
