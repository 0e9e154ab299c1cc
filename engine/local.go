package engine

import (
	"tichess/experiments/metrics"
	"tichess/game"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Agent decides actions for one player in a local game.
type Agent interface {
	ChooseMove(moves []game.MoveRequest) game.MoveRequest
	ChoosePlacement(pieceID string, empty []game.Position) (game.Position, bool)
}

// LocalEngine plays a full game between agents, alternating turns. Turn order
// lives here, not in Engine.
type LocalEngine struct {
	Engine  *Engine
	players []string
	agents  []Agent
	metrics metrics.Collector
}

type LocalOption func(l *LocalEngine)

func WithMetrics() LocalOption {
	return func(l *LocalEngine) {
		l.metrics = metrics.NewCollector()
	}
}

func WithEngine(e *Engine) LocalOption {
	return func(l *LocalEngine) {
		if e != nil {
			l.Engine = e
		}
	}
}

func NewLocalEngine(players []string, agents []Agent, options ...LocalOption) *LocalEngine {
	if len(players) != len(agents) {
		panic("number of players does not match number of agents")
	}
	if len(players) != 2 {
		panic("need exactly two players")
	}

	l := &LocalEngine{
		Engine:  New(),
		players: players,
		agents:  agents,
		metrics: metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(l)
	}
	return l
}

// Run starts from the opening position and plays until a player wins, the
// player to move has no legal move, or maxTurns moves have been made.
func (l *LocalEngine) Run(maxTurns int) (string, metrics.GameMetric) {
	l.Engine.NewGame(l.players[0], l.players[1])
	l.metrics.Start(uuid.NewString(), l.players[0], l.players[1])

	log.Info().Msgf("player %s is starting", l.players[0])

	winner := ""
	for turn := 0; turn < maxTurns && winner == ""; turn++ {
		idx := turn % len(l.players)
		current := l.players[idx]

		moves := l.Engine.LegalMoves(current)
		if len(moves) == 0 {
			log.Warn().Msgf("player %s has no legal move, stopping at turn %d", current, turn+1)
			break
		}

		res := l.Engine.Move(l.agents[idx].ChooseMove(moves))
		if !res.Success {
			// Moves come from LegalMoves, so a rejection is an engine bug.
			panic(res.Err)
		}
		l.metrics.AddMove()
		l.metrics.Observe(res)
		winner = res.Winner

		if winner == "" {
			winner = l.placeCaptured(l.agents[idx], res)
		}
	}

	if winner != "" {
		log.Info().Msgf("game ended with winner: %s", winner)
	} else {
		log.Info().Msg("game ended without a winner")
	}
	log.Debug().Msgf("final position:\n%s", l.Engine.Board())

	return winner, l.metrics.Complete(winner)
}

// placeCaptured lets the mover use any Strategist placement the move made available.
func (l *LocalEngine) placeCaptured(agent Agent, moveResult game.Result) string {
	for _, payload := range moveResult.EventsOf(game.KindStrategistPlacementReady) {
		ready := payload.(game.StrategistPlacementReady)
		at, ok := agent.ChoosePlacement(ready.CapturedPieceID, l.Engine.EmptySquares())
		if !ok {
			continue
		}
		res := l.Engine.PlaceCaptured(ready.CapturedPieceID, at)
		if !res.Success {
			panic(res.Err)
		}
		l.metrics.Observe(res)
		if res.Winner != "" {
			return res.Winner
		}
	}
	return ""
}
