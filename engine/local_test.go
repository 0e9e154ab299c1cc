package engine

import (
	"testing"

	"tichess/game"
	"tichess/player"

	"github.com/stretchr/testify/require"
)

type firstMoveAgent struct {
	actors *[]string
}

func (a firstMoveAgent) ChooseMove(moves []game.MoveRequest) game.MoveRequest {
	*a.actors = append(*a.actors, moves[0].ActorID)
	return moves[0]
}

func (a firstMoveAgent) ChoosePlacement(string, []game.Position) (game.Position, bool) {
	return game.Position{}, false
}

func TestLocalEngineAlternatesPlayers(t *testing.T) {
	var actors []string
	agent := firstMoveAgent{actors: &actors}
	l := NewLocalEngine([]string{"alice", "bob"}, []Agent{agent, agent}, WithMetrics())

	winner, metric := l.Run(6)

	require.Empty(t, winner, "no investor can appear within six moves")
	require.Equal(t, []string{"alice", "bob", "alice", "bob", "alice", "bob"}, actors)
	require.Equal(t, 6, metric.TotalMoves)
	require.Equal(t, "alice", metric.First)
	require.NotEmpty(t, metric.ID)
}

func TestLocalEngineRandomGameTerminates(t *testing.T) {
	players := []string{"alice", "bob"}
	agents := []Agent{player.NewRandomPlayer("alice", 7), player.NewRandomPlayer("bob", 8)}
	l := NewLocalEngine(players, agents, WithMetrics())

	winner, metric := l.Run(300)

	require.LessOrEqual(t, metric.TotalMoves, 300)
	require.Equal(t, winner, metric.Winner)
	if winner != "" {
		require.Contains(t, players, winner)
		w, ok := l.Engine.Winner()
		require.True(t, ok)
		require.Equal(t, winner, w)
	}
}

func TestNewLocalEngineRequiresTwoPlayers(t *testing.T) {
	require.Panics(t, func() {
		NewLocalEngine([]string{"alice"}, []Agent{player.NewRandomPlayer("alice", 1)})
	})
	require.Panics(t, func() {
		NewLocalEngine([]string{"alice", "bob"}, []Agent{player.NewRandomPlayer("alice", 1)})
	})
}
