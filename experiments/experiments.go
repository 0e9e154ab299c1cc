package experiments

import (
	"tichess/engine"
	"tichess/experiments/metrics"
	"tichess/meta"
	"tichess/player"

	"github.com/rs/zerolog/log"
)

// RunSelfPlay plays cfg.Matches games between seeded random players and
// returns one record per game. Each game gets its own engine.
func RunSelfPlay(cfg meta.Config) []metrics.GameMetric {
	records := make([]metrics.GameMetric, 0, cfg.Matches)
	wins := make(map[string]int)

	log.Info().Msgf("running %d matches between %s and %s", cfg.Matches, cfg.Players[0], cfg.Players[1])
	for i := 0; i < cfg.Matches; i++ {
		seed := cfg.Seed + uint64(2*i)
		agents := []engine.Agent{
			player.NewRandomPlayer(cfg.Players[0], seed),
			player.NewRandomPlayer(cfg.Players[1], seed+1),
		}
		e := engine.NewLocalEngine(cfg.Players, agents, engine.WithMetrics(),
			engine.WithEngine(engine.New(engine.WithLogger(log.Logger))))

		winner, record := e.Run(cfg.MaxTurns)
		records = append(records, record)
		if winner == "" {
			winner = "draw"
		}
		wins[winner]++
		log.Info().Msgf("match %d over after %d moves, winner: %s", i+1, record.TotalMoves, winner)
	}

	for name, n := range wins {
		log.Info().Msgf("%s: %d", name, n)
	}
	return records
}
