package main

import (
	"flag"
	"os"

	"tichess/experiments"
	"tichess/experiments/metrics"
	"tichess/meta"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML run configuration")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg := meta.Default()
	if *configPath != "" {
		var err error
		cfg, err = meta.Load(*configPath)
		if err != nil {
			log.Fatal().Err(err).Msg("invalid configuration")
		}
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Fatal().Err(err).Msgf("unknown log level %q", cfg.LogLevel)
	}
	zerolog.SetGlobalLevel(level)

	records := experiments.RunSelfPlay(cfg)

	if cfg.OutputDir == "" {
		return
	}
	writer, err := metrics.NewWriter(cfg.OutputDir)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create metrics writer")
	}
	if err := writer.WriteGameRecords(records); err != nil {
		log.Fatal().Err(err).Msg("failed to write game records")
	}
	log.Info().Msgf("game records written to %s", writer.Dir())
}
