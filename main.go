package main

import (
	"flag"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"minichess/config"
	"minichess/evaluator"
	"minichess/experiments"
	"minichess/game"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	var evaluate game.Evaluator
	if cfg.EvaluatorURL != "" {
		log.Info().Str("url", cfg.EvaluatorURL).Msg("using remote evaluator")
		evaluate = evaluator.NewClient(cfg.EvaluatorURL, cfg.EvaluatorTimeout)
	}

	err = experiments.RunStrengthExperiment(experiments.Settings{
		Games:      cfg.Games,
		Goroutines: cfg.Goroutines,
		OutputDir:  cfg.OutputDir,
		Evaluate:   evaluate,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("experiment failed")
	}
}
