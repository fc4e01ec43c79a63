// Package experiments pits searcher configurations against each other over
// many games and records the results for offline analysis.
package experiments

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"minichess/agent"
	"minichess/engine"
	"minichess/evaluator"
	"minichess/experiments/metrics"
	"minichess/game"
	"minichess/game/tictactoe"
	"minichess/searcher"
)

// Settings controls one experiment run.
type Settings struct {
	Games      int // Per matchup
	Goroutines int // Concurrent games
	OutputDir  string
	Evaluate   game.Evaluator // nil selects the uniform evaluator
}

// RunStrengthExperiment plays a range of simulation budgets against a
// baseline budget and writes game and move records as CSV.
func RunStrengthExperiment(settings Settings) error {
	baseline := metrics.AgentConfig{ID: 0, Simulations: 25, MaxDepth: 50, CPuct: 1.0, Temperature: 1.0}
	configs := []metrics.AgentConfig{
		{ID: 1, Simulations: 25, MaxDepth: 50, CPuct: 1.0, Temperature: 1.0}, // Baseline equivalent
		{ID: 2, Simulations: 50, MaxDepth: 50, CPuct: 1.0, Temperature: 1.0},
		{ID: 3, Simulations: 100, MaxDepth: 50, CPuct: 1.0, Temperature: 1.0},
		{ID: 4, Simulations: 200, MaxDepth: 50, CPuct: 1.0, Temperature: 1.0},
	}

	// Each matchup pairs the baseline agent against a candidate
	matchUps := [][2]metrics.AgentConfig{}
	for _, config := range configs {
		matchUps = append(matchUps, [2]metrics.AgentConfig{baseline, config})
	}

	writer, err := metrics.NewWriter(settings.OutputDir)
	if err != nil {
		return fmt.Errorf("creating experiment writer: %w", err)
	}
	if err := writer.WriteAgentConfigs(append(configs, baseline)); err != nil {
		return fmt.Errorf("storing agent configs: %w", err)
	}

	log.Info().Int("games", settings.Games).Msg("starting strength experiment")

	var mu sync.Mutex
	var gameRecords []metrics.GameRecord
	var moveRecords []metrics.MoveRecord
	count := 0

	var g errgroup.Group
	g.SetLimit(settings.Goroutines)

	for _, matchUp := range matchUps {
		config1, config2 := matchUp[0], matchUp[1]
		for i := 0; i < settings.Games; i++ {
			seed := uint64(i)
			g.Go(func() error {
				winner, plies, moves, err := runGame(config1, config2, settings.Evaluate, seed)
				if err != nil {
					return err
				}

				mu.Lock()
				defer mu.Unlock()
				count++
				gameRecords = append(gameRecords, metrics.GameRecord{
					ID:     count,
					Agent1: config1.ID,
					Agent2: config2.ID,
					Winner: winner,
					Plies:  plies,
				})
				for _, move := range moves {
					moveRecords = append(moveRecords, metrics.MoveRecord{
						Game:       count,
						MoveMetric: move,
					})
				}
				return nil
			})
		}
	}

	if err := g.Wait(); err != nil {
		return fmt.Errorf("running games: %w", err)
	}

	log.Info().Int("games", count).Str("dir", writer.Dir()).Msg("completed strength experiment")

	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return fmt.Errorf("writing game records: %w", err)
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return fmt.Errorf("writing move records: %w", err)
	}
	return nil
}

// runGame executes a single game between two configured agents and returns
// the winner.
func runGame(config1, config2 metrics.AgentConfig, evaluate game.Evaluator, seed uint64) (int, int, []engine.MoveMetric, error) {
	if evaluate == nil {
		evaluate = evaluator.NewUniform(tictactoe.ActionSize)
	}

	first := agent.NewTrainingAgent(createMCTS(config1, evaluate), config1.Temperature, seed*2)
	second := agent.NewTrainingAgent(createMCTS(config2, evaluate), config2.Temperature, seed*2+1)

	e := engine.NewLocal(first, second, tictactoe.New())
	return e.Run()
}

func createMCTS(config metrics.AgentConfig, evaluate game.Evaluator) *searcher.MCTS {
	options := []searcher.Option{
		searcher.WithSimulations(config.Simulations),
		searcher.WithMetrics(),
	}
	if config.MaxDepth > 0 {
		options = append(options, searcher.WithMaxDepth(config.MaxDepth))
	}
	if config.CPuct > 0 {
		options = append(options, searcher.WithCPuct(config.CPuct))
	}
	return searcher.NewMCTS(evaluate, options...)
}
