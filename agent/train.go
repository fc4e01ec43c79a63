package agent

import (
	"golang.org/x/exp/rand"

	"minichess/game"
	"minichess/searcher"
)

type trainingAgent struct {
	mcts        *searcher.MCTS
	temperature float64
	rng         *rand.Rand
}

// NewTrainingAgent returns an agent for self-play: it samples its action from
// the temperature-adjusted visit-count distribution so play stays varied.
func NewTrainingAgent(mcts *searcher.MCTS, temperature float64, seed uint64) Agent {
	// TODO: apply a temperature schedule as self-play progresses
	return trainingAgent{
		mcts:        mcts,
		temperature: temperature,
		rng:         rand.New(rand.NewSource(seed)),
	}
}

func (a trainingAgent) SelectAction(state game.State) (int, searcher.SearchMetric, error) {
	policy, metric, err := a.mcts.Policy(state, a.temperature)
	if err != nil {
		return 0, metric, err
	}
	return a.sample(policy), metric, nil
}

func (a trainingAgent) sample(policy []float64) int {
	sampled := a.rng.Float64()
	cumulative := 0.0
	last := 0
	for action, prob := range policy {
		if prob == 0 {
			continue
		}
		last = action
		cumulative += prob
		if sampled < cumulative {
			return action
		}
	}
	return last // Fallback in case of rounding errors
}
