package agent

import (
	"minichess/game"
	"minichess/searcher"
)

type evaluationAgent struct {
	mcts *searcher.MCTS
}

// NewEvaluationAgent returns an agent for actual game play: it always plays
// the most-visited action (search at temperature zero).
func NewEvaluationAgent(mcts *searcher.MCTS) Agent {
	return evaluationAgent{mcts: mcts}
}

func (a evaluationAgent) SelectAction(state game.State) (int, searcher.SearchMetric, error) {
	policy, metric, err := a.mcts.Policy(state, 0)
	if err != nil {
		return 0, metric, err
	}
	return argmax(policy), metric, nil
}

func argmax(policy []float64) int {
	best := 0
	for a := 1; a < len(policy); a++ {
		if policy[a] > policy[best] {
			best = a
		}
	}
	return best
}
