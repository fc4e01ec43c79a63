package evaluator

import "minichess/game"

type uniformEvaluator struct {
	actionSize int
}

// NewUniform returns an evaluator with no knowledge of the game: a uniform
// prior over the full action space and a value of zero. Useful as a baseline
// and for search before any network has been trained.
func NewUniform(actionSize int) game.Evaluator {
	if actionSize <= 0 {
		panic("evaluator: action size must be positive")
	}
	return uniformEvaluator{actionSize: actionSize}
}

func (e uniformEvaluator) Predict(obs []float32) ([]float64, float64, error) {
	policy := make([]float64, e.actionSize)
	for a := range policy {
		policy[a] = 1 / float64(e.actionSize)
	}
	return policy, 0, nil
}
