package searcher

import (
	"fmt"

	"minichess/game"
)

// mockGame is a scripted game graph for driving the searcher without a real
// rules engine. Positions are declared up front and looked up by key.
type mockGame struct {
	size      int
	positions map[string]mockPosition
}

type mockPosition struct {
	legal   []bool
	outcome float64
	next    map[int]string // action -> successor key
}

func (g *mockGame) state(key string) mockState {
	if _, ok := g.positions[key]; !ok {
		panic(fmt.Sprintf("mockGame: unknown position %q", key))
	}
	return mockState{game: g, key: key}
}

type mockState struct {
	game *mockGame
	key  string
}

func (s mockState) Key() string       { return s.key }
func (s mockState) ActionSize() int   { return s.game.size }
func (s mockState) LegalMask() []bool { return s.game.positions[s.key].legal }
func (s mockState) Outcome() float64  { return s.game.positions[s.key].outcome }

func (s mockState) Apply(action int) game.State {
	next, ok := s.game.positions[s.key].next[action]
	if !ok {
		panic(fmt.Sprintf("mockGame: no successor for action %d at %q", action, s.key))
	}
	return s.game.state(next)
}

func (s mockState) Encode() []float32 {
	encoded := make([]float32, len(s.key))
	for i := range s.key {
		encoded[i] = float32(s.key[i])
	}
	return encoded
}

// uniformEvaluator returns an evaluator with a flat prior and fixed value.
func uniformEvaluator(size int, value float64) game.Evaluator {
	policy := make([]float64, size)
	for a := range policy {
		policy[a] = 1 / float64(size)
	}
	return constEvaluator(policy, value)
}

// constEvaluator always returns the given policy and value.
func constEvaluator(policy []float64, value float64) game.Evaluator {
	return game.EvaluatorFunc(func([]float32) ([]float64, float64, error) {
		return policy, value, nil
	})
}

// threeChoiceGame returns a symmetric root with three legal actions, each
// leading to an immediate draw-valued terminal position.
func threeChoiceGame() *mockGame {
	return &mockGame{
		size: 4,
		positions: map[string]mockPosition{
			"root": {
				legal: []bool{true, true, true, false},
				next:  map[int]string{0: "t0", 1: "t1", 2: "t2"},
			},
			"t0": {outcome: 1e-4, legal: []bool{false, false, false, false}},
			"t1": {outcome: 1e-4, legal: []bool{false, false, false, false}},
			"t2": {outcome: 1e-4, legal: []bool{false, false, false, false}},
		},
	}
}
