package agent

import (
	"testing"

	"github.com/stretchr/testify/require"

	"minichess/evaluator"
	"minichess/game/tictactoe"
	"minichess/searcher"
)

func TestEvaluationAgent(t *testing.T) {
	t.Run("plays a legal opening on an empty board", func(t *testing.T) {
		mcts := searcher.NewMCTS(evaluator.NewUniform(tictactoe.ActionSize),
			searcher.WithSimulations(100))
		a := NewEvaluationAgent(mcts)

		action, _, err := a.SelectAction(tictactoe.New())

		require.NoError(t, err)
		require.GreaterOrEqual(t, action, 0)
		require.Less(t, action, tictactoe.ActionSize)
	})

	t.Run("picks the immediate win", func(t *testing.T) {
		// Mover (x) wins by completing the top row at cell 2
		state := tictactoe.FromCells([]int8{
			1, 1, 0,
			-1, -1, 0,
			0, 0, 0,
		})
		mcts := searcher.NewMCTS(evaluator.NewUniform(tictactoe.ActionSize),
			searcher.WithSimulations(200))
		a := NewEvaluationAgent(mcts)

		action, _, err := a.SelectAction(state)

		require.NoError(t, err)
		require.Equal(t, 2, action)
	})
}

func TestTrainingAgent(t *testing.T) {
	t.Run("samples only legal actions", func(t *testing.T) {
		state := tictactoe.FromCells([]int8{
			1, -1, 1,
			-1, 1, -1,
			0, 0, 0,
		})
		mcts := searcher.NewMCTS(evaluator.NewUniform(tictactoe.ActionSize),
			searcher.WithSimulations(50))
		a := NewTrainingAgent(mcts, 1.0, 42)

		for i := 0; i < 20; i++ {
			action, _, err := a.SelectAction(state)
			require.NoError(t, err)
			require.Contains(t, []int{6, 7, 8}, action,
				"Sampled actions must be legal")
		}
	})

	t.Run("is deterministic at temperature zero", func(t *testing.T) {
		play := func() int {
			mcts := searcher.NewMCTS(evaluator.NewUniform(tictactoe.ActionSize),
				searcher.WithSimulations(100))
			a := NewTrainingAgent(mcts, 0, 7)
			action, _, err := a.SelectAction(tictactoe.New())
			require.NoError(t, err)
			return action
		}

		require.Equal(t, play(), play(),
			"A one-hot policy leaves nothing to sample")
	})
}

func TestArgmax(t *testing.T) {
	t.Run("returns the lowest index on ties", func(t *testing.T) {
		require.Equal(t, 1, argmax([]float64{0.1, 0.4, 0.4, 0.1}))
	})
}
