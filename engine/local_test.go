package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"minichess/agent"
	"minichess/evaluator"
	"minichess/game/tictactoe"
	"minichess/searcher"
)

func newTestAgent(simulations int) agent.Agent {
	mcts := searcher.NewMCTS(evaluator.NewUniform(tictactoe.ActionSize),
		searcher.WithSimulations(simulations), searcher.WithMetrics())
	return agent.NewEvaluationAgent(mcts)
}

func TestLocalRun(t *testing.T) {
	t.Run("plays a full game to a terminal position", func(t *testing.T) {
		e := NewLocal(newTestAgent(50), newTestAgent(50), tictactoe.New())

		winner, plies, moves, err := e.Run()

		require.NoError(t, err)
		require.Contains(t, []int{NoWinner, 0, 1}, winner)
		require.LessOrEqual(t, plies, tictactoe.ActionSize,
			"Tic-tac-toe never exceeds nine plies")
		require.Len(t, moves, plies, "One move record per ply")
		require.NotZero(t, e.state.Outcome(), "The final position should be terminal")
	})

	t.Run("alternates movers and records search metrics", func(t *testing.T) {
		e := NewLocal(newTestAgent(25), newTestAgent(25), tictactoe.New())

		_, _, moves, err := e.Run()

		require.NoError(t, err)
		for i, move := range moves {
			require.Equal(t, i, move.Ply)
			require.Equal(t, i%2, move.Player)
			require.Equal(t, 25, move.Simulations)
		}
	})

	t.Run("panics without two agents", func(t *testing.T) {
		require.Panics(t, func() {
			NewLocal(newTestAgent(1), nil, tictactoe.New())
		})
	})
}
