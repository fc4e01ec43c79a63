package engine

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"minichess/agent"
	"minichess/game"
)

// Local plays out one game between two agents in-process. States are
// canonical (always from the mover's perspective), so the agent to move is
// simply the parity of the ply count.
type Local struct {
	agents [2]agent.Agent
	state  game.State
}

func NewLocal(first, second agent.Agent, initial game.State) *Local {
	if first == nil || second == nil {
		panic("engine: need two agents")
	}
	return &Local{
		agents: [2]agent.Agent{first, second},
		state:  initial,
	}
}

// Run executes the game loop until a terminal position or MaxPlies.
func (e *Local) Run() (int, int, []MoveMetric, error) {
	var moves []MoveMetric

	plies := 0
	for e.state.Outcome() == 0 && plies < MaxPlies {
		mover := plies % 2

		action, metric, err := e.agents[mover].SelectAction(e.state)
		if err != nil {
			return NoWinner, plies, moves, fmt.Errorf("player %d move %d: %w", mover, plies, err)
		}
		moves = append(moves, MoveMetric{
			Ply:          plies,
			Player:       mover,
			Action:       action,
			SearchMetric: metric,
		})

		e.state = e.state.Apply(action)
		plies++
	}

	winner := e.winner(plies)
	log.Debug().Int("winner", winner).Int("plies", plies).Msg("game over")
	return winner, plies, moves, nil
}

// winner interprets the final outcome. The outcome is reported from the
// perspective of the player to move after the last ply; draw epsilons and
// ply-limit exhaustion yield NoWinner.
func (e *Local) winner(plies int) int {
	outcome := e.state.Outcome()
	mover := plies % 2
	switch {
	case outcome >= 0.5:
		return mover
	case outcome <= -0.5:
		return 1 - mover
	default:
		return NoWinner
	}
}

var _ Engine = (*Local)(nil)
