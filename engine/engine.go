package engine

import "minichess/searcher"

// MaxPlies bounds a game that never reaches a terminal position.
const MaxPlies = 500

// NoWinner marks a drawn or aborted game.
const NoWinner = -1

// MoveMetric records one move of a completed game.
type MoveMetric struct {
	Ply    int
	Player int // 0 or 1
	Action int
	searcher.SearchMetric
}

// Engine runs a game until there is a winner or a maximum number of plies is
// reached.
type Engine interface {
	Run() (winner int, plies int, moves []MoveMetric, err error)
}
