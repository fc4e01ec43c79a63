package agent

import (
	"minichess/game"
	"minichess/searcher"
)

// Agent selects an action to play at a position, returning performance
// metrics from the underlying search (if collected).
type Agent interface {
	SelectAction(state game.State) (int, searcher.SearchMetric, error)
}
