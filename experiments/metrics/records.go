package metrics

import "minichess/engine"

// AgentConfig identifies one searcher configuration under test.
type AgentConfig struct {
	ID          int
	Simulations int
	MaxDepth    int
	CPuct       float64
	Temperature float64
}

// GameRecord summarizes one completed game between two configured agents.
type GameRecord struct {
	ID     int
	Agent1 int // AgentConfig.ID
	Agent2 int // AgentConfig.ID
	Winner int // 0, 1 or engine.NoWinner
	Plies  int
}

// MoveRecord ties one move's search metrics back to its game.
type MoveRecord struct {
	Game int // GameRecord.ID
	engine.MoveMetric
}
