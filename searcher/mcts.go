package searcher

import (
	"fmt"
	"math"

	"github.com/rs/zerolog/log"
	"gonum.org/v1/gonum/floats"

	"minichess/game"
)

// Hyperparameter defaults for the searcher.
const (
	DefaultSimulations = 100 // Simulated playouts per move decision
	DefaultMaxDepth    = 100 // Recursion guard against cyclic lines
	DefaultCPuct       = 1.0 // Exploration-exploitation trade-off

	// eps keeps the selection score of unvisited edges nonzero when the
	// parent itself has no visits yet, so the prior can still break ties.
	eps = 1e-8

	// cutoffValue resolves a line that hits the depth guard. A small penalty
	// rather than a true draw, discouraging long or looping lines.
	cutoffValue = 1e-4
)

type Option func(m *MCTS)

// WithSimulations sets the per-decision simulation budget. A nonpositive
// budget runs no simulations: Policy answers from whatever statistics the
// tree already holds.
func WithSimulations(simulations int) Option {
	return func(m *MCTS) {
		m.simulations = simulations
	}
}

// WithMaxDepth bounds the recursion depth of a single simulation.
func WithMaxDepth(depth int) Option {
	return func(m *MCTS) {
		if depth > 0 {
			m.maxDepth = depth
		}
	}
}

// WithCPuct sets the exploration constant in the selection score.
func WithCPuct(cPuct float64) Option {
	return func(m *MCTS) {
		if cPuct > 0 {
			m.cPuct = cPuct
		}
	}
}

// WithObserver overrides how positions are presented to the evaluator.
func WithObserver(observe game.Observer) Option {
	return func(m *MCTS) {
		if observe != nil {
			m.observe = observe
		}
	}
}

// WithMetrics enables search metric collection.
func WithMetrics() Option {
	return func(m *MCTS) {
		m.metrics = NewCollector()
	}
}

// MCTS accumulates visit counts, prior policies and running mean values per
// position and per edge, and converts them into a move distribution.
//
// Statistics persist across Policy calls so the tree built for one move is
// reused for the next; call Reset between independent games. An MCTS value
// is not safe for concurrent use: run concurrent searches on separate
// instances.
type MCTS struct {
	evaluate    game.Evaluator
	observe     game.Observer
	simulations int
	maxDepth    int
	cPuct       float64
	tree        *table
	metrics     Collector
}

func NewMCTS(evaluate game.Evaluator, options ...Option) *MCTS {
	if evaluate == nil {
		panic("searcher: evaluator is required")
	}
	m := &MCTS{ // Default values
		evaluate:    evaluate,
		observe:     game.Observe,
		simulations: DefaultSimulations,
		maxDepth:    DefaultMaxDepth,
		cPuct:       DefaultCPuct,
		tree:        newTable(),
		metrics:     NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	return m
}

// Reset discards all accumulated statistics, e.g. between games.
func (m *MCTS) Reset() {
	m.tree = newTable()
}

// Policy runs the configured number of simulated playouts from root and
// converts the root's edge visit counts into a probability distribution over
// the full action space.
//
// At temperature 0 the distribution is one-hot on the most-visited action
// (lowest index wins ties); otherwise counts are raised to 1/temperature and
// renormalized. The output is always a valid distribution with zero mass on
// illegal actions. Evaluator errors abort the search and propagate.
func (m *MCTS) Policy(root game.State, temperature float64) ([]float64, SearchMetric, error) {
	m.metrics.Start()
	for i := 0; i < m.simulations; i++ {
		if _, err := m.simulate(root, 0); err != nil {
			return nil, SearchMetric{}, err
		}
		m.metrics.AddSimulation()
	}
	metric := m.metrics.Complete(m.tree.size())

	return m.distribution(root, temperature), metric, nil
}

// distribution converts root edge visit counts into move probabilities.
func (m *MCTS) distribution(root game.State, temperature float64) []float64 {
	size := root.ActionSize()
	counts := make([]float64, size)
	n := m.tree.lookup(root.Key())
	if n.expanded() {
		for a := 0; a < size; a++ {
			counts[a] = float64(n.edgeVisits[a])
		}
	}

	if floats.Sum(counts) == 0 {
		// Nothing explored (e.g. zero budget on a fresh tree): degrade to
		// uniform over the legal actions.
		legal := n.legal
		if legal == nil {
			legal = root.LegalMask()
		}
		return uniform(legal, size)
	}

	probs := make([]float64, size)
	if temperature == 0 {
		best := 0
		for a := 1; a < size; a++ {
			if counts[a] > counts[best] {
				best = a
			}
		}
		probs[best] = 1
		return probs
	}

	exponent := 1 / temperature
	for a, count := range counts {
		probs[a] = math.Pow(count, exponent)
	}
	floats.Scale(1/floats.Sum(probs), probs)
	return probs
}

func uniform(legal []bool, size int) []float64 {
	probs := make([]float64, size)
	count := 0
	for _, ok := range legal {
		if ok {
			count++
		}
	}
	if count == 0 {
		panic("searcher: no legal actions at root")
	}
	for a, ok := range legal {
		if ok {
			probs[a] = 1 / float64(count)
		}
	}
	return probs
}

// simulate runs one playout from state and returns the resulting value from
// the perspective of the player to move at state's parent (i.e. negated).
//
// Exactly one of four cases applies per call: the depth guard fires, the
// position is terminal, the position is an unexpanded leaf, or the position
// is internal and the playout descends one ply.
func (m *MCTS) simulate(state game.State, depth int) (float64, error) {
	n := m.tree.lookup(state.Key())

	if depth >= m.maxDepth {
		// Resolve looping or over-long lines as a near-draw failure.
		n.outcome = cutoffValue
		n.resolved = true
		m.metrics.AddDepthCutoff()
		return -n.outcome, nil
	}

	if !n.resolved {
		n.outcome = state.Outcome()
		n.resolved = true
	}
	if n.outcome != 0 { // Terminal node
		m.metrics.AddTerminalHit()
		return -n.outcome, nil
	}

	if !n.expanded() { // Leaf node
		value, err := m.expand(n, state)
		if err != nil {
			return 0, err
		}
		return -value, nil
	}

	a := m.selectAction(n)
	value, err := m.simulate(state.Apply(a), depth+1)
	if err != nil {
		return 0, err
	}

	n.backup(a, value)
	return -value, nil
}

// expand queries the evaluator for the leaf's prior policy and value, masks
// the policy to legal actions and stores the renormalized result.
func (m *MCTS) expand(n *node, state game.State) (float64, error) {
	size := state.ActionSize()

	m.metrics.AddEvaluatorCall()
	policy, value, err := m.evaluate.Predict(m.observe(state))
	if err != nil {
		return 0, fmt.Errorf("evaluating position: %w", err)
	}
	if len(policy) != size {
		panic(fmt.Sprintf("searcher: evaluator returned %d action probabilities, want %d",
			len(policy), size))
	}

	legal := state.LegalMask()
	if len(legal) != size {
		panic(fmt.Sprintf("searcher: legal mask has %d actions, want %d", len(legal), size))
	}

	prior := make([]float64, size)
	anyLegal := false
	for a := 0; a < size; a++ {
		if legal[a] {
			prior[a] = policy[a]
			anyLegal = true
		}
	}
	if !anyLegal {
		panic("searcher: no legal actions at a non-terminal position")
	}

	if sum := floats.Sum(prior); sum > 0 {
		floats.Scale(1/sum, prior)
	} else {
		// The evaluator gave every legal action ~zero probability. Degrade to
		// a uniform prior over legal actions. Frequent occurrences usually
		// mean the evaluator is under-trained.
		m.metrics.AddPolicyFallback()
		log.Warn().Msg("all legal actions were masked, falling back to uniform prior")
		for a := 0; a < size; a++ {
			if legal[a] {
				prior[a]++
			}
		}
		floats.Scale(1/floats.Sum(prior), prior)
	}

	n.expand(prior, legal)
	m.metrics.AddExpansion()
	return value, nil
}

// selectAction picks the legal action maximizing the upper-confidence score.
// Strict comparison: on exact ties the lowest-indexed action wins.
func (m *MCTS) selectAction(n *node) int {
	best := -1
	bestScore := math.Inf(-1)
	for a, legal := range n.legal {
		if !legal {
			continue
		}
		var score float64
		if n.edgeVisits[a] > 0 {
			score = n.edgeValues[a] +
				m.cPuct*n.prior[a]*math.Sqrt(float64(n.visits))/float64(1+n.edgeVisits[a])
		} else {
			score = m.cPuct * n.prior[a] * math.Sqrt(float64(n.visits)+eps)
		}
		if score > bestScore {
			bestScore = score
			best = a
		}
	}
	if best < 0 {
		panic("searcher: no legal actions at a non-terminal position")
	}
	return best
}
