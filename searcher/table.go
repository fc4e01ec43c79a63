package searcher

// node carries the search statistics for one canonical position. Entries are
// created lazily on first contact and only ever accumulate; a table lives for
// one search run or, when reused between moves, one game.
type node struct {
	// outcome caches the game result for the position: 0 while unresolved,
	// otherwise a terminal value (or the depth-cutoff sentinel) from the
	// mover's perspective. resolved distinguishes "known ongoing" from
	// "never checked".
	outcome  float64
	resolved bool

	// Expansion-time statistics. prior is the evaluator policy masked to
	// legal actions and renormalized; both are set exactly once.
	prior []float64
	legal []bool

	// visits counts traversals of this node as an internal node and always
	// equals the sum of edgeVisits.
	visits     int
	edgeVisits []int
	edgeValues []float64 // running mean, defined only where edgeVisits > 0
}

// expanded reports whether the node has recorded a prior policy, i.e. it has
// been visited as a leaf before.
func (n *node) expanded() bool {
	return n.prior != nil
}

// expand records the masked prior and legality for the position and
// initializes the edge statistics.
func (n *node) expand(prior []float64, legal []bool) {
	n.prior = prior
	n.legal = legal
	n.visits = 0
	n.edgeVisits = make([]int, len(prior))
	n.edgeValues = make([]float64, len(prior))
}

// backup folds a simulated value into the running mean for edge a and bumps
// the visit counters.
func (n *node) backup(a int, v float64) {
	if n.edgeVisits[a] > 0 {
		n.edgeValues[a] = (float64(n.edgeVisits[a])*n.edgeValues[a] + v) /
			float64(n.edgeVisits[a]+1)
	} else {
		n.edgeValues[a] = v
	}
	n.edgeVisits[a]++
	n.visits++
}

// table stores per-position statistics keyed by canonical position key.
type table struct {
	nodes map[string]*node
}

func newTable() *table {
	return &table{nodes: make(map[string]*node)}
}

// lookup returns the statistics entry for a key, creating an empty one on
// first contact.
func (t *table) lookup(key string) *node {
	n, ok := t.nodes[key]
	if !ok {
		n = &node{}
		t.nodes[key] = n
	}
	return n
}

func (t *table) size() int {
	return len(t.nodes)
}
