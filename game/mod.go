package game

// State is a canonicalized game position, always seen from the perspective of
// the player to move. Implementations must be immutable: Apply returns a new
// State and never mutates the receiver.
type State interface {
	// Key returns a collision-resistant identifier for the position, used to
	// join all per-position search statistics.
	Key() string
	// ActionSize returns the size of the fixed action space. Every State of
	// one game reports the same size, and the action ordering is shared with
	// the evaluator.
	ActionSize() int
	// LegalMask marks which actions in the fixed ordering are playable.
	LegalMask() []bool
	// Outcome reports the game result from the mover's perspective: 0 while
	// the game is ongoing, otherwise a value in [-1, 1]. Forced draws may be
	// reported as a small nonzero epsilon so search treats them as resolved.
	Outcome() float64
	// Apply plays a legal action and returns the successor position,
	// canonicalized to the next mover's perspective.
	Apply(action int) State
	// Encode returns the network-input encoding of the position.
	Encode() []float32
}

// Observer derives the observation the evaluator sees for a position.
// Perfect-information variants use State.Encode directly; variants with
// hidden information (e.g. dark chess) substitute a filtered view.
type Observer func(State) []float32

// Observe is the default Observer.
func Observe(s State) []float32 {
	return s.Encode()
}

// Evaluator estimates a position: a prior probability over the action space
// and a scalar value in [-1, 1] from the mover's perspective. Predict must be
// free of side effects on the caller; it may be slow (network, accelerator).
type Evaluator interface {
	Predict(obs []float32) (policy []float64, value float64, err error)
}

// EvaluatorFunc adapts a plain function to the Evaluator interface.
type EvaluatorFunc func(obs []float32) ([]float64, float64, error)

func (f EvaluatorFunc) Predict(obs []float32) ([]float64, float64, error) {
	return f(obs)
}
