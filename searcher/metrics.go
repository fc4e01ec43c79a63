package searcher

import (
	"sync/atomic"
	"time"
)

// SearchMetric summarizes one Policy call.
type SearchMetric struct {
	Duration        time.Duration
	Simulations     int
	Expansions      int
	TerminalHits    int
	DepthCutoffs    int
	EvaluatorCalls  int
	PolicyFallbacks int // leaves where the masked prior summed to zero
	TreeSize        int
}

// Collector accumulates search statistics across the simulations of one
// Policy call.
type Collector interface {
	Start()
	AddSimulation()
	AddExpansion()
	AddTerminalHit()
	AddDepthCutoff()
	AddEvaluatorCall()
	AddPolicyFallback()
	Complete(treeSize int) SearchMetric
}

type collector struct {
	startTime       time.Time
	simulations     atomic.Int64
	expansions      atomic.Int64
	terminalHits    atomic.Int64
	depthCutoffs    atomic.Int64
	evaluatorCalls  atomic.Int64
	policyFallbacks atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (c *collector) Start() {
	c.startTime = time.Now()
	c.simulations.Store(0)
	c.expansions.Store(0)
	c.terminalHits.Store(0)
	c.depthCutoffs.Store(0)
	c.evaluatorCalls.Store(0)
	c.policyFallbacks.Store(0)
}

func (c *collector) AddSimulation()     { c.simulations.Add(1) }
func (c *collector) AddExpansion()      { c.expansions.Add(1) }
func (c *collector) AddTerminalHit()    { c.terminalHits.Add(1) }
func (c *collector) AddDepthCutoff()    { c.depthCutoffs.Add(1) }
func (c *collector) AddEvaluatorCall()  { c.evaluatorCalls.Add(1) }
func (c *collector) AddPolicyFallback() { c.policyFallbacks.Add(1) }

func (c *collector) Complete(treeSize int) SearchMetric {
	return SearchMetric{
		Duration:        time.Since(c.startTime),
		Simulations:     int(c.simulations.Load()),
		Expansions:      int(c.expansions.Load()),
		TerminalHits:    int(c.terminalHits.Load()),
		DepthCutoffs:    int(c.depthCutoffs.Load()),
		EvaluatorCalls:  int(c.evaluatorCalls.Load()),
		PolicyFallbacks: int(c.policyFallbacks.Load()),
		TreeSize:        treeSize,
	}
}

type dummyCollector struct{}

// NewDummyCollector returns a Collector that records nothing.
func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (d *dummyCollector) Start()                    {}
func (d *dummyCollector) AddSimulation()            {}
func (d *dummyCollector) AddExpansion()             {}
func (d *dummyCollector) AddTerminalHit()           {}
func (d *dummyCollector) AddDepthCutoff()           {}
func (d *dummyCollector) AddEvaluatorCall()         {}
func (d *dummyCollector) AddPolicyFallback()        {}
func (d *dummyCollector) Complete(int) SearchMetric { return SearchMetric{} }
