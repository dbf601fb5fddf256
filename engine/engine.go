// Package engine orchestrates a hybrid search: frontier-bounded BFS first,
// then iterative-deepening DFS seeded with whatever BFS left in its queue.
package engine

import (
	"github.com/katalvlaran/deepsearch/bfs"
	"github.com/katalvlaran/deepsearch/dfs"
	"github.com/katalvlaran/deepsearch/iddfs"
	"github.com/katalvlaran/deepsearch/internal/logging"
	"github.com/katalvlaran/deepsearch/ledger"
	"github.com/katalvlaran/deepsearch/space"
)

// Engine owns one search run over a read-only state space. Its ledgers and
// budget are never reset; build a new Engine to search again.
// An Engine is not safe for concurrent use.
type Engine[S comparable] struct {
	space   space.StateSpace[S]
	session *ledger.Session[S]
	breadth *bfs.Walker[S]
	depth   *dfs.Walker[S]
	driver  *iddfs.Driver[S]
	opts    Options
	phase   Phase
}

// New builds an Engine over sp.
func New[S comparable](sp space.StateSpace[S], opts ...Option) (*Engine[S], error) {
	if sp == nil {
		return nil, ErrSpaceNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if o.Logger == nil {
		o.Logger = logging.NewNop()
	}

	e := &Engine[S]{space: sp, opts: o}
	var err error
	if e.session, err = ledger.NewSession[S](o.TotalCapacity); err != nil {
		return nil, err
	}
	e.breadth, err = bfs.New(sp, e.session, o.FrontierCapacity,
		bfs.WithOnVisit(func(space.Node[S]) { o.Observer.Visited(PhaseBreadth) }),
		bfs.WithOnFrontierExceeded(func(u space.Node[S], fresh, queued int) {
			o.Observer.FrontierExceeded(queued + 1)
			o.Logger.Debug("engine: frontier exceeded",
				"fresh", fresh, "queued", queued, "capacity", o.FrontierCapacity, "depth", u.Depth())
		}),
	)
	if err != nil {
		return nil, err
	}
	e.depth, err = dfs.New(sp, e.session,
		dfs.WithOnVisit(func(space.Node[S], int) { o.Observer.Visited(PhaseDeepening) }),
	)
	if err != nil {
		return nil, err
	}
	e.driver, err = iddfs.New(e.depth, e.session,
		iddfs.WithMaxRounds(o.MaxRounds),
		iddfs.WithOnRound(func(depth, visited int) {
			o.Observer.Round(depth, visited)
			o.Logger.Debug("engine: deepening round", "depth", depth, "visited", visited)
		}),
	)
	if err != nil {
		return nil, err
	}

	return e, nil
}

// Search runs BFS from the start state. Found and NoSolution are final;
// Inconclusive hands the residual frontier, including the node whose
// expansion overflowed it, to iterative deepening.
func (e *Engine[S]) Search() (*space.Node[S], space.Verdict) {
	log := e.opts.Logger
	log.Debug("engine: search started",
		"frontier_capacity", e.breadth.Capacity(), "total_capacity", e.session.Budget.Capacity())

	node, verdict := e.BFS()
	if verdict == space.Inconclusive {
		seeds := e.breadth.Frontier()
		log.Debug("engine: falling back to iterative deepening",
			"seeds", len(seeds), "visited", e.session.Budget.Visited())
		node, verdict = e.IterativeDeepening(seeds)
	}

	e.phase = PhaseDone
	visited := e.session.Budget.Visited()
	e.opts.Observer.Finished(verdict, visited)
	log.Debug("engine: search finished", "verdict", verdict, "visited", visited, "rounds", e.driver.Rounds())

	return node, verdict
}

// BFS runs only the breadth-first phase from seeds (default: the start state).
func (e *Engine[S]) BFS(seeds ...space.Node[S]) (*space.Node[S], space.Verdict) {
	e.phase = PhaseBreadth

	return e.breadth.Search(seeds...)
}

// DFS runs one depth-bounded search from root against the shared ledgers.
func (e *Engine[S]) DFS(root space.Node[S], maxDepth int) (*space.Node[S], space.Verdict) {
	e.phase = PhaseDeepening

	return e.depth.Search(root, maxDepth)
}

// IterativeDeepening runs the deepening driver from seeds.
func (e *Engine[S]) IterativeDeepening(seeds []space.Node[S]) (*space.Node[S], space.Verdict) {
	e.phase = PhaseDeepening

	return e.driver.Run(seeds)
}

// Frontier returns the residual BFS queue.
func (e *Engine[S]) Frontier() []space.Node[S] { return e.breadth.Frontier() }

// Session exposes the ledgers and budget for introspection.
func (e *Engine[S]) Session() *ledger.Session[S] { return e.session }

// Stats returns a snapshot of the run's bookkeeping.
func (e *Engine[S]) Stats() Stats {
	return Stats{
		Phase:            e.phase,
		Visited:          e.session.Budget.Visited(),
		TotalCapacity:    e.session.Budget.Capacity(),
		FrontierCapacity: e.breadth.Capacity(),
		BFSStates:        e.session.BFS.Len(),
		DFSStates:        e.session.DFS.Len(),
		Frontier:         len(e.breadth.Frontier()),
		Rounds:           e.driver.Rounds(),
	}
}
