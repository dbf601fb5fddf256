// Package iddfs drives repeated depth-bounded DFS from a set of seed nodes
// with increasing depth bounds until a goal is found, the exploration budget
// runs out, or a round adds no new state (a fixed point).
//
// The fixed point is a proof: when a full round at depth d visits nothing
// new, no state within d transitions of any seed is unknown, so the whole
// component reachable from the seeds has been exhausted without a goal.
// Reaching the total capacity ends the run as Inconclusive first.
package iddfs

import (
	"github.com/katalvlaran/deepsearch/dfs"
	"github.com/katalvlaran/deepsearch/ledger"
	"github.com/katalvlaran/deepsearch/space"
)

// Driver runs iterative deepening over a dfs.Walker.
type Driver[S comparable] struct {
	walker  *dfs.Walker[S]
	session *ledger.Session[S]
	opts    Options
	rounds  int
}

// New returns a Driver using w, which must record into session.
func New[S comparable](w *dfs.Walker[S], session *ledger.Session[S], opts ...Option) (*Driver[S], error) {
	if w == nil {
		return nil, ErrWalkerNil
	}
	if session == nil {
		return nil, ErrSessionNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	return &Driver[S]{walker: w, session: session, opts: o}, nil
}

// Rounds returns the number of rounds completed or cut short by the last Run.
func (d *Driver[S]) Rounds() int { return d.rounds }

// Run deepens from every seed, in order, starting at depth 1.
// An empty seed list is already a fixed point and yields NoSolution.
// A spent total budget yields Inconclusive before any further round starts,
// even when that round could find nothing new.
func (d *Driver[S]) Run(seeds []space.Node[S]) (*space.Node[S], space.Verdict) {
	d.rounds = 0
	if len(seeds) == 0 {
		return nil, space.NoSolution
	}

	budget := d.session.Budget
	for depth := 1; ; depth++ {
		if budget.Exhausted() {
			return nil, space.Inconclusive
		}
		if d.opts.MaxRounds > 0 && depth > d.opts.MaxRounds {
			return nil, space.Inconclusive
		}
		d.rounds++
		before := budget.Visited()
		for _, seed := range seeds {
			node, verdict := d.walker.Search(seed, depth)
			if verdict != space.NoSolution {
				return node, verdict
			}
		}
		d.opts.OnRound(depth, budget.Visited())
		if budget.Visited() == before {
			return nil, space.NoSolution
		}
	}
}
