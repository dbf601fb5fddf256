// Package dfs implements depth-bounded depth-first search from a single
// root over a space.StateSpace, using an explicit stack of frames so the
// traversal depth is bounded by a slice rather than the goroutine stack.
package dfs

import (
	"github.com/katalvlaran/deepsearch/ledger"
	"github.com/katalvlaran/deepsearch/space"
)

// frame is one level of the explicit stack. depth is the distance from the
// root of the neighbors still pending in the frame.
type frame[S comparable] struct {
	node    space.Node[S]
	depth   int
	pending []space.Neighbor[S]
}

// Walker encapsulates state during DFS.
type Walker[S comparable] struct {
	space   space.StateSpace[S]
	session *ledger.Session[S]
	opts    DFSOptions[S]
	stack   []frame[S]
	onStack map[S]int
}

// New returns a Walker over sp that records into session.
func New[S comparable](sp space.StateSpace[S], session *ledger.Session[S], opts ...Option[S]) (*Walker[S], error) {
	if sp == nil {
		return nil, ErrSpaceNil
	}
	if session == nil {
		return nil, ErrSessionNil
	}
	o := DefaultOptions[S]()
	for _, opt := range opts {
		opt(&o)
	}

	return &Walker[S]{
		space:   sp,
		session: session,
		opts:    o,
		onStack: make(map[S]int),
	}, nil
}

// Search explores from root down to maxDepth transitions. root itself is
// neither counted nor goal-tested.
//
// A neighbor whose state is in the BFS ledger is never entered. A neighbor
// already in the DFS ledger is not counted or re-tested again, but is still
// descended through so deeper rounds can reach past it. Every other neighbor
// is counted against the budget, recorded in the DFS ledger and goal-tested.
// Neighbors at maxDepth are tested but not expanded, and a state already on
// the stack is never expanded a second time.
func (w *Walker[S]) Search(root space.Node[S], maxDepth int) (*space.Node[S], space.Verdict) {
	w.reset()
	defer w.reset()
	if maxDepth < 1 {
		return nil, space.NoSolution
	}

	budget := w.session.Budget
	w.push(root, 1)
	for len(w.stack) > 0 {
		top := &w.stack[len(w.stack)-1]
		if len(top.pending) == 0 {
			w.pop()
			continue
		}
		nb := top.pending[0]
		top.pending = top.pending[1:]
		depth := top.depth

		if w.session.BFS.Contains(nb.State) {
			continue
		}
		child := top.node.Child(nb)
		if !w.session.DFS.Contains(nb.State) {
			if !budget.Consume() {
				return nil, space.Inconclusive
			}
			w.session.DFS.Record(child)
			w.opts.OnVisit(child, depth)
			if w.space.GoalTest(child.State) {
				return &child, space.Found
			}
		}
		if depth < maxDepth && w.onStack[nb.State] == 0 {
			w.push(child, depth+1)
		}
	}

	return nil, space.NoSolution
}

// push opens a frame for n whose neighbors sit at depth.
func (w *Walker[S]) push(n space.Node[S], depth int) {
	w.stack = append(w.stack, frame[S]{node: n, depth: depth, pending: w.space.Neighbors(n.State)})
	w.onStack[n.State]++
	w.opts.OnPush(n, depth)
}

// pop discards the top frame.
func (w *Walker[S]) pop() {
	f := w.stack[len(w.stack)-1]
	w.stack = w.stack[:len(w.stack)-1]
	if w.onStack[f.node.State]--; w.onStack[f.node.State] == 0 {
		delete(w.onStack, f.node.State)
	}
	w.opts.OnPop(f.node, f.depth)
}

// reset empties the stack between searches.
func (w *Walker[S]) reset() {
	clear(w.stack)
	w.stack = w.stack[:0]
	clear(w.onStack)
}
