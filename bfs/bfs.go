// Package bfs provides frontier-bounded breadth-first search over a
// space.StateSpace, sharing its ledgers and exploration budget with the
// rest of a search run through a ledger.Session.
//
// BFS explores states level by level and aborts (rather than fails) when
// the queue would grow past its frontier capacity.
package bfs

import (
	"fmt"

	"github.com/katalvlaran/deepsearch/ledger"
	"github.com/katalvlaran/deepsearch/space"
)

// Walker encapsulates mutable BFS state. The queue survives an aborted
// search so that Frontier and Resume can pick up exactly where it stopped.
type Walker[S comparable] struct {
	space    space.StateSpace[S]
	session  *ledger.Session[S]
	opts     BFSOptions[S]
	capacity int
	queue    []space.Node[S]
}

// New returns a Walker over sp that records into session and never holds
// more than frontierCapacity queued nodes. frontierCapacity is clamped to
// MaxFrontierCapacity; a negative value is an ErrOptionViolation.
func New[S comparable](
	sp space.StateSpace[S],
	session *ledger.Session[S],
	frontierCapacity int,
	opts ...Option[S],
) (*Walker[S], error) {
	if sp == nil {
		return nil, ErrSpaceNil
	}
	if session == nil {
		return nil, ErrSessionNil
	}
	if frontierCapacity < 0 {
		return nil, fmt.Errorf("%w: frontier capacity cannot be negative (%d)", ErrOptionViolation, frontierCapacity)
	}
	o := DefaultOptions[S]()
	for _, opt := range opts {
		opt(&o)
	}

	return &Walker[S]{
		space:    sp,
		session:  session,
		opts:     o,
		capacity: min(frontierCapacity, MaxFrontierCapacity),
	}, nil
}

// Capacity returns the effective (clamped) frontier capacity.
func (w *Walker[S]) Capacity() int { return w.capacity }

// Search seeds the queue with seeds (default: the start state with an empty
// path) and runs until a goal is found, the queue empties, or a budget stops it.
func (w *Walker[S]) Search(seeds ...space.Node[S]) (*space.Node[S], space.Verdict) {
	if len(seeds) == 0 {
		seeds = []space.Node[S]{space.Root(w.space.StartState())}
	}
	w.queue = make([]space.Node[S], 0, len(seeds))
	for _, s := range seeds {
		w.enqueue(s)
	}

	return w.loop()
}

// Resume continues from the residual queue of an earlier Search.
func (w *Walker[S]) Resume() (*space.Node[S], space.Verdict) {
	return w.loop()
}

// Frontier returns a copy of the queued nodes, oldest first.
func (w *Walker[S]) Frontier() []space.Node[S] {
	out := make([]space.Node[S], len(w.queue))
	copy(out, w.queue)

	return out
}

// loop processes the queue until it empties, a goal appears, or a budget stops it.
func (w *Walker[S]) loop() (*space.Node[S], space.Verdict) {
	budget := w.session.Budget
	for len(w.queue) > 0 {
		if budget.Exhausted() {
			return nil, space.Inconclusive
		}

		u := w.dequeue()
		fresh := w.freshNeighbors(u)
		if len(fresh)+len(w.queue) > w.capacity {
			w.requeue(u)
			w.opts.OnFrontierExceeded(u, len(fresh), len(w.queue)-1)

			return nil, space.Inconclusive
		}

		for _, v := range fresh {
			if !budget.Consume() {
				// u is only partly expanded; keep it so no neighbor is lost.
				w.requeue(u)

				return nil, space.Inconclusive
			}
			w.session.BFS.Record(v)
			w.opts.OnVisit(v)
			if w.space.GoalTest(v.State) {
				return &v, space.Found
			}
			w.enqueue(v)
		}
	}

	return nil, space.NoSolution
}

// freshNeighbors returns the children of u whose state is absent from the
// BFS ledger, in transition order, without duplicates.
func (w *Walker[S]) freshNeighbors(u space.Node[S]) []space.Node[S] {
	nbs := w.space.Neighbors(u.State)
	fresh := make([]space.Node[S], 0, len(nbs))
	batch := make(map[S]struct{}, len(nbs))
	for _, nb := range nbs {
		if w.session.BFS.Contains(nb.State) {
			continue
		}
		if _, dup := batch[nb.State]; dup {
			continue
		}
		batch[nb.State] = struct{}{}
		fresh = append(fresh, u.Child(nb))
	}

	return fresh
}

// enqueue appends n to the tail of the queue.
func (w *Walker[S]) enqueue(n space.Node[S]) {
	w.opts.OnEnqueue(n)
	w.queue = append(w.queue, n)
}

// dequeue pops the head of the queue.
func (w *Walker[S]) dequeue() space.Node[S] {
	n := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(n)

	return n
}

// requeue undoes a dequeue by putting u back at the head of the queue.
func (w *Walker[S]) requeue(u space.Node[S]) {
	w.queue = append(w.queue, space.Node[S]{})
	copy(w.queue[1:], w.queue[:len(w.queue)-1])
	w.queue[0] = u
}
