// Package bfs provides tunable options and error definitions
// for frontier-bounded breadth-first search over a space.StateSpace.
package bfs

import (
	"errors"

	"github.com/katalvlaran/deepsearch/space"
)

// MaxFrontierCapacity is the ceiling applied to any requested frontier capacity.
const MaxFrontierCapacity = 1 << 20

// Sentinel errors for BFS construction.
var (
	// ErrSpaceNil is returned if a nil state space is passed.
	ErrSpaceNil = errors.New("bfs: state space is nil")

	// ErrSessionNil is returned if a nil session is passed.
	ErrSessionNil = errors.New("bfs: session is nil")

	// ErrOptionViolation is returned when an invalid parameter is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures BFS hooks via functional arguments.
type Option[S comparable] func(*BFSOptions[S])

// BFSOptions holds callbacks observing BFS execution. Hooks must not
// mutate the walker; they exist for tracing and metrics.
type BFSOptions[S comparable] struct {
	// OnEnqueue is called when a node is appended to the tail of the queue.
	OnEnqueue func(n space.Node[S])

	// OnDequeue is called when a node is taken from the head of the queue.
	OnDequeue func(n space.Node[S])

	// OnVisit is called once per freshly counted state, after it is recorded
	// in the BFS ledger and before it is goal-tested.
	OnVisit func(n space.Node[S])

	// OnFrontierExceeded is called when expanding u would overflow the frontier.
	// fresh is the number of unseen neighbors, queued the remaining queue length.
	OnFrontierExceeded func(u space.Node[S], fresh, queued int)
}

// DefaultOptions returns BFSOptions with no-op hooks.
func DefaultOptions[S comparable]() BFSOptions[S] {
	return BFSOptions[S]{
		OnEnqueue:          func(space.Node[S]) {},
		OnDequeue:          func(space.Node[S]) {},
		OnVisit:            func(space.Node[S]) {},
		OnFrontierExceeded: func(space.Node[S], int, int) {},
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue[S comparable](fn func(n space.Node[S])) Option[S] {
	return func(o *BFSOptions[S]) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue[S comparable](fn func(n space.Node[S])) Option[S] {
	return func(o *BFSOptions[S]) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit registers a callback to run for every counted state.
func WithOnVisit[S comparable](fn func(n space.Node[S])) Option[S] {
	return func(o *BFSOptions[S]) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithOnFrontierExceeded registers a callback to run when the frontier bound stops BFS.
func WithOnFrontierExceeded[S comparable](fn func(u space.Node[S], fresh, queued int)) Option[S] {
	return func(o *BFSOptions[S]) {
		if fn != nil {
			o.OnFrontierExceeded = fn
		}
	}
}
