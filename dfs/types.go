// Package dfs defines options, hooks and errors for depth-bounded,
// explicit-stack depth-first search.
package dfs

import (
	"errors"

	"github.com/katalvlaran/deepsearch/space"
)

var (
	// ErrSpaceNil is returned when a nil state space is passed to New.
	ErrSpaceNil = errors.New("dfs: state space is nil")

	// ErrSessionNil is returned when a nil session is passed to New.
	ErrSessionNil = errors.New("dfs: session is nil")
)

// Option configures optional behavior of DFS traversal.
type Option[S comparable] func(*DFSOptions[S])

// DFSOptions holds the traversal hooks. All hooks are optional.
type DFSOptions[S comparable] struct {
	// OnVisit is invoked for each freshly counted state, after it is recorded
	// in the DFS ledger and before it is goal-tested. depth is its distance
	// from the root of the current Search.
	OnVisit func(n space.Node[S], depth int)

	// OnPush is invoked when a frame is pushed; depth is the distance of the
	// neighbors the frame will hand out.
	OnPush func(n space.Node[S], depth int)

	// OnPop is invoked when a frame with no pending neighbors is popped.
	OnPop func(n space.Node[S], depth int)
}

// DefaultOptions returns DFSOptions with no-op hooks.
func DefaultOptions[S comparable]() DFSOptions[S] {
	return DFSOptions[S]{
		OnVisit: func(space.Node[S], int) {},
		OnPush:  func(space.Node[S], int) {},
		OnPop:   func(space.Node[S], int) {},
	}
}

// WithOnVisit installs fn as the fresh-visit hook.
func WithOnVisit[S comparable](fn func(n space.Node[S], depth int)) Option[S] {
	return func(o *DFSOptions[S]) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithOnPush installs fn as the frame-push hook.
func WithOnPush[S comparable](fn func(n space.Node[S], depth int)) Option[S] {
	return func(o *DFSOptions[S]) {
		if fn != nil {
			o.OnPush = fn
		}
	}
}

// WithOnPop installs fn as the frame-pop hook.
func WithOnPop[S comparable](fn func(n space.Node[S], depth int)) Option[S] {
	return func(o *DFSOptions[S]) {
		if fn != nil {
			o.OnPop = fn
		}
	}
}
