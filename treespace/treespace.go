// Package treespace provides an implicit complete k-ary tree as a
// space.StateSpace[int], numbered in level order from 0.
//
// Node n has children k*n+1 .. k*n+k (those below Size), reached through
// transitions 0 .. k-1. It is the reference space for benchmarks, examples
// and budget scenarios: a 15-node binary tree searched for 10 with frontier
// capacity 8 visits exactly ten states.
package treespace

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/deepsearch/space"
)

// NoGoal makes GoalTest reject every node.
const NoGoal = -1

// ErrBadShape is returned for non-positive size or branching.
var ErrBadShape = errors.New("treespace: size and branching must be positive")

// Tree is an implicit complete k-ary tree.
type Tree struct {
	size      int
	branching int
	goal      int
}

// New returns a tree of size nodes with the given branching factor whose
// goal is node goal (NoGoal for none).
func New(size, branching, goal int) (*Tree, error) {
	if size <= 0 || branching <= 0 {
		return nil, fmt.Errorf("%w: size=%d branching=%d", ErrBadShape, size, branching)
	}

	return &Tree{size: size, branching: branching, goal: goal}, nil
}

// Size returns the number of nodes.
func (t *Tree) Size() int { return t.size }

// StartState returns the root, 0.
func (t *Tree) StartState() int { return 0 }

// Neighbors returns the children of n in transition order.
func (t *Tree) Neighbors(n int) []space.Neighbor[int] {
	out := make([]space.Neighbor[int], 0, t.branching)
	for i := 0; i < t.branching; i++ {
		c := t.branching*n + 1 + i
		if c >= t.size {
			break
		}
		out = append(out, space.Neighbor[int]{ID: space.TransitionID(i), State: c})
	}

	return out
}

// GoalTest reports whether n is the goal node.
func (t *Tree) GoalTest(n int) bool { return n == t.goal }
