package space

import (
	"strconv"
	"strings"
)

// TransitionID labels one transition of a state space.
// Neighbors are reported in ascending TransitionID order.
type TransitionID int

// StateSpace is the capability a search needs from a problem domain.
// S must be comparable so that states can key the ledgers.
type StateSpace[S comparable] interface {
	// StartState returns the root of the search.
	StartState() S

	// Neighbors returns every state reachable from s in one transition,
	// ordered by ascending TransitionID. The result must be finite and
	// deterministic.
	Neighbors(s S) []Neighbor[S]

	// GoalTest reports whether s satisfies the search goal.
	GoalTest(s S) bool
}

// Neighbor is one outgoing transition: its label and the resulting state.
type Neighbor[S comparable] struct {
	ID    TransitionID
	State S
}

// Path is the ordered transition history from the start state.
// The zero value is the empty path. Paths are persistent: Extend shares the
// receiver's history instead of copying it, and nothing reachable from a
// Path is ever mutated, so sharing is invisible to callers.
type Path struct {
	last *step
	n    int
}

// step is one link of a Path, pointing back at its predecessor.
type step struct {
	id   TransitionID
	prev *step
}

// PathOf builds a Path from the given transition labels.
func PathOf(ids ...TransitionID) Path {
	var p Path
	for _, id := range ids {
		p = p.Extend(id)
	}

	return p
}

// Extend returns a new Path with id appended in O(1). The receiver is unchanged.
func (p Path) Extend(id TransitionID) Path {
	return Path{last: &step{id: id, prev: p.last}, n: p.n + 1}
}

// Len returns the number of transitions in p.
func (p Path) Len() int { return p.n }

// At returns the i-th transition label. It panics if i is out of range.
func (p Path) At(i int) TransitionID {
	if i < 0 || i >= p.n {
		panic("space: path index out of range")
	}
	s := p.last
	for j := p.n - 1; j > i; j-- {
		s = s.prev
	}

	return s.id
}

// IDs returns the transition labels as a fresh slice, oldest first.
func (p Path) IDs() []TransitionID {
	out := make([]TransitionID, p.n)
	for s, i := p.last, p.n-1; s != nil; s, i = s.prev, i-1 {
		out[i] = s.id
	}

	return out
}

// Equal reports whether p and q hold the same labels in the same order.
func (p Path) Equal(q Path) bool {
	if p.n != q.n {
		return false
	}
	for a, b := p.last, q.last; a != b; a, b = a.prev, b.prev {
		if a.id != b.id {
			return false
		}
	}

	return true
}

// String renders p as "[1 2 3]".
func (p Path) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, id := range p.IDs() {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.Itoa(int(id)))
	}
	b.WriteByte(']')

	return b.String()
}

// Node pairs a state with the path that reached it.
type Node[S comparable] struct {
	State S
	Path  Path
}

// Root returns the node for s with an empty path.
func Root[S comparable](s S) Node[S] {
	return Node[S]{State: s}
}

// Child returns the node reached from n through nb.
func (n Node[S]) Child(nb Neighbor[S]) Node[S] {
	return Node[S]{State: nb.State, Path: n.Path.Extend(nb.ID)}
}

// Depth is the number of transitions from the start state.
func (n Node[S]) Depth() int { return n.Path.Len() }

// Verdict is the outcome of a search.
type Verdict int

const (
	// Found: a goal state was reached; the returned node is the witness.
	Found Verdict = iota
	// NoSolution: the reachable component was exhausted without a goal.
	NoSolution
	// Inconclusive: a budget ran out before either proof.
	Inconclusive
)

// String returns the conventional upper-case name of v.
func (v Verdict) String() string {
	switch v {
	case Found:
		return "FOUND"
	case NoSolution:
		return "NO_SOLUTION"
	case Inconclusive:
		return "INCONCLUSIVE"
	default:
		return "Verdict(" + strconv.Itoa(int(v)) + ")"
	}
}

// Definitive reports whether v settles the question (Found or NoSolution).
func (v Verdict) Definitive() bool { return v == Found || v == NoSolution }
