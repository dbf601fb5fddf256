package ledger

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/deepsearch/space"
)

// ErrNegativeCapacity is returned when a Budget is built with capacity < 0.
var ErrNegativeCapacity = errors.New("ledger: capacity cannot be negative")

// Ledger is a de-duplication table from state to the path that first reached it.
// States are also kept in insertion order so a run can be replayed in tests.
type Ledger[S comparable] struct {
	entries map[S]space.Path
	order   []S
}

// New returns an empty Ledger.
func New[S comparable]() *Ledger[S] {
	return &Ledger[S]{entries: make(map[S]space.Path)}
}

// Record stores n unless its state is already present.
// It reports whether the state was new.
func (l *Ledger[S]) Record(n space.Node[S]) bool {
	if _, ok := l.entries[n.State]; ok {
		return false
	}
	l.entries[n.State] = n.Path
	l.order = append(l.order, n.State)

	return true
}

// Contains reports whether s has been recorded.
func (l *Ledger[S]) Contains(s S) bool {
	_, ok := l.entries[s]

	return ok
}

// Lookup returns the path recorded for s.
func (l *Ledger[S]) Lookup(s S) (space.Path, bool) {
	p, ok := l.entries[s]

	return p, ok
}

// Len returns the number of recorded states.
func (l *Ledger[S]) Len() int { return len(l.order) }

// States returns the recorded states in insertion order.
func (l *Ledger[S]) States() []S {
	out := make([]S, len(l.order))
	copy(out, l.order)

	return out
}

// Budget is the total exploration capacity of one run.
type Budget struct {
	capacity int
	visited  int
}

// NewBudget returns a Budget allowing capacity visits.
func NewBudget(capacity int) (*Budget, error) {
	if capacity < 0 {
		return nil, fmt.Errorf("%w (%d)", ErrNegativeCapacity, capacity)
	}

	return &Budget{capacity: capacity}, nil
}

// Exhausted reports whether no further visit may be counted.
func (b *Budget) Exhausted() bool { return b.visited >= b.capacity }

// Consume counts one visit if capacity remains and reports whether it did.
// The check happens before the increment.
func (b *Budget) Consume() bool {
	if b.Exhausted() {
		return false
	}
	b.visited++

	return true
}

// Visited returns the number of visits counted so far.
func (b *Budget) Visited() int { return b.visited }

// Capacity returns the configured total capacity.
func (b *Budget) Capacity() int { return b.capacity }

// Remaining returns Capacity - Visited.
func (b *Budget) Remaining() int { return b.capacity - b.visited }

// Session is the mutable context of one search run.
type Session[S comparable] struct {
	BFS    *Ledger[S]
	DFS    *Ledger[S]
	Budget *Budget
}

// NewSession returns a Session with empty ledgers and a fresh Budget.
func NewSession[S comparable](totalCapacity int) (*Session[S], error) {
	b, err := NewBudget(totalCapacity)
	if err != nil {
		return nil, err
	}

	return &Session[S]{BFS: New[S](), DFS: New[S](), Budget: b}, nil
}

// Seen reports whether s is present in either ledger.
func (s *Session[S]) Seen(state S) bool {
	return s.BFS.Contains(state) || s.DFS.Contains(state)
}
