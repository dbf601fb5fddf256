// Package dominos expresses the Post correspondence problem as a
// space.StateSpace: each domino is a transition that appends its top and
// bottom strings to the two tracks, and a state is the unmatched overhang
// left after cancelling the common prefix.
//
// Only the overhang matters for the future of a search, so states stay
// small and comparable: at least one of Top and Bottom is always empty.
// A concatenation whose overlapping prefixes disagree leads nowhere and is
// not reported as a neighbor.
package dominos

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/deepsearch/space"
)

var (
	// ErrNoDominos is returned when a space is built from an empty set.
	ErrNoDominos = errors.New("dominos: no dominos supplied")

	// ErrDuplicateIndex is returned when two dominos share an index.
	ErrDuplicateIndex = errors.New("dominos: duplicate domino index")

	// ErrEmptyDomino is returned for a domino whose strings are both empty.
	ErrEmptyDomino = errors.New("dominos: domino has empty top and bottom")

	// ErrUnknownIndex is returned when a path names a domino that does not exist.
	ErrUnknownIndex = errors.New("dominos: unknown domino index")

	// ErrMismatch is returned by Trace when a path step does not fit.
	ErrMismatch = errors.New("dominos: tracks do not match")
)

// Domino is one tile: a labelled pair of strings.
type Domino struct {
	Index  space.TransitionID
	Top    string
	Bottom string
}

// State is the unmatched remainder of the two tracks.
type State struct {
	Top    string
	Bottom string
}

// String renders s as ("top", "bottom").
func (s State) String() string {
	return fmt.Sprintf("(%q, %q)", s.Top, s.Bottom)
}

// Space is the domino state space. It is immutable after New.
type Space struct {
	dominos []Domino
	byIndex map[space.TransitionID]Domino
}

// New validates ds and returns a Space whose transitions are the dominos
// sorted by Index.
func New(ds []Domino) (*Space, error) {
	if len(ds) == 0 {
		return nil, ErrNoDominos
	}
	sorted := make([]Domino, len(ds))
	copy(sorted, ds)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Index < sorted[j].Index })

	byIndex := make(map[space.TransitionID]Domino, len(sorted))
	for _, d := range sorted {
		if d.Top == "" && d.Bottom == "" {
			return nil, fmt.Errorf("%w: index %d", ErrEmptyDomino, d.Index)
		}
		if _, dup := byIndex[d.Index]; dup {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateIndex, d.Index)
		}
		byIndex[d.Index] = d
	}

	return &Space{dominos: sorted, byIndex: byIndex}, nil
}

// Concat appends d to s and cancels the common prefix. ok is false when the
// overlapping prefixes of the two tracks disagree.
func Concat(s State, d Domino) (next State, ok bool) {
	top, bottom := s.Top+d.Top, s.Bottom+d.Bottom
	k := min(len(top), len(bottom))
	if top[:k] != bottom[:k] {
		return State{}, false
	}

	return State{Top: top[k:], Bottom: bottom[k:]}, true
}

// Dominos returns the dominos in transition order.
func (sp *Space) Dominos() []Domino {
	out := make([]Domino, len(sp.dominos))
	copy(out, sp.dominos)

	return out
}

// StartState returns the empty pair of tracks.
func (sp *Space) StartState() State { return State{} }

// Neighbors returns every consistent concatenation of s with one domino.
func (sp *Space) Neighbors(s State) []space.Neighbor[State] {
	out := make([]space.Neighbor[State], 0, len(sp.dominos))
	for _, d := range sp.dominos {
		if next, ok := Concat(s, d); ok {
			out = append(out, space.Neighbor[State]{ID: d.Index, State: next})
		}
	}

	return out
}

// GoalTest reports whether both tracks are fully matched. The search never
// tests the start state, so the empty match is not a solution.
func (sp *Space) GoalTest(s State) bool {
	return s.Top == "" && s.Bottom == ""
}

// Matching rebuilds the full top and bottom strings spelled by p.
func (sp *Space) Matching(p space.Path) (top, bottom string, err error) {
	var t, b strings.Builder
	for _, id := range p.IDs() {
		d, ok := sp.byIndex[id]
		if !ok {
			return "", "", fmt.Errorf("%w: %d", ErrUnknownIndex, id)
		}
		t.WriteString(d.Top)
		b.WriteString(d.Bottom)
	}

	return t.String(), b.String(), nil
}

// Trace replays p from the start state and returns the overhang after each
// domino. It fails if p names an unknown domino or a mismatching step.
func (sp *Space) Trace(p space.Path) ([]State, error) {
	out := make([]State, 0, p.Len())
	cur := sp.StartState()
	for _, id := range p.IDs() {
		d, ok := sp.byIndex[id]
		if !ok {
			return nil, fmt.Errorf("%w: %d", ErrUnknownIndex, id)
		}
		next, ok := Concat(cur, d)
		if !ok {
			return nil, fmt.Errorf("%w: domino %d after %s", ErrMismatch, id, cur)
		}
		out = append(out, next)
		cur = next
	}

	return out, nil
}
