// Package graphspace adapts an explicit graph, built edge by edge, to the
// space.StateSpace contract.
//
// Vertices are strings. Every added edge receives the next TransitionID, so
// a vertex's neighbors come out in insertion order, and an undirected edge
// carries the same ID in both directions. The Graph is guarded by a
// sync.RWMutex and may be built from several goroutines; searches read it
// under the read lock.
//
// Errors:
//
//	ErrEmptyVertexID  - vertex ID is the empty string.
//	ErrVertexNotFound - start or goal vertex does not exist.
package graphspace

import (
	"errors"
	"fmt"
	"sync"

	"github.com/katalvlaran/deepsearch/space"
)

var (
	// ErrEmptyVertexID indicates an empty vertex ID.
	ErrEmptyVertexID = errors.New("graphspace: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a missing vertex.
	ErrVertexNotFound = errors.New("graphspace: vertex not found")
)

type arc struct {
	id space.TransitionID
	to string
}

// Graph is an adjacency-list graph with string vertices.
type Graph struct {
	mu       sync.RWMutex
	directed bool
	adj      map[string][]arc
	order    []string
	edges    int
}

// Option configures a Graph.
type Option func(*Graph)

// WithDirected makes every edge one-way.
func WithDirected() Option {
	return func(g *Graph) { g.directed = true }
}

// NewGraph returns an empty graph, undirected unless WithDirected is given.
func NewGraph(opts ...Option) *Graph {
	g := &Graph{adj: make(map[string][]arc)}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// AddVertex adds id if it is not present yet.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.addVertexLocked(id)

	return nil
}

func (g *Graph) addVertexLocked(id string) {
	if _, ok := g.adj[id]; !ok {
		g.adj[id] = nil
		g.order = append(g.order, id)
	}
}

// AddEdge connects from and to, adding missing vertices, and returns the
// edge's TransitionID.
func (g *Graph) AddEdge(from, to string) (space.TransitionID, error) {
	if from == "" || to == "" {
		return 0, ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	g.addVertexLocked(from)
	g.addVertexLocked(to)
	id := space.TransitionID(g.edges)
	g.edges++
	g.adj[from] = append(g.adj[from], arc{id: id, to: to})
	if !g.directed && from != to {
		g.adj[to] = append(g.adj[to], arc{id: id, to: from})
	}

	return id, nil
}

// HasVertex reports whether id exists.
func (g *Graph) HasVertex(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adj[id]

	return ok
}

// Vertices returns the vertex IDs in insertion order.
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]string, len(g.order))
	copy(out, g.order)

	return out
}

// EdgeCount returns the number of edges added.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edges
}

// Space is a search view of a Graph from one start vertex to a goal set.
type Space struct {
	g     *Graph
	start string
	goals map[string]struct{}
}

// Space returns a state space starting at start whose goal test accepts any
// of goals. The space reads the graph live, so the graph must not change
// while a search over it is running.
func (g *Graph) Space(start string, goals ...string) (*Space, error) {
	for _, id := range append([]string{start}, goals...) {
		if !g.HasVertex(id) {
			return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
		}
	}
	set := make(map[string]struct{}, len(goals))
	for _, id := range goals {
		set[id] = struct{}{}
	}

	return &Space{g: g, start: start, goals: set}, nil
}

// StartState returns the start vertex.
func (s *Space) StartState() string { return s.start }

// Neighbors returns the vertices one edge away from v in edge order.
func (s *Space) Neighbors(v string) []space.Neighbor[string] {
	s.g.mu.RLock()
	defer s.g.mu.RUnlock()
	arcs := s.g.adj[v]
	out := make([]space.Neighbor[string], len(arcs))
	for i, a := range arcs {
		out[i] = space.Neighbor[string]{ID: a.id, State: a.to}
	}

	return out
}

// GoalTest reports whether v is a goal vertex.
func (s *Space) GoalTest(v string) bool {
	_, ok := s.goals[v]

	return ok
}
