package graphspace_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/deepsearch/engine"
	"github.com/katalvlaran/deepsearch/graphspace"
	"github.com/katalvlaran/deepsearch/space"
)

func TestAddEdge_Errors(t *testing.T) {
	g := graphspace.NewGraph()

	assert.ErrorIs(t, g.AddVertex(""), graphspace.ErrEmptyVertexID)
	_, err := g.AddEdge("A", "")
	assert.ErrorIs(t, err, graphspace.ErrEmptyVertexID)

	_, err = g.Space("A")
	assert.ErrorIs(t, err, graphspace.ErrVertexNotFound)
}

func TestNeighbors_Undirected(t *testing.T) {
	g := graphspace.NewGraph()
	ab, err := g.AddEdge("A", "B")
	require.NoError(t, err)
	ac, err := g.AddEdge("A", "C")
	require.NoError(t, err)
	bc, err := g.AddEdge("B", "C")
	require.NoError(t, err)
	require.NoError(t, g.AddVertex("D"))

	assert.Equal(t, []space.TransitionID{0, 1, 2}, []space.TransitionID{ab, ac, bc})
	assert.Equal(t, []string{"A", "B", "C", "D"}, g.Vertices())
	assert.Equal(t, 3, g.EdgeCount())

	sp, err := g.Space("A", "D")
	require.NoError(t, err)
	assert.Equal(t, []space.Neighbor[string]{{ID: 0, State: "A"}, {ID: 2, State: "C"}}, sp.Neighbors("B"))
	assert.Empty(t, sp.Neighbors("D"))
	assert.True(t, sp.GoalTest("D"))
	assert.False(t, sp.GoalTest("A"))
}

func TestNeighbors_Directed(t *testing.T) {
	g := graphspace.NewGraph(graphspace.WithDirected())
	_, _ = g.AddEdge("A", "B")
	_, _ = g.AddEdge("B", "B")

	sp, err := g.Space("A")
	require.NoError(t, err)
	assert.Equal(t, []space.Neighbor[string]{{ID: 1, State: "B"}}, sp.Neighbors("B"))
	assert.Empty(t, sp.Neighbors("C"))
}

func TestSpace_ReadsGraphWhenSearched(t *testing.T) {
	g := graphspace.NewGraph(graphspace.WithDirected())
	_, err := g.AddEdge("A", "B")
	require.NoError(t, err)
	require.NoError(t, g.AddVertex("C"))
	sp, err := g.Space("A", "C")
	require.NoError(t, err)

	// the space is built before B→C exists; the search sees the graph as it is then
	_, err = g.AddEdge("B", "C")
	require.NoError(t, err)
	e, err := engine.New[string](sp)
	require.NoError(t, err)

	node, verdict := e.Search()
	require.Equal(t, space.Found, verdict)
	assert.Equal(t, []space.TransitionID{0, 1}, node.Path.IDs())
}

func TestSearch_Cycles(t *testing.T) {
	g := graphspace.NewGraph(graphspace.WithDirected())
	for _, e := range [][2]string{{"A", "B"}, {"B", "C"}, {"C", "A"}, {"C", "D"}, {"D", "B"}} {
		_, err := g.AddEdge(e[0], e[1])
		require.NoError(t, err)
	}
	require.NoError(t, g.AddVertex("Z"))

	for _, frontier := range []int{0, 1, 100} {
		sp, err := g.Space("A", "D")
		require.NoError(t, err)
		e, err := engine.New[string](sp, engine.WithFrontierCapacity(frontier))
		require.NoError(t, err)
		node, verdict := e.Search()
		require.Equal(t, space.Found, verdict, "frontier=%d", frontier)
		assert.Equal(t, "D", node.State)
		assert.Equal(t, []space.TransitionID{0, 1, 3}, node.Path.IDs(), "frontier=%d", frontier)

		sp, err = g.Space("A", "Z")
		require.NoError(t, err)
		e, err = engine.New[string](sp, engine.WithFrontierCapacity(frontier))
		require.NoError(t, err)
		_, verdict = e.Search()
		assert.Equal(t, space.NoSolution, verdict, "frontier=%d", frontier)
	}
}

func TestAddEdge_Concurrent(t *testing.T) {
	g := graphspace.NewGraph()
	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				_, _ = g.AddEdge(fmt.Sprintf("w%d", w), fmt.Sprintf("v%d", i))
			}
		}(w)
	}
	wg.Wait()

	assert.Equal(t, 800, g.EdgeCount())
	assert.Len(t, g.Vertices(), 108)
}
