package engine_test

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/deepsearch/engine"
	"github.com/katalvlaran/deepsearch/internal/logging"
	"github.com/katalvlaran/deepsearch/space"
	"github.com/katalvlaran/deepsearch/treespace"
)

func binaryTree(t *testing.T, size, goal int) *treespace.Tree {
	t.Helper()
	tr, err := treespace.New(size, 2, goal)
	require.NoError(t, err)

	return tr
}

func frontierStates(e *engine.Engine[int]) []int {
	var out []int
	for _, n := range e.Frontier() {
		out = append(out, n.State)
	}

	return out
}

// graphSpace is an explicit adjacency-list space that may contain cycles.
type graphSpace struct {
	adj  map[int][]int
	goal int
}

func (g graphSpace) StartState() int     { return 0 }
func (g graphSpace) GoalTest(s int) bool { return s == g.goal }
func (g graphSpace) Neighbors(s int) []space.Neighbor[int] {
	out := make([]space.Neighbor[int], len(g.adj[s]))
	for i, v := range g.adj[s] {
		out[i] = space.Neighbor[int]{ID: space.TransitionID(i), State: v}
	}
	return out
}

// randomGraph builds n vertices with out-degree d, seeded deterministically.
func randomGraph(n, d int, seed int64, goal int) graphSpace {
	rnd := rand.New(rand.NewSource(seed))
	adj := make(map[int][]int, n)
	for u := 0; u < n; u++ {
		for k := 0; k < d; k++ {
			adj[u] = append(adj[u], rnd.Intn(n))
		}
	}
	return graphSpace{adj: adj, goal: goal}
}

// reachable returns every state reachable from the start in at least one step.
func reachable(sp space.StateSpace[int]) map[int]bool {
	seen := map[int]bool{}
	queue := []int{sp.StartState()}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, nb := range sp.Neighbors(u) {
			if !seen[nb.State] {
				seen[nb.State] = true
				queue = append(queue, nb.State)
			}
		}
	}
	return seen
}

// replay follows p from the start state and returns the state it ends in.
func replay(t *testing.T, sp space.StateSpace[int], p space.Path) int {
	t.Helper()
	s := sp.StartState()
	for _, id := range p.IDs() {
		moved := false
		for _, nb := range sp.Neighbors(s) {
			if nb.ID == id {
				s, moved = nb.State, true
				break
			}
		}
		require.True(t, moved, "transition %d not available", id)
	}
	return s
}

// recorder is an Observer that keeps every event.
type recorder struct {
	visits   map[engine.Phase]int
	overflow []int
	rounds   [][2]int
	verdict  space.Verdict
	finished int
}

func newRecorder() *recorder { return &recorder{visits: map[engine.Phase]int{}} }

func (r *recorder) Visited(p engine.Phase)     { r.visits[p]++ }
func (r *recorder) FrontierExceeded(queued int) { r.overflow = append(r.overflow, queued) }
func (r *recorder) Round(depth, visited int)    { r.rounds = append(r.rounds, [2]int{depth, visited}) }
func (r *recorder) Finished(v space.Verdict, visited int) {
	r.verdict = v
	r.finished = visited
}

func TestNew_Errors(t *testing.T) {
	_, err := engine.New[int](nil)
	assert.ErrorIs(t, err, engine.ErrSpaceNil)

	tr := binaryTree(t, 3, 1)
	for name, opt := range map[string]engine.Option{
		"frontier": engine.WithFrontierCapacity(-1),
		"total":    engine.WithTotalCapacity(-1),
		"rounds":   engine.WithMaxRounds(-1),
	} {
		_, err := engine.New[int](tr, opt)
		assert.ErrorIs(t, err, engine.ErrOptionViolation, name)
	}
}

func TestNew_DefaultsAndClamp(t *testing.T) {
	tr := binaryTree(t, 3, 1)

	e, err := engine.New[int](tr)
	require.NoError(t, err)
	st := e.Stats()
	assert.Equal(t, engine.DefaultFrontierCapacity, st.FrontierCapacity)
	assert.Equal(t, engine.DefaultTotalCapacity, st.TotalCapacity)
	assert.Equal(t, engine.PhaseIdle, st.Phase)

	e, err = engine.New[int](tr, engine.WithFrontierCapacity(1<<30), engine.WithLogger(nil), engine.WithObserver(nil))
	require.NoError(t, err)
	assert.Equal(t, engine.MaxFrontierCapacity, e.Stats().FrontierCapacity)
}

func TestSearch_BinaryTreeFound(t *testing.T) {
	e, err := engine.New[int](binaryTree(t, 15, 10), engine.WithFrontierCapacity(8), engine.WithTotalCapacity(16))
	require.NoError(t, err)

	node, verdict := e.Search()
	require.Equal(t, space.Found, verdict)
	require.NotNil(t, node)
	assert.Equal(t, 10, node.State)
	assert.Equal(t, 10, e.Stats().Visited)
	assert.Equal(t, []int{5, 6, 7, 8, 9}, frontierStates(e))
	assert.Equal(t, engine.PhaseDone, e.Stats().Phase)
	assert.Equal(t, 0, e.Stats().DFSStates)
}

func TestSearch_BinaryTreeAbsent(t *testing.T) {
	e, err := engine.New[int](binaryTree(t, 15, 17), engine.WithFrontierCapacity(8), engine.WithTotalCapacity(16))
	require.NoError(t, err)

	node, verdict := e.Search()
	assert.Equal(t, space.NoSolution, verdict)
	assert.Nil(t, node)
	assert.Equal(t, 14, e.Stats().Visited)
	assert.Equal(t, 14, e.Stats().BFSStates)
}

func TestSearch_FallbackFindsGoal(t *testing.T) {
	rec := newRecorder()
	e, err := engine.New[int](binaryTree(t, 15, 10),
		engine.WithFrontierCapacity(2), engine.WithTotalCapacity(100), engine.WithObserver(rec))
	require.NoError(t, err)

	node, verdict := e.Search()
	require.Equal(t, space.Found, verdict)
	assert.Equal(t, []space.TransitionID{0, 1, 1}, node.Path.IDs())

	st := e.Stats()
	assert.Equal(t, 10, st.Visited)
	assert.Equal(t, 2, st.BFSStates)
	assert.Equal(t, 8, st.DFSStates)
	assert.Equal(t, 2, st.Rounds)
	assert.Equal(t, 2, rec.visits[engine.PhaseBreadth])
	assert.Equal(t, 8, rec.visits[engine.PhaseDeepening])
	assert.Equal(t, []int{2}, rec.overflow)
	assert.Equal(t, [][2]int{{1, 6}}, rec.rounds)
	assert.Equal(t, space.Found, rec.verdict)
	assert.Equal(t, 10, rec.finished)
}

func TestSearch_FallbackProvesAbsence(t *testing.T) {
	e, err := engine.New[int](binaryTree(t, 15, treespace.NoGoal),
		engine.WithFrontierCapacity(2), engine.WithTotalCapacity(100))
	require.NoError(t, err)

	node, verdict := e.Search()
	assert.Equal(t, space.NoSolution, verdict)
	assert.Nil(t, node)
	st := e.Stats()
	assert.Equal(t, 14, st.Visited)
	assert.Equal(t, 3, st.Rounds)
	assert.Equal(t, 12, st.DFSStates)
}

func TestSearch_ZeroFrontierGoesStraightToDeepening(t *testing.T) {
	e, err := engine.New[int](binaryTree(t, 15, 10),
		engine.WithFrontierCapacity(0), engine.WithTotalCapacity(100))
	require.NoError(t, err)

	node, verdict := e.Search()
	require.Equal(t, space.Found, verdict)
	assert.Equal(t, []space.TransitionID{0, 1, 1}, node.Path.IDs())
	assert.Equal(t, 0, e.Stats().BFSStates)
	assert.Equal(t, 10, e.Stats().Visited)
	assert.Equal(t, []int{0}, frontierStates(e))
}

func TestSearch_TotalBudgetIsInconclusive(t *testing.T) {
	e, err := engine.New[int](binaryTree(t, 15, 14),
		engine.WithFrontierCapacity(2), engine.WithTotalCapacity(5))
	require.NoError(t, err)

	node, verdict := e.Search()
	assert.Equal(t, space.Inconclusive, verdict)
	assert.Nil(t, node)
	assert.Equal(t, 5, e.Stats().Visited)
}

func TestSearch_CapacityReachedByDeepeningIsInconclusive(t *testing.T) {
	e, err := engine.New[int](binaryTree(t, 15, treespace.NoGoal),
		engine.WithFrontierCapacity(0), engine.WithTotalCapacity(14))
	require.NoError(t, err)

	node, verdict := e.Search()
	assert.Equal(t, space.Inconclusive, verdict)
	assert.Nil(t, node)
	st := e.Stats()
	assert.Equal(t, 14, st.Visited)
	assert.Equal(t, 14, st.DFSStates)
	assert.Equal(t, 3, st.Rounds)
}

func TestSearch_CapacityReachedByBreadthIsInconclusive(t *testing.T) {
	e, err := engine.New[int](binaryTree(t, 15, treespace.NoGoal),
		engine.WithFrontierCapacity(100), engine.WithTotalCapacity(14))
	require.NoError(t, err)

	_, verdict := e.Search()
	assert.Equal(t, space.Inconclusive, verdict)
	st := e.Stats()
	assert.Equal(t, 14, st.BFSStates)
	assert.Equal(t, 0, st.DFSStates)
	assert.Equal(t, 0, st.Rounds)
}

func TestSearch_MaxRoundsIsInconclusive(t *testing.T) {
	e, err := engine.New[int](binaryTree(t, 15, 14),
		engine.WithFrontierCapacity(0), engine.WithMaxRounds(2))
	require.NoError(t, err)

	_, verdict := e.Search()
	assert.Equal(t, space.Inconclusive, verdict)
	assert.Equal(t, 2, e.Stats().Rounds)
}

func TestSearch_LogsFallback(t *testing.T) {
	var buf bytes.Buffer
	e, err := engine.New[int](binaryTree(t, 15, 10),
		engine.WithFrontierCapacity(2), engine.WithLogger(logging.New("debug", &buf)))
	require.NoError(t, err)

	_, verdict := e.Search()
	require.Equal(t, space.Found, verdict)
	out := buf.String()
	assert.Contains(t, out, "engine: frontier exceeded")
	assert.Contains(t, out, "engine: falling back to iterative deepening")
	assert.Contains(t, out, "verdict=FOUND")
}

// TestSearch_PropertiesOverBudgets sweeps frontier and total capacities on
// trees and cyclic graphs and checks the outcome invariants for each run.
func TestSearch_PropertiesOverBudgets(t *testing.T) {
	spaces := map[string]space.StateSpace[int]{
		"tree-goal":  binaryTree(t, 31, 20),
		"tree-empty": binaryTree(t, 31, treespace.NoGoal),
		"graph-goal": randomGraph(40, 2, 7, 33),
		"graph-none": randomGraph(40, 2, 11, -1),
		"graph-wide": randomGraph(60, 4, 3, -1),
	}
	for name, sp := range spaces {
		reach := reachable(sp)
		for frontier := 0; frontier <= 10; frontier++ {
			for _, total := range []int{0, 1, 3, 7, 15, 40, 100} {
				rec := newRecorder()
				e, err := engine.New[int](sp,
					engine.WithFrontierCapacity(frontier), engine.WithTotalCapacity(total), engine.WithObserver(rec))
				require.NoError(t, err)

				node, verdict := e.Search()
				st := e.Stats()
				sess := e.Session()

				assert.Contains(t, []space.Verdict{space.Found, space.NoSolution, space.Inconclusive}, verdict)
				assert.Equal(t, verdict == space.Found, node != nil, "%s f=%d t=%d", name, frontier, total)
				assert.LessOrEqual(t, st.Visited, total)
				assert.Equal(t, st.Visited, st.BFSStates+st.DFSStates)
				assert.Equal(t, st.Visited, rec.visits[engine.PhaseBreadth]+rec.visits[engine.PhaseDeepening])
				for _, s := range sess.DFS.States() {
					assert.False(t, sess.BFS.Contains(s), "%s: state %d in both ledgers", name, s)
				}
				for i := 1; i < len(rec.rounds); i++ {
					assert.GreaterOrEqual(t, rec.rounds[i][1], rec.rounds[i-1][1])
				}

				switch verdict {
				case space.Found:
					assert.True(t, sp.GoalTest(node.State))
					assert.Equal(t, node.State, replay(t, sp, node.Path))
				case space.NoSolution:
					for s := range reach {
						if s != sp.StartState() {
							assert.True(t, sess.Seen(s), "%s f=%d t=%d: %d unexplored", name, frontier, total, s)
						}
						assert.False(t, sp.GoalTest(s), "%s: NoSolution but goal %d reachable", name, s)
					}
				}
				if total >= len(reach)+1 {
					assert.NotEqual(t, space.Inconclusive, verdict, "%s f=%d t=%d", name, frontier, total)
				}
			}
		}
	}
}

func TestSearch_Deterministic(t *testing.T) {
	sp := randomGraph(80, 3, 5, 77)
	run := func() ([]int, []int, space.Verdict) {
		e, err := engine.New[int](sp, engine.WithFrontierCapacity(4), engine.WithTotalCapacity(60))
		require.NoError(t, err)
		_, v := e.Search()
		return e.Session().BFS.States(), e.Session().DFS.States(), v
	}
	b1, d1, v1 := run()
	b2, d2, v2 := run()
	assert.Equal(t, b1, b2)
	assert.Equal(t, d1, d2)
	assert.Equal(t, v1, v2)
}

func TestEngine_EntryPointsShareSession(t *testing.T) {
	e, err := engine.New[int](binaryTree(t, 15, treespace.NoGoal),
		engine.WithFrontierCapacity(2), engine.WithTotalCapacity(100))
	require.NoError(t, err)

	_, verdict := e.BFS()
	require.Equal(t, space.Inconclusive, verdict)
	assert.Equal(t, engine.PhaseBreadth, e.Stats().Phase)

	_, verdict = e.DFS(space.Node[int]{State: 1, Path: space.PathOf(0)}, 1)
	require.Equal(t, space.NoSolution, verdict)
	assert.Equal(t, engine.PhaseDeepening, e.Stats().Phase)
	assert.Equal(t, 4, e.Stats().Visited)

	_, verdict = e.IterativeDeepening(e.Frontier())
	assert.Equal(t, space.NoSolution, verdict)
	assert.Equal(t, 14, e.Stats().Visited)
}

func TestStats_PhaseLifecycle(t *testing.T) {
	e, err := engine.New[int](binaryTree(t, 7, 5))
	require.NoError(t, err)
	assert.Equal(t, engine.PhaseIdle, e.Stats().Phase)

	_, verdict := e.Search()
	require.Equal(t, space.Found, verdict)
	assert.Equal(t, engine.PhaseDone, e.Stats().Phase)
}

func TestPhase_String(t *testing.T) {
	assert.Equal(t, "idle", engine.PhaseIdle.String())
	assert.Equal(t, "breadth", engine.PhaseBreadth.String())
	assert.Equal(t, "deepening", engine.PhaseDeepening.String())
	assert.Equal(t, "done", engine.PhaseDone.String())
	assert.Equal(t, "Phase(9)", engine.Phase(9).String())
}
