// Package deepsearch is a bounded, uninformed graph-search engine: breadth
// first while the frontier fits, iterative deepening once it does not.
//
// 🚀 What is deepsearch?
//
//	A small generic toolkit over any space.StateSpace[S]:
//		• Frontier-bounded BFS that stops with a resumable queue
//		• Explicit-stack depth-bounded DFS (no recursion limits)
//		• An iterative-deepening driver that proves absence by fixed point
//		• One shared total budget and two de-duplication ledgers
//
// ✨ Three answers, never guesses
//
//	FOUND         the goal state and the transitions that reach it
//	NO_SOLUTION   every reachable state was explored
//	INCONCLUSIVE  the total budget ran out first
//
// Packages:
//
//	space/      StateSpace contract, Path, Node, Verdict
//	ledger/     visited ledgers, total budget, per-run Session
//	bfs/        frontier-bounded breadth-first walker
//	dfs/        depth-bounded depth-first walker
//	iddfs/      iterative-deepening driver
//	engine/     orchestrator with logging and observer hooks
//	dominos/    Post correspondence ("domino") state space
//	problem/    text and YAML problem files
//	metrics/    Prometheus collector for engine events
//	gridspace/  2D mazes with 4- or 8-connectivity
//	graphspace/ explicit graphs built edge by edge
//	treespace/  implicit k-ary trees for examples and benchmarks
//
// Command-line use:
//
//	go install github.com/katalvlaran/deepsearch/cmd/dominos@latest
//	dominos solve problem.txt --track
//	dominos batch --jobs 8 problems/*.yaml
package deepsearch

// Version is the release reported by the dominos command.
const Version = "0.3.0"
