// Package space defines the state-space contract consumed by the search
// packages (bfs, dfs, iddfs, engine) together with the small value types
// they exchange: transition labels, immutable paths, search nodes and the
// three-way Verdict.
//
// What
//
//   - StateSpace[S]: StartState, Neighbors, GoalTest over a comparable state S.
//   - Path: an immutable sequence of TransitionID values. Extend never mutates
//     the receiver; extensions share their common prefix.
//   - Node[S]: a (State, Path) pair.
//   - Verdict: Found, NoSolution or Inconclusive.
//
// Contract
//
//	Neighbors must be a pure, terminating function of its argument and must
//	return neighbors in ascending TransitionID order. GoalTest must be pure.
//	Violations are not detected at runtime; the searches assume them absent.
//
// Usage
//
//	type grid struct{ w, h int }
//
//	func (g grid) StartState() int             { return 0 }
//	func (g grid) GoalTest(s int) bool         { return s == g.w*g.h-1 }
//	func (g grid) Neighbors(s int) []space.Neighbor[int] { ... }
//
//	var _ space.StateSpace[int] = grid{}
package space
