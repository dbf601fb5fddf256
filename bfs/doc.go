// Package bfs provides frontier-bounded breadth-first search over a
// space.StateSpace.
//
// What
//
//   - Explore states in level order from one or more seed nodes.
//   - Record every freshly discovered state in the session's BFS ledger and
//     count it against the session's total exploration budget.
//   - Goal-test each discovered state as it is recorded; the first goal wins.
//   - Stop with Inconclusive, not an error, when either budget is hit.
//
// Frontier bound
//
//	Before expanding the dequeued node u, BFS counts u's neighbors that are
//	not yet in the BFS ledger. If that count plus the remaining queue length
//	exceeds the frontier capacity, u is pushed back to the front of the queue
//	and the search stops. Frontier() then returns u followed by the untouched
//	remainder, so Resume (or a fallback strategy seeded from Frontier) loses
//	and duplicates nothing.
//
// Total budget
//
//	Capacity is checked before each increment. When the budget runs out in
//	the middle of an expansion, u is likewise re-queued; neighbors already
//	recorded are filtered out when it is expanded again.
//
// Determinism
//
//	Neighbors arrive in ascending TransitionID order and are enqueued in that
//	order, so identical spaces, seeds and budgets explore identical states in
//	identical order.
//
// Complexity (V = states visited, B = branching factor)
//
//   - Time:   O(V·B)
//   - Memory: O(V) for the ledger, O(capacity) for the queue
//
// Usage
//
//	sess, _ := ledger.NewSession[int](1000)
//	w, err := bfs.New(sp, sess, 64,
//	    bfs.WithOnVisit(func(n space.Node[int]) { log.Println(n.State) }),
//	)
//	node, verdict := w.Search()
//	if verdict == space.Inconclusive {
//	    seeds := w.Frontier()
//	    ...
//	}
//
// Errors (construction only)
//
//   - ErrSpaceNil         if the state space is nil.
//   - ErrSessionNil       if the session is nil.
//   - ErrOptionViolation  if the frontier capacity is negative.
package bfs
