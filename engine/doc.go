// Package engine runs a hybrid graph search over any space.StateSpace:
// breadth-first search bounded by a frontier capacity, falling back to
// iterative-deepening depth-first search once breadth becomes too wide.
//
// What
//
//   - Search(): BFS from the start state. FOUND or NO_SOLUTION from BFS is
//     final. INCONCLUSIVE (frontier or budget stop) seeds the
//     iterative-deepening driver with the entire residual BFS queue.
//   - BFS / DFS / IterativeDeepening: the individual strategies, run against
//     the same ledgers and budget.
//   - Stats / Session / Frontier: post-run introspection.
//
// Why
//
//	BFS is cheap per state and finds shallow goals fast but needs memory
//	proportional to the frontier. Iterative deepening needs only a stack but
//	revisits shallow levels every round. Running BFS until its frontier is
//	full and deepening from there pays the DFS overhead only when breadth has
//	become memory-infeasible.
//
// Outcomes
//
//   - space.Found         the node is non-nil and its Path is a witness.
//   - space.NoSolution    the reachable component is exhausted, goal-free.
//   - space.Inconclusive  the total budget (or MaxRounds) ran out first.
//
//	Construction errors are the only errors; a search never fails.
//
// Budgets
//
//	FrontierCapacity bounds the BFS queue (clamped to MaxFrontierCapacity);
//	TotalCapacity bounds the states counted by BFS and DFS together. A zero
//	frontier is legal and sends the search straight to iterative deepening.
//	There is no context or timeout: size the budgets to bound the run.
//
// Usage
//
//	e, err := engine.New[int](sp,
//	    engine.WithFrontierCapacity(64),
//	    engine.WithTotalCapacity(100_000),
//	    engine.WithLogger(logger),
//	)
//	if err != nil {
//	    // ErrSpaceNil or ErrOptionViolation
//	}
//	node, verdict := e.Search()
//	switch verdict {
//	case space.Found:
//	    fmt.Println(node.Path)
//	case space.NoSolution:
//	case space.Inconclusive:
//	}
package engine
