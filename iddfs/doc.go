// Package iddfs implements the iterative-deepening driver used as the
// memory-bounded fallback of a hybrid search.
//
// Algorithm
//
//	depth := 1
//	loop:
//	    before := visited
//	    for each seed, in order:
//	        DFS(seed, depth)        // FOUND or budget stop returns at once
//	    if visited == before: NO_SOLUTION (fixed point)
//	    depth++
//
// Seeds are typically the residual frontier of an aborted breadth-first
// search; states that BFS already claimed are never re-entered, states a
// previous round discovered are traversed without being counted again.
//
// Options
//
//   - WithMaxRounds(n)  stop with Inconclusive after n rounds (0 = no cap).
//   - WithOnRound(fn)   observe depth and visited count after every completed round.
package iddfs
