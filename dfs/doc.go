// Package dfs implements depth-bounded depth-first search with an explicit
// stack, sharing ledgers and the exploration budget of a ledger.Session.
//
// Key features:
//   - Search(root, maxDepth): traverse from one root to a fixed depth
//   - Explicit stack of frames (node, depth, pending neighbors): no recursion
//   - BFS-claimed states are off-limits; DFS-known states are traversed but
//     never counted or goal-tested twice
//   - Check-before-increment budget: the search stops with Inconclusive the
//     moment a fresh state cannot be counted, even mid-expansion
//   - Hooks: OnVisit, OnPush, OnPop
//
// Depth convention:
//
//	The root frame hands out neighbors at depth 1. A child frame (depth+1)
//	is pushed only while depth < maxDepth; at maxDepth neighbors are still
//	goal-tested but not expanded. Search(root, d) therefore tests every state
//	within d transitions of root that is not claimed by BFS.
//
//	A neighbor whose state is already on the stack (the root included) is
//	still counted and goal-tested if new, but no frame is pushed for it, so
//	cycles cannot spin the stack back onto one of its ancestors.
//
// Complexity:
//
//   - Time:   O(B^d) per call for branching B and depth bound d.
//   - Memory: O(d·B) for the stack, plus the ledger.
//
// Errors:
//
//   - ErrSpaceNil    if the state space is nil.
//   - ErrSessionNil  if the session is nil.
package dfs
