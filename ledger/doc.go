// Package ledger holds the per-run bookkeeping shared by the breadth-first
// and depth-first phases of a search.
//
// A Session bundles:
//
//   - BFS: the ledger of states discovered by breadth-first search.
//   - DFS: the ledger of states discovered by depth-bounded search.
//   - Budget: the total exploration capacity, consumed by both phases.
//
// Ledgers map a state to the path that first reached it and are used for
// membership tests only. The Budget enforces check-before-increment: Consume
// succeeds only while Visited < Capacity, so Visited never exceeds Capacity.
//
// A Session is created fresh for every engine, mutated only while a search
// runs, kept afterwards for introspection and never reset. It is not safe for
// concurrent use.
package ledger
