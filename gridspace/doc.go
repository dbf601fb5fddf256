// Package gridspace treats a rectangular grid of cells as a maze-shaped
// space.StateSpace.
//
// What:
//
//   - Grid wraps a [][]int whose cells with value ≥ OpenThreshold are open.
//   - A state is a Cell; a transition is a single step to an open neighbor.
//   - Transition IDs index the direction table: N, E, S, W for Conn4 and
//     N, NE, E, SE, S, SW, W, NW for Conn8.
//   - Parse builds a Grid from text rows ('#' wall, '.' open, 'S' start,
//     'G' goal).
//
// Why:
//
//   - Mazes are the classic stress case for a bounded frontier: wide open
//     rooms overflow it, corridors do not.
//
// Complexity:
//
//   - New, Parse: O(W×H) time and memory.
//   - Neighbors: O(d), d = 4 or 8.
//
// Errors:
//
//   - ErrEmptyGrid: no rows or no columns.
//   - ErrNonRectangular: rows of differing lengths.
//   - ErrBadCell: start or goal out of bounds or blocked.
//   - ErrBadSymbol, ErrMissingEndpoint: malformed text rows.
package gridspace
