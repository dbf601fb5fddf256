package gridspace

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/deepsearch/space"
)

var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("gridspace: grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridspace: all rows must have the same length")
	// ErrBadCell indicates a start or goal outside the grid or on a wall.
	ErrBadCell = errors.New("gridspace: cell is out of bounds or blocked")
	// ErrBadSymbol indicates an unknown character in a text row.
	ErrBadSymbol = errors.New("gridspace: unknown maze symbol")
	// ErrMissingEndpoint indicates a text maze without exactly one S and one G.
	ErrMissingEndpoint = errors.New("gridspace: maze needs exactly one S and one G")
)

// Connectivity selects orthogonal (Conn4) or king-move (Conn8) steps.
type Connectivity int

const (
	// Conn4 steps N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 adds the diagonals.
	Conn8
)

// Cell is a grid coordinate.
type Cell struct {
	X, Y int
}

// String renders c as (x,y).
func (c Cell) String() string { return fmt.Sprintf("(%d,%d)", c.X, c.Y) }

// Options tunes a Grid.
type Options struct {
	// OpenThreshold is the minimum value of a walkable cell.
	OpenThreshold int
	// Conn chooses the step set.
	Conn Connectivity
}

// DefaultOptions returns OpenThreshold=1 and Conn4.
func DefaultOptions() Options {
	return Options{OpenThreshold: 1, Conn: Conn4}
}

var (
	offsets4 = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	names4   = []string{"N", "E", "S", "W"}
	offsets8 = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	names8   = []string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}
)

// Grid is an immutable maze.
type Grid struct {
	width, height int
	values        [][]int
	threshold     int
	offsets       [][2]int
	names         []string
	start, goal   Cell
}

// New builds a Grid from values, deep-copying them.
func New(values [][]int, start, goal Cell, opts Options) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	cells := make([][]int, h)
	for y, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
		cells[y] = make([]int, w)
		copy(cells[y], row)
	}

	g := &Grid{
		width:     w,
		height:    h,
		values:    cells,
		threshold: opts.OpenThreshold,
		offsets:   offsets4,
		names:     names4,
		start:     start,
		goal:      goal,
	}
	if opts.Conn == Conn8 {
		g.offsets, g.names = offsets8, names8
	}
	for _, c := range []Cell{start, goal} {
		if !g.Open(c) {
			return nil, fmt.Errorf("%w: %s", ErrBadCell, c)
		}
	}

	return g, nil
}

// Parse builds a Grid from text rows: '#' is a wall, '.', 'S' and 'G' are
// open, and S and G mark the start and goal.
func Parse(rows []string, conn Connectivity) (*Grid, error) {
	var (
		start, goal Cell
		nStart      int
		nGoal       int
	)
	values := make([][]int, len(rows))
	for y, row := range rows {
		values[y] = make([]int, len(row))
		for x, r := range []byte(row) {
			switch r {
			case '#':
			case '.':
				values[y][x] = 1
			case 'S':
				values[y][x] = 1
				start, nStart = Cell{X: x, Y: y}, nStart+1
			case 'G':
				values[y][x] = 1
				goal, nGoal = Cell{X: x, Y: y}, nGoal+1
			default:
				return nil, fmt.Errorf("%w: %q at %s", ErrBadSymbol, r, Cell{X: x, Y: y})
			}
		}
	}
	if len(values) > 0 && len(values[0]) > 0 && (nStart != 1 || nGoal != 1) {
		return nil, ErrMissingEndpoint
	}

	return New(values, start, goal, Options{OpenThreshold: 1, Conn: conn})
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// InBounds reports whether c lies within the grid.
func (g *Grid) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < g.width && c.Y >= 0 && c.Y < g.height
}

// Open reports whether c is in bounds and walkable.
func (g *Grid) Open(c Cell) bool {
	return g.InBounds(c) && g.values[c.Y][c.X] >= g.threshold
}

// StartState returns the start cell.
func (g *Grid) StartState() Cell { return g.start }

// Neighbors returns the open cells one step from c, by direction index.
func (g *Grid) Neighbors(c Cell) []space.Neighbor[Cell] {
	out := make([]space.Neighbor[Cell], 0, len(g.offsets))
	for i, d := range g.offsets {
		next := Cell{X: c.X + d[0], Y: c.Y + d[1]}
		if g.Open(next) {
			out = append(out, space.Neighbor[Cell]{ID: space.TransitionID(i), State: next})
		}
	}

	return out
}

// GoalTest reports whether c is the goal cell.
func (g *Grid) GoalTest(c Cell) bool { return c == g.goal }

// Directions names each step of p, e.g. ["S" "E"].
func (g *Grid) Directions(p space.Path) []string {
	out := make([]string, p.Len())
	for i, id := range p.IDs() {
		if int(id) >= 0 && int(id) < len(g.names) {
			out[i] = g.names[id]
		} else {
			out[i] = "?"
		}
	}

	return out
}

// Walk replays p from the start and returns the cell after each step.
func (g *Grid) Walk(p space.Path) ([]Cell, error) {
	out := make([]Cell, 0, p.Len())
	cur := g.start
	for _, id := range p.IDs() {
		if int(id) < 0 || int(id) >= len(g.offsets) {
			return nil, fmt.Errorf("%w: direction %d", ErrBadCell, id)
		}
		d := g.offsets[id]
		cur = Cell{X: cur.X + d[0], Y: cur.Y + d[1]}
		if !g.Open(cur) {
			return nil, fmt.Errorf("%w: %s", ErrBadCell, cur)
		}
		out = append(out, cur)
	}

	return out, nil
}
