package snake

import "github.com/vovakirdan/poopsnake/internal/core"

// Direction represents the snake's movement direction.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

// Delta returns the row and column step for one move.
func (d Direction) Delta() (dr, dc int) {
	switch d {
	case DirUp:
		return -1, 0
	case DirDown:
		return 1, 0
	case DirLeft:
		return 0, -1
	default:
		return 0, 1
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// DirectionFromAction maps a directional action to a Direction.
func DirectionFromAction(a core.Action) (Direction, bool) {
	switch a {
	case core.ActionUp:
		return DirUp, true
	case core.ActionDown:
		return DirDown, true
	case core.ActionLeft:
		return DirLeft, true
	case core.ActionRight:
		return DirRight, true
	default:
		return 0, false
	}
}

// Point is a grid cell.
type Point struct {
	Row, Col int
}

// Grid is a toroidal playfield: leaving one edge re-enters on the opposite one.
type Grid struct {
	Rows, Cols int
}

// Wrap folds p into [0,Rows)x[0,Cols).
func (g Grid) Wrap(p Point) Point {
	return Point{Row: core.Mod(p.Row, g.Rows), Col: core.Mod(p.Col, g.Cols)}
}

// NextHead returns the cell one step from head in dir.
func (g Grid) NextHead(head Point, dir Direction) Point {
	dr, dc := dir.Delta()
	return g.Wrap(Point{Row: head.Row + dr, Col: head.Col + dc})
}

// Offset returns the signed shortest displacement from a to b on each axis.
func (g Grid) Offset(a, b Point) (dr, dc int) {
	return wrapDelta(b.Row-a.Row, g.Rows), wrapDelta(b.Col-a.Col, g.Cols)
}

func wrapDelta(d, n int) int {
	d = core.Mod(d, n)
	if d > n/2 {
		d -= n
	}
	return d
}

// Cells returns the number of cells on the grid.
func (g Grid) Cells() int {
	return g.Rows * g.Cols
}
