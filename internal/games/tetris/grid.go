// Package tetris implements the falling-block puzzle simulation: tetromino
// shapes and rotation, the settled-block store, gravity ticking, row clears,
// scoring and the session state machine. Rendering, timers and input devices
// live in the platform packages; this package only exposes block lists and
// events.
package tetris

import "fmt"

// Board dimensions in grid cells.
const (
	Columns = 10
	Rows    = 20
)

// Coord is a position in grid units. Origin is top-left, y grows downward.
type Coord struct {
	X, Y int
}

// Add returns the component-wise sum of two coordinates.
func (c Coord) Add(o Coord) Coord {
	return Coord{X: c.X + o.X, Y: c.Y + o.Y}
}

// InBounds reports whether c lies within [0, Columns) x [0, Rows).
func (c Coord) InBounds() bool {
	return c.X >= 0 && c.X < Columns && c.Y >= 0 && c.Y < Rows
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// index packs an in-bounds coordinate into a dense cell index.
func (c Coord) index() int {
	return c.Y*Columns + c.X
}

// Direction is a translation a tetromino can attempt.
type Direction int

const (
	DirLeft Direction = iota
	DirRight
	DirDown
)

// Vector returns the unit offset for the direction.
func (d Direction) Vector() Coord {
	switch d {
	case DirLeft:
		return Coord{X: -1}
	case DirRight:
		return Coord{X: 1}
	case DirDown:
		return Coord{Y: 1}
	default:
		return Coord{}
	}
}

func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirDown:
		return "down"
	default:
		return "unknown"
	}
}

// Block is one occupied grid cell.
type Block struct {
	Pos   Coord
	Kind  Shape  // visual identity
	Piece uint32 // serial of the tetromino that created it; grouping only
}

// Occupancy answers whether a cell is taken by a settled block.
type Occupancy interface {
	Occupied(c Coord) bool
}
