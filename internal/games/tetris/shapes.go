package tetris

import (
	"math/rand"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Shape identifies one of the seven tetromino types.
type Shape int

const (
	ShapeI Shape = iota
	ShapeO
	ShapeT
	ShapeS
	ShapeZ
	ShapeJ
	ShapeL
)

// ShapeCount is the number of tetromino types.
const ShapeCount = 7

// Rotation tables. Each state lists the four cell offsets inside a 4x4 box
// relative to the tetromino anchor; index+1 is a clockwise turn.
var rotations = [ShapeCount][][4]Coord{
	ShapeI: {
		{{0, 1}, {1, 1}, {2, 1}, {3, 1}},
		{{2, 0}, {2, 1}, {2, 2}, {2, 3}},
	},
	ShapeO: {
		{{1, 0}, {2, 0}, {1, 1}, {2, 1}},
	},
	ShapeT: {
		{{1, 0}, {0, 1}, {1, 1}, {2, 1}},
		{{1, 0}, {1, 1}, {2, 1}, {1, 2}},
		{{0, 1}, {1, 1}, {2, 1}, {1, 2}},
		{{1, 0}, {0, 1}, {1, 1}, {1, 2}},
	},
	ShapeS: {
		{{1, 0}, {2, 0}, {0, 1}, {1, 1}},
		{{1, 0}, {1, 1}, {2, 1}, {2, 2}},
	},
	ShapeZ: {
		{{0, 0}, {1, 0}, {1, 1}, {2, 1}},
		{{2, 0}, {1, 1}, {2, 1}, {1, 2}},
	},
	ShapeJ: {
		{{0, 0}, {0, 1}, {1, 1}, {2, 1}},
		{{1, 0}, {2, 0}, {1, 1}, {1, 2}},
		{{0, 1}, {1, 1}, {2, 1}, {2, 2}},
		{{1, 0}, {1, 1}, {0, 2}, {1, 2}},
	},
	ShapeL: {
		{{2, 0}, {0, 1}, {1, 1}, {2, 1}},
		{{1, 0}, {1, 1}, {1, 2}, {2, 2}},
		{{0, 1}, {1, 1}, {2, 1}, {0, 2}},
		{{0, 0}, {1, 0}, {1, 1}, {1, 2}},
	},
}

// Valid reports whether s is one of the seven shapes.
func (s Shape) Valid() bool {
	return s >= ShapeI && s <= ShapeL
}

// States returns the number of distinct rotation states.
func (s Shape) States() int {
	if !s.Valid() {
		return 0
	}
	return len(rotations[s])
}

// Offsets returns the cell offsets for a rotation state.
// The state index wraps in both directions.
func (s Shape) Offsets(state int) [4]Coord {
	n := s.States()
	if n == 0 {
		return [4]Coord{}
	}
	return rotations[s][((state%n)+n)%n]
}

func (s Shape) String() string {
	switch s {
	case ShapeI:
		return "I"
	case ShapeO:
		return "O"
	case ShapeT:
		return "T"
	case ShapeS:
		return "S"
	case ShapeZ:
		return "Z"
	case ShapeJ:
		return "J"
	case ShapeL:
		return "L"
	default:
		return "?"
	}
}

// Color returns the display color for blocks of this shape.
func (s Shape) Color() core.Color {
	switch s {
	case ShapeI:
		return core.ColorBrightCyan
	case ShapeO:
		return core.ColorBrightYellow
	case ShapeT:
		return core.ColorBrightMagenta
	case ShapeS:
		return core.ColorBrightGreen
	case ShapeZ:
		return core.ColorBrightRed
	case ShapeJ:
		return core.ColorBrightBlue
	case ShapeL:
		return core.ColorOrange
	default:
		return core.ColorDefault
	}
}

// ShapeSource yields the type of each new tetromino.
type ShapeSource interface {
	NextShape() Shape
}

// randomShapes picks uniformly over all seven shapes.
type randomShapes struct {
	rng *rand.Rand
}

// NewRandomShapes returns a uniform source seeded with seed.
func NewRandomShapes(seed int64) ShapeSource {
	return &randomShapes{rng: rand.New(rand.NewSource(seed))}
}

func (r *randomShapes) NextShape() Shape {
	return Shape(r.rng.Intn(ShapeCount))
}

// sequence cycles through a fixed list of shapes.
type sequence struct {
	shapes []Shape
	pos    int
}

// NewSequence returns a source that repeats shapes in order.
// An empty list yields ShapeI forever.
func NewSequence(shapes ...Shape) ShapeSource {
	return &sequence{shapes: shapes}
}

func (s *sequence) NextShape() Shape {
	if len(s.shapes) == 0 {
		return ShapeI
	}
	shape := s.shapes[s.pos%len(s.shapes)]
	s.pos++
	return shape
}
