package tetris

import (
	"github.com/kamstrup/intmap"
)

// Settled holds every locked block, keyed by dense cell index.
// It is the single source of truth for which cells are taken.
type Settled struct {
	cells *intmap.Map[int, Block]
}

func newSettled() *Settled {
	return &Settled{cells: intmap.New[int, Block](Columns * Rows)}
}

// Occupied reports whether an in-bounds cell holds a settled block.
func (s *Settled) Occupied(c Coord) bool {
	if !c.InBounds() {
		return false
	}
	_, ok := s.cells.Get(c.index())
	return ok
}

// At returns the block at c, if any.
func (s *Settled) At(c Coord) (Block, bool) {
	if !c.InBounds() {
		return Block{}, false
	}
	return s.cells.Get(c.index())
}

// Put stores b at its position. It refuses out-of-bounds or taken cells.
func (s *Settled) Put(b Block) bool {
	if !b.Pos.InBounds() || s.Occupied(b.Pos) {
		return false
	}
	s.cells.Put(b.Pos.index(), b)
	return true
}

// Len returns the number of settled blocks.
func (s *Settled) Len() int {
	return s.cells.Len()
}

// RowCount returns how many cells of row y are taken.
func (s *Settled) RowCount(y int) int {
	n := 0
	for x := range Columns {
		if s.Occupied(Coord{X: x, Y: y}) {
			n++
		}
	}
	return n
}

// RemoveRow deletes every block in row y and returns how many were removed.
func (s *Settled) RemoveRow(y int) int {
	n := 0
	for x := range Columns {
		c := Coord{X: x, Y: y}
		if c.InBounds() && s.cells.Del(c.index()) {
			n++
		}
	}
	return n
}

// ShiftAbove moves every block strictly above row one step down.
// Rows are walked bottom-up so each target cell is already vacated.
func (s *Settled) ShiftAbove(row int) {
	for y := min(row, Rows) - 1; y >= 0; y-- {
		for x := range Columns {
			from := Coord{X: x, Y: y}
			b, ok := s.cells.Get(from.index())
			if !ok {
				continue
			}
			s.cells.Del(from.index())
			b.Pos = Coord{X: x, Y: y + 1}
			s.cells.Put(b.Pos.index(), b)
		}
	}
}

// Blocks returns all settled blocks in row-major order.
func (s *Settled) Blocks() []Block {
	out := make([]Block, 0, s.cells.Len())
	for y := range Rows {
		for x := range Columns {
			if b, ok := s.cells.Get(Coord{X: x, Y: y}.index()); ok {
				out = append(out, b)
			}
		}
	}
	return out
}

// Clear removes every block.
func (s *Settled) Clear() {
	s.cells.Clear()
}
