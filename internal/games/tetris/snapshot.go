package tetris

// PieceSnapshot is a value copy of a tetromino.
type PieceSnapshot struct {
	Shape    Shape
	Rotation int
	Anchor   Coord
	Blocks   [4]Block
}

// Snapshot captures the complete board state for determinism testing.
type Snapshot struct {
	Tick        uint64
	Phase       Phase
	Score       int
	TetrisCount int
	Lines       int
	Settled     []Block // row-major
	Active      *PieceSnapshot
	Next        Shape
}

// Snapshot returns a deep copy of the board state.
func (b *Board) Snapshot() Snapshot {
	s := Snapshot{
		Tick:        b.ticks,
		Phase:       b.phase,
		Score:       b.score,
		TetrisCount: b.tetrisCount,
		Lines:       b.lines,
		Settled:     b.settled.Blocks(),
		Next:        b.next.Shape(),
	}
	if b.active != nil {
		s.Active = &PieceSnapshot{
			Shape:    b.active.Shape(),
			Rotation: b.active.Rotation(),
			Anchor:   b.active.Anchor(),
			Blocks:   b.active.Blocks(),
		}
	}
	return s
}
