package tetris

// Tetromino is a movable group of four blocks.
//
// All movement is transactional: the candidate cells are computed first and
// the piece only changes when every candidate is in bounds and free.
type Tetromino struct {
	shape    Shape
	rotation int
	anchor   Coord
	id       uint32
	blocks   [4]Block
}

// NewTetromino builds a piece in its base rotation at anchor.
// Construction never fails; whether the cells are free is checked with Fits.
func NewTetromino(shape Shape, anchor Coord, id uint32) *Tetromino {
	t := &Tetromino{
		shape:  shape,
		anchor: anchor,
		id:     id,
	}
	t.apply(t.cellsAt(anchor, 0), anchor, 0)
	return t
}

// Shape returns the tetromino type.
func (t *Tetromino) Shape() Shape { return t.shape }

// Rotation returns the current rotation index.
func (t *Tetromino) Rotation() int { return t.rotation }

// Anchor returns the top-left corner of the rotation box.
func (t *Tetromino) Anchor() Coord { return t.anchor }

// ID returns the piece serial.
func (t *Tetromino) ID() uint32 { return t.id }

// Blocks returns a copy of the four blocks.
func (t *Tetromino) Blocks() [4]Block { return t.blocks }

// Cells returns the blocks as render cells.
func (t *Tetromino) Cells() []Cell {
	cells := make([]Cell, 0, len(t.blocks))
	for _, b := range t.blocks {
		cells = append(cells, Cell{Pos: b.Pos, Kind: b.Kind})
	}
	return cells
}

// Fits reports whether the piece's current cells are all in bounds and free.
// This is the spawn check: a zero-length move.
func (t *Tetromino) Fits(occ Occupancy) bool {
	return fits(t.cellsAt(t.anchor, t.rotation), occ)
}

// Move translates the piece one step in d. It returns false and leaves the
// piece untouched if the move is blocked.
func (t *Tetromino) Move(d Direction, occ Occupancy) bool {
	return t.MoveTo(t.anchor.Add(d.Vector()), occ)
}

// MoveTo moves the piece to an absolute anchor if every cell fits.
func (t *Tetromino) MoveTo(anchor Coord, occ Occupancy) bool {
	cells := t.cellsAt(anchor, t.rotation)
	if !fits(cells, occ) {
		return false
	}
	t.apply(cells, anchor, t.rotation)
	return true
}

// Rotate turns the piece clockwise for dir > 0 and counter-clockwise for
// dir < 0. A blocked rotation is rejected outright; there are no wall kicks.
func (t *Tetromino) Rotate(dir int, occ Occupancy) bool {
	switch {
	case dir > 0:
		dir = 1
	case dir < 0:
		dir = -1
	default:
		return false
	}

	n := t.shape.States()
	next := ((t.rotation+dir)%n + n) % n
	cells := t.cellsAt(t.anchor, next)
	if !fits(cells, occ) {
		return false
	}
	t.apply(cells, t.anchor, next)
	return true
}

// Place re-anchors the piece without any collision check. Used when the
// preview piece is promoted to the spawn position.
func (t *Tetromino) Place(anchor Coord) {
	t.apply(t.cellsAt(anchor, t.rotation), anchor, t.rotation)
}

func (t *Tetromino) cellsAt(anchor Coord, rotation int) [4]Coord {
	var cells [4]Coord
	for i, off := range t.shape.Offsets(rotation) {
		cells[i] = anchor.Add(off)
	}
	return cells
}

func (t *Tetromino) apply(cells [4]Coord, anchor Coord, rotation int) {
	t.anchor = anchor
	t.rotation = rotation
	for i, c := range cells {
		t.blocks[i] = Block{Pos: c, Kind: t.shape, Piece: t.id}
	}
}

func fits(cells [4]Coord, occ Occupancy) bool {
	for _, c := range cells {
		if !c.InBounds() {
			return false
		}
		if occ != nil && occ.Occupied(c) {
			return false
		}
	}
	return true
}
