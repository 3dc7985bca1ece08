package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRotationTables(t *testing.T) {
	wantStates := map[Shape]int{
		ShapeI: 2, ShapeO: 1, ShapeT: 4, ShapeS: 2, ShapeZ: 2, ShapeJ: 4, ShapeL: 4,
	}

	for shape := ShapeI; shape <= ShapeL; shape++ {
		t.Run(shape.String(), func(t *testing.T) {
			require.Equal(t, wantStates[shape], shape.States())
			for state := range shape.States() {
				seen := make(map[Coord]bool)
				for _, off := range shape.Offsets(state) {
					assert.False(t, seen[off], "state %d repeats offset %v", state, off)
					seen[off] = true
					assert.True(t, off.X >= 0 && off.X < 4 && off.Y >= 0 && off.Y < 4,
						"state %d offset %v outside 4x4 box", state, off)
				}
			}
		})
	}
}

func TestOffsetsWrap(t *testing.T) {
	assert.Equal(t, ShapeT.Offsets(3), ShapeT.Offsets(-1))
	assert.Equal(t, ShapeI.Offsets(0), ShapeI.Offsets(2))
	assert.Equal(t, [4]Coord{}, Shape(99).Offsets(0))
}

func TestMoveBlockedLeavesPieceUntouched(t *testing.T) {
	tests := []struct {
		name    string
		anchor  Coord
		dir     Direction
		blocker *Coord
	}{
		{"left wall", Coord{X: 0, Y: 5}, DirLeft, nil},
		{"right wall", Coord{X: Columns - 3, Y: 5}, DirRight, nil},
		{"floor", Coord{X: 3, Y: Rows - 2}, DirDown, nil},
		{"settled block", Coord{X: 3, Y: 5}, DirDown, &Coord{X: 4, Y: 7}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := newSettled()
			if tc.blocker != nil {
				require.True(t, s.Put(Block{Pos: *tc.blocker, Kind: ShapeO}))
			}
			// T base state occupies x+0..x+2 on row y+1, peak at (x+1, y).
			p := NewTetromino(ShapeT, tc.anchor, 1)
			require.True(t, p.Fits(s))

			before := p.Blocks()
			anchor := p.Anchor()
			assert.False(t, p.Move(tc.dir, s))
			assert.Equal(t, before, p.Blocks())
			assert.Equal(t, anchor, p.Anchor())
		})
	}
}

func TestMoveSucceeds(t *testing.T) {
	p := NewTetromino(ShapeO, Coord{X: 3, Y: 0}, 1)
	require.True(t, p.Move(DirDown, nil))
	require.True(t, p.Move(DirRight, nil))
	assert.Equal(t, Coord{X: 4, Y: 1}, p.Anchor())
	for _, b := range p.Blocks() {
		assert.Equal(t, ShapeO, b.Kind)
		assert.Equal(t, uint32(1), b.Piece)
	}
}

func TestRotateAgainstLeftWallRejected(t *testing.T) {
	// Vertical I sits in column 2 of its box, so anchor x=-2 puts it on x=0.
	p := NewTetromino(ShapeI, Coord{X: -2, Y: 5}, 1)
	require.True(t, p.Rotate(1, nil), "turning to vertical lands inside the grid")
	require.Equal(t, 1, p.Rotation())
	require.True(t, p.Fits(nil))

	before := p.Blocks()
	assert.False(t, p.Rotate(1, nil), "horizontal would need x=-2..1")
	assert.False(t, p.Rotate(-1, nil))
	assert.Equal(t, 1, p.Rotation())
	assert.Equal(t, before, p.Blocks())
}

func TestRotateCycles(t *testing.T) {
	p := NewTetromino(ShapeT, Coord{X: 3, Y: 5}, 1)
	for i := 1; i <= 4; i++ {
		require.True(t, p.Rotate(1, nil))
		assert.Equal(t, i%4, p.Rotation())
	}
	require.True(t, p.Rotate(-1, nil))
	assert.Equal(t, 3, p.Rotation())
	assert.False(t, p.Rotate(0, nil))
}

func TestPlaceSkipsCollisionCheck(t *testing.T) {
	p := NewTetromino(ShapeO, Coord{}, 1)
	p.Place(Coord{X: -5, Y: -5})
	assert.Equal(t, Coord{X: -5, Y: -5}, p.Anchor())
	assert.False(t, p.Fits(nil))
}

func TestSequenceSource(t *testing.T) {
	src := NewSequence(ShapeS, ShapeZ)
	assert.Equal(t, ShapeS, src.NextShape())
	assert.Equal(t, ShapeZ, src.NextShape())
	assert.Equal(t, ShapeS, src.NextShape())

	assert.Equal(t, ShapeI, NewSequence().NextShape())
}

func TestRandomShapesInRange(t *testing.T) {
	src := NewRandomShapes(3)
	counts := make(map[Shape]int)
	for range 700 {
		s := src.NextShape()
		require.True(t, s.Valid())
		counts[s]++
	}
	assert.Len(t, counts, ShapeCount)
}
