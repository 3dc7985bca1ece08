package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettledPut(t *testing.T) {
	s := newSettled()
	blk := Block{Pos: Coord{X: 2, Y: 3}, Kind: ShapeL}

	require.True(t, s.Put(blk))
	assert.False(t, s.Put(blk), "cell already taken")
	assert.False(t, s.Put(Block{Pos: Coord{X: Columns, Y: 0}}), "out of bounds")
	assert.Equal(t, 1, s.Len())

	got, ok := s.At(blk.Pos)
	require.True(t, ok)
	assert.Equal(t, blk, got)
	assert.False(t, s.Occupied(Coord{X: -1, Y: 0}))
}

func TestSettledRowOps(t *testing.T) {
	s := newSettled()
	for x := range Columns {
		s.Put(Block{Pos: Coord{X: x, Y: 10}})
	}
	s.Put(Block{Pos: Coord{X: 4, Y: 9}, Kind: ShapeJ})
	s.Put(Block{Pos: Coord{X: 4, Y: 12}, Kind: ShapeZ})

	assert.Equal(t, Columns, s.RowCount(10))
	assert.Equal(t, Columns, s.RemoveRow(10))
	assert.Equal(t, 0, s.RowCount(10))

	s.ShiftAbove(10)
	b, ok := s.At(Coord{X: 4, Y: 10})
	require.True(t, ok)
	assert.Equal(t, ShapeJ, b.Kind)
	assert.Equal(t, Coord{X: 4, Y: 10}, b.Pos)
	assert.False(t, s.Occupied(Coord{X: 4, Y: 9}))
	assert.True(t, s.Occupied(Coord{X: 4, Y: 12}), "rows below are untouched")

	blocks := s.Blocks()
	require.Len(t, blocks, 2)
	assert.Equal(t, 10, blocks[0].Pos.Y)
	assert.Equal(t, 12, blocks[1].Pos.Y)

	s.Clear()
	assert.Equal(t, 0, s.Len())
}
