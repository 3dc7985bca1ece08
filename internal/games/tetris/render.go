package tetris

import (
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Cell is one block handed to a renderer: where it is and what it looks like.
type Cell struct {
	Pos  Coord
	Kind Shape
}

// Frame is everything a renderer needs for one redraw. Board and Next are
// independent scenes in their own grid coordinates; Bonus is the word panel.
type Frame struct {
	Board       []Cell
	Next        []Cell
	Bonus       string
	Score       int
	TetrisCount int
	Lines       int
	Phase       Phase
}

// Renderer consumes frames. Implementations must not call back into the game.
type Renderer interface {
	Render(f Frame)
}

// Frame builds the board and preview scenes. The bonus text is filled in by
// the owner of the word panel.
func (b *Board) Frame() Frame {
	f := Frame{
		Score:       b.score,
		TetrisCount: b.tetrisCount,
		Lines:       b.lines,
		Phase:       b.phase,
	}

	settled := b.settled.Blocks()
	f.Board = make([]Cell, 0, len(settled)+4)
	for _, blk := range settled {
		f.Board = append(f.Board, Cell{Pos: blk.Pos, Kind: blk.Kind})
	}
	if b.active != nil {
		f.Board = append(f.Board, b.active.Cells()...)
	}
	if b.next != nil {
		f.Next = b.next.Cells()
	}
	return f
}

// Screen layout, in terminal cells.
const (
	cellWidth   = 2
	boardWidth  = Columns*cellWidth + 2
	boardHeight = Rows + 2
	sideX       = boardWidth + 2
	nextWidth   = 4*cellWidth + 2
	nextHeight  = 4 + 2
	bonusWidth  = 22
	bonusY      = 11

	// MinScreenW and MinScreenH are the smallest terminal that fits a frame.
	MinScreenW = sideX + bonusWidth
	MinScreenH = boardHeight
)

// ScreenRenderer draws frames into a core.Screen.
type ScreenRenderer struct {
	dst *core.Screen
}

// NewScreenRenderer returns a renderer targeting dst.
func NewScreenRenderer(dst *core.Screen) *ScreenRenderer {
	return &ScreenRenderer{dst: dst}
}

// Render clears the screen and draws the board, preview, HUD and overlays.
func (r *ScreenRenderer) Render(f Frame) {
	dst := r.dst
	dst.Clear()

	if dst.Width() < MinScreenW || dst.Height() < MinScreenH {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2, fmt.Sprintf("need %dx%d", MinScreenW, MinScreenH))
		return
	}

	r.drawBoard(f)
	r.drawNext(f)
	r.drawHUD(f)
	r.drawBonus(f)
	r.drawOverlay(f)
}

func (r *ScreenRenderer) drawBoard(f Frame) {
	dst := r.dst
	dst.DrawBox(core.NewRect(0, 0, boardWidth, boardHeight), core.ColorGray)

	for y := range Rows {
		for x := range Columns {
			dst.SetColor(1+x*cellWidth+1, 1+y, '·', core.ColorGray)
		}
	}
	for _, c := range f.Board {
		r.drawCell(1, 1, c)
	}
}

func (r *ScreenRenderer) drawNext(f Frame) {
	r.dst.DrawText(sideX, 0, "NEXT")
	r.dst.DrawBox(core.NewRect(sideX, 1, nextWidth, nextHeight), core.ColorGray)
	for _, c := range f.Next {
		r.drawCell(sideX+1, 2, c)
	}
}

func (r *ScreenRenderer) drawHUD(f Frame) {
	r.dst.DrawText(sideX, 8, fmt.Sprintf("Score: %d", f.Score))
	r.dst.DrawText(sideX, 9, fmt.Sprintf("Tetris count: %d", f.TetrisCount))
	r.dst.DrawText(sideX, 10, fmt.Sprintf("Lines: %d", f.Lines))
}

func (r *ScreenRenderer) drawBonus(f Frame) {
	dst := r.dst
	box := core.NewRect(sideX, bonusY+1, bonusWidth, 3)
	dst.DrawText(sideX, bonusY, "BONUS")
	dst.DrawBox(box, core.ColorGray)

	word := []rune(f.Bonus)
	if inner := bonusWidth - 2; len(word) > inner {
		word = word[:inner]
	}
	x := box.X + 1 + (bonusWidth-2-len(word))/2
	dst.DrawTextColor(x, box.Y+1, string(word), core.ColorWhite)
}

func (r *ScreenRenderer) drawOverlay(f Frame) {
	var line1, line2 string
	switch f.Phase {
	case PhaseIdle:
		line1, line2 = "READY", "Press Enter"
	case PhasePaused:
		line1, line2 = "PAUSED", "Press Enter"
	case PhaseGameOver:
		line1, line2 = "GAME OVER :(", "Press R"
	default:
		return
	}

	w := boardWidth - 4
	top := boardHeight/2 - 2
	box := core.NewRect(2, top, w, 5)
	r.dst.DrawRect(box, ' ')
	r.dst.DrawBox(box, core.ColorWhite)
	r.centerIn(box, top+1, line1)
	r.centerIn(box, top+3, line2)
}

func (r *ScreenRenderer) centerIn(box core.Rect, y int, text string) {
	x := box.X + (box.W-len([]rune(text)))/2
	r.dst.DrawText(x, y, text)
}

// drawCell draws one block as two full-width glyphs at grid origin (ox, oy).
func (r *ScreenRenderer) drawCell(ox, oy int, c Cell) {
	x := ox + c.Pos.X*cellWidth
	y := oy + c.Pos.Y
	color := c.Kind.Color()
	for i := range cellWidth {
		r.dst.SetColor(x+i, y, '█', color)
	}
}
