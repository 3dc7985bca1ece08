package tetris

import (
	"fmt"
)

// DefaultBaseScore is awarded per cleared row, before the half bonus.
const DefaultBaseScore = 100

// SpawnAnchor is where new pieces enter: top row, centred 4x4 box.
var SpawnAnchor = Coord{X: Columns/2 - 2, Y: 0}

// Phase is the session state.
type Phase int

const (
	PhaseIdle     Phase = iota // no active piece, timer stopped
	PhaseRunning               // timer armed
	PhasePaused                // timer stopped, active piece kept
	PhaseGameOver              // terminal
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Options configures a Board.
type Options struct {
	// Seed feeds the default uniform shape source.
	Seed int64
	// BaseScore per cleared row; DefaultBaseScore when <= 0.
	BaseScore int
	// Shapes overrides the random source, e.g. with NewSequence in tests.
	Shapes ShapeSource
}

// TickResult describes what a single gravity step did.
type TickResult struct {
	Spawned  bool
	Moved    bool
	Locked   bool
	Cleared  int
	GameOver bool
}

// Board is the game session: settled blocks, active and next pieces,
// score and the phase state machine.
type Board struct {
	baseScore int
	shapes    ShapeSource
	settled   *Settled
	active    *Tetromino
	next      *Tetromino
	serial    uint32

	score       int
	tetrisCount int
	lines       int
	ticks       uint64
	phase       Phase

	subscribers []func(Event)
}

// NewBoard creates an idle board with a queued preview piece.
func NewBoard(opts Options) *Board {
	b := &Board{
		baseScore: opts.BaseScore,
		shapes:    opts.Shapes,
		settled:   newSettled(),
		phase:     PhaseIdle,
	}
	if b.baseScore <= 0 {
		b.baseScore = DefaultBaseScore
	}
	if b.shapes == nil {
		b.shapes = NewRandomShapes(opts.Seed)
	}
	b.next = b.newPiece()
	return b
}

// Subscribe registers fn for every subsequent event.
func (b *Board) Subscribe(fn func(Event)) {
	if fn != nil {
		b.subscribers = append(b.subscribers, fn)
	}
}

func (b *Board) emit(e Event) {
	for _, fn := range b.subscribers {
		fn(e)
	}
}

func (b *Board) setPhase(p Phase) {
	if b.phase == p {
		return
	}
	from := b.phase
	b.phase = p
	b.emit(PhaseChanged{From: from, To: p})
}

// Phase returns the current session state.
func (b *Board) Phase() Phase { return b.phase }

// Score returns the accumulated score.
func (b *Board) Score() int { return b.score }

// TetrisCount returns how many four-row clears happened.
func (b *Board) TetrisCount() int { return b.tetrisCount }

// Lines returns the total number of cleared rows.
func (b *Board) Lines() int { return b.lines }

// Ticks returns the number of gravity steps taken while running.
func (b *Board) Ticks() uint64 { return b.ticks }

// Active returns the falling piece, or nil.
func (b *Board) Active() *Tetromino { return b.active }

// Next returns the queued preview piece.
func (b *Board) Next() *Tetromino { return b.next }

// Settled exposes the locked blocks.
func (b *Board) Settled() *Settled { return b.settled }

// Start moves Idle or Paused to Running. It reports whether the phase changed.
func (b *Board) Start() bool {
	if b.phase != PhaseIdle && b.phase != PhasePaused {
		return false
	}
	b.setPhase(PhaseRunning)
	return true
}

// Pause moves Running to Paused. It reports whether the phase changed.
func (b *Board) Pause() bool {
	if b.phase != PhaseRunning {
		return false
	}
	b.setPhase(PhasePaused)
	return true
}

// Stop is an alias for Pause.
func (b *Board) Stop() bool { return b.Pause() }

// Tick advances gravity by one step. It does nothing unless Running.
func (b *Board) Tick() TickResult {
	var res TickResult
	if b.phase != PhaseRunning {
		return res
	}
	b.ticks++

	if b.active == nil {
		b.spawn()
		res.Spawned = true
		if !b.active.Fits(b.settled) {
			b.gameOver()
			res.GameOver = true
			return res
		}
	}

	if b.active.Move(DirDown, b.settled) {
		res.Moved = true
		return res
	}

	res.Locked = true
	res.Cleared = b.lock()
	return res
}

// SoftDrop is one tick requested by the player.
func (b *Board) SoftDrop() TickResult {
	return b.Tick()
}

// MoveActive shifts the active piece left, right or down.
func (b *Board) MoveActive(d Direction) bool {
	if b.phase != PhaseRunning || b.active == nil {
		return false
	}
	return b.active.Move(d, b.settled)
}

// RotateActive turns the active piece; +1 clockwise, -1 counter-clockwise.
func (b *Board) RotateActive(dir int) bool {
	if b.phase != PhaseRunning || b.active == nil {
		return false
	}
	return b.active.Rotate(dir, b.settled)
}

// HardDrop moves the active piece down until blocked and returns the
// distance. The lock itself happens on the next tick.
func (b *Board) HardDrop() int {
	if b.phase != PhaseRunning || b.active == nil {
		return 0
	}
	n := 0
	for b.active.Move(DirDown, b.settled) {
		n++
	}
	return n
}

// CheckRows removes every full row and scores them.
//
// Row counts are taken once up front. Full rows are then processed in
// ascending order; after each removal every block above that row shifts down
// by one. Rows below an earlier clear are untouched by its shift, so the
// precomputed counts stay valid for them.
func (b *Board) CheckRows() int {
	var counts [Rows]int
	for y := range Rows {
		counts[y] = b.settled.RowCount(y)
	}

	cleared := 0
	for y := range Rows {
		if counts[y] != Columns {
			continue
		}
		b.emit(RowCleared{Row: y})
		b.settled.RemoveRow(y)
		b.settled.ShiftAbove(y)
		cleared++
	}

	if cleared == 0 {
		return 0
	}

	b.lines += cleared
	delta := cleared*b.baseScore + cleared*b.baseScore/2
	b.score += delta
	b.emit(RowsCleared{Count: cleared})
	b.emit(ScoreChanged{Score: b.score, Delta: delta})

	if cleared == 4 {
		b.tetrisCount++
		b.emit(TetrisCountChanged{Count: b.tetrisCount})
	}
	return cleared
}

func (b *Board) newPiece() *Tetromino {
	b.serial++
	return NewTetromino(b.shapes.NextShape(), Coord{}, b.serial)
}

func (b *Board) spawn() {
	b.active = b.next
	b.active.Place(SpawnAnchor)
	b.next = b.newPiece()
	b.emit(Spawned{Shape: b.active.Shape(), Next: b.next.Shape()})
}

func (b *Board) lock() int {
	blocks := b.active.Blocks()
	for _, blk := range blocks {
		b.settled.Put(blk)
	}
	b.active = nil
	b.emit(Locked{Blocks: blocks})
	return b.CheckRows()
}

func (b *Board) gameOver() {
	b.setPhase(PhaseGameOver)
	b.emit(GameOver{Score: b.score})
}

// validate checks the spatial invariants: every block in bounds and no two
// blocks sharing a cell.
func (b *Board) validate() error {
	seen := make(map[Coord]bool, b.settled.Len()+4)
	for _, blk := range b.settled.Blocks() {
		if !blk.Pos.InBounds() {
			return fmt.Errorf("settled block out of bounds at %v", blk.Pos)
		}
		seen[blk.Pos] = true
	}
	if b.active == nil || b.phase == PhaseGameOver {
		return nil
	}
	for _, blk := range b.active.Blocks() {
		if !blk.Pos.InBounds() {
			return fmt.Errorf("active block out of bounds at %v", blk.Pos)
		}
		if seen[blk.Pos] {
			return fmt.Errorf("active block overlaps at %v", blk.Pos)
		}
		seen[blk.Pos] = true
	}
	return nil
}
