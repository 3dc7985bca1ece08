package tetris

// Event is published by the board after a state change.
// Subscribers run synchronously on the caller's goroutine and must not call
// back into the board.
type Event interface {
	boardEvent()
}

// PhaseChanged is sent on every state machine transition.
type PhaseChanged struct {
	From Phase
	To   Phase
}

func (PhaseChanged) boardEvent() {}

// Spawned is sent when the preview piece becomes the active piece.
type Spawned struct {
	Shape Shape
	Next  Shape
}

func (Spawned) boardEvent() {}

// Locked is sent when the active piece settles.
type Locked struct {
	Blocks [4]Block
}

func (Locked) boardEvent() {}

// RowCleared is sent once per full row, before the row is removed.
// Row is the index at the time of removal.
type RowCleared struct {
	Row int
}

func (RowCleared) boardEvent() {}

// RowsCleared is sent once per row check that removed at least one row.
type RowsCleared struct {
	Count int
}

func (RowsCleared) boardEvent() {}

// ScoreChanged carries the new total and the amount just added.
type ScoreChanged struct {
	Score int
	Delta int
}

func (ScoreChanged) boardEvent() {}

// TetrisCountChanged is sent after a four-row clear.
type TetrisCountChanged struct {
	Count int
}

func (TetrisCountChanged) boardEvent() {}

// GameOver is sent once when a new piece cannot spawn.
type GameOver struct {
	Score int
}

func (GameOver) boardEvent() {}
