package core

import "strings"

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone Action = iota
	ActionMoveLeft
	ActionMoveRight
	ActionRotateCW
	ActionRotateCCW
	ActionSoftDrop
	ActionHardDrop
	ActionStart
	ActionPause
	ActionRestart
	ActionQuit
)

// Actions lists every bindable action in display order.
var Actions = []Action{
	ActionMoveLeft,
	ActionMoveRight,
	ActionRotateCW,
	ActionRotateCCW,
	ActionSoftDrop,
	ActionHardDrop,
	ActionStart,
	ActionPause,
	ActionRestart,
	ActionQuit,
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionMoveLeft:
		return "MoveLeft"
	case ActionMoveRight:
		return "MoveRight"
	case ActionRotateCW:
		return "RotateCW"
	case ActionRotateCCW:
		return "RotateCCW"
	case ActionSoftDrop:
		return "SoftDrop"
	case ActionHardDrop:
		return "HardDrop"
	case ActionStart:
		return "Start"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// KeyTable maps normalized key names to actions.
//
// Key names follow Bubble Tea's KeyMsg.String() spelling ("left", "a",
// "ctrl+c", " " for space, "enter", "esc"). Other frontends translate their
// native events into the same spelling before lookup.
type KeyTable map[string]Action

// NewKeyTable builds a table from per-action key lists.
// When a key is bound twice, the later action in Actions order wins.
func NewKeyTable(bindings map[Action][]string) KeyTable {
	table := make(KeyTable)
	for _, a := range Actions {
		for _, k := range bindings[a] {
			table[NormalizeKey(k)] = a
		}
	}
	return table
}

// Lookup returns the action bound to key, or ActionNone.
func (t KeyTable) Lookup(key string) Action {
	if a, ok := t[NormalizeKey(key)]; ok {
		return a
	}
	return ActionNone
}

// NormalizeKey lowercases named keys and maps "space" to " ".
// Single printable characters are kept verbatim so "A" and "a" stay distinct.
func NormalizeKey(key string) string {
	if len([]rune(key)) == 1 {
		return key
	}
	k := strings.ToLower(strings.TrimSpace(key))
	switch k {
	case "space", "spacebar":
		return " "
	case "escape":
		return "esc"
	case "return":
		return "enter"
	}
	return k
}
