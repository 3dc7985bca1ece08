package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
)

// KeyMap defines the in-game key bindings. It is built from the config so
// the help footer always shows the keys that are actually bound.
type KeyMap struct {
	MoveLeft  key.Binding
	MoveRight key.Binding
	RotateCW  key.Binding
	RotateCCW key.Binding
	SoftDrop  key.Binding
	HardDrop  key.Binding
	Start     key.Binding
	Pause     key.Binding
	Restart   key.Binding
	Quit      key.Binding
}

// helpText is the short description shown next to each action's keys.
var helpText = map[core.Action]string{
	core.ActionMoveLeft:  "left",
	core.ActionMoveRight: "right",
	core.ActionRotateCW:  "rotate",
	core.ActionRotateCCW: "rotate ccw",
	core.ActionSoftDrop:  "drop",
	core.ActionHardDrop:  "hard drop",
	core.ActionStart:     "start",
	core.ActionPause:     "pause",
	core.ActionRestart:   "restart",
	core.ActionQuit:      "quit",
}

// NewKeyMap builds key bindings from the configured key lists.
func NewKeyMap(kb config.KeyBindings) KeyMap {
	b := kb.Bindings()
	bind := func(a core.Action) key.Binding {
		keys := make([]string, 0, len(b[a]))
		for _, k := range b[a] {
			keys = append(keys, core.NormalizeKey(k))
		}
		return key.NewBinding(
			key.WithKeys(keys...),
			key.WithHelp(helpKeys(keys), helpText[a]),
		)
	}

	return KeyMap{
		MoveLeft:  bind(core.ActionMoveLeft),
		MoveRight: bind(core.ActionMoveRight),
		RotateCW:  bind(core.ActionRotateCW),
		RotateCCW: bind(core.ActionRotateCCW),
		SoftDrop:  bind(core.ActionSoftDrop),
		HardDrop:  bind(core.ActionHardDrop),
		Start:     bind(core.ActionStart),
		Pause:     bind(core.ActionPause),
		Restart:   bind(core.ActionRestart),
		Quit:      bind(core.ActionQuit),
	}
}

// DefaultKeyMap returns the bindings from the default config.
func DefaultKeyMap() KeyMap {
	return NewKeyMap(config.DefaultTetrisConfig().Keys)
}

func helpKeys(keys []string) string {
	labels := make([]string, 0, len(keys))
	for _, k := range keys {
		if k == " " {
			k = "space"
		}
		labels = append(labels, k)
	}
	return strings.Join(labels, "/")
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.MoveLeft, k.MoveRight, k.RotateCW, k.SoftDrop, k.HardDrop, k.Pause, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.MoveLeft, k.MoveRight, k.RotateCW, k.RotateCCW},
		{k.SoftDrop, k.HardDrop},
		{k.Start, k.Pause, k.Restart, k.Quit},
	}
}

// ordered lists bindings so that a key bound twice resolves to the later
// action, matching core.NewKeyTable.
func (k KeyMap) ordered() []struct {
	action  core.Action
	binding key.Binding
} {
	return []struct {
		action  core.Action
		binding key.Binding
	}{
		{core.ActionQuit, k.Quit},
		{core.ActionRestart, k.Restart},
		{core.ActionPause, k.Pause},
		{core.ActionStart, k.Start},
		{core.ActionHardDrop, k.HardDrop},
		{core.ActionSoftDrop, k.SoftDrop},
		{core.ActionRotateCCW, k.RotateCCW},
		{core.ActionRotateCW, k.RotateCW},
		{core.ActionMoveRight, k.MoveRight},
		{core.ActionMoveLeft, k.MoveLeft},
	}
}

// Action translates a key message to a game action.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	for _, entry := range k.ordered() {
		if key.Matches(msg, entry.binding) {
			return entry.action
		}
	}
	return core.ActionNone
}
