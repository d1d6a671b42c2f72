package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/leapengine/internal/core"
)

// KeyMap holds the terminal key bindings.
// W is bound to both Up and Jump: platformer variants read jump,
// free roam reads up.
type KeyMap struct {
	Left  key.Binding
	Right key.Binding
	Up    key.Binding
	Down  key.Binding
	Jump  key.Binding
	Exit  key.Binding
	Quit  key.Binding
	Shot  key.Binding
	Help  key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "right"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "w"),
			key.WithHelp("↑/w", "up (free roam)"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s"),
			key.WithHelp("↓/s", "down (free roam)"),
		),
		Jump: key.NewBinding(
			key.WithKeys(" ", "w"),
			key.WithHelp("space/w", "jump"),
		),
		Exit: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "exit"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Shot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
	}
}

// ShortHelp returns keybindings to be shown in the mini help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Jump, k.Exit, k.Help}
}

// FullHelp returns keybindings for the expanded help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down},
		{k.Jump, k.Exit, k.Quit, k.Shot, k.Help},
	}
}

// Inputs returns every logical input bound to msg.
func (k KeyMap) Inputs(msg tea.KeyMsg) []core.Input {
	bindings := []struct {
		in core.Input
		b  key.Binding
	}{
		{core.InputLeft, k.Left},
		{core.InputRight, k.Right},
		{core.InputUp, k.Up},
		{core.InputDown, k.Down},
		{core.InputJump, k.Jump},
		{core.InputExit, k.Exit},
	}

	var out []core.Input
	for _, e := range bindings {
		if key.Matches(msg, e.b) {
			out = append(out, e.in)
		}
	}
	return out
}
