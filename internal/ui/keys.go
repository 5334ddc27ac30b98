package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the session screen's keyboard shortcuts
type KeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding

	StartWorkout  key.Binding
	ToggleSet     key.Binding
	EditField     key.Binding
	ToggleDrop    key.Binding
	AddDrop       key.Binding
	RemoveDrop    key.Binding
	CycleVariant  key.Binding
	SupersetLink  key.Binding
	EditNote      key.Binding
	FinishWorkout key.Binding

	TimerPause    key.Binding
	TimerMode     key.Binding
	TimerQuick    key.Binding
	TimerPlus     key.Binding
	TimerMinus    key.Binding
	TimerReset    key.Binding
	TimerMinimize key.Binding

	Help key.Binding
	Quit key.Binding
}

// NewKeyMap creates the default key bindings
func NewKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "previous set"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "next set"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "weight field"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "reps field"),
		),
		StartWorkout: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "start workout"),
		),
		ToggleSet: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "toggle set done"),
		),
		EditField: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "edit field"),
		),
		ToggleDrop: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "toggle drop set"),
		),
		AddDrop: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add drop"),
		),
		RemoveDrop: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "remove drop"),
		),
		CycleVariant: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "cycle variant"),
		),
		SupersetLink: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "link superset"),
		),
		EditNote: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "exercise note"),
		),
		FinishWorkout: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "finish workout"),
		),
		TimerPause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause/resume timer"),
		),
		TimerMode: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "countdown/stopwatch"),
		),
		TimerQuick: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quick rest"),
		),
		TimerPlus: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "timer +15s"),
		),
		TimerMinus: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "timer -15s"),
		),
		TimerReset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset timer"),
		),
		TimerMinimize: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "hide/show timer"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "esc"),
			key.WithHelp("esc", "quit"),
		),
	}
}
