package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"ferro/internal/theme"
)

// helpGroup is one titled section of the help screen
type helpGroup struct {
	title    string
	bindings []key.Binding
}

func (m *Model) helpView() string {
	groups := []helpGroup{
		{
			title:    "Navigation",
			bindings: []key.Binding{m.keys.Up, m.keys.Down, m.keys.Left, m.keys.Right},
		},
		{
			title: "Logging",
			bindings: []key.Binding{
				m.keys.StartWorkout, m.keys.ToggleSet, m.keys.EditField,
				m.keys.ToggleDrop, m.keys.AddDrop, m.keys.RemoveDrop,
				m.keys.CycleVariant, m.keys.SupersetLink, m.keys.EditNote,
				m.keys.FinishWorkout,
			},
		},
		{
			title: "Rest timer",
			bindings: []key.Binding{
				m.keys.TimerPause, m.keys.TimerMode, m.keys.TimerQuick,
				m.keys.TimerPlus, m.keys.TimerMinus, m.keys.TimerReset,
				m.keys.TimerMinimize,
			},
		},
		{
			title:    "Application",
			bindings: []key.Binding{m.keys.Help, m.keys.Quit},
		},
	}

	var b strings.Builder
	b.WriteString(theme.TitleStyle.Render("Help"))
	b.WriteString("\n")

	for _, group := range groups {
		b.WriteString(theme.HelpGroupStyle.Render(group.title))
		b.WriteString("\n")
		for _, binding := range group.bindings {
			b.WriteString(theme.HelpKeyStyle.Render(binding.Help().Key))
			b.WriteString(theme.HelpDescStyle.Render(binding.Help().Desc))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(theme.HelpStyle.Render("press ? or esc to close"))
	return b.String()
}
