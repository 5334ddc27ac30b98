package ui

import (
	"fmt"
	"strings"

	"ferro/internal/domain"
	"ferro/internal/session"
	"ferro/internal/theme"
	"ferro/internal/timer"
)

func (m *Model) loggingView() string {
	var b strings.Builder

	b.WriteString(m.headerView())
	b.WriteString("\n")

	state := m.store.State()
	specs := m.store.Specs()
	cur := m.current()

	for slot, spec := range specs {
		if slot >= len(state.Exercises) {
			break
		}
		b.WriteString(m.exerciseView(slot, spec, state, cur))
	}

	if m.timer.Active() && !m.timer.Minimized() {
		b.WriteString("\n")
		b.WriteString(m.timerPanel())
		b.WriteString("\n")
	} else if m.timer.Minimized() || m.timer.BackgroundActive() {
		b.WriteString("\n")
		b.WriteString(theme.HelpStyle.Render("⏱ " + m.timer.Display()))
		b.WriteString("\n")
	}

	if m.showReminder {
		b.WriteString("\n")
		b.WriteString(theme.HintLabelStyle.Render("Workout not started. Press ") +
			theme.HintKeyStyle.Render("s") +
			theme.HintLabelStyle.Render(" to start logging."))
		b.WriteString("\n")
	} else if m.blockedAttempts > 0 {
		b.WriteString("\n")
		b.WriteString(theme.HelpStyle.Render("press s to start the workout first"))
	}

	if m.errorManager.HasError() {
		b.WriteString("\n")
		b.WriteString(theme.ErrorStyle.Render(formatErrorForDisplay(m.errorManager.GetError(), m.width)))
	}

	b.WriteString("\n")
	b.WriteString(theme.HelpStyle.Render("space done · enter edit · d drop · v variant · u superset · n note · f finish · ? help"))
	return b.String()
}

func (m *Model) headerView() string {
	title := theme.TitleStyle.Render(fmt.Sprintf("%s — %s", m.blockName, m.dayName))
	week := theme.SubtitleStyle.Render(fmt.Sprintf("week %d", m.store.Week()))

	state := m.store.State()
	var status string
	if state.Started() {
		status = theme.DurationStyle.Render(domain.FormatDuration(state.Duration))
	} else {
		status = theme.HintLabelStyle.Render("not started · press s")
	}

	return fmt.Sprintf("%s  %s  %s", title, week, status)
}

func (m *Model) exerciseView(slot int, spec domain.ExerciseSpec, state *domain.SessionState, cur position) string {
	var b strings.Builder

	name := spec.Name
	if len(state.Exercises[slot]) > 0 {
		name = spec.VariantName(state.Exercises[slot][0].SelectedVariant)
	}

	header := theme.NormalStyle.Bold(true).Render(name)
	if state.SupersetLinks[slot] {
		header += " " + theme.SupersetMarkStyle.Render("⇅ superset")
	}
	b.WriteString(header)
	b.WriteString("\n")

	if note := m.store.Note(slot); note != "" {
		b.WriteString(theme.NoteStyle.Render("  " + note))
		b.WriteString("\n")
	}

	for set, entry := range state.Exercises[slot] {
		selected := cur.slot == slot && cur.set == set && cur.drop == -1
		b.WriteString(m.setRow(slot, set, entry, selected))
		b.WriteString("\n")

		for drop, d := range entry.Drops {
			dropSelected := cur.slot == slot && cur.set == set && cur.drop == drop
			b.WriteString(m.dropRow(slot, set, drop, entry, d, dropSelected))
			b.WriteString("\n")
		}
	}

	return b.String()
}

func (m *Model) setRow(slot, set int, entry domain.SetEntry, selected bool) string {
	mark := "○"
	style := theme.PendingSetStyle
	if entry.Completed {
		mark = "●"
		style = theme.CompletedSetStyle
	}

	weight := m.fieldText(entry.Weight, m.store.PlaceholderWeight(slot), selected, session.FieldWeight)
	reps := m.fieldText(entry.Reps, fmt.Sprintf("%d", m.store.PlaceholderReps(slot, set)), selected, session.FieldReps)

	cursor := "  "
	if selected {
		cursor = "> "
	}

	row := fmt.Sprintf("%s%s set %d  %s kg × %s", cursor, mark, set+1, weight, reps)
	if entry.IsDropSet {
		row += " " + theme.DropSetStyle.Render("[drop]")
	}
	return style.Render(row)
}

func (m *Model) dropRow(slot, set, drop int, entry domain.SetEntry, d domain.DropSet, selected bool) string {
	mark := "○"
	style := theme.DropSetStyle
	if d.Completed {
		mark = "●"
	}

	weightPH, repsPH := session.DefaultDropSuggestion().Suggest(&entry, drop)
	weight := m.fieldText(d.Weight, weightPH, selected, session.FieldWeight)
	reps := m.fieldText(d.Reps, repsPH, selected, session.FieldReps)

	cursor := "    "
	if selected {
		cursor = "  > "
	}

	return style.Render(fmt.Sprintf("%s%s drop %d  %s kg × %s", cursor, mark, drop+1, weight, reps))
}

// fieldText renders one editable cell: the edit buffer when editing it,
// the stored value when set, and the muted placeholder otherwise.
func (m *Model) fieldText(value, placeholder string, rowSelected bool, field session.Field) string {
	if rowSelected && m.editing && m.field == field {
		return theme.SelectedFieldStyle.Render(m.editBuffer + "▏")
	}
	if value == "" {
		text := theme.PlaceholderStyle.Render(placeholder)
		if rowSelected && m.field == field {
			return theme.SelectedFieldStyle.Render("[") + text + theme.SelectedFieldStyle.Render("]")
		}
		return text
	}
	if rowSelected && m.field == field {
		return theme.SelectedFieldStyle.Render(value)
	}
	return value
}

func (m *Model) timerPanel() string {
	var label, display string

	if m.timer.Mode() == timer.ModeCountdown {
		cd := m.timer.Countdown()
		label = "rest"
		if m.timer.QuickMode() {
			label = theme.TimerQuickStyle.Render("quick rest")
		}
		display = fmt.Sprintf("%s / %s", m.timer.Display(), domain.FormatDuration(cd.Original))
	} else {
		label = "stopwatch"
		display = m.timer.Display()
	}

	var styled string
	switch m.timer.State() {
	case timer.StateCompleted:
		styled = theme.TimerDoneStyle.Render(display + "  done!")
	case timer.StatePaused:
		styled = theme.TimerPausedStyle.Render(display + "  ⏸")
	default:
		styled = theme.TimerRunningStyle.Render(display)
	}

	lines := []string{fmt.Sprintf("%s  %s", label, styled)}
	if m.timer.Mode() == timer.ModeCountdown {
		cd := m.timer.Countdown()
		if cd.Original > 0 {
			elapsed := float64(cd.Original-cd.Remaining) / float64(cd.Original)
			lines = append(lines, m.restBar.ViewAs(elapsed))
		}
	}
	lines = append(lines, theme.HelpLabelStyle.Render("p pause · m mode · q quick · +/- adjust · r reset · t hide"))
	return theme.TimerBorderStyle.Render(strings.Join(lines, "\n"))
}

func (m *Model) summaryView() string {
	if m.summary == nil {
		return ""
	}
	s := m.summary

	var b strings.Builder
	b.WriteString(theme.TitleStyle.Render("Workout complete"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("%s %s\n",
		theme.StatsLabelStyle.Render("Duration:"),
		theme.DurationStyle.Render(domain.FormatDuration(s.DurationSeconds))))
	b.WriteString(fmt.Sprintf("%s %s\n",
		theme.StatsLabelStyle.Render("Volume:"),
		theme.VolumeStyle.Render(fmt.Sprintf("%.1f kg", s.TotalVolume))))
	b.WriteString(fmt.Sprintf("%s %s\n",
		theme.StatsLabelStyle.Render("Sets:"),
		theme.StatsValueStyle.Render(fmt.Sprintf("%d/%d", s.CompletedSets, s.TotalSets))))
	b.WriteString(fmt.Sprintf("%s %s\n",
		theme.StatsLabelStyle.Render("Exercises:"),
		theme.StatsValueStyle.Render(fmt.Sprintf("%d", s.ExercisesCompleted))))
	b.WriteString("\n")
	b.WriteString(theme.HelpStyle.Render("press any key to exit"))
	return b.String()
}
