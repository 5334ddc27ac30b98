package ui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"ferro/internal/config"
	"ferro/internal/domain"
	"ferro/internal/logging"
	"ferro/internal/session"
	"ferro/internal/theme"
	"ferro/internal/timer"
)

// startReminderAfterBlocked is how many blocked inputs trigger the
// full-width start reminder banner
const startReminderAfterBlocked = 3

// position addresses one editable row: a main set or one of its drops
type position struct {
	slot int
	set  int
	drop int // -1 for the main set row
}

// Model is the session screen: one workout day, one block, one week
type Model struct {
	store  *session.Store
	bridge *session.Bridge
	timer  *timer.Engine
	keys   KeyMap
	nav    *StackNavigator

	dayName   string
	blockName string

	errorManager *ErrorManager
	restBar      progress.Model

	cursor    int
	positions []position
	field     session.Field

	editing    bool
	editBuffer string

	blockedAttempts int
	showReminder    bool

	noteForm   *huh.Form
	noteValue  string
	noteSlot   int
	finishForm *huh.Form
	confirmed  bool
	summary    *domain.SessionStats

	timerLoop    bool
	bgLoop       bool
	durationLoop bool

	width  int
	height int
}

// NewModel creates the session screen. Restore and placeholder seeding
// happen before construction; the model only renders and mutates.
func NewModel(store *session.Store, bridge *session.Bridge, engine *timer.Engine, dayName, blockName string, errorClearDelay time.Duration) *Model {
	m := &Model{
		store:        store,
		bridge:       bridge,
		timer:        engine,
		keys:         NewKeyMap(),
		nav:          NewStackNavigator(),
		dayName:      dayName,
		blockName:    blockName,
		errorManager: NewErrorManager(errorClearDelay),
		restBar: progress.New(
			progress.WithGradient(string(theme.ColorTimerRunning), string(theme.ColorTimerDone)),
			progress.WithoutPercentage(),
			progress.WithWidth(30),
		),
	}
	m.positions = buildPositions(store)
	return m
}

// buildPositions flattens the session into navigable rows
func buildPositions(store *session.Store) []position {
	var out []position
	for slot, sets := range store.State().Exercises {
		for set, entry := range sets {
			out = append(out, position{slot: slot, set: set, drop: -1})
			for drop := range entry.Drops {
				out = append(out, position{slot: slot, set: set, drop: drop})
			}
		}
	}
	return out
}

// current returns the row under the cursor
func (m *Model) current() position {
	if len(m.positions) == 0 {
		return position{drop: -1}
	}
	if m.cursor >= len(m.positions) {
		m.cursor = len(m.positions) - 1
	}
	return m.positions[m.cursor]
}

// refreshPositions rebuilds rows after a structural change, keeping the
// cursor near the row it was on
func (m *Model) refreshPositions() {
	m.positions = buildPositions(m.store)
	if m.cursor >= len(m.positions) {
		m.cursor = len(m.positions) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) Init() tea.Cmd {
	var cmds []tea.Cmd
	if m.store.State().Started() {
		cmds = append(cmds, m.scheduleDurationTick())
	}
	if m.timer.Active() {
		cmds = append(cmds, m.scheduleTimerTick())
	}
	return tea.Batch(cmds...)
}

func (m *Model) scheduleTimerTick() tea.Cmd {
	m.timerLoop = true
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return timerTickMsg{}
	})
}

func (m *Model) scheduleBackgroundTick() tea.Cmd {
	m.bgLoop = true
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return backgroundTickMsg{}
	})
}

func (m *Model) scheduleDurationTick() tea.Cmd {
	m.durationLoop = true
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return workoutTickMsg{}
	})
}

// save pushes the current session into its storage slot. A failed write
// surfaces as a transient status line only; logging continues in memory.
func (m *Model) save() tea.Cmd {
	if err := m.bridge.Save(context.Background(), m.store); err != nil {
		m.errorManager.SetError(fmt.Errorf("auto-save failed: %w", err))
		return m.errorManager.ClearAfterDelay()
	}
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case timerTickMsg:
		m.timerLoop = false
		if m.timer.State() == timer.StateRunning {
			m.timer.Tick()
		}
		// Completion and pauses stop the loop; the resume, quick-toggle and
		// mode-switch handlers restart it.
		if m.timer.State() == timer.StateRunning {
			return m, m.scheduleTimerTick()
		}
		return m, nil

	case backgroundTickMsg:
		m.bgLoop = false
		m.timer.TickBackground()
		if m.timer.BackgroundActive() {
			return m, m.scheduleBackgroundTick()
		}
		return m, nil

	case workoutTickMsg:
		m.durationLoop = false
		if m.store.State().Started() && m.summary == nil {
			m.store.TickDuration()
			return m, m.scheduleDurationTick()
		}
		return m, nil

	case clearErrorMsg:
		m.errorManager.ClearError()
		return m, nil

	case clearReminderMsg:
		m.showReminder = false
		return m, nil
	}

	switch m.nav.Current() {
	case ViewNote:
		return m.updateNote(msg)
	case ViewFinish:
		return m.updateFinish(msg)
	case ViewSummary:
		return m.updateSummary(msg)
	case ViewHelp:
		return m.updateHelp(msg)
	}
	return m.updateLogging(msg)
}

func (m *Model) updateLogging(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.editing {
		return m.updateEditing(keyMsg)
	}

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		m.save()
		return m, tea.Quit

	case key.Matches(keyMsg, m.keys.Help):
		m.nav.Push(ViewHelp)
		return m, nil

	case key.Matches(keyMsg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(keyMsg, m.keys.Down):
		if m.cursor < len(m.positions)-1 {
			m.cursor++
		}
		return m, nil

	case key.Matches(keyMsg, m.keys.Left):
		m.field = session.FieldWeight
		return m, nil

	case key.Matches(keyMsg, m.keys.Right):
		m.field = session.FieldReps
		return m, nil

	case key.Matches(keyMsg, m.keys.StartWorkout):
		m.store.Start(time.Now())
		m.showReminder = false
		m.blockedAttempts = 0
		saveCmd := m.save()
		if !m.durationLoop {
			return m, tea.Batch(saveCmd, m.scheduleDurationTick())
		}
		return m, saveCmd

	case key.Matches(keyMsg, m.keys.ToggleSet):
		return m.handleToggleSet()

	case key.Matches(keyMsg, m.keys.EditField):
		if !m.store.State().Started() {
			return m, m.registerBlockedAttempt()
		}
		m.beginEdit()
		return m, nil

	case key.Matches(keyMsg, m.keys.ToggleDrop):
		pos := m.current()
		if !m.store.ToggleDropSetMode(pos.slot, pos.set) {
			return m, m.registerBlockedAttempt()
		}
		m.refreshPositions()
		return m, m.save()

	case key.Matches(keyMsg, m.keys.AddDrop):
		pos := m.current()
		if !m.store.AddDropSet(pos.slot, pos.set) {
			return m, m.registerBlockedAttempt()
		}
		m.refreshPositions()
		return m, m.save()

	case key.Matches(keyMsg, m.keys.RemoveDrop):
		pos := m.current()
		if pos.drop < 0 {
			return m, nil
		}
		if !m.store.RemoveDropSet(pos.slot, pos.set, pos.drop) {
			return m, m.registerBlockedAttempt()
		}
		m.refreshPositions()
		return m, m.save()

	case key.Matches(keyMsg, m.keys.CycleVariant):
		pos := m.current()
		specs := m.store.Specs()
		if pos.slot < len(specs) && specs[pos.slot].VariantCount() > 1 {
			entry := m.store.State().Entry(pos.slot, pos.set)
			if entry != nil {
				next := (entry.SelectedVariant + 1) % specs[pos.slot].VariantCount()
				m.store.SelectVariant(pos.slot, next)
				m.refreshPositions()
				return m, m.save()
			}
		}
		return m, nil

	case key.Matches(keyMsg, m.keys.SupersetLink):
		if !m.store.State().Started() {
			return m, m.registerBlockedAttempt()
		}
		m.store.ToggleSupersetLink(m.current().slot)
		return m, m.save()

	case key.Matches(keyMsg, m.keys.EditNote):
		if !m.store.State().Started() {
			return m, m.registerBlockedAttempt()
		}
		return m.openNoteForm()

	case key.Matches(keyMsg, m.keys.FinishWorkout):
		if !m.store.State().Started() {
			return m, m.registerBlockedAttempt()
		}
		return m.openFinishForm()

	case key.Matches(keyMsg, m.keys.TimerPause):
		if m.timer.Active() {
			m.timer.TogglePause()
			if m.timer.State() == timer.StateRunning && !m.timerLoop {
				return m, m.scheduleTimerTick()
			}
		}
		return m, nil

	case key.Matches(keyMsg, m.keys.TimerMode):
		if m.timer.Active() {
			m.timer.SwitchMode()
			m.persistTimerMode()
			var cmds []tea.Cmd
			if m.timer.BackgroundActive() && !m.bgLoop {
				cmds = append(cmds, m.scheduleBackgroundTick())
			}
			if m.timer.State() == timer.StateRunning && !m.timerLoop {
				cmds = append(cmds, m.scheduleTimerTick())
			}
			return m, tea.Batch(cmds...)
		}
		return m, nil

	case key.Matches(keyMsg, m.keys.TimerQuick):
		if m.timer.Active() {
			m.timer.ToggleQuickMode()
			if m.timer.State() == timer.StateRunning && !m.timerLoop {
				return m, m.scheduleTimerTick()
			}
		}
		return m, nil

	case key.Matches(keyMsg, m.keys.TimerPlus):
		m.timer.Adjust(15)
		return m, nil

	case key.Matches(keyMsg, m.keys.TimerMinus):
		m.timer.Adjust(-15)
		return m, nil

	case key.Matches(keyMsg, m.keys.TimerReset):
		if m.timer.Active() {
			m.timer.Reset()
		}
		return m, nil

	case key.Matches(keyMsg, m.keys.TimerMinimize):
		m.timer.SetMinimized(!m.timer.Minimized())
		return m, nil
	}

	return m, nil
}

// handleToggleSet flips completion for the row under the cursor. Main set
// completions may request a rest timer; drop completions never do.
func (m *Model) handleToggleSet() (tea.Model, tea.Cmd) {
	pos := m.current()

	if pos.drop >= 0 {
		if !m.store.ToggleDropCompletion(pos.slot, pos.set, pos.drop) {
			return m, m.registerBlockedAttempt()
		}
		return m, m.save()
	}

	req, ok := m.store.ToggleSetCompletion(pos.slot, pos.set)
	if !ok {
		return m, m.registerBlockedAttempt()
	}
	saveCmd := m.save()

	if req != nil {
		m.timer.Start(req.Slot, req.Set, req.DurationSeconds, req.QuickSeconds)
		if !m.timerLoop {
			return m, tea.Batch(saveCmd, m.scheduleTimerTick())
		}
	}
	return m, saveCmd
}

// persistTimerMode records the visible mode as the preferred one for
// future timers. Best effort; a write failure only loses the preference.
func (m *Model) persistTimerMode() {
	settings := m.timer.Settings()
	settings.CountUp = m.timer.Mode() == timer.ModeStopwatch
	m.timer.SetSettings(settings)
	if err := config.SaveTimerSettings(settings); err != nil {
		logging.Logger.Warn("Failed to save timer preferences", "error", err)
	}
}

// registerBlockedAttempt counts inputs rejected by the start gate. The
// third one within a session shows the full reminder banner.
func (m *Model) registerBlockedAttempt() tea.Cmd {
	m.blockedAttempts++
	logging.Logger.Debug("Input blocked before workout start", "attempts", m.blockedAttempts)
	if m.blockedAttempts >= startReminderAfterBlocked {
		m.blockedAttempts = 0
		m.showReminder = true
		return tea.Tick(4*time.Second, func(time.Time) tea.Msg {
			return clearReminderMsg{}
		})
	}
	return nil
}

// beginEdit enters inline editing on the cursor's weight or reps field
func (m *Model) beginEdit() {
	pos := m.current()
	entry := m.store.State().Entry(pos.slot, pos.set)
	if entry == nil {
		return
	}

	if pos.drop >= 0 && pos.drop < len(entry.Drops) {
		if m.field == session.FieldWeight {
			m.editBuffer = entry.Drops[pos.drop].Weight
		} else {
			m.editBuffer = entry.Drops[pos.drop].Reps
		}
	} else {
		if m.field == session.FieldWeight {
			m.editBuffer = entry.Weight
		} else {
			m.editBuffer = entry.Reps
		}
	}
	m.editing = true
}

func (m *Model) updateEditing(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.Type {
	case tea.KeyEscape:
		m.editing = false
		m.editBuffer = ""
		return m, nil

	case tea.KeyEnter:
		m.editing = false
		pos := m.current()
		if pos.drop >= 0 {
			m.store.UpdateDropField(pos.slot, pos.set, pos.drop, m.field, m.editBuffer)
		} else {
			m.store.UpdateSetField(pos.slot, pos.set, m.field, m.editBuffer)
		}
		m.editBuffer = ""
		return m, m.save()

	case tea.KeyBackspace:
		if len(m.editBuffer) > 0 {
			m.editBuffer = m.editBuffer[:len(m.editBuffer)-1]
		}
		return m, nil

	case tea.KeyRunes, tea.KeySpace:
		for _, r := range keyMsg.Runes {
			if (r >= '0' && r <= '9') || r == '.' || r == ',' {
				m.editBuffer += string(r)
			}
		}
		return m, nil
	}
	return m, nil
}

func (m *Model) openNoteForm() (tea.Model, tea.Cmd) {
	pos := m.current()
	specs := m.store.Specs()
	if pos.slot >= len(specs) {
		return m, nil
	}

	m.noteSlot = pos.slot
	m.noteValue = m.store.Note(pos.slot)
	m.noteForm = huh.NewForm(
		huh.NewGroup(
			huh.NewText().
				Title("Exercise note").
				Description(fmt.Sprintf("Note for: %s (empty to delete)", specs[pos.slot].Name)).
				Value(&m.noteValue).
				CharLimit(500),
		),
	)
	m.nav.Push(ViewNote)
	return m, m.noteForm.Init()
}

func (m *Model) updateNote(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.String() == "esc" || keyMsg.String() == "ctrl+c" {
			m.nav.Pop()
			m.noteForm = nil
			return m, nil
		}
	}

	form, cmd := m.noteForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.noteForm = f
	}

	if m.noteForm.State == huh.StateCompleted {
		m.store.SetNote(m.noteSlot, m.noteValue)
		m.nav.Pop()
		m.noteForm = nil
		return m, m.save()
	}
	return m, cmd
}

func (m *Model) openFinishForm() (tea.Model, tea.Cmd) {
	stats := domain.ComputeStats(m.store.State())
	m.confirmed = false
	m.finishForm = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Finish workout?").
				Description(fmt.Sprintf("%d/%d sets done, %.1f total volume",
					stats.CompletedSets, stats.TotalSets, stats.TotalVolume)).
				Affirmative("Finish").
				Negative("Keep going").
				Value(&m.confirmed),
		),
	)
	m.nav.Push(ViewFinish)
	return m, m.finishForm.Init()
}

func (m *Model) updateFinish(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.String() == "esc" || keyMsg.String() == "ctrl+c" {
			m.nav.Pop()
			m.finishForm = nil
			return m, nil
		}
	}

	form, cmd := m.finishForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.finishForm = f
	}

	if m.finishForm.State == huh.StateCompleted {
		m.finishForm = nil
		m.nav.Pop()
		if !m.confirmed {
			return m, nil
		}
		stats := m.bridge.Finish(context.Background(), m.store, time.Now())
		m.summary = &stats
		m.timer.Dismiss()
		m.nav.Push(ViewSummary)
		return m, nil
	}
	return m, cmd
}

func (m *Model) updateSummary(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(tea.KeyMsg); ok {
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) updateHelp(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, m.keys.Help), key.Matches(keyMsg, m.keys.Quit):
			m.nav.Pop()
		}
	}
	return m, nil
}

func (m *Model) View() string {
	switch m.nav.Current() {
	case ViewNote:
		if m.noteForm != nil {
			return m.noteForm.View()
		}
	case ViewFinish:
		if m.finishForm != nil {
			return m.finishForm.View()
		}
	case ViewSummary:
		return m.summaryView()
	case ViewHelp:
		return m.helpView()
	}
	return m.loggingView()
}
