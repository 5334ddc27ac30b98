package ui

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"ferro/internal/domain"
	"ferro/internal/ports"
	"ferro/internal/session"
	"ferro/internal/timer"
)

// noopRepo satisfies the repository port without persisting anything, so
// model tests exercise the update loop against a real bridge.
type noopRepo struct{}

var _ ports.WorkoutRepository = (*noopRepo)(nil)

func (noopRepo) SaveSnapshot(context.Context, domain.SessionSnapshot) error { return nil }
func (noopRepo) LoadSnapshot(context.Context, string, string) (*domain.SessionSnapshot, error) {
	return nil, domain.ErrSnapshotNotFound
}
func (noopRepo) ClearSnapshot(context.Context, string, string) error      { return nil }
func (noopRepo) MergeHistory(context.Context, []domain.HistoryEntry) error { return nil }
func (noopRepo) HistoryByExercise(context.Context, string) ([]domain.HistoryEntry, error) {
	return nil, nil
}
func (noopRepo) LastCompletedSets(context.Context, string) ([]domain.LoggedSet, error) {
	return nil, nil
}
func (noopRepo) MarkCompleted(context.Context, string, int, string) error { return nil }
func (noopRepo) CompletedDays(context.Context, string, int) ([]string, error) {
	return nil, nil
}
func (noopRepo) SaveCompletionStats(context.Context, string, int, string, domain.CompletionStats) error {
	return nil
}
func (noopRepo) CompletionStatsByWeek(context.Context, string, int) (map[string]domain.CompletionStats, error) {
	return nil, nil
}
func (noopRepo) Close() error { return nil }

type silentNotifier struct{}

func (silentNotifier) PlaySound(string, float64) error { return nil }
func (silentNotifier) Vibrate(string) error            { return nil }

func newTestModel(t *testing.T) *Model {
	t.Helper()
	specs := []domain.ExerciseSpec{
		{
			Name:               "Bench Press",
			TargetSets:         3,
			RepScheme:          domain.ParseRepScheme("8-12"),
			OptimalRestSeconds: 180,
			QuickRestSeconds:   90,
		},
		{
			Name:       "Cable Fly",
			TargetSets: 2,
			RepScheme:  domain.ParseRepScheme("12-10-8"),
		},
	}
	store := session.NewStore(specs, 1)
	bridge := session.NewBridge(noopRepo{}, specs, "2026-03-14", "push", 1)
	engine := timer.NewEngine(silentNotifier{}, domain.DefaultTimerSettings())
	return NewModel(store, bridge, engine, "push", "hypertrophy", 3*time.Second)
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestModel_BlockedInputReminder(t *testing.T) {
	m := newTestModel(t)

	// Two blocked attempts nudge without the banner
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.Equal(t, 1, m.blockedAttempts)
	assert.False(t, m.showReminder)

	_, cmd = m.Update(keyRune('f'))
	assert.Nil(t, cmd)
	assert.Equal(t, 2, m.blockedAttempts)
	assert.False(t, m.showReminder)

	// The third surfaces the banner once and resets the counter
	_, cmd = m.Update(keyRune('n'))
	assert.NotNil(t, cmd)
	assert.True(t, m.showReminder)
	assert.Equal(t, 0, m.blockedAttempts)

	// The clear message dismisses the banner
	m.Update(clearReminderMsg{})
	assert.False(t, m.showReminder)

	// Counting starts over after the reset
	m.Update(keyRune('u'))
	assert.Equal(t, 1, m.blockedAttempts)
	assert.False(t, m.showReminder)
}

func TestModel_BlockedInputNeverMutates(t *testing.T) {
	m := newTestModel(t)

	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m.Update(keyRune('d'))
	m.Update(tea.KeyMsg{Type: tea.KeySpace})

	assert.False(t, m.editing)
	assert.False(t, m.store.State().Started())
	assert.False(t, m.store.State().Exercises[0][0].Completed)
	assert.False(t, m.store.State().Exercises[0][0].IsDropSet)
}

func TestModel_StartUnblocksInput(t *testing.T) {
	m := newTestModel(t)

	_, cmd := m.Update(keyRune('s'))
	assert.NotNil(t, cmd)
	assert.True(t, m.store.State().Started())

	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, m.editing)
	assert.Equal(t, 0, m.blockedAttempts)
}

func TestModel_StartClearsPendingReminder(t *testing.T) {
	m := newTestModel(t)

	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m.Update(keyRune('f'))
	m.Update(keyRune('n'))
	assert.True(t, m.showReminder)

	m.Update(keyRune('s'))
	assert.False(t, m.showReminder)
	assert.Equal(t, 0, m.blockedAttempts)
}

func TestModel_TimerLoopStopsAtCompletion(t *testing.T) {
	m := newTestModel(t)
	m.Update(keyRune('s'))

	m.timer.Start(0, 0, 2, 1)
	m.timerLoop = true

	_, cmd := m.Update(timerTickMsg{})
	assert.NotNil(t, cmd)
	assert.Equal(t, timer.StateRunning, m.timer.State())

	_, cmd = m.Update(timerTickMsg{})
	assert.Nil(t, cmd)
	assert.Equal(t, timer.StateCompleted, m.timer.State())
	assert.True(t, m.timer.Active())
	assert.False(t, m.timerLoop)
}

func TestModel_TimerLoopStopsWhenPaused(t *testing.T) {
	m := newTestModel(t)
	m.Update(keyRune('s'))

	m.timer.Start(0, 0, 120, 60)
	m.timer.Pause()
	m.timerLoop = true

	_, cmd := m.Update(timerTickMsg{})
	assert.Nil(t, cmd)
	assert.False(t, m.timerLoop)
	assert.Equal(t, 120, m.timer.Countdown().Remaining)
}
