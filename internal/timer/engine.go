// Package timer implements the rest-timer state machine that runs between
// completed sets: a countdown toward the exercise's rest target or a
// free-running stopwatch, with mode switches that never lose the other
// mode's in-flight progress.
package timer

import (
	"fmt"

	"ferro/internal/domain"
	"ferro/internal/logging"
	"ferro/internal/ports"
)

// State is the engine's lifecycle state
type State int

const (
	// StateIdle means no timer exists
	StateIdle State = iota
	// StateRunning means the visible mode is ticking
	StateRunning
	// StatePaused means a timer exists but is not ticking
	StatePaused
	// StateCompleted means a countdown reached zero
	StateCompleted
)

// Mode selects the visible timer variant
type Mode int

const (
	// ModeCountdown counts down from the rest target
	ModeCountdown Mode = iota
	// ModeStopwatch counts elapsed rest with no completion
	ModeStopwatch
)

// Countdown is the countdown variant's progress
type Countdown struct {
	Remaining int
	Original  int
}

// Stopwatch is the stopwatch variant's progress
type Stopwatch struct {
	Elapsed int
}

// TickResult reports what a tick changed
type TickResult struct {
	// Completed is true when this tick transitioned a countdown to zero
	Completed bool
}

// Engine is the rest-timer state machine. It is driven by external 1-second
// ticks (the UI owns the tick loops) and is not safe for concurrent use;
// bubbletea serializes all updates onto one goroutine, which matches the
// single-threaded model the engine assumes.
type Engine struct {
	notifier ports.Notifier
	settings domain.TimerSettings

	state State
	mode  Mode

	countdown Countdown
	stopwatch Stopwatch

	// Target of the active timer
	exerciseSlot int
	setIndex     int
	optimalRest  int
	quickRest    int
	quickMode    bool

	// Stashed progress of the inactive mode, kept across mode switches.
	// A stashed countdown keeps ticking in the background and still fires
	// its completion notification while the stopwatch is visible.
	stashedCountdown *Countdown
	stashedRunning   bool
	stashedCompleted bool

	minimized bool
}

// NewEngine creates an idle engine
func NewEngine(notifier ports.Notifier, settings domain.TimerSettings) *Engine {
	return &Engine{notifier: notifier, settings: settings}
}

// SetSettings updates the timer preferences used for completion cues
func (e *Engine) SetSettings(settings domain.TimerSettings) {
	e.settings = settings
}

// Settings returns the current timer preferences
func (e *Engine) Settings() domain.TimerSettings {
	return e.settings
}

// Start begins a new rest timer for (slot, set). The visible mode follows
// the CountUp preference. Any previous timer, including a stashed
// background countdown, is discarded.
func (e *Engine) Start(slot, set, optimalRest, quickRest int) {
	e.exerciseSlot = slot
	e.setIndex = set
	e.optimalRest = optimalRest
	e.quickRest = quickRest
	e.quickMode = false
	e.stashedCountdown = nil
	e.stashedRunning = false
	e.stashedCompleted = false
	e.minimized = false

	e.countdown = Countdown{Remaining: optimalRest, Original: optimalRest}
	e.stopwatch = Stopwatch{}
	if e.settings.CountUp {
		e.mode = ModeStopwatch
	} else {
		e.mode = ModeCountdown
	}
	e.state = StateRunning
}

// Dismiss returns the engine to idle, dropping all progress
func (e *Engine) Dismiss() {
	e.state = StateIdle
	e.countdown = Countdown{}
	e.stopwatch = Stopwatch{}
	e.stashedCountdown = nil
	e.stashedRunning = false
	e.stashedCompleted = false
	e.minimized = false
}

// Active reports whether a timer exists in any state
func (e *Engine) Active() bool {
	return e.state != StateIdle
}

// State returns the engine's lifecycle state
func (e *Engine) State() State {
	return e.state
}

// Mode returns the visible timer variant
func (e *Engine) Mode() Mode {
	return e.mode
}

// Target returns the (exercise slot, set position) the timer was started for
func (e *Engine) Target() (slot, set int) {
	return e.exerciseSlot, e.setIndex
}

// QuickMode reports whether the quick rest target is active
func (e *Engine) QuickMode() bool {
	return e.quickMode
}

// Countdown returns the visible countdown progress
func (e *Engine) Countdown() Countdown {
	return e.countdown
}

// Stopwatch returns the visible stopwatch progress
func (e *Engine) Stopwatch() Stopwatch {
	return e.stopwatch
}

// Pause stops ticking without losing progress
func (e *Engine) Pause() {
	if e.state == StateRunning {
		e.state = StatePaused
	}
}

// Resume continues a paused timer; resuming a completed countdown restarts
// it from its original duration.
func (e *Engine) Resume() {
	switch e.state {
	case StatePaused:
		e.state = StateRunning
	case StateCompleted:
		e.countdown.Remaining = e.countdown.Original
		e.state = StateRunning
	}
}

// TogglePause flips between running and paused
func (e *Engine) TogglePause() {
	if e.state == StateRunning {
		e.Pause()
	} else {
		e.Resume()
	}
}

// Tick advances the visible mode by one second. Countdown completion fires
// exactly once and stops the tick; a completed countdown never goes
// negative. Stopwatches run indefinitely.
func (e *Engine) Tick() TickResult {
	if e.state != StateRunning {
		return TickResult{}
	}

	if e.mode == ModeStopwatch {
		e.stopwatch.Elapsed++
		return TickResult{}
	}

	if e.countdown.Remaining > 0 {
		e.countdown.Remaining--
	}
	if e.countdown.Remaining == 0 {
		e.state = StateCompleted
		e.notifyCompletion()
		return TickResult{Completed: true}
	}
	return TickResult{}
}

// BackgroundActive reports whether a stashed countdown is still ticking
// behind a visible stopwatch
func (e *Engine) BackgroundActive() bool {
	return e.stashedCountdown != nil && e.stashedRunning
}

// TickBackground advances the stashed countdown by one second. A background
// countdown reaching zero still fires the completion notification.
func (e *Engine) TickBackground() TickResult {
	if !e.BackgroundActive() {
		return TickResult{}
	}

	if e.stashedCountdown.Remaining > 0 {
		e.stashedCountdown.Remaining--
	}
	if e.stashedCountdown.Remaining == 0 {
		e.stashedRunning = false
		e.stashedCompleted = true
		e.notifyCompletion()
		return TickResult{Completed: true}
	}
	return TickResult{}
}

// SwitchMode converts between the countdown and stopwatch variants without
// losing either side's progress. A running countdown keeps ticking in the
// background while the stopwatch is visible.
func (e *Engine) SwitchMode() {
	if e.state == StateIdle {
		return
	}

	if e.mode == ModeCountdown {
		// Stash the live countdown, preserving whether it was mid-run
		cd := e.countdown
		e.stashedCountdown = &cd
		e.stashedRunning = e.state == StateRunning
		e.stashedCompleted = e.state == StateCompleted

		e.mode = ModeStopwatch
		e.state = StateRunning
		return
	}

	// Stopwatch keeps its elapsed time for the next switch; restore the
	// stashed countdown and resume or pause according to how it was left.
	e.mode = ModeCountdown
	if e.stashedCountdown != nil {
		e.countdown = *e.stashedCountdown
	}
	switch {
	case e.stashedCompleted:
		e.state = StateCompleted
	case e.stashedRunning:
		e.state = StateRunning
	default:
		e.state = StatePaused
	}
	e.stashedCountdown = nil
	e.stashedRunning = false
	e.stashedCompleted = false
}

// ToggleQuickMode switches between the optimal and quick rest targets.
// Only available in countdown mode; resets the countdown to the selected
// target and clears any completion.
func (e *Engine) ToggleQuickMode() {
	if e.state == StateIdle || e.mode != ModeCountdown {
		return
	}

	e.quickMode = !e.quickMode
	target := e.optimalRest
	if e.quickMode {
		target = e.quickRest
	}
	e.countdown = Countdown{Remaining: target, Original: target}
	if e.state == StateCompleted {
		e.state = StatePaused
	}
}

// Adjust nudges the countdown by delta seconds (±15 in the UI), clamped so
// the remaining time never goes negative. No-op in stopwatch mode.
func (e *Engine) Adjust(delta int) {
	if e.state == StateIdle || e.mode != ModeCountdown {
		return
	}
	e.countdown.Remaining += delta
	if e.countdown.Remaining < 0 {
		e.countdown.Remaining = 0
	}
}

// Reset returns the visible mode to its initial duration, clears any
// completion, and pauses; the user must explicitly resume.
func (e *Engine) Reset() {
	if e.state == StateIdle {
		return
	}
	if e.mode == ModeCountdown {
		e.countdown.Remaining = e.countdown.Original
	} else {
		e.stopwatch.Elapsed = 0
	}
	e.state = StatePaused
}

// SetMinimized records the panel's visibility. Pure view state: the timer
// keeps ticking while minimized.
func (e *Engine) SetMinimized(minimized bool) {
	e.minimized = minimized
}

// Minimized reports the panel's visibility flag
func (e *Engine) Minimized() bool {
	return e.minimized
}

// Display renders the visible mode as M:SS (or H:MM:SS past an hour)
func (e *Engine) Display() string {
	if e.mode == ModeStopwatch {
		return domain.FormatDuration(e.stopwatch.Elapsed)
	}
	return domain.FormatDuration(e.countdown.Remaining)
}

// notifyCompletion plays the completion cues. Both channels are
// independently toggleable and best-effort: failures are logged and
// swallowed, the state machine is unaffected.
func (e *Engine) notifyCompletion() {
	if e.settings.SoundEnabled {
		if err := e.safePlaySound(); err != nil {
			logging.Logger.Warn("Rest timer sound failed", "error", err)
		}
	}
	if e.settings.HapticEnabled {
		if err := e.safeVibrate(); err != nil {
			logging.Logger.Warn("Rest timer haptic failed", "error", err)
		}
	}
}

func (e *Engine) safePlaySound() (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("sound player panicked: %v", r)
		}
	}()
	return e.notifier.PlaySound(e.settings.SelectedSound, e.settings.Volume)
}

func (e *Engine) safeVibrate() (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("haptic notifier panicked: %v", r)
		}
	}()
	return e.notifier.Vibrate(e.settings.HapticPattern)
}
