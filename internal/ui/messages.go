package ui

// timerTickMsg drives the visible rest timer, one per second
type timerTickMsg struct{}

// backgroundTickMsg drives a countdown that keeps running while the
// stopwatch is the visible variant
type backgroundTickMsg struct{}

// workoutTickMsg advances the running workout duration
type workoutTickMsg struct{}

// clearErrorMsg is sent after the error clear delay to drop the error line
type clearErrorMsg struct{}

// clearReminderMsg dismisses the start reminder banner
type clearReminderMsg struct{}
