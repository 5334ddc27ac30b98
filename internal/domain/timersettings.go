package domain

// TimerSettings is the process-wide rest-timer preference, persisted
// globally and independently of any workout day.
type TimerSettings struct {
	SoundEnabled  bool    `json:"soundEnabled"`
	SelectedSound string  `json:"selectedSound"`
	HapticEnabled bool    `json:"hapticEnabled"`
	HapticPattern string  `json:"hapticPattern"`
	Volume        float64 `json:"volume"`
	CountUp       bool    `json:"countUp"` // stopwatch as default display mode
}

// DefaultTimerSettings returns the settings applied before the user has
// ever touched the timer preferences.
func DefaultTimerSettings() TimerSettings {
	return TimerSettings{
		SoundEnabled:  true,
		SelectedSound: "bell",
		HapticEnabled: true,
		HapticPattern: "double",
		Volume:        0.8,
		CountUp:       false,
	}
}
