package sound

import (
	"fmt"

	"ferro/internal/logging"
	"ferro/internal/ports"
)

// Player implements ports.Notifier
type Player struct{}

// Verify interface compliance at compile time
var _ ports.Notifier = (*Player)(nil)

// NewPlayer creates a new sound player
func NewPlayer() *Player {
	return &Player{}
}

// PlaySound plays a named notification sound at the given volume.
// Platform-specific implementations are in player_*.go files with build tags.
func (p *Player) PlaySound(name string, volume float64) error {
	if volume < 0 {
		volume = 0
	}
	if volume > 1 {
		volume = 1
	}
	return playSound(name, volume)
}

// Vibrate has no desktop backend. The pattern is logged so the cue is
// still visible when debugging.
func (p *Player) Vibrate(pattern string) error {
	logging.Logger.Debug("Haptic cue requested", "pattern", pattern)
	return nil
}

// terminalBell outputs a terminal bell character as fallback
func terminalBell() error {
	fmt.Print("\a")
	return nil
}
