//go:build !darwin && !linux && !windows

package sound

// playSound falls back to terminal bell on unsupported platforms
func playSound(name string, volume float64) error {
	return terminalBell()
}
