package ports

// Notifier delivers rest-timer completion cues. Both channels are
// best-effort and independently toggleable; implementations must never
// panic past the timer engine.
type Notifier interface {
	// PlaySound plays a named sound at the given volume (0..1)
	PlaySound(name string, volume float64) error

	// Vibrate triggers a named haptic pattern
	Vibrate(pattern string) error
}
