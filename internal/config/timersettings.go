package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"ferro/internal/domain"
)

// timerSettingsPathFunc returns the path to the timer settings file.
// Can be overridden in tests.
var timerSettingsPathFunc = GetTimerSettingsPath

// LoadTimerSettings loads the global rest-timer preferences. A missing or
// unreadable file yields the defaults; persistence is best-effort and never
// blocks the session.
func LoadTimerSettings() domain.TimerSettings {
	path := timerSettingsPathFunc()
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.DefaultTimerSettings()
	}

	settings := domain.DefaultTimerSettings()
	if err := json.Unmarshal(data, &settings); err != nil {
		return domain.DefaultTimerSettings()
	}
	return settings
}

// SaveTimerSettings writes the timer preferences with an exclusive file
// lock. Saves happen on every preference change, so concurrent local and
// SSH sessions must not interleave writes.
func SaveTimerSettings(settings domain.TimerSettings) error {
	path := timerSettingsPathFunc()

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	file, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0644)
	if err != nil {
		return fmt.Errorf("failed to open timer settings file: %w", err)
	}
	defer file.Close()

	if err := lockFile(file); err != nil {
		return fmt.Errorf("failed to acquire lock: %w", err)
	}
	defer unlockFile(file)

	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal timer settings: %w", err)
	}

	if err := file.Truncate(0); err != nil {
		return fmt.Errorf("failed to truncate file: %w", err)
	}
	if _, err := file.Seek(0, 0); err != nil {
		return fmt.Errorf("failed to seek to beginning: %w", err)
	}
	if _, err := file.Write(data); err != nil {
		return fmt.Errorf("failed to write timer settings: %w", err)
	}

	return nil
}
