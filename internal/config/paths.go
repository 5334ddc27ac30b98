package config

import (
	"os"
	"path/filepath"
)

// GetFerroHome returns FERRO_HOME or ~/.ferro default
func GetFerroHome() string {
	ferroHome := os.Getenv("FERRO_HOME")
	if ferroHome == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ".ferro"
		}
		return filepath.Join(homeDir, ".ferro")
	}
	return ExpandPath(ferroHome)
}

// GetDBPath returns $FERRO_HOME/workouts.db
func GetDBPath() string {
	return filepath.Join(GetFerroHome(), "workouts.db")
}

// GetPlanPath returns $FERRO_HOME/plans.yaml
func GetPlanPath() string {
	return filepath.Join(GetFerroHome(), "plans.yaml")
}

// GetSettingsPath returns $FERRO_HOME/settings.json
func GetSettingsPath() string {
	return filepath.Join(GetFerroHome(), "settings.json")
}

// GetTimerSettingsPath returns $FERRO_HOME/timer.json
func GetTimerSettingsPath() string {
	return filepath.Join(GetFerroHome(), "timer.json")
}

// ExpandPath expands ~ to home directory
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			if len(path) == 1 {
				return homeDir
			}
			return filepath.Join(homeDir, path[1:])
		}
	}
	return path
}
