package cmd

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"ferro/internal/config"
	"ferro/internal/logging"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	Debug       bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"1000"`

	Log       LogCmd       `cmd:"" help:"Log a workout session (default)" default:"1"`
	Serve     ServeCmd     `cmd:"serve" help:"Serve the workout TUI over SSH"`
	History   HistoryCmd   `cmd:"history" help:"Show logged history for an exercise"`
	Stats     StatsCmd     `cmd:"stats" help:"Show completed sessions and weekly stats"`
	Plans     PlansCmd     `cmd:"plans" help:"List training blocks and workout days"`
	Settings  SettingsCmd  `cmd:"settings" help:"Manage settings (meta)"`
	PlaySound PlaySoundCmd `cmd:"play-sound" help:"Play the rest-timer notification sound" hidden:""`

	// Internal fields (not flags)
	Container *Container       `kong:"-"`
	settings  *config.Settings `kong:"-"`
}

// SetSettings sets the settings on the CLI struct
func (c *CLI) SetSettings(settings *config.Settings) {
	c.settings = settings
}

// LoadedSettings returns the loaded settings (never nil after SetSettings)
func (c *CLI) LoadedSettings() *config.Settings {
	if c.settings == nil {
		return &config.Settings{}
	}
	return c.settings
}

// AfterApply initializes logging after CLI parsing and applies settings
func (c *CLI) AfterApply() error {
	// Precedence: CLI flags > env vars > settings.json > defaults.
	// Only apply a setting when the flag is at its default and no env var is set.

	if c.settings != nil {
		if c.MaxLogFiles == 1000 {
			if _, hasEnv := os.LookupEnv("FERRO_MAX_LOG_FILES"); !hasEnv {
				if c.settings.MaxLogFiles != nil {
					c.MaxLogFiles = *c.settings.MaxLogFiles
				}
			}
		}

		if !c.Debug {
			if _, hasEnv := os.LookupEnv("FERRO_DEBUG"); !hasEnv {
				if c.settings.Debug != nil && *c.settings.Debug {
					c.Debug = true
				}
			}
		}
	}

	// Initialize logging first and get the log file path
	logFilePath, err := logging.Initialize(c.Debug, c.DebugFile, c.MaxLogFiles)
	if err != nil {
		return err
	}

	// Set environment variables AFTER initialization so child processes
	// inherit debug settings and append to the same log file
	if c.Debug || c.DebugFile != "" {
		os.Setenv("FERRO_DEBUG", "1")
		if logFilePath != "" {
			os.Setenv("FERRO_DEBUG_FILE", logFilePath)
		}
	}
	if c.MaxLogFiles != 1000 {
		os.Setenv("FERRO_MAX_LOG_FILES", fmt.Sprintf("%d", c.MaxLogFiles))
	}

	// Create container AFTER logging is initialized so GORM's logger
	// never sees a nil logging.Logger
	container, err := NewContainer(c.dbPath(), c.planPath())
	if err != nil {
		return fmt.Errorf("failed to initialize container: %w", err)
	}
	c.Container = container

	return nil
}

// dbPath resolves the database path from settings with the default fallback
func (c *CLI) dbPath() string {
	if c.settings != nil && c.settings.DBPath != "" {
		return config.ExpandPath(c.settings.DBPath)
	}
	return config.GetDBPath()
}

// planPath resolves the plan file path from settings with the default fallback
func (c *CLI) planPath() string {
	if c.settings != nil && c.settings.PlanPath != "" {
		return config.ExpandPath(c.settings.PlanPath)
	}
	return config.GetPlanPath()
}

// Close closes all resources held by the CLI
func (c *CLI) Close() error {
	if c.Container != nil {
		return c.Container.Close()
	}
	return nil
}
