package cmd

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"ferro/internal/config"
	"ferro/internal/logging"
	"ferro/internal/session"
	"ferro/internal/timer"
	"ferro/internal/ui"
)

// LogCmd starts the workout logging TUI
type LogCmd struct {
	Day             string `help:"Workout day name (defaults to the block's first day)" arg:"" optional:""`
	Block           string `help:"Training block name (defaults to the plan's first block)"`
	Week            int    `help:"Plan week number" default:"0"`
	ErrorClearDelay int    `help:"Seconds before error messages auto-clear" default:"10"`
}

// Run executes the TUI
func (l *LogCmd) Run(cli *CLI) error {
	settings := cli.LoadedSettings()

	// Apply settings with the usual precedence
	if l.Block == "" && settings.DefaultBlock != "" {
		l.Block = settings.DefaultBlock
	}
	if l.Week == 0 {
		if settings.DefaultWeek != nil {
			l.Week = *settings.DefaultWeek
		} else {
			l.Week = 1
		}
	}
	if l.ErrorClearDelay == 10 && settings.ErrorClearDelay != nil {
		l.ErrorClearDelay = *settings.ErrorClearDelay
	}

	block, day, err := cli.Container.ResolveDay(l.Block, l.Day)
	if err != nil {
		return err
	}

	logging.Logger.Info("Starting workout session",
		"day", day.Name,
		"block", block.Name,
		"week", l.Week)

	specs := day.Specs()
	store, bridge := cli.Container.NewSession(specs, day.Name, block.Name, l.Week)

	ctx := context.Background()
	if bridge.Restore(ctx, store) {
		logging.Logger.Info("Restored in-progress session",
			"day", day.Name,
			"block", block.Name)
	}
	session.SeedPreviousWeights(ctx, store, cli.Container.Repository)

	engine := timer.NewEngine(cli.Container.Notifier, config.LoadTimerSettings())

	model := ui.NewModel(store, bridge, engine, day.Name, block.Name,
		time.Duration(l.ErrorClearDelay)*time.Second)

	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}
