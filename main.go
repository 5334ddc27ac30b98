package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"ferro/internal/cmd"
	"ferro/internal/config"
	"ferro/internal/logging"
	"ferro/version"
)

func main() {
	// Load settings before parsing so AfterApply can apply them
	settings, err := config.LoadSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		settings = &config.Settings{}
	}

	var cli cmd.CLI
	cli.SetSettings(settings)

	ctx := kong.Parse(&cli,
		kong.Name("ferro"),
		kong.Description(version.Tagline),
		kong.UsageOnError(),
		kong.Vars{"version": version.Info()},
	)
	defer func() {
		if err := cli.Close(); err != nil {
			logging.Logger.Warn("Failed to close resources", "error", err)
		}
	}()

	if err := ctx.Run(&cli); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
