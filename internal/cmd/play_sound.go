package cmd

import "ferro/internal/config"

// PlaySoundCmd plays the configured rest-timer sound once
type PlaySoundCmd struct {
	Sound string `help:"Sound name (defaults to the configured one)" optional:""`
}

// Run executes the sound playing logic
func (p *PlaySoundCmd) Run(cli *CLI) error {
	settings := config.LoadTimerSettings()
	name := settings.SelectedSound
	if p.Sound != "" {
		name = p.Sound
	}
	return cli.Container.Notifier.PlaySound(name, settings.Volume)
}
