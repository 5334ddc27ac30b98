package cmd

import (
	"ferro/internal/server"
)

// ServeCmd starts the SSH server serving the workout TUI
type ServeCmd struct {
	Host string `help:"Host address to bind to" default:"0.0.0.0"`
	Port string `help:"Port to listen on" default:"23234"`
}

// Run starts the SSH server
func (s *ServeCmd) Run(cli *CLI) error {
	srv, err := server.NewServer(s.Host, s.Port, cli.dbPath(), cli.planPath(), cli.LoadedSettings())
	if err != nil {
		return err
	}
	return srv.Start()
}
