package cmd

import (
	"github.com/spf13/cobra"

	"github.com/corbin/geoquiz/internal/app"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start or resume the quiz",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

// runApp opens the store, restores the session and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	backend, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer backend.Close()

	g, err := newGame(ctx, backend)
	if err != nil {
		return err
	}
	return app.Run(ctx, app.Options{Game: g, Logger: log})
}
