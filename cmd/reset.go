package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete saved quiz progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		backend, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer backend.Close()

		if err := backend.SnapshotRepo().Clear(ctx); err != nil {
			return fmt.Errorf("clear snapshots: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Progress cleared.")
		return nil
	},
}
