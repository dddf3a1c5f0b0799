package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/corbin/geoquiz/internal/game"
	"github.com/corbin/geoquiz/internal/session"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show saved quiz progress",
	RunE: func(cmd *cobra.Command, args []string) error {
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
		printStatus(cmd.OutOrStdout(), g)
		return nil
	},
}

// printStatus writes a short report of the session's progress.
func printStatus(w io.Writer, g *game.Game) {
	sess := g.Session()
	if !g.HasProgress() && !sess.IsCheater() {
		fmt.Fprintln(w, "No saved progress.")
		return
	}

	sum := sess.Summarize()
	fmt.Fprintf(w, "Question:  %d of %d\n", sess.CurrentIndex()+1, sess.Len())
	fmt.Fprintf(w, "Answered:  %d (%d correct)\n", sum.Answered, sum.Correct)
	fmt.Fprintf(w, "Score:     %.1f%%\n", session.RoundScore(sum.Score))
	cheated := "no"
	if sum.IsCheater {
		cheated = "yes"
	}
	fmt.Fprintf(w, "Cheated:   %s\n", cheated)
}
