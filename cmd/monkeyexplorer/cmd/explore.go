package cmd

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/dbsmedya/monkeyexplorer/internal/explorer"
)

var exploreCmd = &cobra.Command{
	Use:   "explore",
	Short: "Start the interactive monkey menu",
	Long: `Explore opens the interactive menu. From there you can list every
monkey, look one up by name, get a random monkey, search by location and
review the statistics of the current session.

Session statistics are printed when you exit, when input ends, or when
the process receives SIGINT/SIGTERM.

Example:
  monkeyexplorer explore --seed 42`,
	RunE: runExplore,
}

func init() {
	rootCmd.AddCommand(exploreCmd)
}

func runExplore(cmd *cobra.Command, args []string) error {
	return withSession(cmd, func(s *session) error {
		parent := cmd.Context()
		if parent == nil {
			parent = context.Background()
		}

		ctx, cancel := explorer.SetupSignalHandler(parent, func(sig os.Signal) {
			s.log.Infow("received signal, ending session", "signal", sig.String())
		})
		defer cancel()

		e := explorer.New(s.catalog, cmd.InOrStdin(), cmd.OutOrStdout(), s.cfg.Display, s.log)
		return e.Run(ctx)
	})
}
