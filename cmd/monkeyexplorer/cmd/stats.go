package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statsPicks int

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Simulate random picks and show the view distribution",
	Long: `Stats draws a number of random monkeys and prints how the picks
spread over the catalog, followed by the resulting session statistics.
Every monkey should receive roughly the same share.

Example:
  monkeyexplorer stats --picks 10000 --seed 1`,
	RunE: runStats,
}

func init() {
	statsCmd.Flags().IntVarP(&statsPicks, "picks", "p", 10000,
		"Number of random picks")

	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	if statsPicks <= 0 {
		return fmt.Errorf("picks must be positive, got %d", statsPicks)
	}

	return withSession(cmd, func(s *session) error {
		for i := 0; i < statsPicks; i++ {
			s.catalog.RandomPick()
		}

		s.render.Header("MONKEY PICK SIMULATION: %d picks", statsPicks)
		s.render.Distribution(s.catalog.Names(), s.catalog.AccessSnapshot(), s.catalog.TotalAccessCount())
		fmt.Fprintln(cmd.OutOrStdout())
		s.render.SessionSummary(s.catalog.Stats())
		return nil
	})
}
