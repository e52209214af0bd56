package cmd

import (
	"github.com/spf13/cobra"
)

var randomCmd = &cobra.Command{
	Use:   "random",
	Short: "Show a randomly selected monkey",
	Long: `Random picks one monkey uniformly at random and prints its details.
Use --seed for a reproducible pick.

Example:
  monkeyexplorer random --seed 7`,
	RunE: runRandom,
}

func init() {
	rootCmd.AddCommand(randomCmd)
}

func runRandom(cmd *cobra.Command, args []string) error {
	return withSession(cmd, func(s *session) error {
		m := s.catalog.RandomPick()
		s.render.MonkeyDetails(m, s.catalog.AccessCount(m.Name))
		return nil
	})
}
