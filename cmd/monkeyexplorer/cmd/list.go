package cmd

import (
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all monkeys in the catalog",
	Long: `List displays every monkey species in catalog order together with
the catalog totals.

Example:
  monkeyexplorer list`,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	return withSession(cmd, func(s *session) error {
		monkeys := s.catalog.ListAll()
		s.render.MonkeyList(monkeys, s.catalog.Stats())
		return nil
	})
}
