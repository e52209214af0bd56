package cmd

import (
	"github.com/spf13/cobra"
)

var locationsCmd = &cobra.Command{
	Use:   "locations",
	Short: "List all distinct monkey locations",
	RunE:  runLocations,
}

func init() {
	rootCmd.AddCommand(locationsCmd)
}

func runLocations(cmd *cobra.Command, args []string) error {
	return withSession(cmd, func(s *session) error {
		s.render.Locations(s.catalog.AllLocations())
		return nil
	})
}
