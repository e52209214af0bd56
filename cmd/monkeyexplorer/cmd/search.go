package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var searchLocation string

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Find monkeys by location",
	Long: `Search lists every monkey whose location contains the given text,
ignoring case, in catalog order.

Example:
  monkeyexplorer search --location america`,
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringVarP(&searchLocation, "location", "l", "",
		"Location text to match (required)")
	searchCmd.MarkFlagRequired("location")

	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := strings.TrimSpace(searchLocation)
	if query == "" {
		return fmt.Errorf("location is required")
	}

	return withSession(cmd, func(s *session) error {
		s.render.LocationResults(query, s.catalog.FindByLocation(query))
		return nil
	})
}
