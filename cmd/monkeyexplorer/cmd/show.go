package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var showName string

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show details for a monkey by name",
	Long: `Show looks a monkey up by name (ignoring case) and prints its
details, including population and coordinates when known.

Example:
  monkeyexplorer show --name "golden lion tamarin"`,
	RunE: runShow,
}

func init() {
	showCmd.Flags().StringVarP(&showName, "name", "n", "",
		"Monkey name (required)")
	showCmd.MarkFlagRequired("name")

	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	name := strings.TrimSpace(showName)
	if name == "" {
		return fmt.Errorf("monkey name is required")
	}

	return withSession(cmd, func(s *session) error {
		m, ok := s.catalog.FindByName(name)
		if !ok {
			s.render.NotFound(name, s.catalog.Suggestions(s.cfg.Display.Suggestions))
			return fmt.Errorf("monkey %q not found", name)
		}

		s.render.MonkeyDetails(m, s.catalog.AccessCount(m.Name))
		return nil
	})
}
