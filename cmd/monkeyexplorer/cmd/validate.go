package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dbsmedya/monkeyexplorer/internal/catalog"
	"github.com/dbsmedya/monkeyexplorer/internal/config"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate configuration and catalog data",
	Long: `Validate checks the configuration file and the built-in catalog.

Checks performed:
  - Configuration syntax and allowed values
  - Every monkey has a name
  - Monkey names are unique ignoring case
  - Populations are not negative

Example:
  monkeyexplorer validate --config explorer.yaml`,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	configFile := GetConfigFile()
	out := cmd.OutOrStdout()

	// Load configuration
	cfg, err := config.Load(configFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Apply CLI overrides
	overrides := GetCLIOverrides()
	cfg.ApplyOverrides(overrides.LogLevel, overrides.LogFormat,
		overrides.WrapWidth, overrides.Seed, overrides.NoColor)

	if configFile == "" {
		configFile = "(defaults)"
	}
	fmt.Fprintf(out, "\n=== Configuration Validation ===\n")
	fmt.Fprintf(out, "Config file: %s\n", configFile)

	hasErrors := false
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(out, "❌ %v\n", err)
		hasErrors = true
	} else {
		fmt.Fprintf(out, "✅ Configuration is valid\n")
	}

	monkeys := catalog.DefaultMonkeys()
	fmt.Fprintf(out, "\n=== Catalog Validation ===\n")
	fmt.Fprintf(out, "Monkeys found: %d\n", len(monkeys))
	if err := catalog.ValidateRecords(monkeys); err != nil {
		fmt.Fprintf(out, "❌ %v\n", err)
		hasErrors = true
	} else {
		fmt.Fprintf(out, "✅ Catalog records are valid\n")
	}

	if hasErrors {
		return fmt.Errorf("validation failed")
	}

	fmt.Fprintln(out, "\n=== Validation Complete ===")
	return nil
}
