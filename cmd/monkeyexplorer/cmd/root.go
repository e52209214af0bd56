package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// Version information (set via ldflags at build time)
var (
	Version = "0.0.1-dev"
	Commit  = "unknown"
)

// CLI flags that override config file values
var (
	cfgFile   string
	logLevel  string
	logFormat string
	wrapWidth int
	seed      int64
	noColor   bool
)

var rootCmd = &cobra.Command{
	Use:   "monkeyexplorer",
	Short: "Interactive Monkey Database",
	Long: `An interactive terminal catalog of monkey species from around the world.

Features:
  - Browse every species with per-monkey view counts
  - Case-insensitive lookup by name and search by location
  - Random monkey picks
  - Session statistics (total views, most popular monkey)

Run without a subcommand to start the interactive menu.`,
	Version:       Version,
	RunE:          runExplore,
	SilenceUsage:  true,
	SilenceErrors: false,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Config file flag
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"Path to configuration file (optional)")

	// Logging overrides
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"Override log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "",
		"Override log format (json, text)")

	// Display overrides
	rootCmd.PersistentFlags().IntVar(&wrapWidth, "wrap-width", 0,
		"Override column width for monkey details")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false,
		"Disable colored output")

	// Catalog overrides
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0,
		"Seed for random picks (0 picks a random seed)")
}

// GetConfigFile returns the config file path
func GetConfigFile() string {
	return cfgFile
}

// CLIOverrides contains flag values that override config file settings
type CLIOverrides struct {
	LogLevel  string
	LogFormat string
	WrapWidth int
	Seed      int64
	NoColor   bool
}

// GetCLIOverrides returns the CLI flag override values
func GetCLIOverrides() CLIOverrides {
	return CLIOverrides{
		LogLevel:  logLevel,
		LogFormat: logFormat,
		WrapWidth: wrapWidth,
		Seed:      seed,
		NoColor:   noColor,
	}
}
