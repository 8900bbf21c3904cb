// Package cli wires the cobra commands for the storysync binary.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/clearlake-labs/storysync-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "storysync",
	Short: "Export tracker stories to a JSON document",
	Long: `storysync fetches the stories of one tracker project, normalises
them into a stable schema and writes the result as a single pretty-printed
JSON document.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default storysync.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
