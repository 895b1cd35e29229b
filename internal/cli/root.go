package cli

import (
	"context"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/kcsbuilding/guttergauge/internal/config"
)

var (
	versionStr string
	commitStr  string
	dateStr    string
)

// Global flags
var (
	configFlag  string
	verboseFlag bool
)

// exitFunc is replaced in tests to observe exit codes
var exitFunc = os.Exit

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(version, commit, date string) {
	versionStr = version
	commitStr = commit
	dateStr = date
}

var rootCmd = &cobra.Command{
	Use:   "guttergauge",
	Short: "Gutter profile matching engine",
	Long: `guttergauge matches a measured gutter profile (base, face and back in
millimetres) against a supplier catalog and ranks the closest products.

Products are filtered by region and shape, scored by a weighted distance
that favours the base, and grouped into Excellent, Good, Fair and Poor tiers.`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Path to config file (default: ./"+config.FileName+")")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Verbose output")
}

// newLogger builds the CLI logger. Warnings only unless --verbose is set.
func newLogger() hclog.Logger {
	level := hclog.Warn
	if verboseFlag {
		level = hclog.Debug
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "guttergauge",
		Level:  level,
		Output: os.Stderr,
	})
}

// loadConfig loads the config named by --config or found in the working directory
func loadConfig() (*config.Config, error) {
	return config.Load(configFlag)
}

// commandContext returns the command's context, or Background when the
// command was invoked directly rather than through Execute.
func commandContext(cmd *cobra.Command) context.Context {
	if cmd != nil && cmd.Context() != nil {
		return cmd.Context()
	}
	return context.Background()
}
