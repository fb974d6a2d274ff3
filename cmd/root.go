package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	logLevel   string // Log verbosity level
	configPath string // Optional yaml file overriding the seed layout
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "baggage-sim",
	Short: "In-memory simulation of an airline baggage-handling operation",
	Long: `baggage-sim models four classic data structures as an airline
baggage-handling operation: a FIFO processing queue, a LIFO
misplaced-report stack, a keyed passenger directory, and an
hourly throughput series. Run a scripted session with "run" or
expose the action API over HTTP with "serve".`,
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// setupLogging applies the --log flag before any command body runs.
func setupLogging() {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		logrus.Fatalf("Invalid log level: %s", logLevel)
	}
	logrus.SetLevel(level)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "info", "Log level (trace, debug, info, warn, error, fatal, panic)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a yaml session config (defaults to the built-in seed layout)")
}
