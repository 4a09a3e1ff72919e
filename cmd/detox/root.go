package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "detox",
	Short: "Detox command line tools",
	Long:  `detox drives gray box end-to-end tests for mobile apps through mocha or jest.`,
	// Errors are printed once by Execute.
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().StringP("loglevel", "l", "", "Log level: fatal, error, warn, info, verbose, debug, trace")
}
