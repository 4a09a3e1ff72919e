package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/detox-cli"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of detox",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "detox version %s\n", strings.TrimSpace(detox.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
