package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// These are set at build time with -ldflags "-X main.Version=...".
var (
	Version   = "0.3.0"
	GitCommit = "unknown"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of motortool",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "motortool v%s (%s)\n", Version, GitCommit)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
