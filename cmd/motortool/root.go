package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Faultbox/motorscope/internal/config"
	"github.com/Faultbox/motorscope/internal/logger"
)

var (
	configPath string
	logLevel   string

	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "motortool",
	Short: "Offline tools for the Motorscope motor model",
	Long: `motortool - Motorscope companion CLI

Works on the same motor model, component registry and mock telemetry as
the viewer, without opening a window:
  - registry   print the component health table
  - series     chart a telemetry channel in the terminal or as an image
  - mesh       export the cutaway assembly as Wavefront OBJ
  - spin       report rotor and cage angles after a simulated time`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := logger.Init(logLevel, ""); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		var err error
		cfg, err = config.LoadFile(configPath)
		return err
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	defer logger.Sync()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
}
