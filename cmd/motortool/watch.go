package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/Faultbox/motorscope/internal/monitor"
	"github.com/Faultbox/motorscope/internal/motor/animation"
	"github.com/Faultbox/motorscope/internal/telemetry"
)

var watchInterval time.Duration

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Live terminal dashboard",
	Long: `Show the condition dashboard in the terminal: summary tiles, rotor and
cage angles, the telemetry chart and per-component health. Keys match the
viewer: tab cycles the chart, 1-8 select, 0 clears, space pauses, q quits.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		m := monitor.New(animation.ParamsFromConfig(cfg.Motor), telemetry.FromConfig(cfg.Telemetry), watchInterval)
		return monitor.Run(m)
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().DurationVar(&watchInterval, "interval", monitor.DefaultInterval, "Refresh interval")
}
