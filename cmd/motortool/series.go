package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Faultbox/motorscope/internal/export"
	"github.com/Faultbox/motorscope/internal/logger"
	"github.com/Faultbox/motorscope/internal/telemetry"
)

var (
	seriesChannel string
	seriesPNG     string
	seriesSamples int
	seriesSeed    uint64
	seriesWidth   int
	seriesHeight  int
	seriesColor   bool
)

var seriesCmd = &cobra.Command{
	Use:   "series",
	Short: "Chart a mock telemetry channel",
	Long: `Generate the mock telemetry the viewer shows and chart one channel.

Channels: vibration, temperature, current

Examples:
  motortool series --channel current
  motortool series --channel temperature --png charts/temp.png
  motortool series --seed 42 --samples 120`,
	RunE: runSeries,
}

func init() {
	rootCmd.AddCommand(seriesCmd)
	seriesCmd.Flags().StringVarP(&seriesChannel, "channel", "c", "vibration", "Channel to chart")
	seriesCmd.Flags().StringVar(&seriesPNG, "png", "", "Write the chart to this image file instead of the terminal")
	seriesCmd.Flags().IntVarP(&seriesSamples, "samples", "n", 0, "Sample count (default from config)")
	seriesCmd.Flags().Uint64Var(&seriesSeed, "seed", 0, "Random seed (default from config)")
	seriesCmd.Flags().IntVar(&seriesWidth, "width", 72, "Terminal chart width in columns")
	seriesCmd.Flags().IntVar(&seriesHeight, "height", 14, "Terminal chart height in rows")
	seriesCmd.Flags().BoolVar(&seriesColor, "color", true, "Color terminal traces")
}

func runSeries(cmd *cobra.Command, args []string) error {
	ch, err := telemetry.ParseChannel(seriesChannel)
	if err != nil {
		return err
	}

	tc := cfg.Telemetry
	if seriesSamples > 0 {
		tc.Samples = seriesSamples
	}
	if seriesSeed != 0 {
		tc.Seed = seriesSeed
	}
	s := telemetry.FromConfig(tc).Get(ch)
	logger.Debug("generated series",
		zap.String("channel", ch.String()),
		zap.Int("samples", s.Len()),
		zap.Uint64("seed", tc.Seed),
	)

	if seriesPNG != "" {
		if err := export.SaveChart(s, seriesPNG); err != nil {
			return fmt.Errorf("save chart: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", seriesPNG)
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), export.ASCIIChart(s, seriesWidth, seriesHeight, seriesColor))
	return nil
}
