package main

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/Faultbox/motorscope/internal/motor/animation"
)

var (
	spinRPM     float64
	spinSeconds float64
)

var spinCmd = &cobra.Command{
	Use:   "spin",
	Short: "Report rotor and bearing cage angles after a simulated time",
	Long: `Compute where the rotor and bearing cages are after --seconds of
running at --rpm, both as an unwrapped angle and reduced to one turn.

Examples:
  motortool spin --rpm 1740 --seconds 1`,
	RunE: runSpin,
}

func init() {
	rootCmd.AddCommand(spinCmd)
	spinCmd.Flags().Float64Var(&spinRPM, "rpm", 0, "Shaft speed (default from config)")
	spinCmd.Flags().Float64Var(&spinSeconds, "seconds", 1, "Simulated time in seconds")
}

func runSpin(cmd *cobra.Command, args []string) error {
	rpm := cfg.Motor.RPM
	if spinRPM > 0 {
		rpm = spinRPM
	}
	if spinSeconds < 0 {
		return fmt.Errorf("seconds must not be negative, got %g", spinSeconds)
	}

	omega := animation.AngularVelocity(rpm)
	unwrapped := omega * spinSeconds
	rotor := animation.RotorAngle(spinSeconds, rpm)
	cage := animation.RotorAngle(spinSeconds, rpm*animation.CageRatio)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "shaft speed     %.1f rpm (%.4f rad/s)\n", rpm, omega)
	fmt.Fprintf(out, "elapsed         %.3f s\n", spinSeconds)
	fmt.Fprintf(out, "rotor unwrapped %.6f rad (%.3f turns)\n", unwrapped, unwrapped/(2*math.Pi))
	fmt.Fprintf(out, "rotor angle     %.6f rad (%.2f°)\n", rotor, rotor*180/math.Pi)
	fmt.Fprintf(out, "cage angle      %.6f rad (%.2f°)\n", cage, cage*180/math.Pi)
	return nil
}
