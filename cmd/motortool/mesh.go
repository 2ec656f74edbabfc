package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Faultbox/motorscope/internal/export"
	"github.com/Faultbox/motorscope/internal/logger"
	"github.com/Faultbox/motorscope/internal/motor/animation"
	"github.com/Faultbox/motorscope/internal/motor/assembly"
)

var (
	meshOut  string
	meshTime float64
	meshMTL  bool
)

var meshCmd = &cobra.Command{
	Use:   "mesh",
	Short: "Export the cutaway motor as Wavefront OBJ",
	Long: `Compose the motor assembly and write it in world space, one object per
component. --time poses the rotor, fan and bearing cages as the viewer would
after that many simulated seconds.

Examples:
  motortool mesh --out motor.obj
  motortool mesh --out out/motor.obj --time 0.25 --mtl=false`,
	RunE: runMesh,
}

func init() {
	rootCmd.AddCommand(meshCmd)
	meshCmd.Flags().StringVarP(&meshOut, "out", "o", "motor.obj", "Output OBJ file")
	meshCmd.Flags().Float64Var(&meshTime, "time", 0, "Simulated seconds to pose the rotating parts")
	meshCmd.Flags().BoolVar(&meshMTL, "mtl", true, "Also write a material library next to the OBJ")
}

func runMesh(cmd *cobra.Command, args []string) error {
	m, err := assembly.Compose(assembly.FromConfig(cfg.Motor), assembly.Options{FanCoupled: cfg.Motor.FanCoupled})
	if err != nil {
		return fmt.Errorf("compose motor: %w", err)
	}
	animation.NewDriver(m, animation.ParamsFromConfig(cfg.Motor)).Tick(meshTime)

	if dir := filepath.Dir(meshOut); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	var mtlName string
	if meshMTL {
		mtlPath := strings.TrimSuffix(meshOut, filepath.Ext(meshOut)) + ".mtl"
		if err := writeFile(mtlPath, func(f *os.File) error { return export.WriteMTL(f, m.Scene) }); err != nil {
			return err
		}
		mtlName = filepath.Base(mtlPath)
	}

	var st export.OBJStats
	err = writeFile(meshOut, func(f *os.File) error {
		var err error
		st, err = export.WriteOBJ(f, m.Scene, mtlName)
		return err
	})
	if err != nil {
		return err
	}

	logger.Info("mesh exported", zap.String("path", meshOut), zap.Int("triangles", st.Triangles))
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s: %d components, %d meshes, %d vertices, %d triangles\n",
		meshOut, st.Objects, st.Meshes, st.Vertices, st.Triangles)
	return nil
}

func writeFile(path string, fn func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := fn(f); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	return f.Close()
}
