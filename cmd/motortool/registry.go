package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Faultbox/motorscope/internal/export"
	"github.com/Faultbox/motorscope/internal/motor/registry"
)

var registryID string

var registryCmd = &cobra.Command{
	Use:   "registry",
	Short: "Print the component health registry",
	Long: `Print every monitored component with its health, status, readings and
remaining useful life. With --id, print the faults and recommended actions
of one component.

Examples:
  motortool registry
  motortool registry --id bearing_drive`,
	RunE: runRegistry,
}

func init() {
	rootCmd.AddCommand(registryCmd)
	registryCmd.Flags().StringVar(&registryID, "id", "", "Component id to detail")
}

func runRegistry(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	if registryID == "" {
		fmt.Fprint(out, export.RegistryTable(registry.All()))
		return nil
	}

	id, err := registry.ParseComponentID(registryID)
	if err != nil {
		return err
	}
	rec, _ := registry.Lookup(id)
	fmt.Fprint(out, export.FaultList(rec))
	return nil
}
