package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"glazier/internal/glaze"
)

var compareCmd = &cobra.Command{
	Use:   "compare <glaze-a> <glaze-b>",
	Short: "Compare two glaze formulations parameter by parameter",
	Long: `Compare two formulations and print per-parameter signed deltas with
qualitative verdicts. Each formulation is a compact spec:

  colorant:percentage:flux:atmosphere:cone[:runs]

Usage:
  glazier compare cobalt:2:boron:reduction:10 iron:8:alkaline_earth:oxidation:6
  glazier compare copper:8:alkaline:reduction:10:runs copper:8:alkaline:reduction:10`,
	Args: cobra.ExactArgs(2),
	RunE: runCompare,
}

func runCompare(cmd *cobra.Command, args []string) error {
	a, err := parseFormulation(args[0])
	if err != nil {
		return fmt.Errorf("glaze A: %w", err)
	}
	b, err := parseFormulation(args[1])
	if err != nil {
		return fmt.Errorf("glaze B: %w", err)
	}

	comparison, err := glaze.Compare(a, b)
	if err != nil {
		return err
	}
	return printJSON(cmd, comparison)
}
