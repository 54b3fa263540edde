package main

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"glazier/internal/glaze"
)

// parseFormulation parses a compact formulation spec of the form
// "colorant:percentage:flux:atmosphere:cone[:runs]". The optional sixth
// field accepts "runs" or "true".
func parseFormulation(spec string) (glaze.Formulation, error) {
	parts := strings.Split(spec, ":")
	if len(parts) < 5 || len(parts) > 6 {
		return glaze.Formulation{}, fmt.Errorf(
			"spec %q: want colorant:percentage:flux:atmosphere:cone[:runs]", spec)
	}

	pct, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return glaze.Formulation{}, fmt.Errorf("spec %q: bad percentage %q", spec, parts[1])
	}
	cone, err := strconv.Atoi(parts[4])
	if err != nil {
		return glaze.Formulation{}, fmt.Errorf("spec %q: bad cone %q", spec, parts[4])
	}

	f := glaze.Formulation{
		Colorant:   glaze.Colorant(parts[0]),
		Percentage: pct,
		Flux:       glaze.Flux(parts[2]),
		Atmosphere: glaze.Atmosphere(parts[3]),
		Cone:       cone,
	}
	if len(parts) == 6 {
		switch parts[5] {
		case "runs", "true":
			f.Runs = true
		case "false", "":
		default:
			return glaze.Formulation{}, fmt.Errorf("spec %q: bad runs flag %q", spec, parts[5])
		}
	}
	return f, nil
}

// printJSON writes v to the command's stdout as indented JSON.
func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
