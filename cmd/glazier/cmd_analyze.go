package main

import (
	"github.com/spf13/cobra"

	"glazier/internal/glaze"
)

var analyzeFlags struct {
	colorant   string
	percentage float64
	flux       string
	atmosphere string
	cone       int
	runs       bool
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a glaze formulation and print its visual parameters",
	Long: `Analyze a glaze formulation and print the seven visual parameters,
descriptive qualities, and sensory intention as JSON.

Usage:
  glazier analyze --colorant cobalt --percentage 2 --flux boron --atmosphere reduction --cone 10

Low-fire "0x" cones are written as negative numbers: cone 06 is -6.`,
	RunE: runAnalyze,
}

func init() {
	f := analyzeCmd.Flags()
	f.StringVar(&analyzeFlags.colorant, "colorant", "", "Colorant: iron, cobalt, copper, chrome, manganese, vanadium")
	f.Float64Var(&analyzeFlags.percentage, "percentage", 8.0, "Colorant percentage (typically 0.5-15)")
	f.StringVar(&analyzeFlags.flux, "flux", "", "Flux system: boron, alkaline, alkaline_earth, lead")
	f.StringVar(&analyzeFlags.atmosphere, "atmosphere", "neutral", "Kiln atmosphere: oxidation, reduction, neutral")
	f.IntVar(&analyzeFlags.cone, "cone", 6, "Firing cone (-6 to 14; 06 is written -6)")
	f.BoolVar(&analyzeFlags.runs, "runs", false, "Glaze is formulated to run and pool")
	_ = analyzeCmd.MarkFlagRequired("colorant")
	_ = analyzeCmd.MarkFlagRequired("flux")
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	analysis, err := glaze.Analyze(glaze.Formulation{
		Colorant:   glaze.Colorant(analyzeFlags.colorant),
		Percentage: analyzeFlags.percentage,
		Flux:       glaze.Flux(analyzeFlags.flux),
		Atmosphere: glaze.Atmosphere(analyzeFlags.atmosphere),
		Cone:       analyzeFlags.cone,
		Runs:       analyzeFlags.runs,
	})
	if err != nil {
		return err
	}
	return printJSON(cmd, analysis)
}
