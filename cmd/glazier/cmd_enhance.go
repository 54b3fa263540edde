package main

import (
	"github.com/spf13/cobra"

	"glazier/internal/glaze"
)

var enhanceFlags struct {
	colorant   string
	percentage float64
	flux       string
	atmosphere string
	cone       int
}

var enhanceCmd = &cobra.Command{
	Use:   "enhance [base-prompt]",
	Short: "Append a glaze aesthetic clause to an image prompt",
	Long: `Enhance an image-generation prompt with a glaze's visual sensibility.
The base prompt is preserved verbatim; a bracketed aesthetic clause is appended.

Usage:
  glazier enhance "a ceramic vase on a shelf" --colorant copper --flux boron --atmosphere reduction --cone 10`,
	Args: cobra.ExactArgs(1),
	RunE: runEnhance,
}

func init() {
	f := enhanceCmd.Flags()
	f.StringVar(&enhanceFlags.colorant, "colorant", "", "Colorant: iron, cobalt, copper, chrome, manganese, vanadium")
	f.Float64Var(&enhanceFlags.percentage, "percentage", 10.0, "Colorant percentage")
	f.StringVar(&enhanceFlags.flux, "flux", "", "Flux system: boron, alkaline, alkaline_earth, lead")
	f.StringVar(&enhanceFlags.atmosphere, "atmosphere", "neutral", "Kiln atmosphere: oxidation, reduction, neutral")
	f.IntVar(&enhanceFlags.cone, "cone", 6, "Firing cone (-6 to 14)")
	_ = enhanceCmd.MarkFlagRequired("colorant")
	_ = enhanceCmd.MarkFlagRequired("flux")
}

func runEnhance(cmd *cobra.Command, args []string) error {
	enh, err := glaze.EnhancePrompt(args[0], glaze.Formulation{
		Colorant:   glaze.Colorant(enhanceFlags.colorant),
		Percentage: enhanceFlags.percentage,
		Flux:       glaze.Flux(enhanceFlags.flux),
		Atmosphere: glaze.Atmosphere(enhanceFlags.atmosphere),
		Cone:       enhanceFlags.cone,
	})
	if err != nil {
		return err
	}
	return printJSON(cmd, enh)
}
