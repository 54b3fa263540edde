package main

import (
	"github.com/spf13/cobra"

	"glazier/internal/glaze"
)

var colorantsCmd = &cobra.Command{
	Use:   "colorants",
	Short: "List supported colorants and their visual characteristics",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return printJSON(cmd, glaze.Colorants())
	},
}

var fluxesCmd = &cobra.Command{
	Use:   "fluxes",
	Short: "List supported flux systems and their surface characteristics",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return printJSON(cmd, glaze.Fluxes())
	},
}
