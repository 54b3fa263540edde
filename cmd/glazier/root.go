package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"glazier/internal/logging"
)

// version is set at build time via -ldflags.
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "glazier",
	Short: "Glaze chemistry analysis for image-generation prompting",
	Long: "Glazier converts ceramic glaze formulations (colorant, flux, atmosphere,\n" +
		"firing cone) into bounded visual parameters and descriptive text, and\n" +
		"serves them to MCP clients for image prompt enhancement.",
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(enhanceCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(colorantsCmd)
	rootCmd.AddCommand(fluxesCmd)
	rootCmd.Version = version
}

func main() {
	_ = godotenv.Load(".env")
	logging.InitFromEnv()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
