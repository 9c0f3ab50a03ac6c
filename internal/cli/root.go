package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pwa-tools/pwagen/internal/debug"
)

// Version information (set via ldflags through main)
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Global flags
var (
	globalNoColor bool
	globalQuiet   bool
	globalDebug   bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "pwagen",
	Short: "Progressive Web App project generator",
	Long: `pwagen scaffolds a ready-to-run Progressive Web App skeleton.

Use "pwagen create [project-name]" to:
  1. Answer a short prompt sequence (framework, styling, PWA metadata)
  2. Generate the project files from the built-in template
  3. Install dependencies with your package manager

Templates ship with the binary for React, Vue, and Svelte, each with an
optional Tailwind CSS styling variant.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		debug.SetDebug(globalDebug)
		debug.SetNoColor(globalNoColor)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		printError(err)
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVar(&globalNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVarP(&globalQuiet, "quiet", "q", false, "Suppress non-error output")
	rootCmd.PersistentFlags().BoolVar(&globalDebug, "debug", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(createCmd)
	rootCmd.AddCommand(versionCmd)
}

// printError prints an error message to stderr
func printError(err error) {
	if globalQuiet {
		return
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
}
