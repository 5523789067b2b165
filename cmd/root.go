package cmd

import (
	"fmt"
	"os"

	"github.com/alexiusacademia/gosag/internal/logging"
	"github.com/alexiusacademia/gosag/internal/version"
	"github.com/spf13/cobra"
)

var (
	logLevel  string
	logFormat string

	// logger is set up before any command runs
	logger = logging.NewFromEnv()
)

var rootCmd = &cobra.Command{
	Use:   "gosag",
	Short: "Overhead Conductor Sag-Tension Tool",
	Long: `gosag - Go Sag-Tension Calculator

A CLI tool for the sag-tension analysis of overhead line conductors.

This tool helps line engineers perform:
  - Catenary reloading for new temperatures, ice and wind
  - Permanent stretch (creep and heavy load) effects
  - Sag-tension tables over a temperature range
  - Weather unit load calculation
  - Conductor stress-strain curve checks

Cables are described with polynomial stress-strain curves for the
outer (shell) and inner (core) strands.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = logging.New(logging.Config{Level: logLevel, Format: logFormat})
	},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   gosag v%-49s║\n", version.Version)
		fmt.Println("  ║   Go Sag-Tension Calculator                               ║")
		fmt.Println("  ║   Alexius S. Academia ©  2026                             ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  A CLI tool for the sag-tension analysis of overhead conductors.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Catenary reloading with nonlinear cable elongation")
		fmt.Println("    • Permanent stretch from heavy load and creep")
		fmt.Println("    • Sag-tension tables with ASCII and image charts")
		fmt.Println("    • NESC-style weather unit loads")
		fmt.Println()
		fmt.Println("  Use 'gosag --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	level := os.Getenv("LOG_LEVEL")
	if level == "" {
		level = "warn"
	}
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", level, "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", os.Getenv("LOG_FORMAT"), "Log format (text, json)")
}
