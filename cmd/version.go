package cmd

import (
	"fmt"

	"github.com/alexiusacademia/gosag/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of gosag",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.String())
		fmt.Println("Overhead Conductor Sag-Tension Tool")
		fmt.Println("Ruling span catenary reloading with nonlinear cable elongation")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
