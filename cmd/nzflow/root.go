package main

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var verbose bool

// execute wires up the command tree and runs it.
func execute(version string) {
	rootCmd := &cobra.Command{
		Use:          "nzflow",
		Short:        "Construct nowhere-zero 5-flows on bridgeless cubic graphs",
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			if verbose {
				log.SetLevel(log.DebugLevel)
			}
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(newSolveCmd())
	rootCmd.AddCommand(newSurveyCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
