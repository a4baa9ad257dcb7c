package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var rootCmd = &cobra.Command{
	Use:          "reactornav",
	Short:        "State-driven navigation demo",
	Long:         "reactornav drives a terminal view hierarchy from one immutable navigation tree.",
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runTUI,
}

func main() {
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(replayCmd)

	rootCmd.PersistentFlags().StringVar(&colorMode, "color", "auto", "colorize output (auto|on|off)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
