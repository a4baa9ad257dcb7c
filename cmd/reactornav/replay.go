package main

import (
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/jask/reactornav/internal/navigation"
	"github.com/jask/reactornav/internal/scenario"
)

var (
	colorMode     string
	replayVerbose bool
)

var (
	containerColor = color.New(color.FgCyan, color.Bold)
	actionColor    = color.New(color.FgGreen)
	warnColor      = color.New(color.FgYellow)
)

var replayCmd = &cobra.Command{
	Use:   "replay <scenario.toml>",
	Short: "Replay a scenario and print the native operations it produces",
	Args:  cobra.ExactArgs(1),
	RunE:  runReplay,
}

func init() {
	replayCmd.Flags().BoolVarP(&replayVerbose, "verbose", "v", false, "print reconciler log lines to stderr")
}

func runReplay(cmd *cobra.Command, args []string) error {
	applyColorMode(colorMode)

	f, err := scenario.Load(args[0])
	if err != nil {
		return err
	}
	var logger *log.Logger
	if replayVerbose {
		logger = log.New(cmd.ErrOrStderr(), "reconcile: ", 0)
	}

	r, playErr := scenario.Play(f, logger)
	if r == nil {
		return playErr
	}
	out := cmd.OutOrStdout()
	if f.Name != "" {
		fmt.Fprintln(out, f.Name)
	}
	for _, op := range r.Ops() {
		fmt.Fprintf(out, "%s %s", containerColor.Sprint(op.Container+":"), actionColor.Sprint(op.Action))
		if op.Detail != "" {
			fmt.Fprintf(out, " %s", op.Detail)
		}
		fmt.Fprintln(out)
	}
	if n := r.Pending(); n > 0 {
		warnColor.Fprintf(out, "%d animation(s) still in flight\n", n)
	}
	printTree(out, r.Root())
	return playErr
}

func printTree(out io.Writer, root navigation.ContainerState) {
	fmt.Fprintln(out, "final tree:")
	navigation.Walk(root, func(s navigation.ContainerState) bool {
		switch c := s.(type) {
		case navigation.NavigationState:
			fmt.Fprintf(out, "  %s [%s]\n", c.Tag, strings.Join(c.StackIDs(), " "))
		case navigation.TabsState:
			fmt.Fprintf(out, "  %s selected=%d\n", c.Tag, c.SelectedIndex)
		}
		return true
	})
}

func applyColorMode(mode string) {
	switch mode {
	case "on":
		color.NoColor = false
	case "off":
		color.NoColor = true
	}
}
