package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version is set by build flags.
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "hkconf",
	Short: "Parse and inspect hotkey configuration files",
	Long: `hkconf compiles the hotkey configuration language described by its
grammar: modifier/key shorthand expansion, mode blocks, multi-file
imports, and override/ignore resolution.

It is a parser and inspector, not a keybinding daemon: nothing in this
tool dispatches keyboard events or evaluates a bound command.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("hkconf version %%s\nCommit: %s\n", GitCommit))
}
