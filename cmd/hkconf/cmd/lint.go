package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	hkerrors "github.com/sweethkd/hkconf/internal/errors"
)

var lintColor bool

var lintCmd = &cobra.Command{
	Use:   "lint [file]",
	Short: "Validate a hotkey configuration without printing it",
	Long: `Lint parses a hotkey configuration the same way parse does, but only
reports success or failure: a grammar, shorthand-parity, or import error
is printed with source context and a nonzero exit status.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLint,
}

func init() {
	rootCmd.AddCommand(lintCmd)
	lintCmd.Flags().BoolVar(&lintColor, "color", false, "colorize the caret in any reported error")
}

func runLint(cmd *cobra.Command, args []string) error {
	_, err := loadConfig(args)
	if err != nil {
		if ge, ok := err.(*hkerrors.GrammarError); ok {
			fmt.Fprintln(os.Stderr, ge.Format(lintColor))
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
	fmt.Println("ok")
	return nil
}
