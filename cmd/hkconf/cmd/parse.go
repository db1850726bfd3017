package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/sweethkd/hkconf/pkg/hkconf"
	"github.com/sweethkd/hkconf/pkg/keyid"
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse a hotkey configuration and summarize it",
	Long: `Parse a hotkey configuration file, following its imports and resolving
overrides, and print a summary of the resulting bindings and modes.

If no file is given, reads from stdin.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

func loadConfig(args []string) (*hkconf.Config, error) {
	resolver := keyid.NewDefaultResolver()
	if len(args) > 0 {
		return hkconf.ParseFile(args[0], resolver)
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil, fmt.Errorf("reading stdin: %w", err)
	}
	return hkconf.Parse(string(data), "", resolver)
}

func runParse(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(args)
	if err != nil {
		return err
	}

	fmt.Printf("%d binding(s), %d mode(s), %d import(s), %d ignore(s)\n",
		len(cfg.Bindings), len(cfg.Modes), len(cfg.Imports), len(cfg.Unbinds))
	for _, b := range cfg.Bindings {
		line := fmt.Sprintf("  %v + key(%d) -> %s", b.Definition.Modifiers.Slice(), b.Definition.Key.ID, b.Command)
		for _, mi := range b.ModeInstructions {
			line += " [" + mi.String() + "]"
		}
		fmt.Println(line)
	}
	for _, m := range cfg.Modes {
		fmt.Printf("  mode %s (%d binding(s))\n", m.Name, len(m.Bindings))
	}
	return nil
}
