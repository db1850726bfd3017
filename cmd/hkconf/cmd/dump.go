package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"

	"github.com/sweethkd/hkconf/pkg/hkconf"
)

var (
	dumpFormat string
	dumpQuery  string
)

var dumpCmd = &cobra.Command{
	Use:   "dump [file]",
	Short: "Parse a hotkey configuration and dump it as JSON or YAML",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runDump,
}

func init() {
	rootCmd.AddCommand(dumpCmd)
	dumpCmd.Flags().StringVar(&dumpFormat, "format", "json", "output format: json or yaml")
	dumpCmd.Flags().StringVar(&dumpQuery, "query", "", "pull a single field out of the dump via a gjson path (e.g. bindings.0.command), instead of printing the whole document")
}

func runDump(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(args)
	if err != nil {
		return err
	}

	doc, err := hkconf.DumpJSON(cfg)
	if err != nil {
		return err
	}

	if dumpQuery != "" {
		result := gjson.Get(doc, dumpQuery)
		if !result.Exists() {
			return fmt.Errorf("query %q matched nothing", dumpQuery)
		}
		fmt.Println(result.String())
		return nil
	}

	switch dumpFormat {
	case "json":
		fmt.Println(doc)
	case "yaml":
		out, err := hkconf.DumpYAML(cfg)
		if err != nil {
			return err
		}
		fmt.Print(out)
	default:
		return fmt.Errorf("unknown format %q: want json or yaml", dumpFormat)
	}
	return nil
}
