// Command hkconf is developer tooling for the hotkey configuration
// language: parsing, linting, and dumping a compiled configuration. It is
// not a keybinding daemon; nothing here dispatches keyboard events.
package main

import (
	"fmt"
	"os"

	"github.com/sweethkd/hkconf/cmd/hkconf/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
