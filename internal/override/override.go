// Package override implements the final merge pass over a document-ordered
// accumulation of Bindings: last-write-wins by Definition, then removal of
// anything named by the root ignore list.
package override

import (
	"github.com/sweethkd/hkconf/internal/importer"
	"github.com/sweethkd/hkconf/internal/model"
)

// Resolve merges result into a finished Config. Bindings are walked in
// document order; a later Binding whose Definition equals an earlier one
// replaces that earlier Binding's command and mode instructions in place,
// keeping its original position, rather than being appended again. Once
// every Binding is merged, any whose Definition appears in the root
// unbind list is removed entirely.
func Resolve(result importer.Result) model.Config {
	index := make(map[model.Definition]int, len(result.Bindings))
	merged := make([]model.Binding, 0, len(result.Bindings))

	for _, b := range result.Bindings {
		if i, ok := index[b.Definition]; ok {
			merged[i].Command = b.Command
			merged[i].ModeInstructions = b.ModeInstructions
			continue
		}
		index[b.Definition] = len(merged)
		merged = append(merged, b)
	}

	ignored := make(map[model.Definition]bool, len(result.Unbinds))
	for _, d := range result.Unbinds {
		ignored[d] = true
	}

	final := make([]model.Binding, 0, len(merged))
	for _, b := range merged {
		if ignored[b.Definition] {
			continue
		}
		final = append(final, b)
	}

	return model.Config{
		Bindings: final,
		Unbinds:  result.Unbinds,
		Imports:  result.Imports,
		Modes:    result.Modes,
	}
}
