// Package hkconf is the public entry point for parsing hotkey
// configuration files: the grammar, shorthand compilation, import
// resolution, and override merging, behind two functions and a set of
// type aliases onto the internal data model.
package hkconf

import (
	"github.com/sweethkd/hkconf/internal/compile"
	"github.com/sweethkd/hkconf/internal/importer"
	"github.com/sweethkd/hkconf/internal/model"
	"github.com/sweethkd/hkconf/internal/override"
	"github.com/sweethkd/hkconf/pkg/keyid"
)

// anonymousFile is the name used to anchor errors when Parse is called
// without a real path, matching the language spec's virtual file name.
const anonymousFile = "<anonymous>"

// Config is the fully resolved result of parsing a hotkey configuration:
// every Binding in document order after override/ignore resolution, the
// root ignore list, every import path encountered, and every declared
// mode.
type Config = model.Config

// Binding, Definition, ModifierSet, Modifier, Mode, and ModeInstruction
// are re-exported so callers never need to import internal/model
// directly.
type (
	Binding         = model.Binding
	Definition      = model.Definition
	ModifierSet     = model.ModifierSet
	Modifier        = model.Modifier
	Mode            = model.Mode
	ModeInstruction = model.ModeInstruction
)

// Re-export the Modifier enum's members at package scope.
const (
	Super   = model.Super
	Alt     = model.Alt
	Altgr   = model.Altgr
	Control = model.Control
	Shift   = model.Shift
	Any     = model.Any
)

// Resolver, ID, Key, and Attribute mirror pkg/keyid so callers implementing
// their own key-name table don't need a second import.
type (
	Resolver  = keyid.Resolver
	ID        = keyid.ID
	Key       = keyid.Key
	Attribute = keyid.Attribute
)

// Parse compiles source, whose import statements (if any) are resolved
// relative to the process's current working directory, into a finished
// Config. An empty path is reported under the anonymous virtual file name.
// Parse either returns a fully-formed Config or a non-nil error; it never
// returns a partial result.
func Parse(source, path string, resolver keyid.Resolver) (*Config, error) {
	file := path
	if file == "" {
		file = anonymousFile
	}

	root, err := compile.CompileFile(source, file, resolver)
	if err != nil {
		return nil, err
	}
	resolved, err := importer.Resolve(root, resolver)
	if err != nil {
		return nil, err
	}
	cfg := override.Resolve(resolved)
	return &cfg, nil
}

// ParseFile reads path from disk, subject to the same regular-file and
// size-cap rules applied to every file it imports, then delegates to
// Parse.
func ParseFile(path string, resolver keyid.Resolver) (*Config, error) {
	source, err := importer.ReadConfigFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(source, path, resolver)
}
