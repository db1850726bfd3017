package compile

import (
	"github.com/sweethkd/hkconf/internal/ast"
	"github.com/sweethkd/hkconf/internal/model"
	"github.com/sweethkd/hkconf/internal/parser"
	"github.com/sweethkd/hkconf/pkg/keyid"
)

// FileResult is one file's contribution to the overall configuration,
// before import resolution and override merging: its own Bindings (in
// document order, not yet deduplicated), unbind Definitions, raw import
// paths, and Modes.
type FileResult struct {
	Bindings []model.Binding
	Unbinds  []model.Definition
	Imports  []string
	Modes    []model.Mode
}

// CompileFile parses source and runs the shorthand/assembly pipeline over
// every declaration it contains, producing one file's FileResult. file is
// used only to annotate errors; pass "" for an anonymous in-memory source.
func CompileFile(source, file string, resolver keyid.Resolver) (FileResult, error) {
	decls, err := parser.Parse(source, file)
	if err != nil {
		return FileResult{}, err
	}

	c := &Compiler{Resolver: resolver, Source: source, File: file}
	var result FileResult
	for _, decl := range decls {
		switch d := decl.(type) {
		case *ast.BindingDecl:
			bindings, err := c.CompileBinding(d)
			if err != nil {
				return FileResult{}, err
			}
			result.Bindings = append(result.Bindings, bindings...)
		case *ast.UnbindDecl:
			defs, err := c.CompileUnbind(d)
			if err != nil {
				return FileResult{}, err
			}
			result.Unbinds = append(result.Unbinds, defs...)
		case *ast.ImportDecl:
			result.Imports = append(result.Imports, d.Path)
		case *ast.ModeDecl:
			mode, err := c.CompileMode(d)
			if err != nil {
				return FileResult{}, err
			}
			result.Modes = append(result.Modes, mode)
		}
	}
	return result, nil
}
