package compile

import (
	"strings"

	"github.com/sweethkd/hkconf/internal/ast"
	"github.com/sweethkd/hkconf/internal/model"
)

// CompileBinding runs the full per-declaration pipeline on a single binding:
// shorthand compilation on both sides, the parity check, zipping definitions
// with commands by index, mode-instruction extraction, and Omission
// stripping.
func (c *Compiler) CompileBinding(decl *ast.BindingDecl) ([]model.Binding, error) {
	defs, err := c.compileDefinitions(decl.Definition)
	if err != nil {
		return nil, err
	}
	cmds, err := c.compileCommands(decl.Command)
	if err != nil {
		return nil, err
	}
	if len(defs) != len(cmds) {
		return nil, c.errAt(decl.Span().Start, "binding variants %d does not equal command variants %d", len(defs), len(cmds))
	}

	bindings := make([]model.Binding, 0, len(defs))
	for i, def := range defs {
		command, instructions := extractModeInstructions(cmds[i])
		def.Modifiers.Remove(model.Omission)
		bindings = append(bindings, model.Binding{
			Definition:       def,
			Command:          command,
			ModeInstructions: instructions,
		})
	}
	return bindings, nil
}

// CompileUnbind expands an UnbindDecl's definition expression into every
// concrete Definition it denotes, stripping Omission the same way a real
// Binding's Definition would be stripped so unbind fingerprints compare
// equal to the bindings they are meant to remove.
func (c *Compiler) CompileUnbind(decl *ast.UnbindDecl) ([]model.Definition, error) {
	defs, err := c.compileDefinitions(decl.Definition)
	if err != nil {
		return nil, err
	}
	for i := range defs {
		defs[i].Modifiers.Remove(model.Omission)
	}
	return defs, nil
}

// extractModeInstructions splits an assembled command string on its `&&`
// clauses, pulling out the reserved `enter <name>` and `escape` clauses as
// ModeInstructions and leaving the rest as the binding's shell command.
// Per the enter/escape pairing rule: every Enter is kept regardless of
// whether a later Escape cancels it, but an Escape is only kept when it
// occurs while no Enter is pending (a pending Enter absorbs it instead).
func extractModeInstructions(cmd string) (string, []model.ModeInstruction) {
	clauses := strings.Split(cmd, "&&")
	kept := make([]string, 0, len(clauses))
	var enters []model.ModeInstruction
	var bareEscapes []model.ModeInstruction
	pending := 0

	for _, clause := range clauses {
		trimmed := strings.TrimSpace(clause)
		folded := strings.ToLower(trimmed)
		switch {
		case strings.HasPrefix(folded, "enter ") && len(strings.TrimSpace(trimmed[len("enter "):])) > 0:
			name := strings.TrimSpace(trimmed[len("enter "):])
			enters = append(enters, model.ModeInstruction{Kind: model.Enter, Name: name})
			pending++
		case folded == "escape":
			if pending > 0 {
				pending--
			} else {
				bareEscapes = append(bareEscapes, model.ModeInstruction{Kind: model.Escape})
			}
		default:
			kept = append(kept, clause)
		}
	}

	instructions := append(enters, bareEscapes...)
	return strings.Join(kept, "&&"), instructions
}
