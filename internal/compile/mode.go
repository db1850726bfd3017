package compile

import (
	"github.com/sweethkd/hkconf/internal/ast"
	"github.com/sweethkd/hkconf/internal/model"
)

// CompileMode runs the same binding/unbind compilation pipeline over a mode
// block's body. The resulting Bindings and unbind Definitions live inside
// the Mode, never merged into the root configuration.
func (c *Compiler) CompileMode(decl *ast.ModeDecl) (model.Mode, error) {
	mode := model.Mode{Name: decl.Name, OneOff: decl.OneOff, Swallow: decl.Swallow}

	for _, b := range decl.Bindings {
		bindings, err := c.CompileBinding(b)
		if err != nil {
			return model.Mode{}, err
		}
		mode.Bindings = append(mode.Bindings, bindings...)
	}
	for _, u := range decl.Unbinds {
		defs, err := c.CompileUnbind(u)
		if err != nil {
			return model.Mode{}, err
		}
		mode.Unbinds = append(mode.Unbinds, defs...)
	}
	return mode, nil
}
