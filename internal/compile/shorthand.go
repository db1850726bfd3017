// Package compile turns a parsed declaration into the compiled data model:
// cartesian-product expansion of shorthand groups, parity checking between
// key-side and command-side variants, mode-instruction extraction, and
// Omission stripping.
package compile

import (
	"fmt"

	"github.com/sweethkd/hkconf/internal/ast"
	"github.com/sweethkd/hkconf/internal/errors"
	"github.com/sweethkd/hkconf/internal/lexer"
	"github.com/sweethkd/hkconf/internal/model"
	"github.com/sweethkd/hkconf/internal/rangeexpand"
	"github.com/sweethkd/hkconf/pkg/keyid"
)

// Compiler runs the per-declaration pipeline: shorthand compilation,
// binding assembly, mode-block compilation. One Compiler is built per
// source file so every error it produces is anchored to that file.
type Compiler struct {
	Resolver keyid.Resolver
	Source   string
	File     string
}

func (c *Compiler) errAt(pos lexer.Position, format string, args ...any) error {
	return errors.NewGrammarError(pos, fmt.Sprintf(format, args...), c.Source, c.File)
}

// modifierAlternatives expands a ModifierGroupExpr into its list of
// candidate Modifier values (one per alternative). The grammar has already
// rejected anything that doesn't classify, so classification here cannot
// fail.
func modifierAlternatives(group ast.ModifierGroupExpr) []model.Modifier {
	out := make([]model.Modifier, 0, len(group.Alternatives))
	for _, alt := range group.Alternatives {
		alt = ast.StripTrailingPlus(alt)
		m, _ := model.ClassifyModifier(ast.Plain(alt))
		out = append(out, m)
	}
	return out
}

// keyAlternatives expands a KeyExpr into its flat list of candidate Keys,
// resolving range bounds via rangeexpand and names via the resolver.
func (c *Compiler) keyAlternatives(key ast.KeyExpr) ([]keyid.Key, error) {
	if key.Single != nil {
		k, err := c.resolveKeyToken(*key.Single, key.Pos)
		if err != nil {
			return nil, err
		}
		return []keyid.Key{k}, nil
	}
	var out []keyid.Key
	for _, alt := range key.Alts {
		if alt.Range != nil {
			keys, err := c.expandKeyRange(*alt.Range, alt.Pos)
			if err != nil {
				return nil, err
			}
			out = append(out, keys...)
			continue
		}
		k, err := c.resolveKeyToken(*alt.Token, alt.Pos)
		if err != nil {
			return nil, err
		}
		out = append(out, k)
	}
	return out, nil
}

func (c *Compiler) resolveKeyToken(tok ast.KeyToken, pos lexer.Position) (keyid.Key, error) {
	id, ok := c.Resolver.Resolve(lexer.Fold(tok.Name))
	if !ok {
		return keyid.Key{}, &errors.InvalidKeyError{Name: tok.Name}
	}
	return keyid.Key{ID: id, Attribute: tok.Attribute}, nil
}

func (c *Compiler) expandKeyRange(kr ast.KeyRange, pos lexer.Position) ([]keyid.Key, error) {
	if kr.LoAttribute != kr.HiAttribute {
		return nil, c.errAt(pos, "range bounds must have the same timing attributes")
	}
	runes, err := rangeexpand.Expand(kr.Lo, kr.Hi)
	if err != nil {
		return nil, c.errAt(pos, "%v", err)
	}
	out := make([]keyid.Key, 0, len(runes))
	for _, r := range runes {
		id, ok := c.Resolver.Resolve(lexer.Fold(string(r)))
		if !ok {
			return nil, &errors.InvalidKeyError{Name: string(r)}
		}
		out = append(out, keyid.Key{ID: id, Attribute: kr.LoAttribute})
	}
	return out, nil
}

// compileDefinitions produces every Definition a DefinitionExpr expands to,
// via the cartesian product of its modifier groups and key alternatives.
func (c *Compiler) compileDefinitions(def ast.DefinitionExpr) ([]model.Definition, error) {
	groupChoices := make([][]model.Modifier, 0, len(def.Groups))
	for _, g := range def.Groups {
		groupChoices = append(groupChoices, modifierAlternatives(g))
	}
	keys, err := c.keyAlternatives(def.Key)
	if err != nil {
		return nil, err
	}

	modifierCombos := cartesianModifiers(groupChoices)
	defs := make([]model.Definition, 0, len(modifierCombos)*len(keys))
	for _, combo := range modifierCombos {
		var set model.ModifierSet
		for _, m := range combo {
			set.Add(m)
		}
		for _, k := range keys {
			defs = append(defs, model.Definition{Modifiers: set, Key: k})
		}
	}
	return defs, nil
}

func cartesianModifiers(groups [][]model.Modifier) [][]model.Modifier {
	result := [][]model.Modifier{{}}
	for _, choices := range groups {
		var next [][]model.Modifier
		for _, prefix := range result {
			for _, m := range choices {
				combo := append(append([]model.Modifier{}, prefix...), m)
				next = append(next, combo)
			}
		}
		result = next
	}
	return result
}

// commandChoiceSet is one position's list of candidate literal strings in
// the command-side cross product: a literal fragment contributes exactly
// one choice, a shorthand group contributes one choice per alternative
// (after range expansion), and `&&` contributes the single literal "&&".
type commandChoiceSet struct {
	choices []string
	isAmp   bool
}

func (c *Compiler) commandChoiceSets(cmd ast.CommandExpr) ([]commandChoiceSet, error) {
	var sets []commandChoiceSet
	for _, seg := range cmd.Segments {
		switch seg.Kind {
		case lexer.CommandLiteral:
			sets = append(sets, commandChoiceSet{choices: []string{seg.Literal}})
		case lexer.CommandAmpAmp:
			if len(sets) > 0 && sets[len(sets)-1].isAmp {
				continue // collapsing rule: drop a redundant consecutive "&&"
			}
			sets = append(sets, commandChoiceSet{choices: []string{"&&"}, isAmp: true})
		case lexer.CommandShorthand:
			choices, err := c.expandCommandAlternatives(seg)
			if err != nil {
				return nil, err
			}
			sets = append(sets, commandChoiceSet{choices: choices})
		}
	}
	if len(sets) > 0 && sets[len(sets)-1].isAmp {
		sets = sets[:len(sets)-1] // drop a trailing lone "&&"
	}
	return sets, nil
}

func (c *Compiler) expandCommandAlternatives(seg ast.CommandSegmentExpr) ([]string, error) {
	var out []string
	for _, alt := range seg.Alternatives {
		if lo, hi, ok := ast.TryCharRange(alt); ok {
			runes, err := rangeexpand.Expand(lo, hi)
			if err != nil {
				return nil, c.errAt(seg.Pos, "%v", err)
			}
			for _, r := range runes {
				out = append(out, string(r))
			}
			continue
		}
		out = append(out, ast.Plain(alt))
	}
	return out, nil
}

// compileCommands produces every literal command string a CommandExpr
// expands to, via the cartesian product of its choice sets, joined without
// a separator (segments carry their own whitespace).
func (c *Compiler) compileCommands(cmd ast.CommandExpr) ([]string, error) {
	sets, err := c.commandChoiceSets(cmd)
	if err != nil {
		return nil, err
	}
	combos := [][]string{{}}
	for _, set := range sets {
		var next [][]string
		for _, prefix := range combos {
			for _, choice := range set.choices {
				combo := append(append([]string{}, prefix...), choice)
				next = append(next, combo)
			}
		}
		combos = next
	}
	out := make([]string, 0, len(combos))
	for _, combo := range combos {
		s := ""
		for _, part := range combo {
			s += part
		}
		out = append(out, s)
	}
	return out, nil
}
