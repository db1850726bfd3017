package ast

import (
	"github.com/sweethkd/hkconf/internal/lexer"
)

// Span covers the source range of a declaration, used to anchor errors
// (such as the shorthand parity check) that belong to the whole
// declaration rather than a single token.
type Span struct {
	Start, End lexer.Position
}

// Declaration is the sum type for everything the `main` production can
// contain: binding, unbind, import, and mode. Comments and blank lines are
// dropped by the lexer and never reach the parser.
type Declaration interface {
	declarationNode()
	Span() Span
}

// ModifierGroupExpr is one `+`-separated position in a definition
// expression: either a single modifier (one alternative) or a shorthand
// group (multiple alternatives). Each alternative is decoded text, not yet
// classified, so the compiler can report which token failed to classify.
type ModifierGroupExpr struct {
	Alternatives [][]PChar
	Pos          lexer.Position
}

// KeyAlt is one alternative inside a key shorthand group: either a single
// key token or a detected range.
type KeyAlt struct {
	Token *KeyToken
	Range *KeyRange
	Pos   lexer.Position
}

// KeyExpr is the key half of a definition expression.
type KeyExpr struct {
	Single *KeyToken // set when the key position is not a shorthand group
	Alts   []KeyAlt  // set when the key position is a shorthand group
	Pos    lexer.Position
}

// DefinitionExpr is a sequence of modifier groups followed by a key
// expression — the left-hand side of a binding or unbind declaration,
// before shorthand compilation.
type DefinitionExpr struct {
	Groups []ModifierGroupExpr
	Key    KeyExpr
	span   Span
}

// CommandSegmentExpr is one piece of a command expression: a literal run,
// a shorthand group (raw, comma-split alternatives — range detection and
// expansion happen in internal/compile alongside the key-side expansion,
// so both paths use the same rangeexpand.Expand), or the `&&` delimiter.
type CommandSegmentExpr struct {
	Kind         lexer.CommandSegmentKind
	Literal      string    // set when Kind == CommandLiteral
	Alternatives [][]PChar // set when Kind == CommandShorthand
	Pos          lexer.Position
}

// CommandExpr is the right-hand side of a binding declaration.
type CommandExpr struct {
	Segments []CommandSegmentExpr
	span     Span
}

// BindingDecl is a `definition \n command` pair, optionally nested inside a
// mode block.
type BindingDecl struct {
	Definition DefinitionExpr
	Command    CommandExpr
	span       Span
}

func (b *BindingDecl) declarationNode() {}
func (b *BindingDecl) Span() Span       { return b.span }

// NewBindingDecl builds a BindingDecl, spanning from the definition's start
// through the command's end.
func NewBindingDecl(def DefinitionExpr, cmd CommandExpr) *BindingDecl {
	return &BindingDecl{Definition: def, Command: cmd, span: Span{Start: def.Span().Start, End: cmd.Span().End}}
}

// UnbindDecl is an `ignore <definition>` declaration. Because the
// definition can itself carry shorthands, a single UnbindDecl can expand to
// several concrete Definitions.
type UnbindDecl struct {
	Definition DefinitionExpr
	span       Span
}

func (u *UnbindDecl) declarationNode() {}
func (u *UnbindDecl) Span() Span       { return u.span }

// NewUnbindDecl builds an UnbindDecl, taking its span from the definition.
func NewUnbindDecl(def DefinitionExpr) *UnbindDecl {
	return &UnbindDecl{Definition: def, span: def.Span()}
}

// ImportDecl is an `include <path>` declaration.
type ImportDecl struct {
	Path string
	span Span
}

func (i *ImportDecl) declarationNode() {}
func (i *ImportDecl) Span() Span       { return i.span }

// NewImportDecl builds an ImportDecl spanning span.
func NewImportDecl(path string, span Span) *ImportDecl {
	return &ImportDecl{Path: path, span: span}
}

// ModeDecl is a `mode name { ... }` block.
type ModeDecl struct {
	Name     string
	OneOff   bool
	Swallow  bool
	Bindings []*BindingDecl
	Unbinds  []*UnbindDecl
	span     Span
}

func (m *ModeDecl) declarationNode() {}
func (m *ModeDecl) Span() Span       { return m.span }

// NewModeDecl builds an empty ModeDecl for name; its body (Bindings,
// Unbinds, OneOff, Swallow) is filled in as the parser walks the block, and
// its span is set once the closing `}` is found, via SetSpan.
func NewModeDecl(name string) *ModeDecl {
	return &ModeDecl{Name: name}
}

// SetSpan records mode's full source span, known only once its closing `}`
// has been located.
func (m *ModeDecl) SetSpan(span Span) {
	m.span = span
}

// NewDefinitionExpr builds a DefinitionExpr, computing its span from the
// first group (or the key, if there are no groups) through the key.
func NewDefinitionExpr(groups []ModifierGroupExpr, key KeyExpr) DefinitionExpr {
	start := key.Pos
	if len(groups) > 0 {
		start = groups[0].Pos
	}
	return DefinitionExpr{Groups: groups, Key: key, span: Span{Start: start, End: key.Pos}}
}

func (d DefinitionExpr) Span() Span { return d.span }

// NewCommandExpr builds a CommandExpr and its span from its segments.
func NewCommandExpr(segments []CommandSegmentExpr) CommandExpr {
	var span Span
	if len(segments) > 0 {
		span = Span{Start: segments[0].Pos, End: segments[len(segments)-1].Pos}
	}
	return CommandExpr{Segments: segments, span: span}
}

func (c CommandExpr) Span() Span { return c.span }
