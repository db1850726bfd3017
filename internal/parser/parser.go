// Package parser implements the recursive-descent grammar for hotkey
// configuration source: it turns a logical-line stream from internal/lexer
// into the internal/ast declaration tree, rejecting the two forbidden
// shapes (a modifier in key position, a key in modifier position) and
// shorthand groups with fewer than two alternatives (a group holding a
// single range such as `{a-c}` is accepted) as it goes, so that
// later stages never have to re-validate grammar-level shape.
package parser

import (
	"fmt"

	"github.com/sweethkd/hkconf/internal/ast"
	"github.com/sweethkd/hkconf/internal/errors"
	"github.com/sweethkd/hkconf/internal/lexer"
	"github.com/sweethkd/hkconf/internal/model"
)

// Parse tokenizes and parses source (already loaded into memory; file is
// used only to annotate error messages) into a flat declaration sequence.
// Empty or whitespace-only source is a valid, empty program.
func Parse(source, file string) ([]ast.Declaration, error) {
	p := &parser{source: source, file: file, lines: lexer.SplitLogicalLines(source)}
	return p.parseProgram()
}

type parser struct {
	source string
	file   string
	lines  []lexer.LogicalLine
	idx    int
}

func (p *parser) errAt(pos lexer.Position, format string, args ...any) error {
	return errors.NewGrammarError(pos, fmt.Sprintf(format, args...), p.source, p.file)
}

func (p *parser) parseProgram() ([]ast.Declaration, error) {
	var decls []ast.Declaration
	for p.idx < len(p.lines) {
		line := p.lines[p.idx]
		if line.Indented {
			return nil, p.errAt(lexer.Position{Line: line.Line, Column: 1}, "unexpected indented line outside of a binding")
		}
		trimmed, offset := line.TrimmedText()
		baseCol := 1 + offset
		if trimmed == "" {
			p.idx++
			continue
		}
		tokens := lexer.TokenizeHeader(trimmed, line.Line, baseCol)
		if len(tokens) == 1 { // only EOF: an inline comment consumed the whole line
			p.idx++
			continue
		}
		switch {
		case tokens[0].Type == lexer.IDENT && tokens[0].Folded == "include":
			decl, err := p.parseImport(tokens, line.Line)
			if err != nil {
				return nil, err
			}
			decls = append(decls, decl)
			p.idx++
		case tokens[0].Type == lexer.IDENT && tokens[0].Folded == "ignore":
			decl, err := p.parseUnbind(tokens[1:], trimmed, baseCol, line.Line)
			if err != nil {
				return nil, err
			}
			decls = append(decls, decl)
			p.idx++
		case tokens[0].Type == lexer.IDENT && tokens[0].Folded == "mode":
			decl, err := p.parseMode(tokens, trimmed, baseCol)
			if err != nil {
				return nil, err
			}
			decls = append(decls, decl)
		default:
			decl, err := p.parseBinding(tokens, trimmed, baseCol, line.Line)
			if err != nil {
				return nil, err
			}
			decls = append(decls, decl)
		}
	}
	return decls, nil
}

func (p *parser) parseImport(tokens []lexer.Token, line int) (*ast.ImportDecl, error) {
	rest := tokens[1 : len(tokens)-1] // drop "include" and EOF
	if len(rest) == 0 {
		return nil, p.errAt(lexer.Position{Line: line, Column: 1}, "include requires a file path")
	}
	path := joinRaw(rest)
	start := lexer.Position{Line: line, Column: tokens[0].Pos.Column}
	return ast.NewImportDecl(path, ast.Span{Start: start, End: rest[len(rest)-1].Pos}), nil
}

// joinRaw reconstructs the literal text a run of tokens came from, which is
// enough for a bare file path (no shorthand groups are meaningful there).
func joinRaw(tokens []lexer.Token) string {
	out := ""
	for _, t := range tokens {
		out += t.Raw
	}
	return out
}

func (p *parser) parseUnbind(tokens []lexer.Token, text string, baseCol, lineNo int) (*ast.UnbindDecl, error) {
	def, err := p.parseDefinitionTokens(tokens[:len(tokens)-1], text, baseCol, lineNo)
	if err != nil {
		return nil, err
	}
	return ast.NewUnbindDecl(def), nil
}

func (p *parser) parseBinding(tokens []lexer.Token, text string, baseCol, lineNo int) (*ast.BindingDecl, error) {
	def, err := p.parseDefinitionTokens(tokens[:len(tokens)-1], text, baseCol, lineNo)
	if err != nil {
		return nil, err
	}
	p.idx++
	if p.idx >= len(p.lines) || !p.lines[p.idx].Indented {
		return nil, p.errAt(def.Span().End, "binding is missing its command line")
	}
	cmdLine := p.lines[p.idx]
	cmdTrimmed, cmdOffset := cmdLine.TrimmedText()
	segments, err := lexer.ScanCommand(cmdTrimmed, cmdLine.Line, 1+cmdOffset)
	if err != nil {
		return nil, p.errAt(lexer.Position{Line: cmdLine.Line, Column: 1 + cmdOffset}, "%v", err)
	}
	cmdExpr, err := p.buildCommandExpr(segments)
	if err != nil {
		return nil, err
	}
	p.idx++
	return ast.NewBindingDecl(def, cmdExpr), nil
}

func (p *parser) buildCommandExpr(segments []lexer.CommandSegment) (ast.CommandExpr, error) {
	exprs := make([]ast.CommandSegmentExpr, 0, len(segments))
	for _, seg := range segments {
		switch seg.Kind {
		case lexer.CommandLiteral:
			exprs = append(exprs, ast.CommandSegmentExpr{Kind: seg.Kind, Literal: seg.Text, Pos: seg.Pos})
		case lexer.CommandAmpAmp:
			exprs = append(exprs, ast.CommandSegmentExpr{Kind: seg.Kind, Pos: seg.Pos})
		case lexer.CommandShorthand:
			alts := ast.SplitAlternatives(seg.Text)
			if len(alts) < 2 {
				if _, _, isRange := ast.TryCharRange(alts[0]); !isRange {
					return ast.CommandExpr{}, p.errAt(seg.Pos, "shorthand group must have at least two alternatives")
				}
			}
			exprs = append(exprs, ast.CommandSegmentExpr{Kind: seg.Kind, Alternatives: alts, Pos: seg.Pos})
		}
	}
	return ast.NewCommandExpr(exprs), nil
}

func (p *parser) parseMode(tokens []lexer.Token, text string, baseCol int) (*ast.ModeDecl, error) {
	// Expected shape: mode <name> {
	if len(tokens) < 4 || tokens[1].Type != lexer.IDENT || tokens[2].Type != lexer.LBRACE {
		return nil, p.errAt(tokens[0].Pos, "malformed mode header, expected: mode <name> {")
	}
	start := tokens[0].Pos
	mode := ast.NewModeDecl(tokens[1].Raw)
	p.idx++

	for {
		if p.idx >= len(p.lines) {
			return nil, p.errAt(start, "mode %q is missing its closing `}`", mode.Name)
		}
		line := p.lines[p.idx]
		trimmed, offset := line.TrimmedText()
		bodyBaseCol := 1 + offset
		if trimmed == "}" {
			mode.SetSpan(ast.Span{Start: start, End: lexer.Position{Line: line.Line, Column: bodyBaseCol}})
			p.idx++
			return mode, nil
		}
		if trimmed == "" {
			p.idx++
			continue
		}
		bodyTokens := lexer.TokenizeHeader(trimmed, line.Line, bodyBaseCol)
		if len(bodyTokens) == 1 {
			p.idx++
			continue
		}
		switch {
		case bodyTokens[0].Type == lexer.IDENT && bodyTokens[0].Folded == "oneoff":
			mode.OneOff = true
			p.idx++
		case bodyTokens[0].Type == lexer.IDENT && bodyTokens[0].Folded == "swallow":
			mode.Swallow = true
			p.idx++
		case bodyTokens[0].Type == lexer.IDENT && bodyTokens[0].Folded == "ignore":
			decl, err := p.parseUnbind(bodyTokens[1:], trimmed, bodyBaseCol, line.Line)
			if err != nil {
				return nil, err
			}
			mode.Unbinds = append(mode.Unbinds, decl)
			p.idx++
		default:
			decl, err := p.parseBinding(bodyTokens, trimmed, bodyBaseCol, line.Line)
			if err != nil {
				return nil, err
			}
			mode.Bindings = append(mode.Bindings, decl)
		}
	}
}

// parseDefinitionTokens parses a `modifier-group (+ modifier-group)* + key`
// sequence, rejecting the two forbidden shapes as it classifies each
// position. text/baseCol are the header line's trimmed text and the column
// its first rune occupies, letting shorthand-group interiors be re-sliced
// from the original source (tokens resolve escapes, which would corrupt a
// group's exact text) by rune column.
func (p *parser) parseDefinitionTokens(tokens []lexer.Token, text string, baseCol, lineNo int) (ast.DefinitionExpr, error) {
	if len(tokens) == 0 {
		return ast.DefinitionExpr{}, p.errAt(lexer.Position{Line: lineNo, Column: baseCol}, "expected a key definition")
	}
	segments := splitTopLevelPlus(tokens)
	keySeg := segments[len(segments)-1]
	groupSegs := segments[:len(segments)-1]
	if group, key, ok := trailingKeyAfterBraceGroup(keySeg); ok {
		groupSegs = append(groupSegs, group)
		keySeg = key
	}

	groups := make([]ast.ModifierGroupExpr, 0, len(groupSegs))
	for _, seg := range groupSegs {
		group, err := p.parseModifierGroup(seg, text, baseCol, lineNo)
		if err != nil {
			return ast.DefinitionExpr{}, err
		}
		groups = append(groups, group)
	}

	key, err := p.parseKeyExpr(keySeg, text, baseCol, lineNo)
	if err != nil {
		return ast.DefinitionExpr{}, err
	}
	return ast.NewDefinitionExpr(groups, key), nil
}

// splitTopLevelPlus splits tokens (sans trailing EOF) on PLUS tokens that
// are not nested inside a brace group.
func splitTopLevelPlus(tokens []lexer.Token) [][]lexer.Token {
	var segments [][]lexer.Token
	depth := 0
	start := 0
	n := len(tokens)
	if n > 0 && tokens[n-1].Type == lexer.EOF {
		n--
	}
	for i := 0; i < n; i++ {
		switch tokens[i].Type {
		case lexer.LBRACE:
			depth++
		case lexer.RBRACE:
			depth--
		case lexer.PLUS:
			if depth == 0 {
				segments = append(segments, tokens[start:i])
				start = i + 1
			}
		}
	}
	segments = append(segments, tokens[start:n])
	return segments
}

// trailingKeyAfterBraceGroup detects a key token following a closing `}`
// within a single `+`-segment: the omission-capable modifier shorthand
// `{_, shift +} b` encodes its own separator per alternative (choosing
// "shift +" supplies the `+` a key would otherwise need after it; choosing
// "_" supplies none), so in this form the key attaches to the group by
// whitespace alone and no top-level `+` token ever separates them —
// splitTopLevelPlus has nothing to split on. When seg is nothing but a
// closed brace group, ok is false: that is the ordinary key-shorthand case,
// already a well-formed keySeg on its own.
func trailingKeyAfterBraceGroup(seg []lexer.Token) (group, key []lexer.Token, ok bool) {
	if len(seg) < 2 || seg[0].Type != lexer.LBRACE {
		return nil, nil, false
	}
	depth := 0
	for i, t := range seg {
		switch t.Type {
		case lexer.LBRACE:
			depth++
		case lexer.RBRACE:
			depth--
			if depth == 0 {
				if i == len(seg)-1 {
					return nil, nil, false
				}
				return seg[:i+1], seg[i+1:], true
			}
		}
	}
	return nil, nil, false
}

func isBraceGroup(seg []lexer.Token) bool {
	return len(seg) >= 2 && seg[0].Type == lexer.LBRACE && seg[len(seg)-1].Type == lexer.RBRACE
}

func (p *parser) parseModifierGroup(seg []lexer.Token, text string, baseCol, lineNo int) (ast.ModifierGroupExpr, error) {
	if len(seg) == 0 {
		return ast.ModifierGroupExpr{}, p.errAt(lexer.Position{Line: lineNo, Column: baseCol}, "empty modifier group")
	}
	pos := seg[0].Pos
	if isBraceGroup(seg) {
		interior := sliceInterior(seg, text, baseCol)
		alts := ast.SplitAlternatives(interior)
		if len(alts) < 2 {
			return ast.ModifierGroupExpr{}, p.errAt(pos, "shorthand group must have at least two alternatives")
		}
		for _, alt := range alts {
			if _, ok := classifyModifierAlt(alt); !ok {
				return ast.ModifierGroupExpr{}, p.errAt(pos, "key in modifier position: %q is not a recognized modifier", ast.Plain(alt))
			}
		}
		return ast.ModifierGroupExpr{Alternatives: alts, Pos: pos}, nil
	}
	if len(seg) != 1 || seg[0].Type != lexer.IDENT {
		return ast.ModifierGroupExpr{}, p.errAt(pos, "key in modifier position")
	}
	alt := ast.Decode(seg[0].Raw)
	if _, ok := model.ClassifyModifier(ast.Plain(alt)); !ok {
		return ast.ModifierGroupExpr{}, p.errAt(pos, "key in modifier position: %q is not a recognized modifier", seg[0].Raw)
	}
	return ast.ModifierGroupExpr{Alternatives: [][]ast.PChar{alt}, Pos: pos}, nil
}

// classifyModifierAlt strips a trailing bare `+` (the omission-capable
// `{_, shift +}` form) before classification.
func classifyModifierAlt(alt []ast.PChar) (model.Modifier, bool) {
	alt = ast.StripTrailingPlus(alt)
	return model.ClassifyModifier(ast.Plain(alt))
}

func (p *parser) parseKeyExpr(seg []lexer.Token, text string, baseCol, lineNo int) (ast.KeyExpr, error) {
	if len(seg) == 0 {
		return ast.KeyExpr{}, p.errAt(lexer.Position{Line: lineNo, Column: baseCol}, "expected a key")
	}
	pos := seg[0].Pos
	if isBraceGroup(seg) {
		interior := sliceInterior(seg, text, baseCol)
		alts := ast.SplitAlternatives(interior)
		if len(alts) < 2 {
			if _, isRange := ast.TryKeyRange(alts[0]); !isRange {
				return ast.KeyExpr{}, p.errAt(pos, "shorthand group must have at least two alternatives")
			}
		}
		keyAlts := make([]ast.KeyAlt, 0, len(alts))
		for _, alt := range alts {
			if kr, ok := ast.TryKeyRange(alt); ok {
				keyAlts = append(keyAlts, ast.KeyAlt{Range: &kr, Pos: pos})
				continue
			}
			tok := ast.ParseKeyToken(alt)
			if err := p.rejectModifierAsKey(tok.Name, pos); err != nil {
				return ast.KeyExpr{}, err
			}
			keyAlts = append(keyAlts, ast.KeyAlt{Token: &tok, Pos: pos})
		}
		return ast.KeyExpr{Alts: keyAlts, Pos: pos}, nil
	}
	// Non-shorthand key: optional TILDE/AT prefixes followed by one IDENT.
	chars := make([]ast.PChar, 0, len(seg))
	for _, t := range seg {
		switch t.Type {
		case lexer.TILDE:
			chars = append(chars, ast.PChar{R: '~'})
		case lexer.AT:
			chars = append(chars, ast.PChar{R: '@'})
		case lexer.IDENT:
			chars = append(chars, ast.Decode(t.Raw)...)
		default:
			return ast.KeyExpr{}, p.errAt(t.Pos, "unexpected token in key position")
		}
	}
	tok := ast.ParseKeyToken(chars)
	if err := p.rejectModifierAsKey(tok.Name, pos); err != nil {
		return ast.KeyExpr{}, err
	}
	return ast.KeyExpr{Single: &tok, Pos: pos}, nil
}

func (p *parser) rejectModifierAsKey(name string, pos lexer.Position) error {
	if _, ok := model.ClassifyModifier(name); ok {
		return p.errAt(pos, "modifier in key position: %q is a modifier, not a key", name)
	}
	return nil
}

// sliceInterior returns the exact source text between a `{`/`}` token pair
// by rune-slicing the original header text using column positions, rather
// than rejoining token fragments (which would lose whitespace TokenizeHeader
// never preserves once a run becomes a single IDENT, corrupting unspaced
// text like "page-up").
func sliceInterior(seg []lexer.Token, text string, baseCol int) string {
	runes := []rune(text)
	lbrace := seg[0].Pos.Column
	rbrace := seg[len(seg)-1].Pos.Column
	lo := lbrace - baseCol + 1
	hi := rbrace - baseCol
	if lo < 0 {
		lo = 0
	}
	if hi > len(runes) {
		hi = len(runes)
	}
	if lo > hi {
		return ""
	}
	return string(runes[lo:hi])
}
