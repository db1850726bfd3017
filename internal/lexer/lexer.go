// Package lexer splits hotkey-configuration source text into the
// line-oriented structure the grammar operates on (significant-but-simple
// indentation: a command follows its binding header on the next indented
// line) and tokenizes a single logical line's header portion into a flat
// token stream for the parser.
//
// Command-line text is scanned separately (see command.go): its alphabet
// (free-form shell text, shorthand groups, `&&`) differs enough from the
// header alphabet (modifiers, keys, braces) that sharing one tokenizer
// would mean constantly switching lexing modes mid-stream. Two small,
// single-purpose scanners are easier to read than one that context-switches.
package lexer

import (
	"strings"

	"golang.org/x/text/cases"
)

// Position is a 1-based line/column location in a source file. Column
// counts Unicode code points, not bytes, so multi-byte UTF-8 sequences each
// count as one column.
type Position struct {
	Line   int
	Column int
}

var fold = cases.Fold()

// Fold case-folds s the same way the lexer folds modifier and key-name
// tokens before classification, so callers outside the lexer (tests,
// CLI echoing) can reproduce the exact comparison key.
func Fold(s string) string {
	return fold.String(s)
}

// LogicalLine is one line of significance to the grammar: either a
// zero-indent declaration header or an indented continuation (a mode body
// line, or a binding's command). Backslash-newline continuations have
// already been joined into Text; blank lines and column-one `#` comments
// have already been dropped.
type LogicalLine struct {
	Line     int // 1-based physical line number this logical line starts at
	Indented bool
	Text     string // raw text, including leading whitespace when Indented
}

// TrimmedText returns Text with any leading whitespace removed, along with
// the rune count that was stripped (added to Line's starting column to keep
// error positions correct).
func (l LogicalLine) TrimmedText() (string, int) {
	trimmed := strings.TrimLeft(l.Text, " \t")
	return trimmed, len([]rune(l.Text)) - len([]rune(trimmed))
}

// SplitLogicalLines turns raw source into the logical-line sequence the
// parser consumes.
func SplitLogicalLines(source string) []LogicalLine {
	physical := splitPhysicalLines(source)
	merged := joinContinuations(physical)

	out := make([]LogicalLine, 0, len(merged))
	for _, pl := range merged {
		trimmedAll := strings.TrimSpace(pl.text)
		if trimmedAll == "" {
			continue // blank line
		}
		indented := len(pl.text) > 0 && (pl.text[0] == ' ' || pl.text[0] == '\t')
		if !indented && pl.text[0] == '#' {
			continue // column-one comment line
		}
		out = append(out, LogicalLine{Line: pl.line, Indented: indented, Text: pl.text})
	}
	return out
}

type physicalLine struct {
	line int
	text string
}

func splitPhysicalLines(source string) []physicalLine {
	raw := strings.Split(source, "\n")
	out := make([]physicalLine, 0, len(raw))
	for i, text := range raw {
		text = strings.TrimSuffix(text, "\r")
		out = append(out, physicalLine{line: i + 1, text: text})
	}
	return out
}

// joinContinuations collapses a trailing backslash at end-of-line into the
// following physical line, stripping that following line's leading
// whitespace and discarding the backslash and the newline itself. The
// joined line keeps the starting line number of the first physical line in
// the chain, since that is where the command declaration began.
func joinContinuations(lines []physicalLine) []physicalLine {
	out := make([]physicalLine, 0, len(lines))
	for i := 0; i < len(lines); i++ {
		cur := lines[i]
		for strings.HasSuffix(cur.text, `\`) && i+1 < len(lines) {
			i++
			next := strings.TrimLeft(lines[i].text, " \t")
			cur.text = strings.TrimSuffix(cur.text, `\`) + next
		}
		out = append(out, cur)
	}
	return out
}
