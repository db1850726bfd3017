// Package ast defines the syntax tree the parser produces: declarations
// (binding, unbind, import, mode), the definition/key/command expressions
// inside them, and the shorthand-group text those expressions reference.
//
// Shorthand-group interiors are kept in a decoded-but-escape-aware form
// (see PChar/Decode below) rather than resolved immediately, because
// whether a `-` or a `~`/`@` is a structural separator/prefix or a literal
// character depends on whether it was escaped — information plain string
// resolution would throw away before the shorthand and range parsers get a
// chance to use it.
package ast

import "strings"

// PChar is one decoded rune of shorthand-group text, carrying whether it
// arrived via a backslash escape. An escaped rune is always literal data;
// an unescaped `-`, `~`, `@`, or `,` may be structurally significant to the
// caller.
type PChar struct {
	R       rune
	Escaped bool
}

// Decode resolves backslash escapes in raw into a PChar sequence without
// discarding which runes were escaped.
func Decode(raw string) []PChar {
	runes := []rune(raw)
	out := make([]PChar, 0, len(runes))
	for i := 0; i < len(runes); i++ {
		if runes[i] == '\\' && i+1 < len(runes) {
			out = append(out, PChar{R: runes[i+1], Escaped: true})
			i++
			continue
		}
		out = append(out, PChar{R: runes[i], Escaped: false})
	}
	return out
}

// Plain renders chars back to a fully resolved string, discarding escape
// provenance.
func Plain(chars []PChar) string {
	var sb strings.Builder
	for _, c := range chars {
		sb.WriteRune(c.R)
	}
	return sb.String()
}

// Trim removes leading/trailing unescaped whitespace from chars.
func Trim(chars []PChar) []PChar {
	start := 0
	for start < len(chars) && !chars[start].Escaped && isSpace(chars[start].R) {
		start++
	}
	end := len(chars)
	for end > start && !chars[end-1].Escaped && isSpace(chars[end-1].R) {
		end--
	}
	return chars[start:end]
}

func isSpace(r rune) bool { return r == ' ' || r == '\t' }

// SplitUnescaped splits chars on every unescaped occurrence of sep,
// trimming whitespace from each resulting piece.
func SplitUnescaped(chars []PChar, sep rune) [][]PChar {
	var out [][]PChar
	start := 0
	for i, c := range chars {
		if !c.Escaped && c.R == sep {
			out = append(out, Trim(chars[start:i]))
			start = i + 1
		}
	}
	out = append(out, Trim(chars[start:]))
	return out
}

// SplitAlternatives splits a shorthand group's decoded interior on unescaped
// commas, the delimiter every shorthand form (modifier, key, command)
// shares.
func SplitAlternatives(raw string) [][]PChar {
	return SplitUnescaped(Decode(raw), ',')
}

// StripTrailingPlus removes a trailing unescaped `+` (and the whitespace
// around it) from chars, the omission-capable modifier shorthand form
// (`{_, shift +}`) where a bare `+` marks "shift, or nothing at all" already
// being expressed via the `_` alternative alongside it.
func StripTrailingPlus(chars []PChar) []PChar {
	chars = Trim(chars)
	if len(chars) == 0 {
		return chars
	}
	last := chars[len(chars)-1]
	if last.Escaped || last.R != '+' {
		return chars
	}
	return Trim(chars[:len(chars)-1])
}
