// Package errors formats compiler-facing errors for the hotkey configuration
// language: position-annotated messages with source context and a caret
// pointing at the offending token, in the same shape the rest of the
// toolchain expects from a compiler front end.
package errors

import (
	"fmt"
	"strings"

	"github.com/sweethkd/hkconf/internal/lexer"
)

// GrammarError is the error type returned for parsing and shorthand
// compilation failures (syntax, ranges, parity). Key-name resolution and
// file reading fail with InvalidKeyError and ConfigReadError instead. It
// carries the file the error originated in so that an import chain's errors
// point at the right file.
type GrammarError struct {
	Message string
	Source  string
	File    string
	Pos     lexer.Position
}

// NewGrammarError builds a GrammarError anchored at pos.
func NewGrammarError(pos lexer.Position, message, source, file string) *GrammarError {
	return &GrammarError{
		Pos:     pos,
		Message: message,
		Source:  source,
		File:    file,
	}
}

// Error implements the error interface.
func (e *GrammarError) Error() string {
	return e.Format(false)
}

// Format renders the error with source context. When color is true, ANSI
// escapes highlight the caret for terminal output.
func (e *GrammarError) Format(color bool) string {
	var sb strings.Builder

	if e.File != "" {
		fmt.Fprintf(&sb, "Error in %s:%d:%d\n", e.File, e.Pos.Line, e.Pos.Column)
	} else {
		fmt.Fprintf(&sb, "Error at line %d:%d\n", e.Pos.Line, e.Pos.Column)
	}

	if line := e.sourceLine(e.Pos.Line); line != "" {
		prefix := fmt.Sprintf("%4d | ", e.Pos.Line)
		sb.WriteString(prefix)
		sb.WriteString(line)
		sb.WriteString("\n")

		sb.WriteString(strings.Repeat(" ", len(prefix)+e.Pos.Column-1))
		if color {
			sb.WriteString("\033[1;31m")
		}
		sb.WriteString("^")
		if color {
			sb.WriteString("\033[0m")
		}
		sb.WriteString("\n")
	}

	if color {
		sb.WriteString("\033[1m")
	}
	sb.WriteString(e.Message)
	if color {
		sb.WriteString("\033[0m")
	}

	return sb.String()
}

func (e *GrammarError) sourceLine(lineNum int) string {
	if e.Source == "" {
		return ""
	}
	lines := strings.Split(e.Source, "\n")
	if lineNum < 1 || lineNum > len(lines) {
		return ""
	}
	return lines[lineNum-1]
}

// MainSectionMissing is returned when the grammar produces no root
// production at all (distinct from a well-formed but empty configuration,
// which is valid per the language's boundary rules).
type MainSectionMissing struct {
	File string
}

func (e *MainSectionMissing) Error() string {
	if e.File != "" {
		return fmt.Sprintf("%s: hotkey config must contain one and only one main section", e.File)
	}
	return "hotkey config must contain one and only one main section"
}

// ReadKind distinguishes the ConfigRead family of I/O errors.
type ReadKind int

const (
	ReadingConfig ReadKind = iota
	NotRegularFile
	TooLarge
)

// ConfigReadError wraps a failure to load a configuration file, whether the
// root file or an imported one.
type ConfigReadError struct {
	Kind ReadKind
	Path string
	Err  error
}

func (e *ConfigReadError) Error() string {
	switch e.Kind {
	case NotRegularFile:
		return fmt.Sprintf("%s: not a regular file", e.Path)
	case TooLarge:
		return fmt.Sprintf("%s: exceeds configured size cap", e.Path)
	default:
		return fmt.Sprintf("%s: %v", e.Path, e.Err)
	}
}

func (e *ConfigReadError) Unwrap() error { return e.Err }

// InvalidKeyError is returned by a KeyNameResolver failure.
type InvalidKeyError struct {
	Name string
}

func (e *InvalidKeyError) Error() string {
	return fmt.Sprintf("invalid key: %q", e.Name)
}
