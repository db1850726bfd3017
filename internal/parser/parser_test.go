package parser

import (
	"testing"

	"github.com/sweethkd/hkconf/internal/ast"
	"github.com/sweethkd/hkconf/internal/errors"
)

func TestParseEmptyIsValid(t *testing.T) {
	for _, src := range []string{"", "   \n\n  \t\n"} {
		decls, err := Parse(src, "<anonymous>")
		if err != nil {
			t.Fatalf("Parse(%q): unexpected error %v", src, err)
		}
		if len(decls) != 0 {
			t.Fatalf("Parse(%q) = %d declarations, want 0", src, len(decls))
		}
	}
}

func TestParseSimpleBinding(t *testing.T) {
	decls, err := Parse("super + 5\n    alacritty\n", "<anonymous>")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(decls) != 1 {
		t.Fatalf("got %d declarations, want 1", len(decls))
	}
	b, ok := decls[0].(*ast.BindingDecl)
	if !ok {
		t.Fatalf("got %T, want *ast.BindingDecl", decls[0])
	}
	if len(b.Definition.Groups) != 1 {
		t.Fatalf("got %d modifier groups, want 1", len(b.Definition.Groups))
	}
	if b.Definition.Key.Single == nil || b.Definition.Key.Single.Name != "5" {
		t.Fatalf("key = %+v, want single key \"5\"", b.Definition.Key)
	}
	if len(b.Command.Segments) != 1 || b.Command.Segments[0].Literal != "alacritty" {
		t.Fatalf("command = %+v", b.Command.Segments)
	}
}

func TestParseImportIgnoreMode(t *testing.T) {
	src := "include ./other.conf\nignore super + a\nmode resize {\n  oneoff\n  super + h\n    shrink\n}\n"
	decls, err := Parse(src, "<anonymous>")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(decls) != 3 {
		t.Fatalf("got %d declarations, want 3: %+v", len(decls), decls)
	}
	imp, ok := decls[0].(*ast.ImportDecl)
	if !ok || imp.Path != "./other.conf" {
		t.Fatalf("decls[0] = %+v", decls[0])
	}
	if _, ok := decls[1].(*ast.UnbindDecl); !ok {
		t.Fatalf("decls[1] = %T, want *ast.UnbindDecl", decls[1])
	}
	mode, ok := decls[2].(*ast.ModeDecl)
	if !ok {
		t.Fatalf("decls[2] = %T, want *ast.ModeDecl", decls[2])
	}
	if mode.Name != "resize" || !mode.OneOff || mode.Swallow {
		t.Fatalf("mode = %+v", mode)
	}
	if len(mode.Bindings) != 1 {
		t.Fatalf("mode.Bindings = %d, want 1", len(mode.Bindings))
	}
}

func TestParseModifierShorthand(t *testing.T) {
	decls, err := Parse("{super, alt} + a\n    echo hi\n", "<anonymous>")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b := decls[0].(*ast.BindingDecl)
	if len(b.Definition.Groups) != 1 || len(b.Definition.Groups[0].Alternatives) != 2 {
		t.Fatalf("groups = %+v", b.Definition.Groups)
	}
}

func TestParseKeyShorthandRange(t *testing.T) {
	decls, err := Parse("super + {a-c}\n    {firefox, brave, librewolf}\n", "<anonymous>")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b := decls[0].(*ast.BindingDecl)
	if len(b.Definition.Key.Alts) != 1 || b.Definition.Key.Alts[0].Range == nil {
		t.Fatalf("key alts = %+v", b.Definition.Key.Alts)
	}
	kr := b.Definition.Key.Alts[0].Range
	if kr.Lo != 'a' || kr.Hi != 'c' {
		t.Fatalf("range = %+v", kr)
	}
}

func TestParseUnspacedShorthandText(t *testing.T) {
	// Regression: shorthand-interior slicing must reproduce unspaced source
	// text exactly rather than rejoin tokens with inserted spaces.
	decls, err := Parse("super + {page-up, page-down}\n    scroll\n", "<anonymous>")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b := decls[0].(*ast.BindingDecl)
	if len(b.Definition.Key.Alts) != 2 {
		t.Fatalf("got %d alts, want 2", len(b.Definition.Key.Alts))
	}
	if b.Definition.Key.Alts[0].Token.Name != "page-up" {
		t.Errorf("alts[0] = %q, want %q", b.Definition.Key.Alts[0].Token.Name, "page-up")
	}
	if b.Definition.Key.Alts[1].Token.Name != "page-down" {
		t.Errorf("alts[1] = %q, want %q", b.Definition.Key.Alts[1].Token.Name, "page-down")
	}
}

func TestParseForbiddenShapes(t *testing.T) {
	t.Run("key in modifier position", func(t *testing.T) {
		_, err := Parse("banana + a\n    echo hi\n", "<anonymous>")
		assertGrammarError(t, err)
	})
	t.Run("modifier in key position", func(t *testing.T) {
		_, err := Parse("super + shift\n    echo hi\n", "<anonymous>")
		assertGrammarError(t, err)
	})
}

func TestParseSingleVariantShorthandRejected(t *testing.T) {
	_, err := Parse("super + {a}\n    echo hi\n", "<anonymous>")
	assertGrammarError(t, err)
}

func TestParseBindingMissingCommand(t *testing.T) {
	_, err := Parse("super + a\n", "<anonymous>")
	assertGrammarError(t, err)
}

func assertGrammarError(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("expected a GrammarError")
	}
	if _, ok := err.(*errors.GrammarError); !ok {
		t.Fatalf("got %T, want *errors.GrammarError", err)
	}
}
