package hkconf

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sweethkd/hkconf/pkg/keyid"
)

type runeResolver struct{}

func (runeResolver) Resolve(name string) (keyid.ID, bool) {
	if len(name) != 1 {
		return 0, false
	}
	return keyid.ID(name[0]), true
}

func mustParse(t *testing.T, source string) *Config {
	t.Helper()
	cfg, err := Parse(source, "", runeResolver{})
	if err != nil {
		t.Fatalf("Parse(%q): unexpected error: %v", source, err)
	}
	return cfg
}

func TestParseScenarioSimpleBinding(t *testing.T) {
	cfg := mustParse(t, "super + 5\n    alacritty\n")
	if len(cfg.Bindings) != 1 {
		t.Fatalf("got %d bindings, want 1", len(cfg.Bindings))
	}
	b := cfg.Bindings[0]
	if !b.Definition.Modifiers.Has(Super) || b.Definition.Key.ID != keyid.ID('5') {
		t.Errorf("binding = %+v", b)
	}
	if b.Command != "alacritty" || len(b.ModeInstructions) != 0 {
		t.Errorf("binding = %+v", b)
	}
}

func TestParseScenarioKeyRangeFanOut(t *testing.T) {
	cfg := mustParse(t, "super + {a-c}\n    {firefox, brave, librewolf}\n")
	wantKeys := []byte{'a', 'b', 'c'}
	wantCmds := []string{"firefox", "brave", "librewolf"}
	if len(cfg.Bindings) != 3 {
		t.Fatalf("got %d bindings, want 3", len(cfg.Bindings))
	}
	for i, b := range cfg.Bindings {
		if b.Definition.Key.ID != keyid.ID(wantKeys[i]) || b.Command != wantCmds[i] {
			t.Errorf("bindings[%d] = %+v", i, b)
		}
	}
}

func TestParseScenarioModifierOmissionFanOut(t *testing.T) {
	cfg := mustParse(t, "super + {_, shift +} b\n    {firefox, brave}\n")
	if len(cfg.Bindings) != 2 {
		t.Fatalf("got %d bindings, want 2", len(cfg.Bindings))
	}
	if cfg.Bindings[0].Command != "firefox" || cfg.Bindings[0].Definition.Modifiers.Has(Shift) {
		t.Errorf("bindings[0] = %+v", cfg.Bindings[0])
	}
	if cfg.Bindings[1].Command != "brave" || !cfg.Bindings[1].Definition.Modifiers.Has(Shift) {
		t.Errorf("bindings[1] = %+v", cfg.Bindings[1])
	}
}

func TestParseScenarioLastWriteWins(t *testing.T) {
	cfg := mustParse(t, "super + a\n    1\nsuper + a\n    2\n")
	if len(cfg.Bindings) != 1 || cfg.Bindings[0].Command != "2" {
		t.Fatalf("got %+v, want a single binding with command \"2\"", cfg.Bindings)
	}
}

func TestParseScenarioKeyAttributes(t *testing.T) {
	src := "super + @1\n    1\nsuper + ~2\n    2\nsuper + ~@3\n    3\nsuper + @~4\n    4\n"
	cfg := mustParse(t, src)
	want := []keyid.Attribute{keyid.OnRelease, keyid.Send, keyid.Both, keyid.Both}
	if len(cfg.Bindings) != 4 {
		t.Fatalf("got %d bindings, want 4", len(cfg.Bindings))
	}
	for i, b := range cfg.Bindings {
		if b.Definition.Key.Attribute != want[i] {
			t.Errorf("bindings[%d].Attribute = %v, want %v", i, b.Definition.Key.Attribute, want[i])
		}
	}
}

func TestParseScenarioImportCycle(t *testing.T) {
	dir := t.TempDir()
	pathA := filepath.Join(dir, "a.conf")
	pathB := filepath.Join(dir, "b.conf")
	pathC := filepath.Join(dir, "c.conf")
	pathD := filepath.Join(dir, "d.conf")

	write := func(path, content string) {
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("WriteFile(%s): %v", path, err)
		}
	}
	write(pathA, "super + a\n    a-cmd\ninclude "+pathB+"\n")
	write(pathB, "super + b\n    b-cmd\ninclude "+pathC+"\n")
	write(pathC, "super + c\n    c-cmd\ninclude "+pathA+"\ninclude "+pathD+"\n")
	write(pathD, "super + d\n    d-cmd\ninclude "+pathC+"\n")

	for _, entry := range []string{pathA, pathD} {
		cfg, err := ParseFile(entry, runeResolver{})
		if err != nil {
			t.Fatalf("ParseFile(%s): %v", entry, err)
		}
		if len(cfg.Bindings) != 4 {
			t.Errorf("ParseFile(%s): got %d bindings, want 4: %+v", entry, len(cfg.Bindings), cfg.Bindings)
		}
	}
}

func TestParseBoundaryEmptyInput(t *testing.T) {
	for _, src := range []string{"", "   \n\t\n"} {
		cfg := mustParse(t, src)
		if len(cfg.Bindings) != 0 || len(cfg.Imports) != 0 || len(cfg.Modes) != 0 {
			t.Errorf("Parse(%q) = %+v, want an empty Config", src, cfg)
		}
	}
}

func TestParseBoundarySingleVariantShorthandRejected(t *testing.T) {
	_, err := Parse("super + {a}\n    echo hi\n", "", runeResolver{})
	if err == nil {
		t.Fatal("expected a grammar error for a single-variant shorthand group")
	}
}

func TestParseBoundaryNonASCIIRangeBound(t *testing.T) {
	_, err := Parse("super + {a-é}\n    echo hi\n", "", runeResolver{})
	if err == nil {
		t.Fatal("expected an error for a non-ASCII range bound")
	}
}

func TestParseBoundaryShorthandParityMismatch(t *testing.T) {
	_, err := Parse("super + {a,b,c}\n    {firefox, brave}\n", "", runeResolver{})
	if err == nil {
		t.Fatal("expected a parity error between definition and command variant counts")
	}
}

func TestParseBoundaryBackslashContinuation(t *testing.T) {
	cfg := mustParse(t, "super + a\n    echo one \\\n    echo two\n")
	if len(cfg.Bindings) != 1 {
		t.Fatalf("got %d bindings, want 1", len(cfg.Bindings))
	}
	if cfg.Bindings[0].Command != "echo one echo two" {
		t.Errorf("command = %q, want a single concatenated line", cfg.Bindings[0].Command)
	}
}

func TestParseCaseInsensitiveModifierNames(t *testing.T) {
	lower := mustParse(t, "super + a\n    cmd\n")
	upper := mustParse(t, "SUPER + a\n    cmd\n")
	if !lower.Bindings[0].Definition.Modifiers.Equal(upper.Bindings[0].Definition.Modifiers) {
		t.Errorf("modifier case sensitivity leaked through: %v vs %v",
			lower.Bindings[0].Definition.Modifiers.Slice(), upper.Bindings[0].Definition.Modifiers.Slice())
	}
}
