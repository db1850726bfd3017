package ast

import "testing"

func TestDecodeAndPlain(t *testing.T) {
	chars := Decode(`a\-b\{c`)
	got := Plain(chars)
	want := "a-b{c"
	if got != want {
		t.Fatalf("Plain(Decode(...)) = %q, want %q", got, want)
	}
	if chars[1].R != '-' || !chars[1].Escaped {
		t.Errorf("expected escaped '-' at index 1, got %+v", chars[1])
	}
	if chars[0].Escaped {
		t.Errorf("expected 'a' to be unescaped")
	}
}

func TestTrim(t *testing.T) {
	chars := Decode(`  page-up  `)
	trimmed := Trim(chars)
	if Plain(trimmed) != "page-up" {
		t.Errorf("Trim = %q, want %q", Plain(trimmed), "page-up")
	}
}

func TestSplitAlternatives(t *testing.T) {
	alts := SplitAlternatives(`a, b, \,literal`)
	if len(alts) != 3 {
		t.Fatalf("got %d alternatives, want 3", len(alts))
	}
	got := []string{Plain(alts[0]), Plain(alts[1]), Plain(alts[2])}
	want := []string{"a", "b", ",literal"}
	for i, w := range want {
		if got[i] != w {
			t.Errorf("alts[%d] = %q, want %q", i, got[i], w)
		}
	}
}

func TestStripTrailingPlus(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"shift +", "shift"},
		{"shift+", "shift"},
		{"shift", "shift"},
	}
	for _, c := range cases {
		got := Plain(StripTrailingPlus(Decode(c.in)))
		if got != c.want {
			t.Errorf("StripTrailingPlus(%q) = %q, want %q", c.in, got, c.want)
		}
	}

	// An escaped '+' is literal data, not the omission-capable marker: it
	// must survive stripping untouched.
	escaped := StripTrailingPlus(Decode(`shift \+`))
	if Plain(escaped) != "shift +" {
		t.Fatalf("Plain = %q, want %q", Plain(escaped), "shift +")
	}
	if !escaped[len(escaped)-1].Escaped {
		t.Error("trailing escaped '+' must still be marked Escaped after StripTrailingPlus")
	}
}
