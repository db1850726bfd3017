package ast

import (
	"github.com/sweethkd/hkconf/pkg/keyid"
)

// KeyToken is a parsed (but not yet resolved) key reference: its timing
// attribute plus the literal name text to hand to a keyid.Resolver.
type KeyToken struct {
	Attribute keyid.Attribute
	Name      string
}

// ParseKeyToken strips any leading `~`/`@` prefixes (either order, either
// or both) from chars and returns the attribute they encode plus the
// remaining text as the key name. Only unescaped prefix runes count: an
// escaped `~`/`@` is a literal character belonging to the name.
func ParseKeyToken(chars []PChar) KeyToken {
	attr := keyid.None
	i := 0
	for i < len(chars) && !chars[i].Escaped && (chars[i].R == '~' || chars[i].R == '@') {
		if chars[i].R == '~' {
			attr |= keyid.Send
		} else {
			attr |= keyid.OnRelease
		}
		i++
	}
	return KeyToken{Attribute: attr, Name: Plain(chars[i:])}
}

// KeyRange is a detected `lo-hi` range on the key side, where each bound
// may itself carry a timing-attribute prefix.
type KeyRange struct {
	LoAttribute, HiAttribute keyid.Attribute
	Lo, Hi                   rune
}

// TryKeyRange attempts to parse chars as a key-side range: optional
// attribute prefixes, a single character, an unescaped `-`, optional
// attribute prefixes, a single character. It reports ok=false for anything
// that isn't exactly that shape (including ordinary multi-rune key names
// like "escape", which simply aren't ranges).
func TryKeyRange(chars []PChar) (KeyRange, bool) {
	parts := SplitUnescaped(chars, '-')
	if len(parts) != 2 {
		return KeyRange{}, false
	}
	lo := ParseKeyToken(parts[0])
	hi := ParseKeyToken(parts[1])
	loRunes := []rune(lo.Name)
	hiRunes := []rune(hi.Name)
	if len(loRunes) != 1 || len(hiRunes) != 1 {
		return KeyRange{}, false
	}
	return KeyRange{
		LoAttribute: lo.Attribute,
		HiAttribute: hi.Attribute,
		Lo:          loRunes[0],
		Hi:          hiRunes[0],
	}, true
}

// TryCharRange attempts to parse chars as a plain two-sided character
// range with no attribute prefixes (used on the command side, and for
// modifier-less contexts).
func TryCharRange(chars []PChar) (lo, hi rune, ok bool) {
	parts := SplitUnescaped(chars, '-')
	if len(parts) != 2 {
		return 0, 0, false
	}
	loRunes := []rune(Plain(parts[0]))
	hiRunes := []rune(Plain(parts[1]))
	if len(loRunes) != 1 || len(hiRunes) != 1 {
		return 0, 0, false
	}
	return loRunes[0], hiRunes[0], true
}
