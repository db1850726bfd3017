// Package model holds the semantic data model the hotkey grammar compiles
// down to: modifiers, definitions, bindings, modes, and the final
// configuration. It has no knowledge of source text or syntax; that lives
// in internal/ast and internal/parser.
package model

import "strings"

// Modifier is the closed enumeration of modifier keys the grammar
// recognizes, plus the Omission sentinel used internally during shorthand
// compilation. Its declaration order is also its total order, used to
// render a Definition's modifier set deterministically.
type Modifier int

const (
	Super Modifier = iota
	Alt
	Altgr
	Control
	Shift
	Any
	// Omission is a sentinel meaning "this shorthand position contributed
	// no modifier." It is stripped from every finished Binding by the
	// BindingAssembler and must never appear in a returned Configuration.
	Omission
)

func (m Modifier) String() string {
	switch m {
	case Super:
		return "Super"
	case Alt:
		return "Alt"
	case Altgr:
		return "Altgr"
	case Control:
		return "Control"
	case Shift:
		return "Shift"
	case Any:
		return "Any"
	case Omission:
		return "Omission"
	default:
		return "Modifier(?)"
	}
}

// modifierAliases maps every recognized alias (already lowercased) to its
// normalized Modifier value, per the language specification's closed table.
var modifierAliases = map[string]Modifier{
	"ctrl":    Control,
	"control": Control,
	"super":   Super,
	"mod4":    Super,
	"meta":    Super,
	"alt":     Alt,
	"mod1":    Alt,
	"altgr":   Altgr,
	"mod5":    Altgr,
	"shift":   Shift,
	"any":     Any,
	"_":       Omission,
}

// ClassifyModifier lowercases a modifier token's text and normalizes it to
// its Modifier value. The grammar is responsible for rejecting unrecognized
// modifier names before this lookup ever runs.
func ClassifyModifier(text string) (Modifier, bool) {
	m, ok := modifierAliases[strings.ToLower(text)]
	return m, ok
}

// ModifierSet is an ordered, de-duplicated collection of Modifiers,
// rendered in the enum's declared order regardless of insertion order.
type ModifierSet struct {
	present [Omission + 1]bool
}

// Add inserts m into the set. Adding an already-present Modifier is a no-op.
func (s *ModifierSet) Add(m Modifier) {
	s.present[m] = true
}

// Has reports whether m is a member of the set.
func (s ModifierSet) Has(m Modifier) bool {
	return s.present[m]
}

// Remove deletes m from the set if present.
func (s *ModifierSet) Remove(m Modifier) {
	s.present[m] = false
}

// Slice returns the set's members in enum order.
func (s ModifierSet) Slice() []Modifier {
	out := make([]Modifier, 0, len(s.present))
	for m, ok := range s.present {
		if ok {
			out = append(out, Modifier(m))
		}
	}
	return out
}

// Equal compares two sets by membership, ignoring any notion of insertion
// order (ModifierSet never had one).
func (s ModifierSet) Equal(other ModifierSet) bool {
	return s.present == other.present
}
