package model

import "github.com/sweethkd/hkconf/pkg/keyid"

// Definition is the left-hand side of a binding: a modifier set plus
// exactly one key. It is the fingerprint keyed by override and ignore
// resolution, so it must be comparable by value regardless of the order
// its modifiers were declared in.
type Definition struct {
	Modifiers ModifierSet
	Key       keyid.Key
}

// ModeInstructionKind distinguishes the two tagged variants of a mode
// instruction.
type ModeInstructionKind int

const (
	Enter ModeInstructionKind = iota
	Escape
)

// ModeInstruction is a single Enter(name) or Escape step attached to a
// Binding.
type ModeInstruction struct {
	Kind ModeInstructionKind
	Name string // populated only when Kind == Enter
}

func (mi ModeInstruction) String() string {
	if mi.Kind == Escape {
		return "Escape"
	}
	return "Enter(" + mi.Name + ")"
}

// Binding maps a Definition to a command, carrying any mode-entry or
// mode-escape instructions attached to it.
type Binding struct {
	Definition       Definition
	Command          string
	ModeInstructions []ModeInstruction
}

// Equal reports whether two Bindings have equal Definitions, commands, and
// mode-instruction sequences.
func (b Binding) Equal(other Binding) bool {
	if b.Definition != other.Definition || b.Command != other.Command {
		return false
	}
	if len(b.ModeInstructions) != len(other.ModeInstructions) {
		return false
	}
	for i, mi := range b.ModeInstructions {
		if mi != other.ModeInstructions[i] {
			return false
		}
	}
	return true
}

// Mode is a named, flat sub-configuration entered by a Binding's Enter
// instruction.
type Mode struct {
	Name     string
	OneOff   bool
	Swallow  bool
	Bindings []Binding
	Unbinds  []Definition
}

// Config is the final, immutable result of parsing a hotkey configuration:
// an ordered list of Bindings, the root-level ignore list, the set of
// import paths encountered (in the order they were first seen), and the
// list of declared modes.
type Config struct {
	Bindings []Binding
	Unbinds  []Definition
	Imports  []string
	Modes    []Mode
}
