// Package keyid defines the opaque key-identifier type the hotkey grammar
// compiles key names into, plus the KeyNameResolver seam that maps a key
// name string onto one. Resolution is injected: this package ships only a
// small convenience resolver (see defaults.go), not the production
// human-readable-name-to-OS-scancode table, which is an external
// collaborator of this library, not part of it.
package keyid

import "fmt"

// ID is an opaque key identifier produced by a Resolver. Callers should
// treat it as an equality-comparable token, not interpret its internal
// representation.
type ID uint32

// Attribute is a bitset over a key token's timing prefixes.
type Attribute uint8

const (
	// None means neither prefix was present.
	None Attribute = 0
	// Send is set by the `~` prefix: trigger on press, passed through to
	// the downstream consumer.
	Send Attribute = 1 << 0
	// OnRelease is set by the `@` prefix: trigger on release.
	OnRelease Attribute = 1 << 1
	// Both is the union of Send and OnRelease.
	Both Attribute = Send | OnRelease
)

// HasSend reports whether the Send bit is set.
func (a Attribute) HasSend() bool { return a&Send != 0 }

// HasOnRelease reports whether the OnRelease bit is set.
func (a Attribute) HasOnRelease() bool { return a&OnRelease != 0 }

func (a Attribute) String() string {
	switch a {
	case None:
		return "None"
	case Send:
		return "Send"
	case OnRelease:
		return "OnRelease"
	case Both:
		return "Both"
	default:
		return fmt.Sprintf("Attribute(%d)", uint8(a))
	}
}

// Key pairs a resolved identifier with its timing attribute. Two Keys
// compare equal iff both fields match.
type Key struct {
	ID        ID
	Attribute Attribute
}

// Resolver maps a case-folded key name to its opaque identifier. It is the
// injected seam named KeyNameResolver in the language specification: the
// language core never hard-codes the mapping from names to scancodes.
type Resolver interface {
	// Resolve looks up name, which the compiler has already case-folded,
	// and reports whether the name is recognized.
	Resolve(name string) (ID, bool)
}
