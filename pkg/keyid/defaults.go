package keyid

import (
	_ "embed"
	"strings"
	"sync"

	"github.com/goccy/go-yaml"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// DefaultResolver is a small, ready-to-use Resolver seeded from
// defaults.yaml. It is intended for tests and for the cmd/hkconf CLI; any
// real deployment is expected to inject its own Resolver backed by the
// target platform's actual scancode table.
type DefaultResolver struct {
	once  sync.Once
	table map[string]ID
}

// NewDefaultResolver returns a DefaultResolver backed by the embedded table.
func NewDefaultResolver() *DefaultResolver {
	return &DefaultResolver{}
}

func (r *DefaultResolver) load() {
	r.once.Do(func() {
		raw := map[string]int{}
		// Unmarshal errors here would indicate a corrupt embedded asset,
		// which is a build-time invariant, not a runtime fault: fall back
		// to an empty table rather than panicking on a user's call path.
		if err := yaml.Unmarshal(defaultsYAML, &raw); err != nil {
			r.table = map[string]ID{}
			return
		}
		table := make(map[string]ID, len(raw))
		for name, id := range raw {
			table[name] = ID(id)
		}
		r.table = table
	})
}

// Resolve implements Resolver.
func (r *DefaultResolver) Resolve(name string) (ID, bool) {
	r.load()
	id, ok := r.table[strings.ToLower(name)]
	return id, ok
}
