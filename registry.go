package featstore

import (
	"fmt"
	"sort"
	"sync"
)

var (
	registryMu sync.RWMutex
	registry   = map[string]*Schema{}
)

// Register makes s discoverable by its type tag. Registering two schemas with
// the same tag is an error.
func Register(s *Schema) error {
	registryMu.Lock()
	defer registryMu.Unlock()
	if _, dup := registry[s.name]; dup {
		return fmt.Errorf("featstore: schema %q already registered", s.name)
	}
	registry[s.name] = s
	return nil
}

// MustRegister is like Register but panics on error.
func MustRegister(s *Schema) *Schema {
	if err := Register(s); err != nil {
		panic(err)
	}
	return s
}

// Lookup returns the schema registered under name.
func Lookup(name string) (*Schema, bool) {
	registryMu.RLock()
	s, ok := registry[name]
	registryMu.RUnlock()
	return s, ok
}

// Schemas returns every registered schema sorted by type tag.
func Schemas() []*Schema {
	registryMu.RLock()
	out := make([]*Schema, 0, len(registry))
	for _, s := range registry {
		out = append(out, s)
	}
	registryMu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i].name < out[j].name })
	return out
}
