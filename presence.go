package featstore

import "sort"

// Presence is the bit flag recorded per field while decoding.
type Presence uint8

const (
	PresenceSeen           Presence = 1 << iota // Field appeared in the input.
	PresenceDefaultApplied                      // Field was absent; the schema default stands in.
)

// PresenceMap maps field pointers ("/threshold") to Presence flags.
type PresenceMap map[string]Presence

// Seen reports whether the field at ptr appeared in the input.
func (pm PresenceMap) Seen(ptr string) bool { return pm[ptr]&PresenceSeen != 0 }

// SeenFields returns the names of the fields that appeared in the input, sorted.
func (pm PresenceMap) SeenFields() []string {
	var out []string
	for ptr, p := range pm {
		if p&PresenceSeen != 0 && len(ptr) > 1 {
			out = append(out, ptr[1:])
		}
	}
	sort.Strings(out)
	return out
}

// Decoded carries a decoded value together with presence metadata and any
// non-fatal issues reported while decoding.
type Decoded[T any] struct {
	Value    T
	Presence PresenceMap
	Warnings Issues
}
