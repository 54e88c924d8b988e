package engine

// Duplicate describes a key that occurs more than once in a document, with the
// line of its first occurrence and of the repeated one.
type Duplicate struct {
	Key       string
	FirstLine int
	Line      int
}

// FindDuplicates reports every repeated key in entries, in document order.
// A key seen three times yields two duplicates, both pointing at the first line.
func FindDuplicates(entries []Entry) []Duplicate {
	var dups []Duplicate
	first := make(map[string]int, len(entries))
	for _, e := range entries {
		if ln, seen := first[e.Key]; seen {
			dups = append(dups, Duplicate{Key: e.Key, FirstLine: ln, Line: e.Line})
			continue
		}
		first[e.Key] = e.Line
	}
	return dups
}
