package index

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortEntries reorders the flat entry list into the canonical traversal
// order that all downstream numbering depends on: directories before files,
// then case-insensitive locale-aware comparison of the full relative path.
// Paths that differ only by case fall back to byte order so the result is a
// total order on every platform. The sort is stable and has no side effects
// beyond reordering the slice in place.
func SortEntries(entries []Entry) {
	// Collators are not safe for concurrent use, so build one per call.
	c := collate.New(language.Und, collate.IgnoreCase)

	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.IsDir != b.IsDir {
			return a.IsDir
		}
		if cmp := c.CompareString(a.Path, b.Path); cmp != 0 {
			return cmp < 0
		}
		return a.Path < b.Path
	})
}
