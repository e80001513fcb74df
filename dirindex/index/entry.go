package index

import (
	"fmt"
	"strings"
)

// Entry is one filesystem object handed to the engine by a traversal
// collaborator: a forward-slash relative path plus a directory flag.
// The engine applies no filtering of its own; hidden files, symlinks and
// exclusion policies are the producer's responsibility.
type Entry struct {
	Path  string
	IsDir bool
}

// ValidateEntries rejects malformed input before any tree mutation happens,
// so a failed run never yields a partially built tree. An entry is malformed
// when its path is empty, contains empty segments (leading, trailing or
// doubled separators), or duplicates another entry's path.
func ValidateEntries(entries []Entry) error {
	seen := make(map[string]struct{}, len(entries))
	for _, entry := range entries {
		if entry.Path == "" {
			return fmt.Errorf("entry has empty path")
		}
		if strings.HasPrefix(entry.Path, "/") || strings.HasSuffix(entry.Path, "/") || strings.Contains(entry.Path, "//") {
			return fmt.Errorf("entry path %q contains an empty segment", entry.Path)
		}
		if _, dup := seen[entry.Path]; dup {
			return fmt.Errorf("duplicate entry path %q", entry.Path)
		}
		seen[entry.Path] = struct{}{}
	}
	return nil
}
