package index

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/armon/go-radix"
)

// Builder constructs the numbered hierarchy from a sorted flat entry list in
// a single pass. A radix tree maps every path-so-far to its node, so
// ancestor directories discovered implicitly by multiple descendants are
// created exactly once and lookup stays linear in the total number of path
// segments rather than re-scanning child slices.
type Builder struct {
	batchSize int
	logger    *slog.Logger
	progress  ProgressFunc
}

// BuilderOption allows for customization of the Builder
type BuilderOption func(*Builder)

// WithBatchSize sets how many entries are processed between progress yields
func WithBatchSize(n int) BuilderOption {
	return func(b *Builder) {
		if n > 0 {
			b.batchSize = n
		}
	}
}

// WithLogger sets a custom logger
func WithLogger(logger *slog.Logger) BuilderOption {
	return func(b *Builder) {
		b.logger = logger
	}
}

// WithProgress sets the progress callback invoked at yield points
func WithProgress(fn ProgressFunc) BuilderOption {
	return func(b *Builder) {
		b.progress = fn
	}
}

// DefaultBatchSize is the builder's progress cadence in entries.
const DefaultBatchSize = 100

func NewBuilder(opts ...BuilderOption) *Builder {
	b := &Builder{
		batchSize: DefaultBatchSize,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build consumes entries already in canonical order (see SortEntries) and
// returns the completed tree plus the total node count. The count may exceed
// the entry count because intermediate directories implied by deeper paths
// are synthesized. Input is validated up front; on error no tree is
// returned. Sibling numbering reflects order of first encounter along the
// entry list and is never revised afterwards: when a later entry reaches a
// node that already exists (an explicit directory entry after an implied
// one, or vice versa), the existing node is reused untouched.
func (b *Builder) Build(root string, entries []Entry) (*Tree, int, error) {
	if err := ValidateEntries(entries); err != nil {
		return nil, 0, fmt.Errorf("invalid entry list: %w", err)
	}

	tree := &Tree{Root: root, Nodes: []*Node{}}
	pathIndex := radix.New()
	nodeCount := 0
	total := len(entries)

	for i, entry := range entries {
		segments := strings.Split(entry.Path, "/")
		var parent *Node
		pathSoFar := ""

		for si, segment := range segments {
			if pathSoFar == "" {
				pathSoFar = segment
			} else {
				pathSoFar += "/" + segment
			}

			if existing, ok := pathIndex.Get(pathSoFar); ok {
				parent = existing.(*Node)
				continue
			}

			// A segment that is not the entry's final one is a directory
			// implied by the deeper path, even without an explicit entry.
			kind := Directory
			if si == len(segments)-1 && !entry.IsDir {
				kind = File
			}

			node := &Node{
				Name:     segment,
				Kind:     kind,
				Path:     pathSoFar,
				Children: []*Node{},
			}
			if parent == nil {
				node.Number = strconv.Itoa(len(tree.Nodes) + 1)
				tree.Nodes = append(tree.Nodes, node)
			} else {
				node.Number = parent.Number + "." + strconv.Itoa(len(parent.Children)+1)
				parent.Children = append(parent.Children, node)
			}

			pathIndex.Insert(pathSoFar, node)
			nodeCount++
			parent = node
		}

		// Yield point. The final batch is folded into the Done notification
		// below so processed counts stay strictly increasing.
		if b.progress != nil && (i+1)%b.batchSize == 0 && i+1 != total {
			b.progress(Progress{Stage: StageBuild, Processed: i + 1, Total: total})
		}
	}

	if b.progress != nil {
		b.progress(Progress{Stage: StageBuild, Processed: total, Total: total, Done: true})
	}

	b.logger.Debug("hierarchy built",
		"root", root,
		"entries", total,
		"nodes", nodeCount)

	return tree, nodeCount, nil
}
