package serialize

import (
	"encoding/json"
	"fmt"

	"github.com/dirforge/dirindex/dirindex/index"
)

// Document mirrors the on-disk JSON artifact: the root path label plus the
// nested hierarchy. The node shape is carried verbatim by index.Node's JSON
// tags, which is what makes the artifact lossless and round-trippable.
type Document struct {
	Root      string        `json:"root"`
	Hierarchy []*index.Node `json:"hierarchy"`
}

// JSONSerializer produces the structural, lossless JSON artifact.
type JSONSerializer struct {
	opts Options
}

func NewJSONSerializer(opts Options) *JSONSerializer {
	return &JSONSerializer{opts: opts}
}

func (s *JSONSerializer) Extension() string { return "json" }

func (s *JSONSerializer) Serialize(tree *index.Tree) ([]byte, error) {
	tracker := newProgressTracker(index.StageJSON, tree.Len(), s.opts)
	tree.ForEach(func(*index.Node, int) {
		tracker.visit()
	})

	doc := Document{Root: tree.Root, Hierarchy: tree.Nodes}
	if doc.Hierarchy == nil {
		// An empty tree still serializes to "hierarchy": [] rather than null.
		doc.Hierarchy = []*index.Node{}
	}

	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode json index: %w", err)
	}
	out = append(out, '\n')

	tracker.finish()
	return out, nil
}

// ParseJSON reconstructs a tree from the JSON serializer's output with
// identical numbers, names, kinds, paths and child order.
func ParseJSON(data []byte) (*index.Tree, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode json index: %w", err)
	}
	return &index.Tree{Root: doc.Root, Nodes: doc.Hierarchy}, nil
}
