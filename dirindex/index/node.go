package index

// Kind distinguishes directory nodes from file nodes. It is a string type so
// the JSON artifact carries it as a plain tag and round-trips without custom
// marshaling.
type Kind string

const (
	Directory Kind = "directory"
	File      Kind = "file"
)

// Node is one materialized element of the output tree. Number is the
// dotted-decimal outline label ("1.2.1") encoding the node's 1-based
// position among its siblings at every ancestor level. Children stay owned
// by their parent; nodes never hold a parent back-reference, any "node for
// this path" lookup goes through the builder's path index instead.
type Node struct {
	Number   string  `json:"number"`
	Name     string  `json:"name"`
	Kind     Kind    `json:"type"`
	Path     string  `json:"path"`
	Children []*Node `json:"children"`
}

// Tree is the completed hierarchy for one indexing run: the ordered
// top-level nodes plus the root path label. It is constructed once by the
// Builder and immutable afterwards, which is what lets the serializers
// traverse it independently without coordination.
type Tree struct {
	Root  string
	Nodes []*Node
}

// Len returns the total node count, implied directories included.
func (t *Tree) Len() int {
	total := 0
	t.ForEach(func(*Node, int) { total++ })
	return total
}

// ForEach visits every node in preorder: parents before children, siblings
// in their fixed child order. Depth is 0 for top-level nodes.
func (t *Tree) ForEach(fn func(node *Node, depth int)) {
	var visit func(nodes []*Node, depth int)
	visit = func(nodes []*Node, depth int) {
		for _, n := range nodes {
			fn(n, depth)
			visit(n.Children, depth+1)
		}
	}
	visit(t.Nodes, 0)
}
