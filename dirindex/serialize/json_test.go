package serialize

import (
	"encoding/json"
	"testing"

	"github.com/dirforge/dirindex/dirindex/index"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func demoTree(t *testing.T) *index.Tree {
	t.Helper()
	entries := []index.Entry{
		{Path: "docs", IsDir: true},
		{Path: "docs/readme.md", IsDir: false},
		{Path: "main.go", IsDir: false},
	}
	tree, _, err := index.NewBuilder().Build("demo", entries)
	require.NoError(t, err)
	return tree
}

func TestJSONSerializer(t *testing.T) {
	t.Run("output mirrors the node shape", func(t *testing.T) {
		tree := demoTree(t)

		out, err := NewJSONSerializer(Options{}).Serialize(tree)
		require.NoError(t, err)

		var doc map[string]any
		require.NoError(t, json.Unmarshal(out, &doc))
		assert.Equal(t, "demo", doc["root"])

		hierarchy, ok := doc["hierarchy"].([]any)
		require.True(t, ok)
		require.Len(t, hierarchy, 2)

		docs := hierarchy[0].(map[string]any)
		assert.Equal(t, "1", docs["number"])
		assert.Equal(t, "docs", docs["name"])
		assert.Equal(t, "directory", docs["type"])
		assert.Equal(t, "docs", docs["path"])
	})

	t.Run("round-trip reconstructs the tree exactly", func(t *testing.T) {
		tree := demoTree(t)

		out, err := NewJSONSerializer(Options{}).Serialize(tree)
		require.NoError(t, err)

		parsed, err := ParseJSON(out)
		require.NoError(t, err)

		assert.Equal(t, tree.Root, parsed.Root)
		assert.Equal(t, tree.Nodes, parsed.Nodes)
	})

	t.Run("re-serialization is byte-identical", func(t *testing.T) {
		tree := demoTree(t)
		s := NewJSONSerializer(Options{})

		first, err := s.Serialize(tree)
		require.NoError(t, err)
		second, err := s.Serialize(tree)
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("empty tree serializes to an empty hierarchy array", func(t *testing.T) {
		tree := &index.Tree{Root: "empty"}

		out, err := NewJSONSerializer(Options{}).Serialize(tree)
		require.NoError(t, err)

		assert.Contains(t, string(out), `"hierarchy": []`)
		assert.NotContains(t, string(out), "null")
	})

	t.Run("leaf nodes carry an empty children array", func(t *testing.T) {
		tree := demoTree(t)

		out, err := NewJSONSerializer(Options{}).Serialize(tree)
		require.NoError(t, err)

		assert.Contains(t, string(out), `"children": []`)
	})

	t.Run("progress fires per node batch and finishes with done", func(t *testing.T) {
		tree := demoTree(t)

		var notifications []index.Progress
		opts := Options{
			BatchSize: 1,
			Progress:  func(p index.Progress) { notifications = append(notifications, p) },
		}

		_, err := NewJSONSerializer(opts).Serialize(tree)
		require.NoError(t, err)

		require.NotEmpty(t, notifications)
		for _, p := range notifications {
			assert.Equal(t, index.StageJSON, p.Stage)
			assert.Equal(t, 3, p.Total)
		}
		final := notifications[len(notifications)-1]
		assert.True(t, final.Done)
		assert.Equal(t, 3, final.Processed)
	})
}
