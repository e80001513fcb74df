package serialize

import (
	"strings"
	"testing"

	"github.com/dirforge/dirindex/dirindex/index"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextSerializer(t *testing.T) {
	t.Run("outline with header, rule, glyphs and indentation", func(t *testing.T) {
		entries := []index.Entry{
			{Path: "docs", IsDir: true},
			{Path: "docs/readme.md", IsDir: false},
			{Path: "main.go", IsDir: false},
		}
		tree, _, err := index.NewBuilder().Build("/home/demo", entries)
		require.NoError(t, err)

		out, err := NewTextSerializer(Options{}).Serialize(tree)
		require.NoError(t, err)

		want := "Directory Index: /home/demo\n" +
			strings.Repeat("=", 80) + "\n\n" +
			"1. 📁 docs\n" +
			"  1.1. 📄 readme.md\n" +
			"2. 📄 main.go\n"
		assert.Equal(t, want, string(out))
	})

	t.Run("indent grows by one unit per level", func(t *testing.T) {
		entries := []index.Entry{{Path: "a/b/c/d.txt", IsDir: false}}
		tree, _, err := index.NewBuilder().Build("/r", entries)
		require.NoError(t, err)

		out, err := NewTextSerializer(Options{}).Serialize(tree)
		require.NoError(t, err)

		assert.Contains(t, string(out), "\n1. 📁 a\n")
		assert.Contains(t, string(out), "\n  1.1. 📁 b\n")
		assert.Contains(t, string(out), "\n    1.1.1. 📁 c\n")
		assert.Contains(t, string(out), "\n      1.1.1.1. 📄 d.txt\n")
	})

	t.Run("empty tree yields header and rule only", func(t *testing.T) {
		tree := &index.Tree{Root: "empty"}

		out, err := NewTextSerializer(Options{}).Serialize(tree)
		require.NoError(t, err)

		assert.Equal(t, "Directory Index: empty\n"+strings.Repeat("=", 80)+"\n\n", string(out))
	})

	t.Run("re-serialization is byte-identical", func(t *testing.T) {
		entries := []index.Entry{{Path: "x.txt", IsDir: false}}
		tree, _, err := index.NewBuilder().Build("/r", entries)
		require.NoError(t, err)

		s := NewTextSerializer(Options{})
		first, err := s.Serialize(tree)
		require.NoError(t, err)
		second, err := s.Serialize(tree)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})
}
