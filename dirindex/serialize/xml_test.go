package serialize

import (
	"strings"
	"testing"

	"github.com/dirforge/dirindex/dirindex/index"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestXMLSerializer(t *testing.T) {
	t.Run("renders items with attributes and text children", func(t *testing.T) {
		entries := []index.Entry{
			{Path: "docs", IsDir: true},
			{Path: "docs/readme.md", IsDir: false},
		}
		tree, _, err := index.NewBuilder().Build("demo", entries)
		require.NoError(t, err)

		out, err := NewXMLSerializer(Options{}).Serialize(tree)
		require.NoError(t, err)

		want := `<?xml version="1.0" encoding="UTF-8"?>
<directory_index root_path="demo">
  <item number="1" type="directory">
    <name>docs</name>
    <path>docs</path>
    <children>
      <item number="1.1" type="file">
        <name>readme.md</name>
        <path>docs/readme.md</path>
      </item>
    </children>
  </item>
</directory_index>
`
		assert.Equal(t, want, string(out))
	})

	t.Run("no children wrapper for leaf nodes", func(t *testing.T) {
		entries := []index.Entry{{Path: "only.txt", IsDir: false}}
		tree, _, err := index.NewBuilder().Build("demo", entries)
		require.NoError(t, err)

		out, err := NewXMLSerializer(Options{}).Serialize(tree)
		require.NoError(t, err)

		assert.NotContains(t, string(out), "<children>")
	})

	t.Run("escapes all five special characters", func(t *testing.T) {
		entries := []index.Entry{{Path: `a<b>&'"c.txt`, IsDir: false}}
		tree, _, err := index.NewBuilder().Build(`root<&>`, entries)
		require.NoError(t, err)

		out, err := NewXMLSerializer(Options{}).Serialize(tree)
		require.NoError(t, err)
		text := string(out)

		assert.Contains(t, text, `root_path="root&lt;&amp;&gt;"`)
		assert.Contains(t, text, "<name>a&lt;b&gt;&amp;&apos;&quot;c.txt</name>")
		// No raw specials may survive outside markup.
		stripped := strings.ReplaceAll(text, "&lt;", "")
		stripped = strings.ReplaceAll(stripped, "&gt;", "")
		stripped = strings.ReplaceAll(stripped, "&amp;", "")
		stripped = strings.ReplaceAll(stripped, "&apos;", "")
		stripped = strings.ReplaceAll(stripped, "&quot;", "")
		assert.NotContains(t, stripped, `'`)
	})

	t.Run("empty tree yields a childless root element", func(t *testing.T) {
		tree := &index.Tree{Root: "empty"}

		out, err := NewXMLSerializer(Options{}).Serialize(tree)
		require.NoError(t, err)

		want := `<?xml version="1.0" encoding="UTF-8"?>
<directory_index root_path="empty"/>
`
		assert.Equal(t, want, string(out))
	})

	t.Run("re-serialization is byte-identical", func(t *testing.T) {
		entries := []index.Entry{
			{Path: "a", IsDir: true},
			{Path: "a/b.txt", IsDir: false},
		}
		tree, _, err := index.NewBuilder().Build("demo", entries)
		require.NoError(t, err)

		s := NewXMLSerializer(Options{})
		first, err := s.Serialize(tree)
		require.NoError(t, err)
		second, err := s.Serialize(tree)
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})
}
