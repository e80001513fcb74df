package serialize

import (
	"strings"

	"github.com/dirforge/dirindex/dirindex/index"
)

const (
	dirGlyph  = "📁"
	fileGlyph = "📄"

	txtIndentUnit = "  "
	txtRuleWidth  = 80
)

// TextSerializer renders the human-readable outline: a header naming the
// indexed root, a visual rule, then one line per node of the form
// "<indent><number>. <glyph> <name>" with two spaces of indent per level.
type TextSerializer struct {
	opts Options
}

func NewTextSerializer(opts Options) *TextSerializer {
	return &TextSerializer{opts: opts}
}

func (s *TextSerializer) Extension() string { return "txt" }

func (s *TextSerializer) Serialize(tree *index.Tree) ([]byte, error) {
	tracker := newProgressTracker(index.StageText, tree.Len(), s.opts)

	var b strings.Builder
	b.WriteString("Directory Index: " + tree.Root + "\n")
	b.WriteString(strings.Repeat("=", txtRuleWidth) + "\n\n")

	tree.ForEach(func(n *index.Node, depth int) {
		tracker.visit()

		glyph := fileGlyph
		if n.Kind == index.Directory {
			glyph = dirGlyph
		}
		b.WriteString(strings.Repeat(txtIndentUnit, depth) + n.Number + ". " + glyph + " " + n.Name + "\n")
	})

	tracker.finish()
	return []byte(b.String()), nil
}
