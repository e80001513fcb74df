package serialize

import (
	"strings"

	"github.com/dirforge/dirindex/dirindex/index"
)

// xmlEscaper covers the five XML special characters. Escaping is mandatory
// for every attribute value and text node, names included.
var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	"'", "&apos;",
	`"`, "&quot;",
)

const xmlHeader = `<?xml version="1.0" encoding="UTF-8"?>` + "\n"

// XMLSerializer renders each node as an <item> element with number and type
// attributes, name and path as child text elements, and a <children>
// grouping element only when the node actually has children.
type XMLSerializer struct {
	opts Options
}

func NewXMLSerializer(opts Options) *XMLSerializer {
	return &XMLSerializer{opts: opts}
}

func (s *XMLSerializer) Extension() string { return "xml" }

func (s *XMLSerializer) Serialize(tree *index.Tree) ([]byte, error) {
	tracker := newProgressTracker(index.StageXML, tree.Len(), s.opts)

	var b strings.Builder
	b.WriteString(xmlHeader)

	rootAttr := xmlEscaper.Replace(tree.Root)
	if len(tree.Nodes) == 0 {
		b.WriteString(`<directory_index root_path="` + rootAttr + `"/>` + "\n")
		tracker.finish()
		return []byte(b.String()), nil
	}

	b.WriteString(`<directory_index root_path="` + rootAttr + `">` + "\n")
	writeXMLItems(&b, tree.Nodes, 1, tracker)
	b.WriteString("</directory_index>\n")

	tracker.finish()
	return []byte(b.String()), nil
}

func writeXMLItems(b *strings.Builder, nodes []*index.Node, depth int, tracker *progressTracker) {
	indent := strings.Repeat("  ", depth)
	for _, n := range nodes {
		tracker.visit()

		b.WriteString(indent + `<item number="` + xmlEscaper.Replace(n.Number) +
			`" type="` + string(n.Kind) + `">` + "\n")
		b.WriteString(indent + "  <name>" + xmlEscaper.Replace(n.Name) + "</name>\n")
		b.WriteString(indent + "  <path>" + xmlEscaper.Replace(n.Path) + "</path>\n")
		if len(n.Children) > 0 {
			b.WriteString(indent + "  <children>\n")
			writeXMLItems(b, n.Children, depth+2, tracker)
			b.WriteString(indent + "  </children>\n")
		}
		b.WriteString(indent + "</item>\n")
	}
}
