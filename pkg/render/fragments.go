package render

import (
	"strings"

	"github.com/swelham/oxi/pkg/document"
)

const (
	commentOpen  = "<!--"
	commentClose = "-->"
)

// renderFull renders a node without children as a single unit.
func renderFull(n document.Node) string {
	switch {
	case n.IsLiteral():
		return n.Content
	case n.IsComment():
		return commentOpen + n.Content + commentClose
	case n.SelfClosing:
		return openTag(n)
	default:
		return openTag(n) + n.Content + renderEnd(n)
	}
}

// renderOpen renders the opening half of a node that has children. Inline
// content follows the open tag.
func renderOpen(n document.Node) string {
	switch {
	case n.IsLiteral():
		return n.Content
	case n.IsComment():
		return commentOpen + n.Content
	case n.SelfClosing:
		return openTag(n)
	default:
		return openTag(n) + n.Content
	}
}

// renderEnd renders the closing half of a node. Literal and self-closing
// nodes have none.
func renderEnd(n document.Node) string {
	switch {
	case n.IsLiteral():
		return ""
	case n.IsComment():
		return commentClose
	case n.SelfClosing:
		return ""
	default:
		return "</" + n.Tag() + ">"
	}
}

// openTag expands the tag name and its modifiers. Ids are emitted in order,
// classes are merged into one attribute and attribute bodies are copied
// verbatim with their comma separators removed.
func openTag(n document.Node) string {
	var (
		b       strings.Builder
		classes []string
		attrs   strings.Builder
	)

	b.WriteByte('<')
	b.WriteString(n.Tag())

	for _, t := range n.Modifiers() {
		switch {
		case strings.HasPrefix(t, "#"):
			b.WriteString(` id="`)
			b.WriteString(t[1:])
			b.WriteByte('"')
		case strings.HasPrefix(t, "."):
			classes = append(classes, t[1:])
		case strings.HasPrefix(t, "("):
			attrs.WriteString(strings.ReplaceAll(t[1:], ",", ""))
		}
	}

	if len(classes) > 0 {
		b.WriteString(` class="`)
		b.WriteString(strings.Join(classes, " "))
		b.WriteByte('"')
	}
	if attrs.Len() > 0 {
		b.WriteByte(' ')
		b.WriteString(attrs.String())
	}

	if n.SelfClosing {
		b.WriteByte('/')
	}
	b.WriteByte('>')

	return b.String()
}
