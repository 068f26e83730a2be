// Package render turns a parsed node sequence into output markup.
//
// The renderer walks the nodes once. A node whose successor is deeper is
// opened and pushed on a stack of node positions; the stack unwinds, closing
// each ancestor, when a later node returns to a shallower depth or the
// document ends.
package render

import (
	"strings"

	"github.com/swelham/oxi/pkg/dialect"
	"github.com/swelham/oxi/pkg/document"
	"github.com/swelham/oxi/pkg/errors"
)

const doctypeTag = document.DirectiveDoctype

// Render produces compact or pretty output for nodes.
func Render(nodes []document.Node, pretty bool) (string, error) {
	r := &renderer{nodes: nodes, pretty: pretty}
	if err := r.run(); err != nil {
		return "", err
	}
	return r.out.String(), nil
}

type renderer struct {
	nodes  []document.Node
	pretty bool
	out    strings.Builder
	// stack holds positions into nodes of the currently open elements
	stack []int
}

func (r *renderer) run() error {
	if len(r.nodes) == 0 {
		return nil
	}

	start := 0
	if first := r.nodes[0]; first.Tag() == doctypeTag {
		if err := r.doctype(first); err != nil {
			return err
		}
		start = 1
	}

	for i := start; i < len(r.nodes); i++ {
		node := r.nodes[i]
		next, hasNext := r.peek(i)

		if hasNext && next.Depth > node.Depth {
			r.emit(node.Depth, renderOpen(node))
			r.stack = append(r.stack, i)
		} else {
			r.emit(node.Depth, renderFull(node))
			if hasNext && next.Depth < node.Depth {
				r.unwind(next.Depth)
			}
		}

		if hasNext && !r.pretty && node.IsLiteral() && next.IsLiteral() {
			r.out.WriteByte(' ')
		}
	}

	r.unwind(-1)
	return nil
}

func (r *renderer) peek(i int) (document.Node, bool) {
	if i+1 < len(r.nodes) {
		return r.nodes[i+1], true
	}
	return document.Node{}, false
}

// unwind closes open elements nested at depth or deeper.
func (r *renderer) unwind(depth int) {
	for len(r.stack) > 0 {
		top := r.nodes[r.stack[len(r.stack)-1]]
		if top.Depth < depth {
			return
		}
		r.stack = r.stack[:len(r.stack)-1]
		r.emit(top.Depth, renderEnd(top))
	}
}

func (r *renderer) doctype(node document.Node) error {
	d := dialect.FromKeyword(node.Content)
	preamble, ok := d.Preamble()
	if !ok {
		return errors.Newf(errors.ErrUnknownDoctype, "unknown 'doctype' supplied: %q", node.Content)
	}
	r.emit(0, preamble)
	return nil
}

// emit writes one fragment; in pretty mode it is indented by depth and
// terminated by a newline.
func (r *renderer) emit(depth int, fragment string) {
	if fragment == "" {
		return
	}
	if !r.pretty {
		r.out.WriteString(fragment)
		return
	}
	r.out.WriteString(strings.Repeat(" ", depth))
	r.out.WriteString(fragment)
	r.out.WriteByte('\n')
}
