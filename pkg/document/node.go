package document

import (
	"strings"
	"unicode"

	"github.com/swelham/oxi/pkg/dialect"
	"github.com/swelham/oxi/pkg/errors"
	"github.com/swelham/oxi/pkg/lexer"
)

// SourceLine is one physical line: its leading whitespace count and the
// trimmed text.
type SourceLine struct {
	Indent int
	Text   string
}

// NewSourceLine measures the indent of raw. Every leading whitespace rune
// counts as one level.
func NewSourceLine(raw string) SourceLine {
	indent := 0
	for _, r := range raw {
		if !unicode.IsSpace(r) {
			break
		}
		indent++
	}
	return SourceLine{Indent: indent, Text: strings.TrimSpace(raw)}
}

// IsBlank reports whether the line holds no text
func (l SourceLine) IsBlank() bool {
	return l.Text == ""
}

// Node is the parsed representation of one source line.
type Node struct {
	Depth            int
	Tokens           []string
	Content          string
	SelfClosing      bool
	IgnoreSubContent bool
}

// Tag returns the tag name or sentinel
func (n Node) Tag() string {
	return n.Tokens[0]
}

// Modifiers returns the tokens following the tag name
func (n Node) Modifiers() []string {
	return n.Tokens[1:]
}

// IsLiteral reports whether the node is a `|` text line
func (n Node) IsLiteral() bool {
	return n.Tag() == lexer.Literal
}

// IsComment reports whether the node is a visible `//` comment
func (n Node) IsComment() bool {
	return n.Tag() == lexer.Comment
}

// LiteralNode builds a text node at depth without lexing content.
func LiteralNode(depth int, content string) Node {
	return Node{
		Depth:            depth,
		Tokens:           []string{lexer.Literal},
		Content:          content,
		IgnoreSubContent: true,
	}
}

// NewNode lexes line and derives the node's structural flags for d.
// ok is false when the line is a silent comment.
func NewNode(line SourceLine, d dialect.Dialect) (node Node, ok bool, err error) {
	lexed, err := lexer.Split(line.Text)
	if err != nil {
		return Node{}, false, err
	}
	if lexed.Silent {
		return Node{}, false, nil
	}
	if len(lexed.Tokens) == 0 {
		return Node{}, false, errors.New(errors.ErrInvalidSyntax, "line has no tag")
	}

	node = Node{
		Depth:   line.Indent,
		Tokens:  lexed.Tokens,
		Content: lexed.Content,
	}

	tag := node.Tag()
	node.SelfClosing = hasSelfClose(lexed.Tokens) || d.IsVoid(tag)
	node.IgnoreSubContent = tag == lexer.Literal || tag == lexer.Comment || d.IsRawText(tag)

	return node, true, nil
}

// hasSelfClose reports whether the modifiers end with an explicit `/`.
// A `/` followed by further modifiers does not close the tag.
func hasSelfClose(tokens []string) bool {
	return len(tokens) > 1 && tokens[len(tokens)-1] == lexer.SelfClose
}
