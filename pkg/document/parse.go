package document

import (
	stderrors "errors"
	"fmt"

	"github.com/swelham/oxi/pkg/dialect"
	"github.com/swelham/oxi/pkg/errors"
)

// RawBlockMode controls what happens to the body of raw-text elements
// (style and script in HTML).
type RawBlockMode int

const (
	// RawBlocksDrop discards the body.
	RawBlocksDrop RawBlockMode = iota
	// RawBlocksVerbatim emits each body line as literal text.
	RawBlocksVerbatim
)

// String returns the configuration name of the mode
func (m RawBlockMode) String() string {
	switch m {
	case RawBlocksVerbatim:
		return "verbatim"
	default:
		return "drop"
	}
}

// ParseRawBlockMode resolves a configuration value
func ParseRawBlockMode(s string) (RawBlockMode, error) {
	switch s {
	case "", "drop":
		return RawBlocksDrop, nil
	case "verbatim":
		return RawBlocksVerbatim, nil
	default:
		return RawBlocksDrop, fmt.Errorf("unknown raw block mode %q (want drop or verbatim)", s)
	}
}

// ParseOptions tunes the tree walk
type ParseOptions struct {
	RawBlocks RawBlockMode
}

type walkMode int

const (
	modeNormal walkMode = iota
	modeRawLiteral
	modeRawSuppressed
)

// Parse walks the document lines and returns its nodes in source order.
// Validate must have resolved the dialect first.
func (d *Document) Parse(opts ParseOptions) ([]Node, error) {
	if d.Dialect == dialect.Unknown {
		return nil, errors.New(errors.ErrInternal, "document parsed before its dialect was resolved")
	}

	var (
		nodes          []Node
		mode           = modeNormal
		parsableIndent int
	)

	for i, raw := range splitLines(d.Source) {
		line := NewSourceLine(raw)
		if line.IsBlank() {
			continue
		}

		nested := line.Indent > parsableIndent
		if nested && mode == modeRawSuppressed {
			continue
		}
		if nested && mode == modeRawLiteral {
			nodes = append(nodes, LiteralNode(line.Indent, line.Text))
			continue
		}

		node, ok, err := NewNode(line, d.Dialect)
		if err != nil {
			return nil, d.syntaxError(err, i+1)
		}

		parsableIndent = line.Indent
		if !ok {
			mode = modeRawSuppressed
			continue
		}

		nodes = append(nodes, node)
		mode = d.modeAfter(node, opts)
	}

	return nodes, nil
}

func (d *Document) modeAfter(node Node, opts ParseOptions) walkMode {
	switch {
	case !node.IgnoreSubContent:
		return modeNormal
	case node.IsLiteral() || node.IsComment():
		return modeRawLiteral
	case opts.RawBlocks == RawBlocksVerbatim:
		return modeRawLiteral
	default:
		return modeRawSuppressed
	}
}

// syntaxError places a lexer error on its source line. Lexer errors already
// carry the INVALID_SYNTAX code, so their message and details are copied
// rather than wrapped.
func (d *Document) syntaxError(err error, lineNo int) error {
	var lexErr *errors.OxiError
	if !stderrors.As(err, &lexErr) {
		return d.locate(errors.Wrap(err, errors.ErrInvalidSyntax, "invalid syntax"), lineNo)
	}

	located := errors.New(errors.ErrInvalidSyntax, lexErr.Message).
		WithDetails(lexErr.Details)
	return d.locate(located, lineNo)
}

func (d *Document) locate(err *errors.OxiError, lineNo int) error {
	err.WithDetail("line", lineNo)
	if d.Path != "" {
		err.Message = fmt.Sprintf("%s:%d: %s", d.Path, lineNo, err.Message)
		err.WithDetail("path", d.Path)
	} else {
		err.Message = fmt.Sprintf("line %d: %s", lineNo, err.Message)
	}
	return err
}
