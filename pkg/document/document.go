// Package document holds a single source document, validates its header
// directive and turns its lines into an ordered, depth-annotated sequence of
// nodes.
package document

import (
	"strings"

	"github.com/swelham/oxi/pkg/dialect"
	"github.com/swelham/oxi/pkg/errors"
)

// Directives accepted on the first non-blank line
const (
	DirectiveDoctype = "doctype"
	DirectiveExtends = "extends"
)

// Document is the unit of compilation. Path only identifies the source in
// errors; the package never touches a filesystem.
type Document struct {
	Path    string
	Source  string
	Dialect dialect.Dialect
}

// New creates a document with an unresolved dialect.
func New(path, source string) *Document {
	return &Document{
		Path:    path,
		Source:  source,
		Dialect: dialect.Unknown,
	}
}

// Validate checks the document preconditions and resolves its dialect.
func (d *Document) Validate() error {
	if len(d.Source) == 0 {
		return d.fail(errors.New(errors.ErrEmptyDocument, "the file was empty"))
	}

	// A source with only blank lines has content but no directive
	header, ok := firstNonBlankLine(d.Source)
	if !ok {
		return d.fail(errors.New(errors.ErrMissingDirective, "the document must start with a 'doctype' or 'extends'"))
	}

	fields := strings.Fields(header)
	switch fields[0] {
	case DirectiveDoctype:
		if len(fields) != 2 {
			return d.fail(errors.Newf(errors.ErrUnknownDoctype, "unknown 'doctype' supplied: %q", strings.Join(fields[1:], " ")))
		}
		resolved := dialect.FromKeyword(fields[1])
		if resolved == dialect.Unknown {
			return d.fail(errors.Newf(errors.ErrUnknownDoctype, "unknown 'doctype' supplied: %q", fields[1]))
		}
		d.Dialect = resolved
		return nil
	case DirectiveExtends:
		return d.fail(errors.New(errors.ErrNotImplemented, "the 'extends' directive is not supported"))
	default:
		return d.fail(errors.New(errors.ErrMissingDirective, "the document must start with a 'doctype' or 'extends'"))
	}
}

func (d *Document) fail(err *errors.OxiError) error {
	if d.Path != "" {
		err.WithDetail("path", d.Path)
		err.Message = err.Message + ": " + d.Path
	}
	return err
}

func firstNonBlankLine(source string) (string, bool) {
	for _, line := range splitLines(source) {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			return trimmed, true
		}
	}
	return "", false
}

// splitLines splits on \n and drops the \r of CRLF line endings.
func splitLines(source string) []string {
	lines := strings.Split(source, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
