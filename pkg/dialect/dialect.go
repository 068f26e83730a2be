// Package dialect defines the output markup families a document can target
// and the fixed lookup tables that parameterize lexing and rendering.
package dialect

// Dialect is the output markup family selected by a document's doctype.
type Dialect int

const (
	Unknown Dialect = iota
	HTML
	XML
	JSON
)

const xmlDeclaration = `<?xml version="1.0" encoding="utf-8" ?>`

var voidElements = map[string]struct{}{
	"area": {}, "base": {}, "br": {}, "col": {}, "command": {}, "embed": {},
	"hr": {}, "img": {}, "input": {}, "keygen": {}, "link": {}, "meta": {},
	"param": {}, "source": {}, "track": {}, "wbr": {},
}

var rawTextElements = map[string]struct{}{
	"style":  {},
	"script": {},
}

// FromKeyword resolves the value following `doctype`. Unrecognized
// keywords resolve to Unknown.
func FromKeyword(keyword string) Dialect {
	switch keyword {
	case "html":
		return HTML
	case "xml":
		return XML
	case "json":
		return JSON
	default:
		return Unknown
	}
}

// String returns the doctype keyword for the dialect
func (d Dialect) String() string {
	switch d {
	case HTML:
		return "html"
	case XML:
		return "xml"
	case JSON:
		return "json"
	default:
		return "unknown"
	}
}

// Preamble returns the literal text emitted for the document's doctype line.
// JSON has no preamble. ok is false for Unknown.
func (d Dialect) Preamble() (preamble string, ok bool) {
	switch d {
	case HTML:
		return "<!DOCTYPE html>", true
	case XML:
		return xmlDeclaration, true
	case JSON:
		return "", true
	default:
		return "", false
	}
}

// Extension is the file extension used for compiled output.
func (d Dialect) Extension() string {
	switch d {
	case HTML:
		return ".html"
	case XML:
		return ".xml"
	case JSON:
		return ".json"
	default:
		return ".out"
	}
}

// IsVoid reports whether tag is implicitly self-closing in this dialect.
func (d Dialect) IsVoid(tag string) bool {
	if d != HTML {
		return false
	}
	_, ok := voidElements[tag]
	return ok
}

// IsRawText reports whether the sub-content of tag is raw text that must
// not be parsed as markup.
func (d Dialect) IsRawText(tag string) bool {
	if d != HTML {
		return false
	}
	_, ok := rawTextElements[tag]
	return ok
}
