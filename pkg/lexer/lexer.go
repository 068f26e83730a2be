// Package lexer splits a single trimmed source line into its tag tokens and
// trailing content.
//
// A line is one of:
//
//	| literal text
//	// visible comment
//	//- silent comment
//	tag#id.class(attr="x",other="y")/ inline content
//
// Modifiers may appear in any order after the tag name. When the tag name is
// omitted and the line starts with an id or class, the tag defaults to div.
package lexer

import (
	"strings"
	"unicode"

	"github.com/swelham/oxi/pkg/errors"
)

// Sentinel tokens
const (
	Literal   = "|"
	Comment   = "//"
	SelfClose = "/"

	silentComment = "//-"
	defaultTag    = "div"
)

// Line is the lexed form of one source line.
type Line struct {
	// Tokens holds the tag name (or a sentinel) followed by its modifiers.
	Tokens []string
	// Content is the free text following the tag.
	Content string
	// Silent is set for `//-` comments, which produce no node.
	Silent bool
}

// Split lexes a trimmed, non-empty line.
func Split(text string) (Line, error) {
	switch {
	case strings.HasPrefix(text, Literal):
		return Line{Tokens: []string{Literal}, Content: strings.TrimSpace(text[len(Literal):])}, nil
	case strings.HasPrefix(text, silentComment):
		return Line{Silent: true}, nil
	case strings.HasPrefix(text, Comment):
		return Line{Tokens: []string{Comment}, Content: strings.TrimSpace(text[len(Comment):])}, nil
	}

	var (
		tokens  []string
		content string
		start   int
		inAttr  bool
		attrCol int
	)

	flush := func(end int) {
		if end > start {
			tokens = append(tokens, text[start:end])
		}
	}

scan:
	for i, r := range text {
		if inAttr {
			if r == ')' {
				flush(i)
				inAttr = false
				start = i + 1
			}
			continue
		}

		switch {
		case unicode.IsSpace(r):
			flush(i)
			content = strings.TrimSpace(text[i:])
			start = len(text)
			break scan
		case r == ')':
			return Line{}, errors.New(errors.ErrInvalidSyntax, "unmatched ')'").
				WithDetail("column", i+1)
		case r == '/':
			flush(i)
			tokens = append(tokens, SelfClose)
			start = i + 1
		case r == '#' || r == '.' || r == '(':
			flush(i)
			start = i
			if r == '(' {
				inAttr = true
				attrCol = i + 1
			}
		}
	}

	if inAttr {
		return Line{}, errors.New(errors.ErrInvalidSyntax, "unclosed attribute body").
			WithDetail("column", attrCol)
	}
	flush(len(text))

	if len(tokens) > 0 && (strings.HasPrefix(tokens[0], "#") || strings.HasPrefix(tokens[0], ".")) {
		tokens = append([]string{defaultTag}, tokens...)
	}

	return Line{Tokens: tokens, Content: content}, nil
}
