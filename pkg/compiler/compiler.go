// Package compiler is the entry point that turns source text into markup.
//
// A compilation validates the document header, walks its lines into nodes
// and renders them. Nothing is shared between calls, so independent sources
// may be compiled concurrently.
package compiler

import (
	"github.com/swelham/oxi/pkg/dialect"
	"github.com/swelham/oxi/pkg/document"
	"github.com/swelham/oxi/pkg/filesystem"
	"github.com/swelham/oxi/pkg/logging"
	"github.com/swelham/oxi/pkg/render"
)

// Options tunes a compilation
type Options struct {
	// Pretty indents every fragment by its depth and ends it with a newline.
	Pretty bool
	// RawBlocks decides what happens to style and script bodies.
	RawBlocks document.RawBlockMode
	// Path names the source in error messages. It is never opened.
	Path string
}

// Result is the output of a successful compilation
type Result struct {
	Output  string
	Dialect dialect.Dialect
	Nodes   int
}

// Compile turns source into compact or pretty markup.
func Compile(source string, pretty bool) (string, error) {
	result, err := CompileWithOptions(source, Options{Pretty: pretty})
	if err != nil {
		return "", err
	}
	return result.Output, nil
}

// CompileWithOptions runs the full pipeline over source.
func CompileWithOptions(source string, opts Options) (*Result, error) {
	logger := logging.GetLogger("compiler")
	done := logging.LogOperationStart(logger, "compile")
	defer done()

	doc := document.New(opts.Path, source)
	if err := doc.Validate(); err != nil {
		logger.Debug().Err(err).Str("path", opts.Path).Msg("Document rejected")
		return nil, err
	}

	nodes, err := doc.Parse(document.ParseOptions{RawBlocks: opts.RawBlocks})
	if err != nil {
		logger.Debug().Err(err).Str("path", opts.Path).Msg("Parse failed")
		return nil, err
	}

	output, err := render.Render(nodes, opts.Pretty)
	if err != nil {
		return nil, err
	}

	logger.Trace().
		Str("path", opts.Path).
		Str("dialect", doc.Dialect.String()).
		Int("nodes", len(nodes)).
		Bool("pretty", opts.Pretty).
		Msg("Compiled document")

	return &Result{
		Output:  output,
		Dialect: doc.Dialect,
		Nodes:   len(nodes),
	}, nil
}

// CompileFile reads path from fsys and compiles it. opts.Path defaults to
// path when empty.
func CompileFile(fsys filesystem.FS, path string, opts Options) (*Result, error) {
	data, err := filesystem.ReadSource(fsys, path)
	if err != nil {
		return nil, err
	}
	if opts.Path == "" {
		opts.Path = path
	}
	return CompileWithOptions(string(data), opts)
}
