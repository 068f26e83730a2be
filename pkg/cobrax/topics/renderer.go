package topics

import (
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/mattn/go-isatty"

	"github.com/swelham/oxi/pkg/logging"
)

// Renderer formats topic content for display. format is the topic file
// extension, including the dot.
type Renderer interface {
	Render(content string, format string) string
}

// PlainRenderer returns content unchanged
type PlainRenderer struct{}

// Render returns the content unchanged
func (r *PlainRenderer) Render(content string, format string) string {
	return content
}

// builtinStyles are the glamour style names that need no style file
var builtinStyles = map[string]bool{
	"ascii": true,
	"dark":  true,
	"light": true,
	"notty": true,
	"pink":  true,
}

// GlamourRenderer renders markdown topics. Other formats pass through.
type GlamourRenderer struct {
	// Style is "auto", a builtin glamour style name or a path to a style
	// file.
	Style string
	// Width wraps output at this column. Zero keeps glamour's default.
	Width int
	// Output decides what "auto" resolves to. Nil means stdout.
	Output *os.File
}

// NewGlamourRenderer returns a renderer that picks its style from the
// terminal it writes to
func NewGlamourRenderer() *GlamourRenderer {
	return &GlamourRenderer{Style: "auto"}
}

// Render converts markdown to terminal output, falling back to the raw text
// when glamour fails
func (r *GlamourRenderer) Render(content string, format string) string {
	if format != ".md" {
		return content
	}

	options := []glamour.TermRendererOption{r.styleOption()}
	if r.Width > 0 {
		options = append(options, glamour.WithWordWrap(r.Width))
	}

	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		logger := logging.GetLogger("topics")
		logger.Debug().Err(err).Str("style", r.Style).Msg("Cannot create markdown renderer")
		return content
	}

	rendered, err := renderer.Render(content)
	if err != nil {
		logger := logging.GetLogger("topics")
		logger.Debug().Err(err).Msg("Cannot render markdown topic")
		return content
	}
	return rendered
}

func (r *GlamourRenderer) styleOption() glamour.TermRendererOption {
	switch {
	case r.Style == "" || r.Style == "auto":
		if !r.isTerminal() {
			return glamour.WithStandardStyle("notty")
		}
		return glamour.WithAutoStyle()
	case builtinStyles[r.Style]:
		return glamour.WithStandardStyle(r.Style)
	default:
		return glamour.WithStylePath(r.Style)
	}
}

func (r *GlamourRenderer) isTerminal() bool {
	out := r.Output
	if out == nil {
		out = os.Stdout
	}
	return isatty.IsTerminal(out.Fd()) || isatty.IsCygwinTerminal(out.Fd())
}
