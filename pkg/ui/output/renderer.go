package output

import (
	"embed"
	"fmt"
	"io"
	"sort"
	"text/template"

	"github.com/swelham/oxi/pkg/build"
	"github.com/swelham/oxi/pkg/errors"
	"github.com/swelham/oxi/pkg/logging"
	"github.com/swelham/oxi/pkg/ui"
	"github.com/swelham/oxi/pkg/ui/styles"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

// Renderer writes command results
type Renderer interface {
	// RenderReport writes the outcome of a build or check
	RenderReport(report *build.Report) error
	// RenderError writes a failure with its code and details
	RenderError(err error) error
	// RenderMessage writes a single informational line
	RenderMessage(msg string) error
}

// New returns the renderer for format. FormatAuto must have been resolved by
// the caller; it is treated as text.
func New(format ui.Format, w io.Writer) (Renderer, error) {
	logger := logging.GetLogger("output")
	logger.Debug().Str("format", format.String()).Msg("Creating renderer")

	switch format {
	case ui.FormatJSON:
		return newJSONRenderer(w), nil
	case ui.FormatTerminal:
		return newTemplateRenderer(w, true)
	default:
		return newTemplateRenderer(w, false)
	}
}

// templateRenderer serves both terminal and text output
type templateRenderer struct {
	templates *template.Template
	writer    io.Writer
	styled    bool
}

func newTemplateRenderer(w io.Writer, styled bool) (*templateRenderer, error) {
	r := &templateRenderer{writer: w, styled: styled}

	tmpl, err := template.New("output").Funcs(r.funcs()).ParseFS(templatesFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	r.templates = tmpl
	return r, nil
}

func (r *templateRenderer) funcs() template.FuncMap {
	return template.FuncMap{
		"style": func(name, s string) string {
			if !r.styled {
				return s
			}
			return styles.Render(name, s)
		},
		"status": func(s Status) string {
			return StatusLabel(s, r.styled)
		},
		"detail": func(f fileView) string {
			return fmt.Sprintf("(%s, %d bytes)", f.Dialect, f.Bytes)
		},
		"summary": func(v reportView) string {
			return summarize(v)
		},
	}
}

func (r *templateRenderer) RenderReport(report *build.Report) error {
	return r.templates.ExecuteTemplate(r.writer, "report.tmpl", newReportView(report))
}

func (r *templateRenderer) RenderError(err error) error {
	return r.templates.ExecuteTemplate(r.writer, "error.tmpl", newErrorView(err))
}

func (r *templateRenderer) RenderMessage(msg string) error {
	return r.templates.ExecuteTemplate(r.writer, "message.tmpl", struct {
		Style string
		Text  string
	}{Style: "Bold", Text: msg})
}

// reportView is the presentation form of build.Report shared by every format
type reportView struct {
	Root      string     `json:"root"`
	DryRun    bool       `json:"dry_run"`
	Files     []fileView `json:"files"`
	Succeeded int        `json:"succeeded"`
	Failed    int        `json:"failed"`
}

type fileView struct {
	Source     string     `json:"source"`
	Output     string     `json:"output,omitempty"`
	Dialect    string     `json:"dialect,omitempty"`
	Bytes      int        `json:"bytes"`
	DurationMS int64      `json:"duration_ms"`
	Status     Status     `json:"status"`
	OK         bool       `json:"ok"`
	Error      string     `json:"-"`
	Err        *errorView `json:"error,omitempty"`
}

type errorView struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details []detailView           `json:"-"`
	Fields  map[string]interface{} `json:"details,omitempty"`
}

type detailView struct {
	Key   string
	Value interface{}
}

func newReportView(report *build.Report) reportView {
	v := reportView{
		Root:   report.Root,
		DryRun: report.DryRun,
		Files:  make([]fileView, 0, len(report.Files)),
	}

	for _, f := range report.Files {
		fv := fileView{
			Source:     f.Source,
			Output:     f.Output,
			Dialect:    f.Dialect,
			Bytes:      f.Bytes,
			DurationMS: f.Duration.Milliseconds(),
			OK:         f.OK(),
		}
		switch {
		case !f.OK():
			fv.Status = StatusFailed
			fv.Error = f.Err.Error()
			ev := newErrorView(f.Err)
			fv.Err = &ev
			v.Failed++
		case report.DryRun:
			fv.Status = StatusChecked
			v.Succeeded++
		default:
			fv.Status = StatusBuilt
			v.Succeeded++
		}
		v.Files = append(v.Files, fv)
	}

	return v
}

func newErrorView(err error) errorView {
	ev := errorView{
		Code:    string(errors.GetErrorCode(err)),
		Message: err.Error(),
	}
	details := errors.GetErrorDetails(err)
	if len(details) == 0 {
		return ev
	}

	keys := make([]string, 0, len(details))
	for k := range details {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	ev.Fields = details
	for _, k := range keys {
		ev.Details = append(ev.Details, detailView{Key: k, Value: details[k]})
	}
	return ev
}

func summarize(v reportView) string {
	if len(v.Files) == 0 {
		return "no templates found"
	}
	verb := "built"
	if v.DryRun {
		verb = "compiled"
	}
	return fmt.Sprintf("%d %s, %d failed", v.Succeeded, verb, v.Failed)
}
