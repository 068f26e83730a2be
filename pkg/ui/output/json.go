package output

import (
	"encoding/json"
	"io"

	"github.com/swelham/oxi/pkg/build"
)

// jsonRenderer provides JSON output for machine consumption
type jsonRenderer struct {
	encoder *json.Encoder
}

func newJSONRenderer(w io.Writer) *jsonRenderer {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return &jsonRenderer{encoder: encoder}
}

func (r *jsonRenderer) RenderReport(report *build.Report) error {
	return r.encoder.Encode(newReportView(report))
}

func (r *jsonRenderer) RenderError(err error) error {
	return r.encoder.Encode(map[string]errorView{"error": newErrorView(err)})
}

func (r *jsonRenderer) RenderMessage(msg string) error {
	return r.encoder.Encode(map[string]string{"message": msg})
}
