package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/swelham/oxi/pkg/ui"
	"github.com/swelham/oxi/pkg/ui/output"
)

// reportedError marks an error the command already wrote to its output, so
// main only has to set the exit status
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }
func (e *reportedError) Unwrap() error { return e.err }

func reported(err error) error {
	if err == nil {
		return nil
	}
	return &reportedError{err: err}
}

// IsReported reports whether err has already been shown to the user
func IsReported(err error) bool {
	var r *reportedError
	return errors.As(err, &r)
}

// newRenderer returns the renderer for format writing to the command output
func newRenderer(cmd *cobra.Command, format ui.Format) (output.Renderer, error) {
	w := cmd.OutOrStdout()
	return output.New(ui.Resolve(format, w), w)
}

// RenderError writes err to w in the format detected for w
func RenderError(w io.Writer, err error) {
	renderer, rerr := output.New(ui.Resolve(ui.FormatAuto, w), w)
	if rerr == nil {
		rerr = renderer.RenderError(err)
	}
	if rerr != nil {
		_, _ = fmt.Fprintf(w, "error: %v\n", err)
	}
}
