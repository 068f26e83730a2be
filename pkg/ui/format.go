package ui

import (
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/swelham/oxi/pkg/errors"
)

// Format selects how command reports are written
type Format int

const (
	// FormatAuto picks terminal or text output from the destination
	FormatAuto Format = iota
	// FormatTerminal renders colored, styled output
	FormatTerminal
	// FormatText renders plain text without escape codes
	FormatText
	// FormatJSON renders machine-readable JSON
	FormatJSON
)

// String returns the flag value for the format
func (f Format) String() string {
	switch f {
	case FormatAuto:
		return "auto"
	case FormatTerminal:
		return "term"
	case FormatText:
		return "text"
	case FormatJSON:
		return "json"
	default:
		return "unknown"
	}
}

// ParseFormat parses a --format flag value
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "auto", "":
		return FormatAuto, nil
	case "term", "terminal":
		return FormatTerminal, nil
	case "text", "plain":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	default:
		return FormatAuto, errors.Newf(errors.ErrInvalidInput, "unknown format %q (want auto, term, text or json)", s)
	}
}

// DetectFormat chooses between terminal and text output for a file
func DetectFormat(output *os.File) Format {
	if os.Getenv("NO_COLOR") != "" {
		return FormatText
	}

	if !isatty.IsTerminal(output.Fd()) && !isatty.IsCygwinTerminal(output.Fd()) {
		return FormatText
	}

	if termenv.ColorProfile() == termenv.Ascii {
		return FormatText
	}

	return FormatTerminal
}

// Resolve replaces FormatAuto with the format detected for w. Writers that
// are not files (buffers, pipes wrapped by callers) get plain text.
func Resolve(f Format, w io.Writer) Format {
	if f != FormatAuto {
		return f
	}
	if file, ok := w.(*os.File); ok {
		return DetectFormat(file)
	}
	return FormatText
}
