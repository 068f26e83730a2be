package output

import (
	"fmt"

	"github.com/pterm/pterm"
)

// Status is the per-template outcome shown in reports
type Status string

const (
	StatusBuilt   Status = "built"
	StatusChecked Status = "ok"
	StatusFailed  Status = "failed"
)

// statusWidth pads labels so paths line up
const statusWidth = 6

// StatusStyle returns the pterm style for a status label
func StatusStyle(status Status) *pterm.Style {
	switch status {
	case StatusBuilt, StatusChecked:
		return pterm.NewStyle(pterm.BgGreen, pterm.FgWhite)
	case StatusFailed:
		return pterm.NewStyle(pterm.BgRed, pterm.FgWhite, pterm.Bold)
	default:
		return pterm.NewStyle(pterm.FgGray)
	}
}

// StatusLabel returns the fixed-width label, styled when requested
func StatusLabel(status Status, styled bool) string {
	label := fmt.Sprintf("%-*s", statusWidth, status)
	if !styled {
		return label
	}
	return StatusStyle(status).Sprint(" " + label + " ")
}
