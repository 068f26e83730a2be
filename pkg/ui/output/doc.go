// Package output writes command reports in terminal, text or JSON form.
//
// Terminal and text output share one template set (templates/*.tmpl). The
// template functions decide whether a value is styled: terminal output goes
// through the lipgloss style registry and pterm status labels, text output
// is left plain. JSON output encodes a stable view of the report.
package output
