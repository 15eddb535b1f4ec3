// Package output provides styling helpers for diagnostic reports.
package output

import (
	"io"

	"github.com/muesli/termenv"
)

// Styles renders report text for a writer. Colors are dropped automatically
// when the writer is not a terminal.
type Styles struct {
	output *termenv.Output
}

// NewStyles creates a new Styles instance for the given writer.
func NewStyles(w io.Writer) *Styles {
	return &Styles{
		output: termenv.NewOutput(w),
	}
}

// Keyword returns a styled label or operation name (bold).
func (s *Styles) Keyword(text string) string {
	return s.output.String(text).
		Bold().
		String()
}

// Count returns a styled number or size (magenta).
func (s *Styles) Count(text string) string {
	return s.output.String(text).
		Foreground(s.output.Color("5")).
		String()
}

// Good returns a styled healthy value (green).
func (s *Styles) Good(text string) string {
	return s.output.String(text).
		Foreground(s.output.Color("2")).
		String()
}

// Dim returns dimmed text (for secondary information).
func (s *Styles) Dim(text string) string {
	return s.output.String(text).
		Faint().
		String()
}

// Warning returns a styled warning (yellow + bold).
func (s *Styles) Warning(text string) string {
	return s.output.String(text).
		Foreground(s.output.Color("3")).
		Bold().
		String()
}

// Timing returns a styled duration. Slow operations are red, the rest dimmed.
func (s *Styles) Timing(text string, isSlowOperation bool) string {
	if isSlowOperation {
		return s.output.String(text).
			Foreground(s.output.Color("1")).
			String()
	}
	return s.Dim(text)
}
