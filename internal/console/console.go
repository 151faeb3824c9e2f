// Package console prints user-facing status lines. Diagnostic output goes
// through slog; this package only covers what a person at the terminal reads.
package console

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Printer writes styled lines to a writer.
type Printer struct {
	out     io.Writer
	noColor bool

	success lipgloss.Style
	warn    lipgloss.Style
	failure lipgloss.Style
}

// New returns a Printer. With noColor set, lines are written unstyled.
func New(out io.Writer, noColor bool) *Printer {
	return &Printer{
		out:     out,
		noColor: noColor,
		success: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#3FB950")),
		warn:    lipgloss.NewStyle().Foreground(lipgloss.Color("#D29922")),
		failure: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF6B6B")),
	}
}

// Success prints msg as a success line.
func (p *Printer) Success(msg string) {
	fmt.Fprintln(p.out, p.render(p.success, msg))
}

// Error prints msg as a failure line.
func (p *Printer) Error(msg string) {
	fmt.Fprintln(p.out, p.render(p.failure, msg))
}

// Warn styles msg as a warning without printing it. It matches the
// prompt.Theme Decorate signature so validation messages share the style.
func (p *Printer) Warn(msg string) string {
	return p.render(p.warn, msg)
}

func (p *Printer) render(style lipgloss.Style, msg string) string {
	if p.noColor {
		return msg
	}
	return style.Render(msg)
}
