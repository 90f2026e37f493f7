package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Printer writes the user-facing progress lines. Styles come from a renderer
// bound to w, so output to a pipe or file carries no escape codes.
type Printer struct {
	w       io.Writer
	success lipgloss.Style
	failure lipgloss.Style
	step    lipgloss.Style
	detail  lipgloss.Style
}

func NewPrinter(w io.Writer) *Printer {
	r := lipgloss.NewRenderer(w)
	return &Printer{
		w:       w,
		success: r.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		failure: r.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		step:    r.NewStyle().Foreground(lipgloss.Color("12")),
		detail:  r.NewStyle().Faint(true),
	}
}

func (p *Printer) Success(format string, args ...any) {
	p.println(p.success, "✅ "+format, args...)
}

func (p *Printer) Error(format string, args ...any) {
	p.println(p.failure, "❌ ERROR: "+format, args...)
}

func (p *Printer) Step(format string, args ...any) {
	p.println(p.step, format, args...)
}

func (p *Printer) Detail(format string, args ...any) {
	p.println(p.detail, "   "+format, args...)
}

func (p *Printer) Info(format string, args ...any) {
	_, _ = fmt.Fprintf(p.w, format+"\n", args...)
}

func (p *Printer) println(style lipgloss.Style, format string, args ...any) {
	_, _ = fmt.Fprintln(p.w, style.Render(fmt.Sprintf(format, args...)))
}
