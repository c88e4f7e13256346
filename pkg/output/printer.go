package output

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/pterm/pterm"
)

// Printer writes user-facing status lines. It implements types.Reporter.
type Printer struct {
	w      io.Writer
	color  bool
	styles styles
}

// NewPrinter creates a Printer writing to w. Color is used only when
// noColor is false, NO_COLOR is unset and w is a terminal.
func NewPrinter(w io.Writer, noColor bool) *Printer {
	color := ColorEnabled(w, noColor)

	renderer := lipgloss.NewRenderer(w)
	if !color {
		renderer.SetColorProfile(termenv.Ascii)
		pterm.DisableColor()
	} else {
		pterm.EnableColor()
	}

	return &Printer{
		w:      w,
		color:  color,
		styles: newStyles(renderer),
	}
}

// ColorEnabled decides whether output to w should be colored
func ColorEnabled(w io.Writer, noColor bool) bool {
	if noColor || os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (p *Printer) println(s string) {
	fmt.Fprintln(p.w, s)
}

// Banner prints the tool title
func (p *Printer) Banner() {
	title := p.styles.title.Render("SynDock Configuration Migration Tool")
	copyright := p.styles.muted.Render("Copyright (C) 2026 Syndromatic Ltd.")
	p.println(p.styles.banner.Render(title + "\n" + copyright))
}

// Section starts a new stage, separated from the previous one by a blank line
func (p *Printer) Section(format string, args ...interface{}) {
	p.println("")
	p.println(p.styles.section.Render(fmt.Sprintf(format, args...)))
}

func (p *Printer) Info(format string, args ...interface{}) {
	p.println(p.styles.info.Render(fmt.Sprintf(format, args...)))
}

func (p *Printer) Success(format string, args ...interface{}) {
	p.println(SuccessMarker + " " + p.styles.success.Render(fmt.Sprintf(format, args...)))
}

func (p *Printer) Warning(format string, args ...interface{}) {
	p.println(WarningMarker + " " + p.styles.warning.Render(fmt.Sprintf(format, args...)))
}

func (p *Printer) Failure(format string, args ...interface{}) {
	p.println(FailureMarker + " " + p.styles.failure.Render(fmt.Sprintf(format, args...)))
}

func (p *Printer) DryRun(format string, args ...interface{}) {
	p.println(DryRunMarker + " " + p.styles.dryRun.Render(fmt.Sprintf(format, args...)))
}

// Error prints a fatal CLI error
func (p *Printer) Error(err error) {
	p.println(FailureMarker + " " + p.styles.failure.Render(fmt.Sprintf("Error: %v", err)))
}
