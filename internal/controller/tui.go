package controller

import (
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/term"

	m "github.com/mouse-blink/hdrlint/internal/model"
)

// defaultTerminalHeight is used when the output is not a terminal or its
// size cannot be read.
const defaultTerminalHeight = 40

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	output io.Writer
	cfg    StartConfig
	height int
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output, height: terminalHeight(output)}
}

func terminalHeight(w io.Writer) int {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok || !term.IsTerminal(f.Fd()) {
		return defaultTerminalHeight
	}

	_, height, err := term.GetSize(f.Fd())
	if err != nil || height <= 0 {
		return defaultTerminalHeight
	}

	return height
}

// Start initializes the UI.
func (t *TUI) Start(options ...StartOption) error {
	t.cfg = newStartConfig(options)
	return nil
}

// Close finalizes the UI.
func (t *TUI) Close() {
}

// DisplayModule prints a progress line per module at verbosity 1 and above.
func (t *TUI) DisplayModule(report m.ModuleReport) {
	if t.cfg.verbosity < 1 {
		return
	}

	status := okStyle.Render("ok")
	if len(report.Violations) > 0 {
		status = badStyle.Render(fmt.Sprintf("%d violations", len(report.Violations)))
	}

	_, _ = fmt.Fprintf(t.output, "%s %s files, %s lines  %s\n",
		accentStyle.Render(report.Name),
		formatCount(report.Stats.Files),
		formatCount(report.Stats.TotalLines),
		status,
	)
}

// DisplaySummary shows the report, paginated when it does not fit.
func (t *TUI) DisplaySummary(report m.LibraryReport) error {
	model := newReportModel().handleReportMsg(reportMsg{report: report})
	model.height = t.height

	if !IsTTY(t.output) || !model.needsPagination() {
		_, err := fmt.Fprint(t.output, model.staticView())
		return err
	}

	program := tea.NewProgram(model, tea.WithOutput(t.output), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return err
	}

	return nil
}

// DisplayCheck prints the sections of each checked file.
func (t *TUI) DisplayCheck(files []m.ParsedFile, violations []m.Violation) error {
	var b strings.Builder

	for _, f := range files {
		fmt.Fprintf(&b, "%s %s\n", okStyle.Render("✓"), accentStyle.Render(string(f.Source.Path)))
		fmt.Fprintf(&b, "    head %s  preamble %s  body %s  (%s lines)\n",
			formatRange(f.Sections.Head),
			formatRange(f.Sections.Preamble),
			formatRange(f.Sections.Body),
			formatCount(f.Stats.TotalLines),
		)
	}

	for _, v := range violations {
		fmt.Fprintf(&b, "%s %s %s\n", badStyle.Render("✗"), violationLocation(v), dimStyle.Render(v.Message))
	}

	_, err := fmt.Fprint(t.output, b.String())

	return err
}

// DisplayModules prints the configured modules.
func (t *TUI) DisplayModules(listings []m.ModuleListing) error {
	var b strings.Builder

	for _, l := range listings {
		fmt.Fprintf(&b, "%-16s %4d headers  %4d internal  %s\n",
			accentStyle.Render(l.Name), l.Headers, l.InternalHeaders, dimStyle.Render(string(l.Path)))
	}

	if len(listings) == 0 {
		b.WriteString("No modules configured\n")
	}

	_, err := fmt.Fprint(t.output, b.String())

	return err
}
