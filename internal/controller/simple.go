package controller

import (
	"bytes"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "github.com/mouse-blink/hdrlint/internal/model"
)

// SimpleUI implements UI using cobra Command's output writer.
type SimpleUI struct {
	cmd *cobra.Command
	cfg StartConfig
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(options ...StartOption) error {
	s.cfg = newStartConfig(options)
	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close() {
}

// DisplayModule prints a module line at verbosity 1 and its files at 2.
func (s *SimpleUI) DisplayModule(report m.ModuleReport) {
	if s.cfg.verbosity < 1 {
		return
	}

	s.printf("module %s: %s files, %s lines, %d violations\n",
		report.Name,
		formatCount(report.Stats.Files),
		formatCount(report.Stats.TotalLines),
		len(report.Violations),
	)

	if s.cfg.verbosity < 2 || len(report.Files) == 0 {
		return
	}

	s.renderTable(
		[]string{"File", "Lines", "Non-empty", "Head", "Preamble", "Body"},
		func(table *tablewriter.Table) {
			for _, f := range report.Files {
				table.Append([]string{
					f.Source.Filename,
					formatCount(f.Stats.TotalLines),
					formatCount(f.Stats.NonEmptyLines),
					formatRange(f.Sections.Head),
					formatRange(f.Sections.Preamble),
					formatRange(f.Sections.Body),
				})
			}
		},
	)
}

// DisplaySummary prints one row per module, the library totals and the
// violations.
func (s *SimpleUI) DisplaySummary(report m.LibraryReport) error {
	violations := report.Violations()

	if len(report.Modules) == 0 {
		s.printf("No modules scanned\n")
		return nil
	}

	s.renderTable(
		[]string{"Module", "Files", "Lines", "Non-empty", "Violations"},
		func(table *tablewriter.Table) {
			for _, md := range report.Modules {
				table.Append([]string{
					md.Name,
					formatCount(md.Stats.Files),
					formatCount(md.Stats.TotalLines),
					formatCount(md.Stats.NonEmptyLines),
					fmt.Sprintf("%d", len(md.Violations)),
				})
			}

			table.SetFooter([]string{
				fmt.Sprintf("Total Modules %d", len(report.Modules)),
				formatCount(report.Stats.Files),
				formatCount(report.Stats.TotalLines),
				formatCount(report.Stats.NonEmptyLines),
				fmt.Sprintf("%d", len(violations)),
			})
		},
	)

	s.printViolations(violations)

	if len(violations) == 0 {
		s.printf("All %s files conform\n", formatCount(report.Stats.Files))
	}

	return nil
}

// DisplayCheck prints the section layout of each checked file.
func (s *SimpleUI) DisplayCheck(files []m.ParsedFile, violations []m.Violation) error {
	if len(files) > 0 {
		s.renderTable(
			[]string{"File", "Lines", "Head", "Preamble", "Body", "Declared"},
			func(table *tablewriter.Table) {
				for _, f := range files {
					table.Append([]string{
						string(f.Source.Path),
						formatCount(f.Stats.TotalLines),
						formatRange(f.Sections.Head),
						formatRange(f.Sections.Preamble),
						formatRange(f.Sections.Body),
						f.Declared + ".h",
					})
				}
			},
		)
	}

	s.printViolations(violations)

	return nil
}

// DisplayModules prints the configured modules and their header counts.
func (s *SimpleUI) DisplayModules(listings []m.ModuleListing) error {
	if len(listings) == 0 {
		s.printf("No modules configured\n")
		return nil
	}

	total := 0

	s.renderTable(
		[]string{"Module", "Headers", "Internal", "Path"},
		func(table *tablewriter.Table) {
			for _, l := range listings {
				total += l.Headers + l.InternalHeaders
				table.Append([]string{
					l.Name,
					fmt.Sprintf("%d", l.Headers),
					fmt.Sprintf("%d", l.InternalHeaders),
					string(l.Path),
				})
			}

			table.SetFooter([]string{
				fmt.Sprintf("Total Modules %d", len(listings)),
				fmt.Sprintf("%d", total),
				"",
				"",
			})
		},
	)

	return nil
}

func (s *SimpleUI) printViolations(violations []m.Violation) {
	if len(violations) == 0 {
		return
	}

	s.printf("\n%d violations:\n", len(violations))

	for _, v := range violations {
		s.printf("  %s: %s [%s]\n", violationLocation(v), v.Message, v.Kind)
	}
}

func (s *SimpleUI) renderTable(header []string, fill func(table *tablewriter.Table)) {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader(header)
	table.SetBorder(false)
	table.SetCenterSeparator("")

	alignment := make([]int, len(header))
	for i := range alignment {
		alignment[i] = tablewriter.ALIGN_RIGHT
	}

	alignment[0] = tablewriter.ALIGN_LEFT
	table.SetColumnAlignment(alignment)

	fill(table)

	table.Render()
	s.printf("\n%s", tableBuffer.String())
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
