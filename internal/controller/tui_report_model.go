package controller

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			Padding(1, 0, 0, 2)

	summaryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Padding(0, 0, 1, 2)

	accentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	badStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// fileDelegate renders one header per list row.
type fileDelegate struct{}

func (d fileDelegate) Height() int  { return 1 }
func (d fileDelegate) Spacing() int { return 0 }
func (d fileDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d fileDelegate) Render(w io.Writer, lm list.Model, index int, item list.Item) {
	file, ok := item.(fileItem)
	if !ok {
		return
	}

	pathStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	countStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("11")).
		Bold(true).
		Width(8).
		Align(lipgloss.Right)

	if index == lm.Index() {
		pathStyle = pathStyle.Foreground(lipgloss.Color("0")).Background(lipgloss.Color("6")).Bold(true)
		countStyle = countStyle.Foreground(lipgloss.Color("0")).Background(lipgloss.Color("6"))
	}

	width := lm.Width() - 10 // count width (8) + spacing (2)

	_, _ = fmt.Fprint(w, renderFileRow(file, width, pathStyle, countStyle))
}

func renderFileRow(file fileItem, width int, pathStyle, countStyle lipgloss.Style) string {
	if file.problem != "" {
		label := truncateToWidth(file.path, width-lipgloss.Width(file.problem)-1)

		return fmt.Sprintf("%s  %s %s",
			countStyle.Render("!"),
			pathStyle.Render(label),
			badStyle.Render(file.problem),
		)
	}

	return fmt.Sprintf("%s  %s",
		countStyle.Render(formatCount(file.lines)),
		pathStyle.Render(truncateToWidth(file.path, width)),
	)
}

func truncateToWidth(text string, width int) string {
	if width <= 0 {
		return text
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	const ellipsis = "…"

	if width <= 1 {
		return ellipsis
	}

	maxWidth := width - lipgloss.Width(ellipsis)
	currentWidth := 0

	result := make([]rune, 0, len(text))
	for _, r := range text {
		rWidth := lipgloss.Width(string(r))
		if currentWidth+rWidth > maxWidth {
			break
		}

		result = append(result, r)
		currentWidth += rWidth
	}

	return string(result) + ellipsis
}

// reportModel browses the files of a library report.
type reportModel struct {
	width      int
	height     int
	fileList   list.Model
	items      []fileItem
	modules    int
	files      int
	lines      int
	violations int
	rendered   bool
}

func newReportModel() reportModel {
	fileList := list.New([]list.Item{}, fileDelegate{}, 80, 20)
	fileList.SetShowPagination(false)
	fileList.SetShowFilter(true)
	fileList.SetShowHelp(false)
	fileList.SetShowTitle(false)
	fileList.SetShowStatusBar(false)
	fileList.FilterInput.Placeholder = "Filter by path…"

	return reportModel{fileList: fileList}
}

func (rm reportModel) Init() tea.Cmd {
	return nil
}

func (rm reportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		rm.width = msg.Width
		rm.height = msg.Height
		rm.fileList.SetWidth(rm.width)

	case tea.KeyMsg:
		if rm.fileList.FilterState() != list.Filtering {
			switch msg.String() {
			case "q", "ctrl+c":
				return rm, tea.Quit
			}
		} else if msg.String() == "ctrl+c" {
			return rm, tea.Quit
		}

		rm.fileList, cmd = rm.fileList.Update(msg)

		return rm, cmd

	case reportMsg:
		rm = rm.handleReportMsg(msg)
	}

	return rm, cmd
}

func (rm reportModel) handleReportMsg(msg reportMsg) reportModel {
	rm.items = itemsFor(msg.report)
	rm.modules = len(msg.report.Modules)
	rm.files = msg.report.Stats.Files
	rm.lines = msg.report.Stats.TotalLines
	rm.violations = len(msg.report.Violations())

	listItems := make([]list.Item, 0, len(rm.items))
	for _, item := range rm.items {
		listItems = append(listItems, item)
	}

	rm.fileList.SetItems(listItems)
	rm.rendered = true

	return rm
}

func (rm reportModel) header() string {
	title := titleStyle.Render("hdrlint header audit")

	violations := okStyle.Render("0")
	if rm.violations > 0 {
		violations = badStyle.Render(fmt.Sprintf("%d", rm.violations))
	}

	summary := summaryStyle.Render(fmt.Sprintf(
		"Modules: %s   Files: %s   Lines: %s   Violations: %s",
		accentStyle.Render(fmt.Sprintf("%d", rm.modules)),
		accentStyle.Render(formatCount(rm.files)),
		accentStyle.Render(formatCount(rm.lines)),
		violations,
	))

	return lipgloss.JoinVertical(lipgloss.Left, title, summary)
}

func (rm reportModel) View() string {
	if !rm.rendered {
		return "Loading report…\n"
	}

	footer := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Align(lipgloss.Center).
		Width(rm.width).
		Render("↑/k up • ↓/j down • / filter • q quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		rm.header(),
		rm.renderTable(),
		footer,
	)
}

// staticView renders every item without the interactive list, for output
// that fits on screen or is not a terminal.
func (rm reportModel) staticView() string {
	if !rm.rendered {
		return "Loading report…\n"
	}

	var rows []string

	countStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Width(8).Align(lipgloss.Right)
	pathStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("14"))

	for _, item := range rm.items {
		rows = append(rows, "  "+renderFileRow(item, 0, pathStyle, countStyle))
	}

	if len(rows) == 0 {
		rows = append(rows, dimStyle.Render("  no headers"))
	}

	return lipgloss.JoinVertical(lipgloss.Left, append([]string{rm.header()}, rows...)...) + "\n"
}

func (rm reportModel) needsPagination() bool {
	return rm.height > 0 && len(rm.items)+6 > rm.height
}

func (rm reportModel) renderTable() string {
	// title (2) + summary (2) + footer (1) + border (2) + headers (2)
	listHeight := rm.height - 9
	if listHeight < 5 {
		listHeight = 5
	}

	// margin (2) + border (2) + padding (2)
	listWidth := rm.width - 6

	rm.fileList.SetHeight(listHeight)
	rm.fileList.SetWidth(listWidth)

	headers := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Bold(true).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("8")).
		Width(listWidth).
		Render(fmt.Sprintf("%8s  %s", "Lines", "Header"))

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("6")).
		Margin(0, 1).
		Padding(0, 1).
		Render(lipgloss.JoinVertical(lipgloss.Left, headers, rm.fileList.View()))
}
