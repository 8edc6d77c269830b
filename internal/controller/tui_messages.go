package controller

import (
	"fmt"
	"sort"

	m "github.com/mouse-blink/hdrlint/internal/model"
)

// Message types.
type reportMsg struct {
	report m.LibraryReport
}

// List item types.
type fileItem struct {
	path     string
	lines    int
	nonEmpty int
	// problem is empty for conforming files.
	problem string
}

func (f fileItem) FilterValue() string {
	return f.path
}

func itemsFor(report m.LibraryReport) []fileItem {
	items := make([]fileItem, 0, report.Stats.Files)

	for _, md := range report.Modules {
		for _, f := range md.Files {
			items = append(items, fileItem{
				path:     md.Name + "/" + f.Source.Filename,
				lines:    f.Stats.TotalLines,
				nonEmpty: f.Stats.NonEmptyLines,
			})
		}

		for _, v := range md.Violations {
			items = append(items, fileItem{
				path:    md.Name + "/" + v.Filename,
				problem: fmt.Sprintf("%s (line %d)", v.Kind, v.Line),
			})
		}
	}

	sort.Slice(items, func(i, j int) bool { return items[i].path < items[j].path })

	return items
}
