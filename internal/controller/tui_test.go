package controller

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/hdrlint/internal/model"
)

func TestItemsFor(t *testing.T) {
	items := itemsFor(sampleLibraryReport())

	require.Len(t, items, 3)
	assert.Equal(t, "core/matrix.h", items[0].path)
	assert.Equal(t, 1500, items[0].lines)
	assert.Empty(t, items[0].problem)

	assert.Equal(t, "core/vector.h", items[1].path)
	assert.Equal(t, "file-declaration-mismatch (line 2)", items[1].problem)

	assert.Equal(t, "mat/dense.h", items[2].path)
	assert.Equal(t, "mat/dense.h", items[2].FilterValue())
}

func TestTruncateToWidth(t *testing.T) {
	assert.Equal(t, "abcdef", truncateToWidth("abcdef", 0))
	assert.Equal(t, "abc", truncateToWidth("abc", 5))
	assert.Equal(t, "abc…", truncateToWidth("abcdef", 4))
	assert.Equal(t, "…", truncateToWidth("abcdef", 1))
}

func TestReportModel_View(t *testing.T) {
	model := newReportModel()
	assert.Equal(t, "Loading report…\n", model.View())
	assert.Equal(t, "Loading report…\n", model.staticView())

	model = model.handleReportMsg(reportMsg{report: sampleLibraryReport()})

	view := model.staticView()
	assert.Contains(t, view, "hdrlint header audit")
	assert.Contains(t, view, "core/matrix.h")
	assert.Contains(t, view, "core/vector.h")
	assert.Contains(t, view, "Violations:")
}

func TestReportModel_Update(t *testing.T) {
	model := newReportModel()

	updated, cmd := model.Update(reportMsg{report: sampleLibraryReport()})
	assert.Nil(t, cmd)

	rm, ok := updated.(reportModel)
	require.True(t, ok)
	assert.Equal(t, 2, rm.modules)
	assert.Equal(t, 1, rm.violations)
	assert.Len(t, rm.items, 3)

	updated, _ = rm.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	rm = updated.(reportModel)
	assert.Equal(t, 100, rm.width)
	assert.Equal(t, 30, rm.height)

	_, cmd = rm.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestReportModel_NeedsPagination(t *testing.T) {
	model := newReportModel().handleReportMsg(reportMsg{report: sampleLibraryReport()})

	model.height = 0
	assert.False(t, model.needsPagination())

	model.height = 40
	assert.False(t, model.needsPagination())

	model.height = 8
	assert.True(t, model.needsPagination())
}

func TestTerminalHeight(t *testing.T) {
	t.Run("buffer", func(t *testing.T) {
		assert.Equal(t, defaultTerminalHeight, terminalHeight(&bytes.Buffer{}))
	})

	t.Run("regular file", func(t *testing.T) {
		file, err := os.Create(filepath.Join(t.TempDir(), "out.txt"))
		require.NoError(t, err)
		defer file.Close()

		assert.Equal(t, defaultTerminalHeight, terminalHeight(file))
		assert.Equal(t, defaultTerminalHeight, NewTUI(file).height)
	})
}

func TestTUI_DisplaySummary_NonTTY(t *testing.T) {
	var out bytes.Buffer

	ui := NewTUI(&out)
	require.NoError(t, ui.Start())
	defer ui.Close()

	require.NoError(t, ui.DisplaySummary(sampleLibraryReport()))
	assert.Contains(t, out.String(), "mat/dense.h")
}

func TestTUI_DisplayModule(t *testing.T) {
	var out bytes.Buffer

	ui := NewTUI(&out)
	require.NoError(t, ui.Start())

	ui.DisplayModule(sampleLibraryReport().Modules[0])
	assert.Empty(t, out.String())

	require.NoError(t, ui.Start(WithVerbosity(1)))
	ui.DisplayModule(sampleLibraryReport().Modules[0])
	assert.Contains(t, out.String(), "core")
	assert.Contains(t, out.String(), "1 violations")
}

func TestTUI_DisplayCheckAndModules(t *testing.T) {
	var out bytes.Buffer

	ui := NewTUI(&out)

	require.NoError(t, ui.DisplayCheck(
		[]m.ParsedFile{parsedFile("", "matrix.h", 20)},
		[]m.Violation{{Filename: "/tmp/bad.h", Line: 3, Message: "invalid line in head"}},
	))
	assert.Contains(t, out.String(), "/lib//matrix.h")
	assert.Contains(t, out.String(), "/tmp/bad.h:3")

	out.Reset()
	require.NoError(t, ui.DisplayModules(nil))
	assert.Equal(t, "No modules configured\n", out.String())
}
