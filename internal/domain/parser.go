package domain

import (
	"fmt"
	"log/slog"

	"github.com/mouse-blink/hdrlint/internal/adapter"
	m "github.com/mouse-blink/hdrlint/internal/model"
)

// FileParser divides and validates a single header.
type FileParser interface {
	// ParseFile reads the header from disk and parses it.
	ParseFile(source m.SourceFile) (m.ParsedFile, error)
	// ParseLines parses already loaded lines.
	ParseLines(source m.SourceFile, lines []string) (m.ParsedFile, error)
}

type fileParser struct {
	fsAdapter  adapter.SourceFSAdapter
	convention Convention
}

// NewFileParser creates a FileParser reading files through fsAdapter.
func NewFileParser(fsAdapter adapter.SourceFSAdapter, convention Convention) FileParser {
	return &fileParser{
		fsAdapter:  fsAdapter,
		convention: convention.withDefaults(),
	}
}

func (p *fileParser) ParseFile(source m.SourceFile) (m.ParsedFile, error) {
	slog.Debug("parsing file", "module", source.Module, "file", source.Filename)

	lines, err := p.fsAdapter.ReadLines(source.Path)
	if err != nil {
		return m.ParsedFile{}, fmt.Errorf("read %s: %w", source.Path, err)
	}

	return p.ParseLines(source, lines)
}

// ParseLines runs the divider then both validators; the first error wins.
func (p *fileParser) ParseLines(source m.SourceFile, lines []string) (m.ParsedFile, error) {
	stats := CountLines(lines)
	slog.Debug("file stats", "file", source.Filename, "total", stats.TotalLines, "non_empty", stats.NonEmptyLines)

	sections, err := p.convention.Divide(source.Title, lines)
	if err != nil {
		return m.ParsedFile{}, err
	}

	declared, err := p.convention.ValidateHead(source.Title, lines, sections.Head)
	if err != nil {
		return m.ParsedFile{}, err
	}

	if err := p.convention.ValidatePreamble(source.Title, lines, sections.Preamble); err != nil {
		return m.ParsedFile{}, err
	}

	return m.ParsedFile{
		Source:   source,
		Sections: sections,
		Declared: declared,
		Stats:    stats,
	}, nil
}
