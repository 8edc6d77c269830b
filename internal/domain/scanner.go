package domain

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mouse-blink/hdrlint/internal/adapter"
	m "github.com/mouse-blink/hdrlint/internal/model"
)

// ioErrorKind is the violation kind recorded for files that could not be read.
const ioErrorKind = "io-error"

// ModuleScanner parses every header of a module.
type ModuleScanner interface {
	// ListFiles returns the module headers, top-level files first, then the
	// files of the internal subdirectory.
	ListFiles(module string, dir m.Path) ([]m.SourceFile, error)
	// ScanModule parses the module headers and folds their statistics.
	ScanModule(ctx context.Context, module string, dir m.Path) (m.ModuleReport, error)
}

// ScannerOptions tunes a ModuleScanner.
type ScannerOptions struct {
	Exclude Exclusions
	// FailFast returns the first file error instead of recording it as a
	// violation.
	FailFast bool
}

type moduleScanner struct {
	fsAdapter  adapter.SourceFSAdapter
	parser     FileParser
	convention Convention
	opts       ScannerOptions
}

// NewModuleScanner creates a ModuleScanner.
func NewModuleScanner(fsAdapter adapter.SourceFSAdapter, parser FileParser, convention Convention, opts ScannerOptions) ModuleScanner {
	return &moduleScanner{
		fsAdapter:  fsAdapter,
		parser:     parser,
		convention: convention.withDefaults(),
		opts:       opts,
	}
}

func (s *moduleScanner) ListFiles(module string, dir m.Path) ([]m.SourceFile, error) {
	top, err := s.fsAdapter.ListFiles(dir, s.convention.Extension)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", dir, err)
	}

	internalDir := s.fsAdapter.JoinPath(string(dir), s.convention.InternalDir)

	internal, err := s.fsAdapter.ListFiles(internalDir, s.convention.Extension)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", internalDir, err)
	}

	files := make([]m.SourceFile, 0, len(top)+len(internal))

	for _, p := range append(top, internal...) {
		rel, err := s.fsAdapter.RelPath(dir, p)
		if err != nil {
			return nil, fmt.Errorf("relative path of %s: %w", p, err)
		}

		files = append(files, m.NewSourceFile(module, string(rel), p))
	}

	return files, nil
}

func (s *moduleScanner) ScanModule(ctx context.Context, module string, dir m.Path) (m.ModuleReport, error) {
	report := m.ModuleReport{Name: module, Path: dir, Files: []m.ParsedFile{}}

	files, err := s.ListFiles(module, dir)
	if err != nil {
		return report, err
	}

	for _, source := range files {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		if s.opts.Exclude.Match(source.Filename) {
			slog.Debug("skipping excluded file", "module", module, "file", source.Filename)
			continue
		}

		parsed, err := s.parser.ParseFile(source)
		if err != nil {
			if s.opts.FailFast {
				return report, fmt.Errorf("%s/%s: %w", module, source.Filename, err)
			}

			report.Violations = append(report.Violations, violationFor(source, err))

			continue
		}

		report.Files = append(report.Files, parsed)
		report.Stats = report.Stats.Add(parsed.Stats)
	}

	slog.Info("module scanned", "module", module, "files", report.Stats.Files,
		"lines", report.Stats.TotalLines, "violations", len(report.Violations))

	return report, nil
}

// violationFor converts a parse failure into a report entry.
func violationFor(source m.SourceFile, err error) m.Violation {
	v := m.Violation{
		Module:   source.Module,
		Filename: source.Filename,
		Kind:     ioErrorKind,
		Message:  err.Error(),
	}

	if se, ok := AsStructural(err); ok {
		v.Line = se.Line
		v.Kind = string(se.Kind)
		v.Message = se.Cause
	}

	return v
}
