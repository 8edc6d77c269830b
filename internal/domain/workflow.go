// Package domain implements the header structure checks and the library scan.
package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/mouse-blink/hdrlint/internal/adapter"
	"github.com/mouse-blink/hdrlint/internal/config"
	"github.com/mouse-blink/hdrlint/internal/controller"
	m "github.com/mouse-blink/hdrlint/internal/model"
)

// ScanArgs holds the parameters of a library scan.
type ScanArgs struct {
	Config *config.Config
	// Modules restricts the scan; empty means every configured module.
	Modules  []string
	Parallel int
	FailFast bool
	Exclude  []string
	// Report, when set, is where the library report is written.
	Report    m.Path
	Verbosity int
}

// CheckArgs holds the parameters for checking individual headers.
type CheckArgs struct {
	Config    *config.Config
	Paths     []m.Path
	Verbosity int
}

// ModulesArgs holds the parameters for listing modules.
type ModulesArgs struct {
	Config *config.Config
}

// ViewArgs holds the parameters for displaying a saved report.
type ViewArgs struct {
	Report    m.Path
	Verbosity int
}

// Workflow defines the operations exposed to the command line.
type Workflow interface {
	Scan(ctx context.Context, args ScanArgs) error
	Check(ctx context.Context, args CheckArgs) error
	Modules(ctx context.Context, args ModulesArgs) error
	View(ctx context.Context, args ViewArgs) error
}

type workflow struct {
	fsAdapter   adapter.SourceFSAdapter
	reportStore adapter.ReportStore
	ui          controller.UI
}

// NewWorkflow creates a new Workflow instance with the provided adapters.
func NewWorkflow(fsAdapter adapter.SourceFSAdapter, reportStore adapter.ReportStore, ui controller.UI) Workflow {
	return &workflow{
		fsAdapter:   fsAdapter,
		reportStore: reportStore,
		ui:          ui,
	}
}

// Scan audits the requested modules and displays the library report. It
// returns ErrViolations when any header failed a check.
func (w *workflow) Scan(ctx context.Context, args ScanArgs) error {
	cfg := configOrDefault(args.Config)

	lib, err := w.library(cfg)
	if err != nil {
		return err
	}

	modules := args.Modules
	if len(modules) == 0 {
		modules = lib.Modules
	}

	paths := make([]m.Path, len(modules))
	for i, name := range modules {
		if paths[i], err = lib.ModulePath(name); err != nil {
			return err
		}
	}

	exclude, err := CompileExclusions(args.Exclude)
	if err != nil {
		return err
	}

	convention := conventionFrom(cfg)
	scanner := NewModuleScanner(
		w.fsAdapter,
		NewFileParser(w.fsAdapter, convention),
		convention,
		ScannerOptions{Exclude: exclude, FailFast: args.FailFast},
	)

	if err := w.ui.Start(controller.WithVerbosity(args.Verbosity)); err != nil {
		return err
	}
	defer w.ui.Close()

	reports, err := scanModules(ctx, scanner, modules, paths, args.Parallel)
	if err != nil {
		return err
	}

	stats := make([]m.Stats, 0, len(reports))

	for _, md := range reports {
		w.ui.DisplayModule(md)
		stats = append(stats, md.Stats)
	}

	report := m.LibraryReport{Root: lib.IncludePath, Modules: reports, Stats: m.SumStats(stats...)}

	if err := w.ui.DisplaySummary(report); err != nil {
		return err
	}

	if args.Report != "" {
		if err := w.reportStore.SaveReport(args.Report, report); err != nil {
			return err
		}

		slog.Info("report written", "path", args.Report)
	}

	if n := len(report.Violations()); n > 0 {
		return fmt.Errorf("%w: %d file(s)", ErrViolations, n)
	}

	return nil
}

// scanModules scans modules with at most parallel workers. Reports keep the
// order of modules regardless of completion order.
func scanModules(ctx context.Context, scanner ModuleScanner, modules []string, paths []m.Path, parallel int) ([]m.ModuleReport, error) {
	if parallel <= 0 {
		parallel = 1
	}

	reports := make([]m.ModuleReport, len(modules))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(parallel)

	for i, name := range modules {
		i, name := i, name
		g.Go(func() error {
			slog.Info("scanning module", "module", name)

			report, err := scanner.ScanModule(gctx, name, paths[i])
			if err != nil {
				return err
			}

			reports[i] = report

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return reports, nil
}

// Check parses headers given by path, outside of any module.
func (w *workflow) Check(ctx context.Context, args CheckArgs) error {
	cfg := configOrDefault(args.Config)
	parser := NewFileParser(w.fsAdapter, conventionFrom(cfg))

	if err := w.ui.Start(controller.WithVerbosity(args.Verbosity)); err != nil {
		return err
	}
	defer w.ui.Close()

	var (
		files      []m.ParsedFile
		violations []m.Violation
	)

	for _, path := range args.Paths {
		if err := ctx.Err(); err != nil {
			return err
		}

		source := m.NewSourceFile("", filepath.Base(string(path)), path)

		parsed, err := parser.ParseFile(source)
		if err != nil {
			v := violationFor(source, err)
			v.Filename = string(path)
			violations = append(violations, v)

			continue
		}

		files = append(files, parsed)
	}

	if err := w.ui.DisplayCheck(files, violations); err != nil {
		return err
	}

	if len(violations) > 0 {
		return fmt.Errorf("%w: %d file(s)", ErrViolations, len(violations))
	}

	return nil
}

// Modules lists the configured modules with their header counts.
func (w *workflow) Modules(ctx context.Context, args ModulesArgs) error {
	cfg := configOrDefault(args.Config)

	lib, err := w.library(cfg)
	if err != nil {
		return err
	}

	convention := conventionFrom(cfg)
	scanner := NewModuleScanner(w.fsAdapter, NewFileParser(w.fsAdapter, convention), convention, ScannerOptions{})

	listings := make([]m.ModuleListing, 0, len(lib.Modules))

	for _, name := range lib.Modules {
		if err := ctx.Err(); err != nil {
			return err
		}

		path, err := lib.ModulePath(name)
		if err != nil {
			return err
		}

		files, err := scanner.ListFiles(name, path)
		if err != nil {
			return err
		}

		listing := m.ModuleListing{Name: name, Path: path}

		for _, f := range files {
			if filepath.Dir(f.Filename) == convention.InternalDir {
				listing.InternalHeaders++
			} else {
				listing.Headers++
			}
		}

		listings = append(listings, listing)
	}

	return w.ui.DisplayModules(listings)
}

// View displays a report written by an earlier scan. Violations in the
// report are shown but are not returned as an error.
func (w *workflow) View(ctx context.Context, args ViewArgs) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	report, err := w.reportStore.LoadReport(args.Report)
	if err != nil {
		return err
	}

	if err := w.ui.Start(controller.WithVerbosity(args.Verbosity)); err != nil {
		return err
	}
	defer w.ui.Close()

	for _, md := range report.Modules {
		w.ui.DisplayModule(md)
	}

	return w.ui.DisplaySummary(report)
}

// library resolves the module names and checks the layout on disk.
func (w *workflow) library(cfg *config.Config) (*config.Library, error) {
	names := cfg.Modules

	if len(names) == 0 {
		var err error

		names, err = w.fsAdapter.ReadModuleList(m.Path(cfg.ModulesFilePath()))
		if err != nil {
			return nil, err
		}
	}

	if len(names) == 0 {
		return nil, errors.New("no modules configured")
	}

	return config.NewLibrary(w.fsAdapter, m.Path(cfg.IncludePath()), names)
}

func configOrDefault(cfg *config.Config) *config.Config {
	if cfg == nil {
		return config.Default()
	}

	return cfg
}

func conventionFrom(cfg *config.Config) Convention {
	return Convention{
		GuardPrefix: cfg.Convention.GuardPrefix,
		Extension:   cfg.Convention.Extension,
		InternalDir: cfg.Convention.InternalDir,
	}.withDefaults()
}
