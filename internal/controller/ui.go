// Package controller provides output adapters for displaying header audit results.
package controller

import (
	m "github.com/mouse-blink/hdrlint/internal/model"
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	verbosity int
}

// WithVerbosity sets how much detail the UI prints. Level 0 prints module
// totals, level 1 adds a line per module once the scan completes, level 2
// and above list every file.
func WithVerbosity(level int) StartOption {
	return func(c *StartConfig) {
		c.verbosity = level
	}
}

func newStartConfig(options []StartOption) StartConfig {
	cfg := StartConfig{}
	for _, opt := range options {
		opt(&cfg)
	}

	return cfg
}

// UI defines the interface for displaying audit results.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	Start(options ...StartOption) error
	Close()
	// DisplayModule is called once per scanned module, in configured order.
	DisplayModule(report m.ModuleReport)
	// DisplaySummary shows the library totals and every violation.
	DisplaySummary(report m.LibraryReport) error
	// DisplayCheck shows the section layout of individually checked files.
	DisplayCheck(files []m.ParsedFile, violations []m.Violation) error
	// DisplayModules lists the configured modules.
	DisplayModules(listings []m.ModuleListing) error
}
