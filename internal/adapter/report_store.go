package adapter

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/hdrlint/internal/model"
)

// ReportStore persists and retrieves library reports.
type ReportStore interface {
	SaveReport(path m.Path, report m.LibraryReport) error
	LoadReport(path m.Path) (m.LibraryReport, error)
}

// LocalReportStore writes reports to disk as YAML or JSON, chosen by the
// file extension.
type LocalReportStore struct{}

// NewReportStore constructs a ReportStore implementation.
func NewReportStore() ReportStore {
	return &LocalReportStore{}
}

type reportFormat int

const (
	formatYAML reportFormat = iota
	formatJSON
)

func formatFor(path m.Path) (reportFormat, error) {
	switch strings.ToLower(filepath.Ext(string(path))) {
	case ".yaml", ".yml":
		return formatYAML, nil
	case ".json":
		return formatJSON, nil
	default:
		return 0, fmt.Errorf("unsupported report format %q (use .yaml, .yml or .json)", filepath.Ext(string(path)))
	}
}

// SaveReport encodes report into path, creating parent directories.
func (rs *LocalReportStore) SaveReport(path m.Path, report m.LibraryReport) error {
	format, err := formatFor(path)
	if err != nil {
		return err
	}

	var data []byte

	switch format {
	case formatJSON:
		data, err = json.MarshalIndent(report, "", "  ")
	case formatYAML:
		data, err = yaml.Marshal(report)
	}

	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(string(path)), 0o750); err != nil {
		return fmt.Errorf("create report directory: %w", err)
	}

	if err := os.WriteFile(string(path), data, 0o600); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	return nil
}

// LoadReport decodes a report previously written by SaveReport.
func (rs *LocalReportStore) LoadReport(path m.Path) (m.LibraryReport, error) {
	format, err := formatFor(path)
	if err != nil {
		return m.LibraryReport{}, err
	}

	// #nosec G304 - report path is provided by the operator
	data, err := os.ReadFile(string(path))
	if err != nil {
		return m.LibraryReport{}, fmt.Errorf("read report: %w", err)
	}

	var report m.LibraryReport

	switch format {
	case formatJSON:
		err = json.Unmarshal(data, &report)
	case formatYAML:
		err = yaml.Unmarshal(data, &report)
	}

	if err != nil {
		return m.LibraryReport{}, fmt.Errorf("decode report: %w", err)
	}

	return report, nil
}
