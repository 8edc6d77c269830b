// Package model defines the data structures shared by the header audit.
package model

import (
	"path"
	"strings"
)

// Path represents a file system path.
type Path string

// SourceFile identifies a header file inside a library module.
type SourceFile struct {
	Module string `json:"module" yaml:"module"`
	// Filename is relative to the module directory and may carry an
	// "internal/" prefix.
	Filename string `json:"filename" yaml:"filename"`
	// Title is Filename without its extension.
	Title string `json:"title" yaml:"title"`
	Path  Path   `json:"path" yaml:"path"`
}

// NewSourceFile derives the title from filename.
func NewSourceFile(module, filename string, fullPath Path) SourceFile {
	slashed := strings.ReplaceAll(filename, "\\", "/")

	return SourceFile{
		Module:   module,
		Filename: slashed,
		Title:    strings.TrimSuffix(slashed, path.Ext(slashed)),
		Path:     fullPath,
	}
}

// BaseTitle returns the last element of a title such as "internal/foo".
// Declarations and guard macros are checked against it.
func BaseTitle(title string) string {
	if i := strings.LastIndexAny(title, `/\`); i >= 0 {
		return title[i+1:]
	}

	return title
}

// LineRange is a half-open interval [Start, End) of zero-based line indices.
type LineRange struct {
	Start int `json:"start" yaml:"start"`
	End   int `json:"end" yaml:"end"`
}

// Len returns the number of lines covered by the range.
func (r LineRange) Len() int {
	if r.End < r.Start {
		return 0
	}

	return r.End - r.Start
}

// Empty reports whether the range covers no lines.
func (r LineRange) Empty() bool {
	return r.Len() == 0
}
