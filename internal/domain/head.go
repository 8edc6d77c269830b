package domain

import (
	"regexp"
	"strings"

	m "github.com/mouse-blink/hdrlint/internal/model"
)

var fileDeclPattern = regexp.MustCompile(`^\*\s+@file\s+(\w+)\.h\b`)

// ValidateHead checks the @file declaration of the head section and returns
// the declared name.
func (c Convention) ValidateHead(title string, lines []string, head m.LineRange) (string, error) {
	base := m.BaseTitle(title)

	for i := head.Start; i < head.End && i < len(lines); i++ {
		match := fileDeclPattern.FindStringSubmatch(strings.TrimSpace(lines[i]))
		if match == nil {
			continue
		}

		if match[1] != base {
			return "", newStructuralError(title, i+1, FileDeclarationMismatch,
				"incorrect file declaration: got %s.h, want %s.h", match[1], base)
		}

		return match[1], nil
	}

	return "", newStructuralError(title, head.End, MissingFileDeclaration, "file declaration is not found")
}
