package domain

import (
	"strings"

	m "github.com/mouse-blink/hdrlint/internal/model"
)

type pragmaState int

const (
	pragmaUnset pragmaState = iota
	pragmaOpen
	pragmaFound
	pragmaClosed
)

type macroState int

const (
	macroUnset macroState = iota
	macroOpen
)

// ValidatePreamble checks the order of the pragma guard and the macro guard
// and that the macro is named after the header.
func (c Convention) ValidatePreamble(title string, lines []string, preamble m.LineRange) error {
	expected := c.GuardMacro(m.BaseTitle(title))

	pragma := pragmaUnset
	macro := macroUnset

	for i := preamble.Start; i < preamble.End && i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		if line == "" {
			continue
		}

		lineNo := i + 1

		d := c.classify(line)
		switch d.kind {
		case dirCompilerIf:
			pragma = pragmaOpen
		case dirPragmaOnce:
			if pragma != pragmaOpen {
				return newStructuralError(title, lineNo, PragmaGuardMisplaced, "#pragma once found in invalid place")
			}

			pragma = pragmaFound
		case dirEndif:
			if pragma == pragmaFound {
				pragma = pragmaClosed
			}
		case dirGuardOpen:
			if pragma != pragmaClosed {
				return newStructuralError(title, lineNo, PragmaGuardMisplaced, "pragma guard not correctly put")
			}

			if d.macro != expected {
				return newStructuralError(title, lineNo, IncorrectGuardMacro,
					"incorrect guard macro: got %s, want %s", d.macro, expected)
			}

			macro = macroOpen
		case dirGuardDefine:
			if macro != macroOpen {
				return newStructuralError(title, lineNo, GuardOrderViolation, "#define guard found in wrong place")
			}

			if d.macro != expected {
				return newStructuralError(title, lineNo, IncorrectGuardMacro,
					"incorrect guard macro: got %s, want %s", d.macro, expected)
			}
		case dirOther, dirPragma, dirInclude:
		}
	}

	return nil
}
